// Package greetings holds the rotating multilingual welcome texts shown on
// the greeter's front page. The rotation logic is pure; the timer driving
// it lives in the GUI.
package greetings

import "strings"

// Greeting is one welcome text with the language it is written in.
type Greeting struct {
	// Lang is the language tag, primary subtag only ("en", "pt").
	Lang string

	// Name is the language's own name, shown as a subtitle.
	Name string

	// Text is the greeting itself.
	Text string
}

// All returns the built-in greeting list. The order is the on-screen
// rotation order.
func All() []Greeting {
	return []Greeting{
		{Lang: "en", Name: "English", Text: "Welcome"},
		{Lang: "es", Name: "Español", Text: "Bienvenido"},
		{Lang: "fr", Name: "Français", Text: "Bienvenue"},
		{Lang: "de", Name: "Deutsch", Text: "Willkommen"},
		{Lang: "it", Name: "Italiano", Text: "Benvenuto"},
		{Lang: "pt", Name: "Português", Text: "Bem-vindo"},
		{Lang: "pl", Name: "Polski", Text: "Witamy"},
		{Lang: "tr", Name: "Türkçe", Text: "Hoş geldiniz"},
		{Lang: "ru", Name: "Русский", Text: "Добро пожаловать"},
		{Lang: "uk", Name: "Українська", Text: "Ласкаво просимо"},
		{Lang: "ar", Name: "العربية", Text: "أهلاً وسهلاً"},
		{Lang: "hi", Name: "हिन्दी", Text: "स्वागत है"},
		{Lang: "zh", Name: "中文", Text: "欢迎"},
		{Lang: "ja", Name: "日本語", Text: "ようこそ"},
		{Lang: "ko", Name: "한국어", Text: "환영합니다"},
	}
}

// Rotator cycles through a greeting list. When the user's locale matches a
// greeting, the rotation starts there so the first thing on screen is in
// their language.
type Rotator struct {
	greetings []Greeting
	index     int
}

// NewRotator creates a rotator over the given greetings, starting at the
// entry matching localeTag (a BCP 47 tag like "pt-BR") when one exists.
// An empty list is allowed; Current then returns a zero Greeting.
func NewRotator(list []Greeting, localeTag string) *Rotator {
	r := &Rotator{greetings: list}
	lang := primarySubtag(localeTag)
	for i, g := range list {
		if strings.EqualFold(g.Lang, lang) {
			r.index = i
			break
		}
	}
	return r
}

// Current returns the greeting currently on screen.
func (r *Rotator) Current() Greeting {
	if len(r.greetings) == 0 {
		return Greeting{}
	}
	return r.greetings[r.index]
}

// Next advances the rotation and returns the new greeting.
func (r *Rotator) Next() Greeting {
	if len(r.greetings) == 0 {
		return Greeting{}
	}
	r.index = (r.index + 1) % len(r.greetings)
	return r.greetings[r.index]
}

// Len returns the number of greetings in the rotation.
func (r *Rotator) Len() int {
	return len(r.greetings)
}

func primarySubtag(tag string) string {
	tag = strings.ReplaceAll(tag, "_", "-")
	lang, _, _ := strings.Cut(tag, "-")
	return lang
}
