package greetings

import "testing"

func TestRotatorStartsAtLocale(t *testing.T) {
	tests := []struct {
		locale   string
		wantLang string
	}{
		{"pt-BR", "pt"},
		{"pt_BR", "pt"},
		{"de", "de"},
		{"DE-at", "de"},
		{"xx-YY", "en"}, // no match: stay at the head of the list
		{"", "en"},
	}

	for _, tt := range tests {
		r := NewRotator(All(), tt.locale)
		if got := r.Current().Lang; got != tt.wantLang {
			t.Errorf("NewRotator(locale=%q) starts at %q, want %q", tt.locale, got, tt.wantLang)
		}
	}
}

func TestRotatorCyclesAndWraps(t *testing.T) {
	list := []Greeting{
		{Lang: "en", Text: "Welcome"},
		{Lang: "fr", Text: "Bienvenue"},
		{Lang: "de", Text: "Willkommen"},
	}
	r := NewRotator(list, "en")

	seen := []string{r.Current().Lang}
	for i := 0; i < 3; i++ {
		seen = append(seen, r.Next().Lang)
	}

	want := []string{"en", "fr", "de", "en"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("rotation order %v, want %v", seen, want)
		}
	}
}

func TestRotatorEmptyList(t *testing.T) {
	r := NewRotator(nil, "en")
	if r.Len() != 0 {
		t.Fatalf("expected empty rotator, got len %d", r.Len())
	}
	if r.Current() != (Greeting{}) {
		t.Error("Current on empty rotator should be zero")
	}
	if r.Next() != (Greeting{}) {
		t.Error("Next on empty rotator should be zero")
	}
}

func TestAllGreetingsArePopulated(t *testing.T) {
	for _, g := range All() {
		if g.Lang == "" || g.Name == "" || g.Text == "" {
			t.Errorf("incomplete greeting entry: %+v", g)
		}
	}
}
