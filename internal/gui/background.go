package gui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Background colors the animation sweeps between. The greeter's looping
// background video is replaced here by a slow animated gradient; the same
// visual role without a media pipeline.
var (
	bgDeep   = color.NRGBA{R: 0x12, G: 0x0F, B: 0x22, A: 0xFF}
	bgViolet = color.NRGBA{R: 0x2B, G: 0x1A, B: 0x55, A: 0xFF}
	bgGlow   = color.NRGBA{R: 0x41, G: 0x2A, B: 0x7A, A: 0xFF}
)

// Text colors for the greeting fade.
var (
	textBright = color.NRGBA{R: 0xF2, G: 0xF0, B: 0xFA, A: 0xFF}
	textDim    = color.NRGBA{R: 0xB9, G: 0xB2, B: 0xD8, A: 0xFF}
	textClear  = color.NRGBA{R: 0xF2, G: 0xF0, B: 0xFA, A: 0x00}
)

const backgroundCycle = 12 * time.Second

// newBackground builds the animated backdrop and returns it with the
// animation to start once the window shows. The animation loops forever,
// reversing at each end, and is stopped when the greeter exits.
func newBackground() (fyne.CanvasObject, *fyne.Animation) {
	gradient := canvas.NewVerticalGradient(bgViolet, bgDeep)

	anim := canvas.NewColorRGBAAnimation(bgViolet, bgGlow, backgroundCycle, func(c color.Color) {
		gradient.StartColor = c
		canvas.Refresh(gradient)
	})
	anim.AutoReverse = true
	anim.RepeatCount = fyne.AnimationRepeatForever
	anim.Curve = fyne.AnimationEaseInOut

	return container.NewStack(gradient), anim
}
