// Package gui provides the fullscreen greeter interface for Lumina Welcome.
package gui

import (
	"fmt"
	"image/color"
	"os"
	"runtime"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/luminaos/lumina-welcome/internal/config"
	"github.com/luminaos/lumina-welcome/internal/greetings"
	"github.com/luminaos/lumina-welcome/internal/lifecycle"
	"github.com/luminaos/lumina-welcome/internal/logging"
	"github.com/luminaos/lumina-welcome/internal/notify"
	"github.com/luminaos/lumina-welcome/internal/sysmode"
)

// Options carries everything the GUI needs from the startup sequence.
type Options struct {
	Config    *config.Config
	Gate      *lifecycle.Gate
	Marker    *lifecycle.SessionMarker
	Mode      sysmode.Mode
	Notifier  *notify.Notifier
	Logger    *logging.Logger
	LocaleTag string
}

// UI is the running greeter interface.
type UI struct {
	app    fyne.App
	window fyne.Window
	opts   Options

	rotator      *greetings.Rotator
	greetingText *canvas.Text
	languageText *canvas.Text
	stopRotation chan struct{}
	stopOnce     sync.Once

	bgAnim *fyne.Animation
}

// Launch builds and runs the greeter window. It blocks until the user
// finishes the flow (or closes the window) and only returns once the Fyne
// event loop has stopped. The session marker is released on every exit
// path before this returns.
func Launch(opts Options) error {
	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return fmt.Errorf("no display detected: DISPLAY and WAYLAND_DISPLAY are not set")
		}
	}

	fyneApp := app.NewWithID("org.luminaos.welcome")
	fyneApp.Settings().SetTheme(&luminaTheme{})

	window := fyneApp.NewWindow("Welcome to Lumina")
	window.SetMaster()

	ui := &UI{
		app:          fyneApp,
		window:       window,
		opts:         opts,
		rotator:      greetings.NewRotator(greetings.All(), opts.LocaleTag),
		stopRotation: make(chan struct{}),
	}

	window.SetContent(ui.buildWelcomePage())

	if opts.Config.UI.Windowed {
		window.Resize(fyne.NewSize(1100, 700))
		window.CenterOnScreen()
	} else {
		window.SetFullScreen(true)
	}

	// Closing the window abandons the flow: no exit command, no
	// completion marker, just release the lock and go.
	window.SetCloseIntercept(func() {
		opts.Logger.Info().Msg("Window closed without finishing the flow")
		ui.shutdown()
	})

	interval := time.Duration(opts.Config.UI.GreetingIntervalSeconds) * time.Second
	ui.startGreetingRotation(interval)

	window.ShowAndRun()
	return nil
}

// setBackground swaps the running backdrop animation. Stopping the old one
// matters when navigating between pages, which rebuild their backdrop.
func (u *UI) setBackground(anim *fyne.Animation) {
	if u.bgAnim != nil {
		u.bgAnim.Stop()
	}
	u.bgAnim = anim
	anim.Start()
}

// shutdown stops animations, releases the session marker and quits the
// event loop. Idempotent.
func (u *UI) shutdown() {
	u.stopOnce.Do(func() {
		close(u.stopRotation)
		if u.bgAnim != nil {
			u.bgAnim.Stop()
		}
		u.opts.Marker.Release()
		u.app.Quit()
	})
}

// buildWelcomePage assembles the front page: animated backdrop, rotating
// greeting, and the two actions.
func (u *UI) buildWelcomePage() fyne.CanvasObject {
	background, anim := newBackground()
	u.setBackground(anim)

	current := u.rotator.Current()

	u.greetingText = canvas.NewText(current.Text, textBright)
	u.greetingText.TextSize = 64
	u.greetingText.TextStyle = fyne.TextStyle{Bold: true}
	u.greetingText.Alignment = fyne.TextAlignCenter

	u.languageText = canvas.NewText(current.Name, textDim)
	u.languageText.TextSize = 18
	u.languageText.Alignment = fyne.TextAlignCenter

	brand := canvas.NewText("Lumina OS", textDim)
	brand.TextSize = 16
	brand.Alignment = fyne.TextAlignCenter

	customize := widget.NewButton("Customize your desktop", func() {
		u.window.SetContent(u.buildCustomizePage())
	})

	finish := widget.NewButtonWithIcon(finishLabel(u.opts.Mode), nil, u.finishFlow)
	finish.Importance = widget.HighImportance

	buttons := container.NewHBox(customize, finish)

	center := container.NewVBox(
		u.greetingText,
		u.languageText,
	)

	overlay := container.NewBorder(
		container.NewPadded(brand),
		container.NewPadded(container.NewCenter(buttons)),
		nil, nil,
		container.NewCenter(center),
	)

	return container.NewStack(background, overlay)
}

// finishLabel is the text on the primary button for each mode.
func finishLabel(mode sysmode.Mode) string {
	switch mode {
	case sysmode.ModeLive:
		return "Install Lumina"
	case sysmode.ModeInstalled:
		return "Finish setup"
	default:
		return "Close"
	}
}

// finishFlow drives the exit handoff: resolve the action for the detected
// mode, perform it, and terminate. A launch failure keeps the greeter (and
// its session marker) alive behind a blocking error dialog so the user can
// retry after installing or fixing the missing tool.
func (u *UI) finishFlow() {
	gate := u.opts.Gate
	action := gate.ResolveExitAction(u.opts.Mode)

	if err := gate.PerformExit(action); err != nil {
		u.opts.Logger.Error().Err(err).Msg("Exit command failed to start")
		u.opts.Notifier.LaunchFailed(action.Command, err.Error())
		dialog.ShowError(fmt.Errorf("could not start %q.\nInstall it or fix the command in welcome.conf, then try again", action.Command), u.window)
		return
	}

	u.shutdown()
}

// startGreetingRotation swaps the greeting on a ticker with a short fade.
func (u *UI) startGreetingRotation(interval time.Duration) {
	if interval <= 0 {
		interval = 3 * time.Second
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				u.fadeToNextGreeting()
			case <-u.stopRotation:
				return
			}
		}
	}()
}

const greetingFade = 400 * time.Millisecond

// fadeToNextGreeting fades the current greeting out, swaps the text, and
// fades back in. Called from the ticker goroutine; all canvas work is
// marshalled onto the UI thread with fyne.Do.
func (u *UI) fadeToNextGreeting() {
	fyne.Do(func() {
		fadeOut := canvas.NewColorRGBAAnimation(textBright, textClear, greetingFade, func(c color.Color) {
			u.greetingText.Color = c
			u.languageText.Color = c
			canvas.Refresh(u.greetingText)
			canvas.Refresh(u.languageText)
		})
		fadeOut.Curve = fyne.AnimationEaseOut
		fadeOut.Start()
	})

	time.AfterFunc(greetingFade, func() {
		fyne.Do(func() {
			next := u.rotator.Next()
			u.greetingText.Text = next.Text
			u.languageText.Text = next.Name
			u.languageText.Color = textDim
			canvas.Refresh(u.languageText)

			fadeIn := canvas.NewColorRGBAAnimation(textClear, textBright, greetingFade, func(c color.Color) {
				u.greetingText.Color = c
				canvas.Refresh(u.greetingText)
			})
			fadeIn.Curve = fyne.AnimationEaseIn
			fadeIn.Start()
		})
	})
}
