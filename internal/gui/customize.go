package gui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/luminaos/lumina-welcome/internal/config"
	"github.com/luminaos/lumina-welcome/internal/launcher"
)

// buildCustomizePage assembles the wallpaper and theme page. Applying a
// wallpaper shells out to the configured setter and theme generator; a
// non-zero exit from either is a warning surfaced in the status line and
// as a notification, never a failure that blocks the flow.
func (u *UI) buildCustomizePage() fyne.CanvasObject {
	background, anim := newBackground()
	u.setBackground(anim)

	heading := widget.NewLabelWithStyle("Make it yours", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	status := widget.NewLabel("")
	status.Alignment = fyne.TextAlignCenter

	wallpapers := listWallpapers(u.opts.Config.UI.WallpapersDir)
	names := make([]string, len(wallpapers))
	for i, p := range wallpapers {
		names[i] = filepath.Base(p)
	}

	var selected string
	picker := widget.NewSelect(names, func(name string) {
		for _, p := range wallpapers {
			if filepath.Base(p) == name {
				selected = p
				return
			}
		}
	})
	picker.PlaceHolder = "Choose a wallpaper"
	if len(names) == 0 {
		picker.PlaceHolder = "No wallpapers found"
		picker.Disable()
	}

	apply := widget.NewButton("Apply wallpaper and theme", func() {
		if selected == "" {
			status.SetText("Pick a wallpaper first")
			return
		}
		status.SetText("Applying...")
		go u.applyCustomization(selected, status)
	})

	back := widget.NewButton("Back", func() {
		u.window.SetContent(u.buildWelcomePage())
	})

	finish := widget.NewButton(finishLabel(u.opts.Mode), u.finishFlow)
	finish.Importance = widget.HighImportance

	form := container.NewVBox(
		heading,
		picker,
		apply,
		status,
	)

	overlay := container.NewBorder(
		nil,
		container.NewPadded(container.NewCenter(container.NewHBox(back, finish))),
		nil, nil,
		container.NewCenter(form),
	)

	return container.NewStack(background, overlay)
}

// applyCustomization runs the wallpaper setter and theme generator off the
// UI thread. Status updates go back through fyne.Do.
func (u *UI) applyCustomization(imagePath string, status *widget.Label) {
	logger := u.opts.Logger
	cmds := u.opts.Config.Commands

	setText := func(text string) {
		fyne.Do(func() { status.SetText(text) })
	}

	name, args := config.SplitCommand(cmds.WallpaperSetter)
	if name == "" {
		setText("No wallpaper setter configured")
		return
	}
	if err := launcher.Run(name, append(args, imagePath)...); err != nil {
		logger.Warn().Err(err).Str("tool", name).Msg("Wallpaper setter reported a problem")
		u.opts.Notifier.ToolWarning(name, err.Error())
		setText("Wallpaper tool reported a problem; see log")
		return
	}

	if themeName, themeArgs := config.SplitCommand(cmds.ThemeGenerator); themeName != "" {
		if err := launcher.Run(themeName, append(themeArgs, imagePath)...); err != nil {
			logger.Warn().Err(err).Str("tool", themeName).Msg("Theme generator reported a problem")
			u.opts.Notifier.ToolWarning(themeName, err.Error())
			setText("Wallpaper set; theme tool reported a problem")
			return
		}
	}

	logger.Info().Str("wallpaper", imagePath).Msg("Customization applied")
	setText("Applied " + filepath.Base(imagePath))
}

// listWallpapers returns the image files in dir, sorted by name.
// A missing or unreadable directory is an empty list, not an error.
func listWallpapers(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			images = append(images, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(images)
	return images
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}
