package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"colorized/models"
	"colorized/palette"
)

// BuildMainLayout constructs the main screen and puts it on the window.
// This is the main entry point for creating the user interface.
//
// The window shows one screen at a time:
// - ColorDisplayScreen: the chosen color fills the window
// - ColorEditorScreen: replaces the display while editing, until Done
//
// The window icon is a swatch of the current color and follows every
// confirmed change.
//
// Parameters:
//   - window: The main application window
//   - initial: The color shown at startup
//
// Returns:
//   - *ColorDisplayScreen: The display screen, already set as window content
func BuildMainLayout(window fyne.Window, initial models.Color) *ColorDisplayScreen {
	display := NewColorDisplayScreen(window, initial)

	updateIcon := func(c models.Color) {
		icon, err := SwatchResource(c)
		if err != nil {
			log.Printf("[UI] Could not render window icon: %v", err)
			return
		}
		window.SetIcon(icon)
	}
	display.RegisterColorChangedCallback(updateIcon)
	updateIcon(initial)

	window.SetContent(display.Content)
	return display
}

// SwatchResource renders c as a PNG resource usable as an icon.
func SwatchResource(c models.Color) (fyne.Resource, error) {
	data, err := palette.SwatchPNG(c, IconSize)
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource("colorized-"+c.Hex()[1:]+".png", data), nil
}
