package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"colorized/models"
	"colorized/palette"
)

// ColorDisplayScreen represents the main screen.
// It fills the window with the current color and opens the editor on demand.
// Its only state is the color itself.
type ColorDisplayScreen struct {
	// Content is the complete UI of the screen, ready to be set on a window
	Content fyne.CanvasObject

	// Background is the full-window surface painted with the current color
	Background *canvas.Rectangle

	// HexText shows the current color as "#rrggbb"
	HexText *canvas.Text

	// NameLabel shows the closest named color
	NameLabel *widget.Label

	// SettingsButton opens the editor
	SettingsButton *widget.Button

	// CopyButton puts the hex code on the clipboard
	CopyButton *widget.Button

	window fyne.Window
	color  models.Color

	// editor is the open child screen, nil while the display is showing
	editor *ColorEditorScreen

	// OnColorChanged is called after every confirmed color change
	OnColorChanged []func(models.Color)
}

// NewColorDisplayScreen creates the main screen showing initial.
//
// Parameters:
//   - window: The window the screen (and its editor) lives in
//   - initial: The color to show at startup
//
// Returns:
//   - *ColorDisplayScreen: The screen, not yet set as window content
func NewColorDisplayScreen(window fyne.Window, initial models.Color) *ColorDisplayScreen {
	d := &ColorDisplayScreen{
		window:         window,
		color:          initial,
		OnColorChanged: make([]func(models.Color), 0),
	}

	d.Background = canvas.NewRectangle(initial.NRGBA())

	d.HexText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	d.HexText.TextSize = HexTextSize
	d.HexText.TextStyle = fyne.TextStyle{Monospace: true}
	d.HexText.Alignment = fyne.TextAlignCenter

	d.NameLabel = widget.NewLabel("")
	d.NameLabel.Alignment = fyne.TextAlignCenter

	d.SettingsButton = widget.NewButtonWithIcon("Settings", theme.SettingsIcon(), func() {
		d.OpenEditor()
	})
	d.SettingsButton.Importance = widget.HighImportance

	d.CopyButton = widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), func() {
		d.copyHex()
	})

	info := NewCard(container.NewVBox(
		d.HexText,
		d.NameLabel,
		container.NewGridWithColumns(2, d.CopyButton, d.SettingsButton),
	))

	d.Content = container.NewStack(
		d.Background,
		container.NewVBox(
			layout.NewSpacer(),
			container.NewPadded(container.NewCenter(info)),
		),
	)

	d.render()
	return d
}

// Color returns the color currently displayed.
func (d *ColorDisplayScreen) Color() models.Color {
	return d.color
}

// Editor returns the open editor, or nil.
func (d *ColorDisplayScreen) Editor() *ColorEditorScreen {
	return d.editor
}

// OnConfirm sets the displayed color. It is the editor's confirmation callback.
func (d *ColorDisplayScreen) OnConfirm(c models.Color) {
	log.Printf("[UI] Display color set to %s (%s)", c, c.Hex())
	d.color = c
	d.render()

	for _, callback := range d.OnColorChanged {
		callback(c)
	}
}

// RegisterColorChangedCallback registers a callback to be called when the color changes.
// Multiple callbacks can be registered and will all be called in order.
func (d *ColorDisplayScreen) RegisterColorChangedCallback(callback func(models.Color)) {
	d.OnColorChanged = append(d.OnColorChanged, callback)
}

// OpenEditor shows the editor screen seeded with the current color.
// If an editor is already open it is returned unchanged.
func (d *ColorDisplayScreen) OpenEditor() *ColorEditorScreen {
	if d.editor != nil {
		return d.editor
	}

	log.Printf("[UI] Color editor opened with %s", d.color)
	d.editor = NewColorEditorScreen(d.window, d.color, d.OnConfirm, d.closeEditor)
	d.window.SetContent(d.editor.Content)
	return d.editor
}

// closeEditor hands the window back to the display screen.
func (d *ColorDisplayScreen) closeEditor() {
	d.editor = nil
	d.window.SetContent(d.Content)
}

func (d *ColorDisplayScreen) render() {
	SetPreviewColor(d.Background, d.color)
	d.HexText.Text = d.color.Hex()
	d.HexText.Refresh()
	d.NameLabel.SetText(palette.NearestName(d.color))
}

func (d *ColorDisplayScreen) copyHex() {
	hex := d.color.Hex()
	if err := CopyToClipboard(hex); err != nil {
		log.Printf("[UI] Copy failed: %v", err)
		dialog.ShowError(fmt.Errorf("failed to copy %s: %w", hex, err), d.window)
		return
	}
	log.Printf("[UI] Copied %s to clipboard", hex)
}
