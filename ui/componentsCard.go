package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"colorized/models"
)

// NewCard wraps content in a card-like container with a white background.
// Cards keep text readable on top of whatever color the user picked.
//
// The card uses a stacked layout where:
// 1. A rounded white rectangle forms the background
// 2. The content is placed on top with padding
//
// Parameters:
//   - content: The fyne.CanvasObject to be displayed inside the card
//
// Returns:
//   - fyne.CanvasObject: A card container with white background and padded content
func NewCard(content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(CardBackgroundColor)
	bg.CornerRadius = CardCornerRadius
	bg.SetMinSize(fyne.NewSize(CardMinWidth, 0))

	return container.NewStack(bg, container.NewPadded(content))
}

// NewPreviewSurface creates the rounded rectangle that shows a color.
// The caller keeps the rectangle and calls SetPreviewColor to repaint it.
//
// Parameters:
//   - c: The color to show initially
//
// Returns:
//   - *canvas.Rectangle: The preview surface
func NewPreviewSurface(c models.Color) *canvas.Rectangle {
	rect := canvas.NewRectangle(c.NRGBA())
	rect.CornerRadius = PreviewCornerRadius
	rect.StrokeColor = PreviewBorderColor
	rect.StrokeWidth = 1
	rect.SetMinSize(fyne.NewSize(0, PreviewMinHeight))
	return rect
}

// SetPreviewColor repaints a surface created by NewPreviewSurface
// (or any rectangle) with c.
func SetPreviewColor(rect *canvas.Rectangle, c models.Color) {
	rect.FillColor = c.NRGBA()
	rect.Refresh()
}
