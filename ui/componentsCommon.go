package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NewBoldLabel creates a label with bold text styling.
//
// Parameters:
//   - text: The text to display in the label
//
// Returns:
//   - *widget.Label: A label widget with bold styling
func NewBoldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(
		text,
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
}

// NewValueLabel creates the monospace label that mirrors a channel value.
func NewValueLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(
		text,
		fyne.TextAlignTrailing,
		fyne.TextStyle{Monospace: true},
	)
}
