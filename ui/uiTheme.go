package ui

import (
	"image/color"
)

// Theme constants define the visual appearance of the application.
// Both screens read from here so the look stays consistent.

// Color palette for the application chrome (never the user's color)
var (
	// CardBackgroundColor is the white color used for card backgrounds
	CardBackgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 235}

	// PreviewBorderColor outlines the preview so very light colors stay visible
	PreviewBorderColor = color.NRGBA{R: 0, G: 0, B: 0, A: 40}
)

// Text size constants for consistent typography
const (
	// HexTextSize is used for the "#rrggbb" readout on the main screen
	HexTextSize = 28
)

// Layout constants
const (
	// PreviewCornerRadius rounds the preview surface on the editor screen
	PreviewCornerRadius = 15

	// CardCornerRadius rounds the info card on the main screen
	CardCornerRadius = 10

	// PreviewMinHeight keeps the preview visible on short screens
	PreviewMinHeight = 140

	// CardMinWidth is the minimum width for card components
	CardMinWidth = 220

	// ChannelEntryWidth is the fixed width of a channel text field ("0.00")
	ChannelEntryWidth = 72

	// IconSize is the edge length of the generated window icon
	IconSize = 64

	// DefaultWindowWidth is the initial width of the application window
	DefaultWindowWidth = 420

	// DefaultWindowHeight is the initial height of the application window
	DefaultWindowHeight = 760
)
