package ui

import (
	"fmt"

	"colorized/config"
	"colorized/models"
	"colorized/palette"
	"colorized/validation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// aboutSwatchSize is the edge of the color sample shown in the About dialog.
const aboutSwatchSize = 48

// ShowAboutDialog shows build metadata next to a sample of the color
// currently on screen.
func ShowAboutDialog(window fyne.Window, current models.Color) {
	dialog.NewCustom("About Colorized", "Close", newAboutContent(current), window).Show()
}

func newAboutContent(current models.Color) fyne.CanvasObject {
	swatch := canvas.NewImageFromImage(palette.Swatch(current, aboutSwatchSize, aboutSwatchSize))
	swatch.FillMode = canvas.ImageFillOriginal

	colorInfo := widget.NewLabel(fmt.Sprintf("%s\n%s\nR %s  G %s  B %s",
		current.Hex(),
		palette.NearestName(current),
		formatComponent(current, models.Red),
		formatComponent(current, models.Green),
		formatComponent(current, models.Blue),
	))

	build := widget.NewLabel(fmt.Sprintf("Version %s (%s)\nBuilt %s",
		config.Version, config.GitCommit, config.BuildTime))
	build.Importance = widget.LowImportance

	return container.NewVBox(
		container.NewHBox(swatch, colorInfo),
		widget.NewSeparator(),
		build,
	)
}

func formatComponent(c models.Color, ch models.Channel) string {
	return validation.FormatChannel(c.Component(ch))
}
