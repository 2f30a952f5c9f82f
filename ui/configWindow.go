package ui

import (
	"strings"

	"colorized/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShowConfigWindow shows the effective configuration (file, env and defaults merged).
func ShowConfigWindow(colorizedApp fyne.App, cfg config.Config) {
	configWindow := colorizedApp.NewWindow("Colorized Configuration")
	configWindow.Resize(fyne.NewSize(480, 360))

	allLines := cfg.Lines()

	configLabel := widget.NewLabel(strings.Join(allLines, "\n"))
	configLabel.TextStyle = fyne.TextStyle{Monospace: true}

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search configuration...")

	performSearch := func() {
		query := searchEntry.Text
		if query == "" {
			configLabel.SetText(strings.Join(allLines, "\n"))
			return
		}
		configLabel.SetText(FilterLines(allLines, query))
	}

	clearSearch := func() {
		searchEntry.SetText("")
		configLabel.SetText(strings.Join(allLines, "\n"))
	}

	// Trigger search on Enter key
	searchEntry.OnSubmitted = func(string) {
		performSearch()
	}

	searchButton := widget.NewButton("Search", performSearch)
	clearButton := widget.NewButton("Clear", clearSearch)

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton),
		searchEntry)

	hint := widget.NewLabel("Edit ~/.config/colorized/config.toml (or $COLORIZED_CONFIG) and restart to apply.")
	hint.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(searchBox, hint, nil, nil, container.NewScroll(configLabel))
	configWindow.SetContent(content)
	configWindow.Show()
}
