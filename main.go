package main

// Package structure:
// - models/     : Color and Channel
// - validation/ : channel text validation and canonical formatting (no Fyne types)
// - editor/     : editing session, the source of truth behind the editor screen
// - palette/    : color naming and swatch images
// - config/     : configuration, version metadata and the application log
// - ui/         : the display and editor screens, dialogs and theme constants

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"colorized/config"
	"colorized/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("error loading configuration, using defaults: %v", err)
	}

	if configDir, err := config.Dir(); err != nil {
		log.Printf("error verifying config directory: %v", err)
	} else if err := config.InitLogger(configDir, cfg.Log); err != nil {
		log.Printf("error initializing log file: %v", err)
	}
	defer config.CloseLogger()

	// Create a new Fyne application instance
	colorizedApp := app.NewWithID(config.AppID)

	app.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    "Colorized",
		Version: config.Version,
	})

	myWindow := colorizedApp.NewWindow("Colorized")

	// Set once the layout is built; menu callbacks only run after that
	var display *ui.ColorDisplayScreen

	// -------------------------------------------------------------------------
	// MENUS
	// -------------------------------------------------------------------------
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Logs", func() {
			log.Println("[UI] Colorized Logs opened (GUI)")
			ui.ShowLogWindow(colorizedApp)
		}),
		fyne.NewMenuItem("Configuration", func() {
			log.Println("[UI] Colorized configuration opened (GUI)")
			ui.ShowConfigWindow(colorizedApp, cfg)
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			log.Println("[UI] About dialog opened")
			ui.ShowAboutDialog(myWindow, display.Color())
		}),
	)

	myWindow.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))

	// Build the screens; the display screen owns the window content from here on
	display = ui.BuildMainLayout(myWindow, cfg.InitialColor())

	// -------------------------------------------------------------------------
	// KEYBOARD SHORTCUTS
	// -------------------------------------------------------------------------
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] User closed application (ctrl + q)")
		colorizedApp.Quit()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Colorized Logs opened (ctrl + l)")
		ui.ShowLogWindow(colorizedApp)
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyC,
		Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Colorized configuration opened (ctrl + shift + c)")
		ui.ShowConfigWindow(colorizedApp, cfg)
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyE,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Color editor requested (ctrl + e)")
		display.OpenEditor()
	})

	myWindow.SetCloseIntercept(func() {
		log.Println("[UI] User closed application")
		colorizedApp.Quit()
	})

	width, height := cfg.Window.Width, cfg.Window.Height
	if width <= 0 || height <= 0 {
		width, height = ui.DefaultWindowWidth, ui.DefaultWindowHeight
	}
	myWindow.Resize(fyne.NewSize(width, height))

	// Show the window and run the event loop
	myWindow.ShowAndRun()
}
