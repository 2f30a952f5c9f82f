package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"golang.design/x/clipboard"
)

// CopyToClipboard writes text to the system clipboard.
// When the native clipboard is unavailable (no display server, cgo
// disabled) it falls back to the clipboard of the running fyne app.
func CopyToClipboard(text string) error {
	if err := clipboard.Init(); err != nil {
		log.Printf("[UI] Native clipboard unavailable, using app clipboard: %v", err)

		app := fyne.CurrentApp()
		if app == nil {
			return errors.New("no clipboard available")
		}
		app.Clipboard().SetContent(text)
		return nil
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
