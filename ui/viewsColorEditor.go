package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"colorized/editor"
	"colorized/models"
	"colorized/validation"
)

// channelRow groups the three widgets that display one channel.
// None of them is ever read back as the channel value; they are
// repainted from the editor session.
type channelRow struct {
	channel models.Channel
	slider  *widget.Slider
	label   *widget.Label
	entry   *channelEntry
}

// channelEntry is a text field that also reports when it loses focus,
// so typed text is committed even if the user never presses Enter.
type channelEntry struct {
	widget.Entry

	onFocusLost func()
}

func newChannelEntry() *channelEntry {
	entry := &channelEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// FocusLost is called by fyne when the field loses keyboard focus.
func (c *channelEntry) FocusLost() {
	c.Entry.FocusLost()
	if c.onFocusLost != nil {
		c.onFocusLost()
	}
}

// ColorEditorScreen represents the settings screen.
// The user adjusts red, green and blue with sliders or by typing into the
// paired text fields, watches the preview, and taps Done to send the color
// back to the screen that opened it.
type ColorEditorScreen struct {
	// Content is the complete UI of the screen, ready to be set on a window
	Content fyne.CanvasObject

	// Preview shows the color composed from the current channel values
	Preview *canvas.Rectangle

	// DoneButton confirms the edit
	DoneButton *widget.Button

	window  fyne.Window
	session *editor.Session
	rows    map[models.Channel]*channelRow

	// alert is the invalid-input dialog while it is showing
	alert dialog.Dialog

	// syncing is set while widgets are repainted from the session so the
	// slider's OnChanged does not feed the value straight back in
	syncing bool
}

// NewColorEditorScreen creates the editor seeded with initial.
//
// Parameters:
//   - window: The window used for dialogs and focus
//   - initial: The color the editor starts from
//   - onConfirm: Called once with the final color when Done is tapped
//   - onClose: Called after onConfirm so the parent can take the window back
//
// Returns:
//   - *ColorEditorScreen: The screen with every widget synchronised to initial
func NewColorEditorScreen(window fyne.Window, initial models.Color, onConfirm func(models.Color), onClose func()) *ColorEditorScreen {
	e := &ColorEditorScreen{
		window:  window,
		session: editor.NewSession(initial, onConfirm),
		rows:    make(map[models.Channel]*channelRow, len(models.AllChannels)),
	}

	e.Preview = NewPreviewSurface(initial)

	sliders := container.NewVBox()
	for _, ch := range models.AllChannels {
		row := e.newChannelRow(ch)
		e.rows[ch] = row
		sliders.Add(row.layout())
	}

	e.DoneButton = widget.NewButton("Done", func() {
		e.Confirm()
	})
	e.DoneButton.Importance = widget.HighImportance

	// Render targets are registered before the first Sync so every widget
	// starts out matching the initial color
	e.session.OnChannelChanged(e.renderChannel)
	e.session.OnPreviewChanged(func(c models.Color) {
		SetPreviewColor(e.Preview, c)
	})
	e.session.OnClosed(func() {
		log.Println("[UI] Color editor closed")
		if onClose != nil {
			onClose()
		}
	})
	e.session.Sync()

	e.Content = container.NewBorder(
		container.NewPadded(e.Preview),
		container.NewPadded(container.NewHBox(layout.NewSpacer(), e.DoneButton)),
		nil,
		nil,
		container.NewVScroll(container.NewPadded(sliders)),
	)

	return e
}

// newChannelRow builds the slider, label and text field for one channel
// and wires them to the session.
func (e *ColorEditorScreen) newChannelRow(ch models.Channel) *channelRow {
	row := &channelRow{channel: ch}

	row.slider = widget.NewSlider(0, 1)
	row.slider.Step = 0.01
	row.slider.OnChanged = func(v float64) {
		if e.syncing {
			return
		}
		e.SliderChanged(ch, v)
	}

	row.label = NewValueLabel("")

	row.entry = newChannelEntry()
	row.entry.OnSubmitted = func(text string) {
		e.TextCommitted(ch, text)
	}
	row.entry.onFocusLost = func() {
		e.commitPending(ch)
	}

	return row
}

// layout arranges a row as "Red: 0.50 [-----slider-----] [0.50]".
func (r *channelRow) layout() fyne.CanvasObject {
	name := NewBoldLabel(channelTitle(r.channel) + ":")
	entry := container.NewGridWrap(fyne.NewSize(ChannelEntryWidth, r.entry.MinSize().Height), r.entry)

	return container.NewBorder(
		nil,
		nil,
		container.NewHBox(name, r.label),
		entry,
		r.slider,
	)
}

// Session exposes the editing session behind the screen.
func (e *ColorEditorScreen) Session() *editor.Session {
	return e.session
}

// SliderChanged applies a slider movement to the channel.
func (e *ColorEditorScreen) SliderChanged(ch models.Channel, value float64) {
	if err := e.session.SetSlider(ch, value); err != nil {
		log.Printf("[UI] Ignoring %s slider change: %v", ch, err)
	}
}

// TextCommitted applies text submitted from a channel field and reports
// whether it was accepted. Invalid text raises an alert; when the alert is
// dismissed the field is reverted to the last accepted value and focused again.
func (e *ColorEditorScreen) TextCommitted(ch models.Channel, raw string) bool {
	err := e.session.CommitText(ch, raw)
	if err == nil {
		return true
	}

	if _, ok := validation.IsInvalidChannelInput(err); !ok {
		log.Printf("[UI] Ignoring %s text commit: %v", ch, err)
		return false
	}

	e.showInvalidInputAlert(ch)
	return false
}

// commitPending commits text left in a field without Enter being pressed.
// A field showing the channel's current text, or one whose invalid input is
// already being reported, counts as committed.
func (e *ColorEditorScreen) commitPending(ch models.Channel) bool {
	row := e.rows[ch]
	if e.alert != nil {
		return false
	}
	if e.session.State() == editor.Closed || row.entry.Text == e.session.Channel(ch).Text() {
		return true
	}
	return e.TextCommitted(ch, row.entry.Text)
}

// Confirm commits any pending field text, then sends the composed color to
// the confirmation callback and closes the screen. Pending text that fails
// validation raises the usual alert and the screen stays open.
func (e *ColorEditorScreen) Confirm() {
	for _, ch := range models.AllChannels {
		if !e.commitPending(ch) {
			log.Printf("[UI] Done held back by pending %s input", ch)
			return
		}
	}

	if _, err := e.session.Confirm(); err != nil {
		log.Printf("[UI] Done ignored: %v", err)
	}
}

func (e *ColorEditorScreen) showInvalidInputAlert(ch models.Channel) {
	row := e.rows[ch]

	e.alert = dialog.NewInformation(
		"Wrong format!",
		"Please enter a value from 0.00 to 1.00",
		e.window,
	)
	e.alert.SetOnClosed(func() {
		e.alert = nil
		if _, err := e.session.Revert(ch); err != nil {
			return
		}
		e.window.Canvas().Focus(row.entry)
	})
	e.alert.Show()
}

// renderChannel repaints one row from the session's value.
func (e *ColorEditorScreen) renderChannel(c editor.ChannelEditor) {
	row, ok := e.rows[c.Channel]
	if !ok {
		return
	}

	e.syncing = true
	defer func() { e.syncing = false }()

	text := c.Text()
	row.slider.SetValue(c.Value)
	row.label.SetText(text)
	row.entry.SetText(text)
}

func channelTitle(ch models.Channel) string {
	switch ch {
	case models.Red:
		return "Red"
	case models.Green:
		return "Green"
	case models.Blue:
		return "Blue"
	default:
		return ch.String()
	}
}
