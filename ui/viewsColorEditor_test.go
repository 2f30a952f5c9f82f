package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorized/editor"
	"colorized/models"
)

func newTestWindow(t *testing.T) fyne.Window {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)
	return w
}

func newTestEditor(t *testing.T, initial models.Color) (*ColorEditorScreen, *[]models.Color, *int) {
	t.Helper()
	w := newTestWindow(t)

	confirmed := []models.Color{}
	closed := 0
	e := NewColorEditorScreen(w, initial,
		func(c models.Color) { confirmed = append(confirmed, c) },
		func() { closed++ },
	)
	w.SetContent(e.Content)
	return e, &confirmed, &closed
}

func assertRow(t *testing.T, e *ColorEditorScreen, ch models.Channel, text string, value float64) {
	t.Helper()
	row := e.rows[ch]
	assert.Equal(t, text, row.label.Text, "%s label", ch)
	assert.Equal(t, text, row.entry.Text, "%s entry", ch)
	assert.InDelta(t, value, row.slider.Value, 0.005, "%s slider", ch)
}

func TestEditorSeedsWidgetsFromInitialColor(t *testing.T) {
	e, _, _ := newTestEditor(t, models.NewColor(0.2, 0.5, 0.8))

	assertRow(t, e, models.Red, "0.20", 0.2)
	assertRow(t, e, models.Green, "0.50", 0.5)
	assertRow(t, e, models.Blue, "0.80", 0.8)
	assert.Equal(t, models.NewColor(0.2, 0.5, 0.8).NRGBA(), e.Preview.FillColor)
}

func TestEditorSliderDragSyncsLabelAndField(t *testing.T) {
	e, _, _ := newTestEditor(t, models.NewColor(0, 0, 0))

	// a user drag reaches the screen through the slider's OnChanged
	e.rows[models.Red].slider.OnChanged(0.33)

	assertRow(t, e, models.Red, "0.33", 0.33)
	assert.Equal(t, models.NewColor(0.33, 0, 0).NRGBA(), e.Preview.FillColor)
	assert.Equal(t, 0.33, e.Session().Channel(models.Red).Value)
}

func TestEditorGreenTextScenario(t *testing.T) {
	e, confirmed, closed := newTestEditor(t, models.NewColor(0.2, 0.5, 0.8))

	e.rows[models.Green].entry.SetText("0.75")
	e.rows[models.Green].entry.OnSubmitted("0.75")

	assertRow(t, e, models.Green, "0.75", 0.75)
	assert.Equal(t, models.NewColor(0.2, 0.75, 0.8).NRGBA(), e.Preview.FillColor)
	assert.Nil(t, e.alert)

	test.Tap(e.DoneButton)

	require.Len(t, *confirmed, 1)
	assert.Equal(t, models.NewColor(0.2, 0.75, 0.8), (*confirmed)[0])
	assert.Equal(t, 1, *closed)
	assert.Equal(t, editor.Closed, e.Session().State())

	// Done after close does nothing
	e.Confirm()
	assert.Len(t, *confirmed, 1)
	assert.Equal(t, 1, *closed)
}

func TestEditorTextIsNormalized(t *testing.T) {
	e, _, _ := newTestEditor(t, models.NewColor(0, 0, 0))

	e.TextCommitted(models.Blue, ".5")
	assertRow(t, e, models.Blue, "0.50", 0.5)
}

func TestEditorInvalidTextAlertsAndReverts(t *testing.T) {
	e, confirmed, _ := newTestEditor(t, models.NewColor(0.2, 0.5, 0.8))
	entry := e.rows[models.Red].entry

	entry.SetText("2.5")
	e.TextCommitted(models.Red, "2.5")

	require.NotNil(t, e.alert, "an alert should be showing")
	assert.NotNil(t, e.window.Canvas().Overlays().Top())
	assert.Equal(t, "2.5", entry.Text, "text stays until the alert is dismissed")
	assert.Equal(t, 0.2, e.Session().Channel(models.Red).Value)

	e.alert.Hide()

	assert.Nil(t, e.alert)
	assertRow(t, e, models.Red, "0.20", 0.2)
	assert.Equal(t, entry, e.window.Canvas().Focused())
	assert.Equal(t, models.NewColor(0.2, 0.5, 0.8).NRGBA(), e.Preview.FillColor)
	assert.Empty(t, *confirmed)
}

func TestEditorRejectsBoundaryInputs(t *testing.T) {
	for _, raw := range []string{"1.01", "12345", "abc"} {
		t.Run(raw, func(t *testing.T) {
			e, _, _ := newTestEditor(t, models.NewColor(0.5, 0.5, 0.5))
			e.TextCommitted(models.Blue, raw)
			require.NotNil(t, e.alert)
			e.alert.Hide()
			assertRow(t, e, models.Blue, "0.50", 0.5)
		})
	}

	e, _, _ := newTestEditor(t, models.NewColor(0.5, 0.5, 0.5))
	e.TextCommitted(models.Blue, "1.00")
	assert.Nil(t, e.alert)
	assertRow(t, e, models.Blue, "1.00", 1)
}

func TestEditorCommitsTextOnFocusLoss(t *testing.T) {
	e, _, _ := newTestEditor(t, models.NewColor(0.2, 0.5, 0.8))
	entry := e.rows[models.Blue].entry

	e.window.Canvas().Focus(entry)
	entry.SetText("0.4")
	e.window.Canvas().Unfocus()

	assertRow(t, e, models.Blue, "0.40", 0.4)
	assert.Equal(t, 0.4, e.Session().Channel(models.Blue).Value)
	assert.Equal(t, models.NewColor(0.2, 0.5, 0.4).NRGBA(), e.Preview.FillColor)
}

func TestEditorFocusLossWithoutEditsIsQuiet(t *testing.T) {
	e, _, _ := newTestEditor(t, models.NewColor(0.2, 0.5, 0.8))
	entry := e.rows[models.Red].entry

	e.window.Canvas().Focus(entry)
	e.window.Canvas().Unfocus()

	assert.Nil(t, e.alert)
	assertRow(t, e, models.Red, "0.20", 0.2)
}

func TestEditorDoneCommitsTypedText(t *testing.T) {
	e, confirmed, closed := newTestEditor(t, models.NewColor(0.2, 0.5, 0.8))

	// typed but never submitted
	e.rows[models.Green].entry.SetText("0.3")
	test.Tap(e.DoneButton)

	require.Len(t, *confirmed, 1)
	assert.Equal(t, models.NewColor(0.2, 0.3, 0.8), (*confirmed)[0])
	assert.Equal(t, 1, *closed)
}

func TestEditorDoneHeldBackByInvalidTypedText(t *testing.T) {
	e, confirmed, closed := newTestEditor(t, models.NewColor(0.2, 0.5, 0.8))

	e.rows[models.Red].entry.SetText("abc")
	test.Tap(e.DoneButton)

	require.NotNil(t, e.alert)
	assert.Empty(t, *confirmed)
	assert.Equal(t, 0, *closed)
	assert.Equal(t, editor.Editing, e.Session().State())

	// a second Done while the alert is up changes nothing
	e.Confirm()
	assert.Empty(t, *confirmed)

	e.alert.Hide()
	assertRow(t, e, models.Red, "0.20", 0.2)

	test.Tap(e.DoneButton)
	require.Len(t, *confirmed, 1)
	assert.Equal(t, models.NewColor(0.2, 0.5, 0.8), (*confirmed)[0])
}
