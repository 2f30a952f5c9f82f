package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorized/models"
)

func TestDisplayShowsInitialColor(t *testing.T) {
	w := newTestWindow(t)
	c := models.NewColor(1, 0, 0)

	d := BuildMainLayout(w, c)

	assert.Equal(t, c, d.Color())
	assert.Equal(t, c.NRGBA(), d.Background.FillColor)
	assert.Equal(t, "#ff0000", d.HexText.Text)
	// the headless test theme only ships regular, bold, italic and monospace faces
	assert.Equal(t, fyne.TextStyle{Monospace: true}, d.HexText.TextStyle)
	assert.NotZero(t, d.HexText.MinSize().Width)
	assert.Equal(t, "red", d.NameLabel.Text)
	assert.Equal(t, d.Content, w.Content())
}

func TestDisplayOpenEditorAndConfirm(t *testing.T) {
	w := newTestWindow(t)
	d := BuildMainLayout(w, models.NewColor(0.2, 0.5, 0.8))

	changed := []models.Color{}
	d.RegisterColorChangedCallback(func(c models.Color) { changed = append(changed, c) })

	test.Tap(d.SettingsButton)

	e := d.Editor()
	require.NotNil(t, e)
	assert.Equal(t, e.Content, w.Content())
	assert.Same(t, e, d.OpenEditor(), "a second open returns the same editor")
	assertRow(t, e, models.Green, "0.50", 0.5)

	e.TextCommitted(models.Green, "0.75")
	assert.Equal(t, models.NewColor(0.2, 0.5, 0.8), d.Color(), "display waits for Done")

	test.Tap(e.DoneButton)

	want := models.NewColor(0.2, 0.75, 0.8)
	assert.Equal(t, want, d.Color())
	assert.Equal(t, want.NRGBA(), d.Background.FillColor)
	assert.Equal(t, want.Hex(), d.HexText.Text)
	assert.Equal(t, []models.Color{want}, changed)
	assert.Nil(t, d.Editor())
	assert.Equal(t, d.Content, w.Content())
}

func TestDisplayRoundTripWithoutEdits(t *testing.T) {
	w := newTestWindow(t)
	start := models.NewColor(0.123, 0.456, 0.789)
	d := BuildMainLayout(w, start)

	d.OpenEditor().Confirm()

	assert.InDelta(t, start.Red, d.Color().Red, 0.005)
	assert.InDelta(t, start.Green, d.Color().Green, 0.005)
	assert.InDelta(t, start.Blue, d.Color().Blue, 0.005)
}

func TestDisplayRejectedEditLeavesColor(t *testing.T) {
	w := newTestWindow(t)
	start := models.NewColor(0.2, 0.5, 0.8)
	d := BuildMainLayout(w, start)

	e := d.OpenEditor()
	e.TextCommitted(models.Red, "2.5")
	require.NotNil(t, e.alert)
	e.alert.Hide()

	assert.Equal(t, "0.20", e.rows[models.Red].entry.Text)
	assert.Equal(t, start, d.Color())
}

func TestSwatchResource(t *testing.T) {
	res, err := SwatchResource(models.NewColor(1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "colorized-ff0000.png", res.Name())
	assert.NotEmpty(t, res.Content())
}

func TestFilterLines(t *testing.T) {
	lines := []string{"[UI] Color editor opened", "[EDITOR] rejected red input", "[UI] Copied #ff0000"}

	assert.Equal(t, "[UI] Color editor opened\n[UI] Copied #ff0000\n\n[Found 2 matches]", FilterLines(lines, "[ui]"))
	assert.Equal(t, "No results found for: blue", FilterLines(lines, "blue"))
}

func TestAboutContentShowsCurrentColor(t *testing.T) {
	test.NewTempApp(t)
	c := models.NewColor(1, 0, 0)

	content := newAboutContent(c)
	w := test.NewWindow(content)
	t.Cleanup(w.Close)

	var texts []string
	for _, obj := range test.LaidOutObjects(content) {
		if label, ok := obj.(*widget.Label); ok {
			texts = append(texts, label.Text)
		}
	}
	require.NotEmpty(t, texts)
	assert.Contains(t, texts[0], "#ff0000")
	assert.Contains(t, texts[0], "red")
	assert.Contains(t, texts[0], "R 1.00  G 0.00  B 0.00")
}
