package palette

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorized/models"
)

func TestNearestNameExactMatches(t *testing.T) {
	assert.Equal(t, "red", NearestName(models.NewColor(1, 0, 0)))
	assert.Equal(t, "black", NearestName(models.NewColor(0, 0, 0)))
	assert.Equal(t, "white", NearestName(models.NewColor(1, 1, 1)))
	// aqua and cyan are identical; the alphabetically first keyword wins
	assert.Equal(t, "aqua", NearestName(models.NewColor(0, 1, 1)))
}

func TestNearestNameCloseColor(t *testing.T) {
	assert.Equal(t, "red", NearestName(models.NewColor(0.98, 0.01, 0.02)))
}

func TestSwatch(t *testing.T) {
	c := models.NewColor(0.2, 0.5, 0.8)
	img := Swatch(c, 4, 3)

	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 3, img.Bounds().Dy())
	assert.Equal(t, c.NRGBA(), color.NRGBAModel.Convert(img.At(2, 1)))
}

func TestSwatchPNG(t *testing.T) {
	c := models.NewColor(1, 0, 0)
	data, err := SwatchPNG(c, 16)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, c.NRGBA(), color.NRGBAModel.Convert(img.At(0, 0)))

	_, err = SwatchPNG(c, 0)
	assert.Error(t, err)
}
