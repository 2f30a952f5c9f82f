package palette

import (
	"bytes"
	"errors"
	"image"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"colorized/models"
)

// namedColor pairs an SVG 1.1 color keyword with its value.
type namedColor struct {
	name  string
	color colorful.Color
}

// names is built once from colornames.Map, sorted so that ties between
// identical colors ("aqua"/"cyan") always resolve to the same keyword.
var names = func() []namedColor {
	list := make([]namedColor, 0, len(colornames.Map))
	for name, rgba := range colornames.Map {
		c, _ := colorful.MakeColor(rgba)
		list = append(list, namedColor{name: name, color: c})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].name < list[j].name })
	return list
}()

// NearestName returns the SVG color keyword closest to c, measured as
// straight RGB distance.
func NearestName(c models.Color) string {
	target := c.Colorful().Clamped()

	best := ""
	bestDistance := 0.0
	for _, n := range names {
		d := target.DistanceRgb(n.color)
		if best == "" || d < bestDistance {
			best = n.name
			bestDistance = d
		}
	}
	return best
}

// Swatch renders a solid, opaque w×h image of c.
func Swatch(c models.Color, w, h int) image.Image {
	return imaging.New(w, h, c.NRGBA())
}

// SwatchPNG renders a size×size swatch and encodes it as PNG.
// The window icon is built from it.
func SwatchPNG(c models.Color, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New("swatch size must be positive")
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, Swatch(c, size, size), imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
