package fonts

import (
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
)

// pxToPt converts a font size in output pixels to the point size expected
// by canvas. Output is rasterized at one pixel per canvas millimetre.
const pxToPt = 72.0 / 25.4

// Metrics are vertical font metrics in pixels for one font size. Descent
// is positive, measured downwards from the baseline.
type Metrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// Face is a loaded font variant. A Face is immutable and shared by every
// run that uses it; sizes are supplied per call.
type Face interface {
	Name() string
	TextWidth(text string, size float64) float64
	Metrics(size float64) Metrics
}

// CanvasFace is implemented by faces that can be drawn with canvas.
type CanvasFace interface {
	Face
	FontFace(size float64, col color.Color) *canvas.FontFace
}

type familyFace struct {
	name   string
	family *canvas.FontFamily
	style  canvas.FontStyle
}

var _ CanvasFace = (*familyFace)(nil)

func newFamilyFace(name string, src Source, style canvas.FontStyle) (*familyFace, error) {
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(src.Data, src.Index, style); err != nil {
		return nil, err
	}
	return &familyFace{name: name, family: family, style: style}, nil
}

func (f *familyFace) Name() string { return f.name }

func (f *familyFace) FontFace(size float64, col color.Color) *canvas.FontFace {
	return f.family.Face(size*pxToPt, col, f.style, canvas.FontNormal)
}

func (f *familyFace) TextWidth(text string, size float64) float64 {
	return f.FontFace(size, canvas.Black).TextWidth(text)
}

func (f *familyFace) Metrics(size float64) Metrics {
	m := f.FontFace(size, canvas.Black).Metrics()
	return Metrics{
		Ascent:     m.Ascent,
		Descent:    math.Abs(m.Descent),
		LineHeight: m.LineHeight,
	}
}

// canvasStyle maps a weight/style pair onto the canvas style flags.
func canvasStyle(w Weight, s Style) canvas.FontStyle {
	var style canvas.FontStyle
	switch w {
	case WeightLight:
		style = canvas.FontLight
	case WeightBold:
		style = canvas.FontBold
	default:
		style = canvas.FontRegular
	}
	if s == StyleItalic {
		style |= canvas.FontItalic
	}
	return style
}
