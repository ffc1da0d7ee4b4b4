package render

import (
	"image"
	"image/color"
)

// Drawer is the surface abstraction compositors and primitives draw onto.
// Text measurement is separate from drawing so layout math can run without
// rasterizing anything.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillBackground(c color.Color)

	// MeasureText reports the metrics text would have if drawn with f.
	MeasureText(text string, f *Font) TextMetrics
	// DrawText draws text with its top-left corner (ascender line) at x,y
	// and returns the same metrics MeasureText would.
	DrawText(text string, x, y int, f *Font, c color.Color) TextMetrics

	FillRect(rect image.Rectangle, c color.Color)
	FillRoundedRect(rect image.Rectangle, radius int, c color.Color)
	FillEllipse(rect image.Rectangle, c color.Color)
	DrawLine(from, to image.Point, width int, c color.Color)
	FillPolygon(points []image.Point, c color.Color)
	DrawImage(img image.Image, x, y int)
}

// FontSource hands out font handles. *Resolver implements it.
type FontSource interface {
	Get(size int, bold bool) *Font
}

// TextMetrics describes rendered text. Width is the advance width, Height the
// ink height. Both are whole pixels.
type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

// Right returns the x coordinate just past text drawn at x.
func (m TextMetrics) Right(x int) int { return x + m.Width }
