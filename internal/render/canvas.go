package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Canvas is an in-memory raster surface of fixed size. It is owned by the
// compositor that created it and is not safe for concurrent use.
type Canvas struct {
	dc     *gg.Context
	width  int
	height int
}

var _ Drawer = (*Canvas)(nil)

// NewCanvas allocates a width x height canvas filled with background.
func NewCanvas(width, height int, background color.Color) *Canvas {
	c := &Canvas{dc: gg.NewContext(width, height), width: width, height: height}
	c.FillBackground(background)
	return c
}

func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

func (c *Canvas) FillBackground(bg color.Color) {
	c.dc.SetColor(bg)
	c.dc.Clear()
}

func (c *Canvas) MeasureText(text string, f *Font) TextMetrics {
	return measureText(text, faceOf(f))
}

func (c *Canvas) DrawText(text string, x, y int, f *Font, fg color.Color) TextMetrics {
	face := faceOf(f)
	metrics := measureText(text, face)
	c.dc.SetFontFace(face)
	c.dc.SetColor(fg)
	c.dc.DrawString(text, float64(x), float64(y+metrics.Ascent))
	return metrics
}

func (c *Canvas) FillRect(rect image.Rectangle, fill color.Color) {
	c.dc.SetColor(fill)
	c.dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()))
	c.dc.Fill()
}

func (c *Canvas) FillRoundedRect(rect image.Rectangle, radius int, fill color.Color) {
	c.dc.SetColor(fill)
	c.dc.DrawRoundedRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), float64(radius))
	c.dc.Fill()
}

func (c *Canvas) FillEllipse(rect image.Rectangle, fill color.Color) {
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2
	c.dc.SetColor(fill)
	c.dc.DrawEllipse(float64(rect.Min.X)+rx, float64(rect.Min.Y)+ry, rx, ry)
	c.dc.Fill()
}

func (c *Canvas) DrawLine(from, to image.Point, width int, stroke color.Color) {
	c.dc.SetColor(stroke)
	c.dc.SetLineWidth(float64(width))
	c.dc.SetLineCap(gg.LineCapButt)
	c.dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	c.dc.Stroke()
}

func (c *Canvas) FillPolygon(points []image.Point, fill color.Color) {
	if len(points) < 3 {
		return
	}
	c.dc.SetColor(fill)
	c.dc.MoveTo(float64(points[0].X), float64(points[0].Y))
	for _, p := range points[1:] {
		c.dc.LineTo(float64(p.X), float64(p.Y))
	}
	c.dc.ClosePath()
	c.dc.Fill()
}

func (c *Canvas) DrawImage(img image.Image, x, y int) {
	if img == nil {
		return
	}
	c.dc.DrawImage(img, x, y)
}

func faceOf(f *Font) font.Face {
	if f == nil || f.Face == nil {
		return basicfont.Face7x13
	}
	return f.Face
}

func measureText(text string, face font.Face) TextMetrics {
	bounds, advance := font.BoundString(face, text)
	metrics := face.Metrics()
	return TextMetrics{
		Width:      advance.Ceil(),
		Height:     (bounds.Max.Y - bounds.Min.Y).Ceil(),
		Ascent:     metrics.Ascent.Ceil(),
		Descent:    metrics.Descent.Ceil(),
		LineHeight: metrics.Height.Ceil(),
	}
}
