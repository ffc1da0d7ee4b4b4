// Package rendertest provides a Drawer that records every call so layout
// code can be checked without inspecting pixels.
package rendertest

import (
	"image"
	"image/color"

	"github.com/hybridbuilder/covergen/internal/render"
)

// Op names recorded by Recorder.
const (
	OpBackground  = "background"
	OpText        = "text"
	OpRect        = "rect"
	OpRoundedRect = "rounded-rect"
	OpEllipse     = "ellipse"
	OpLine        = "line"
	OpPolygon     = "polygon"
	OpImage       = "image"
)

// Call is one recorded drawing operation. Only the fields relevant to Op are set.
type Call struct {
	Op      string
	Text    string
	Font    *render.Font
	Metrics render.TextMetrics
	Rect    image.Rectangle
	Radius  int
	Points  []image.Point
	Width   int
	Color   color.Color
}

// Recorder forwards to a real canvas and keeps a log of the calls.
type Recorder struct {
	Canvas *render.Canvas
	Calls  []Call
}

var _ render.Drawer = (*Recorder)(nil)

func New(width, height int) *Recorder {
	return &Recorder{Canvas: render.NewCanvas(width, height, render.BackgroundDark)}
}

func (r *Recorder) Size() (int, int) { return r.Canvas.Size() }

func (r *Recorder) FillBackground(c color.Color) {
	r.Canvas.FillBackground(c)
	r.Calls = append(r.Calls, Call{Op: OpBackground, Color: c})
}

func (r *Recorder) MeasureText(text string, f *render.Font) render.TextMetrics {
	return r.Canvas.MeasureText(text, f)
}

func (r *Recorder) DrawText(text string, x, y int, f *render.Font, c color.Color) render.TextMetrics {
	m := r.Canvas.DrawText(text, x, y, f, c)
	r.Calls = append(r.Calls, Call{
		Op:      OpText,
		Text:    text,
		Font:    f,
		Metrics: m,
		Points:  []image.Point{{X: x, Y: y}},
		Color:   c,
	})
	return m
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.Color) {
	r.Canvas.FillRect(rect, c)
	r.Calls = append(r.Calls, Call{Op: OpRect, Rect: rect, Color: c})
}

func (r *Recorder) FillRoundedRect(rect image.Rectangle, radius int, c color.Color) {
	r.Canvas.FillRoundedRect(rect, radius, c)
	r.Calls = append(r.Calls, Call{Op: OpRoundedRect, Rect: rect, Radius: radius, Color: c})
}

func (r *Recorder) FillEllipse(rect image.Rectangle, c color.Color) {
	r.Canvas.FillEllipse(rect, c)
	r.Calls = append(r.Calls, Call{Op: OpEllipse, Rect: rect, Color: c})
}

func (r *Recorder) DrawLine(from, to image.Point, width int, c color.Color) {
	r.Canvas.DrawLine(from, to, width, c)
	r.Calls = append(r.Calls, Call{Op: OpLine, Points: []image.Point{from, to}, Width: width, Color: c})
}

func (r *Recorder) FillPolygon(points []image.Point, c color.Color) {
	r.Canvas.FillPolygon(points, c)
	cp := append([]image.Point(nil), points...)
	r.Calls = append(r.Calls, Call{Op: OpPolygon, Points: cp, Color: c})
}

func (r *Recorder) DrawImage(img image.Image, x, y int) {
	r.Canvas.DrawImage(img, x, y)
	var rect image.Rectangle
	if img != nil {
		rect = img.Bounds().Sub(img.Bounds().Min).Add(image.Pt(x, y))
	}
	r.Calls = append(r.Calls, Call{Op: OpImage, Rect: rect, Points: []image.Point{{X: x, Y: y}}})
}

// Filter returns the calls with the given op, in order.
func (r *Recorder) Filter(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Text returns the first text call drawing s, and whether one was found.
func (r *Recorder) Text(s string) (Call, bool) {
	for _, c := range r.Calls {
		if c.Op == OpText && c.Text == s {
			return c, true
		}
	}
	return Call{}, false
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() { r.Calls = nil }

// Fonts is a FontSource that never touches the filesystem, so tests measure
// against the same built-in faces on every machine.
func Fonts() *render.Resolver {
	return &render.Resolver{}
}
