package banner

import (
	"image"

	"github.com/hybridbuilder/covergen/internal/render"
	"github.com/hybridbuilder/covergen/internal/render/layout"
)

// Layout building blocks. Every value is an absolute pixel position or size.

// Text is a string drawn with its top-left corner at X,Y.
type Text struct {
	Text  string     `toml:"text"`
	X     int        `toml:"x"`
	Y     int        `toml:"y"`
	Size  int        `toml:"size"`
	Bold  bool       `toml:"bold,omitempty"`
	Color render.RGB `toml:"color"`
}

// CenteredText is a string centered horizontally on the canvas at Y.
type CenteredText struct {
	Text  string     `toml:"text"`
	Y     int        `toml:"y"`
	Size  int        `toml:"size"`
	Bold  bool       `toml:"bold,omitempty"`
	Color render.RGB `toml:"color"`
}

// Box is a rectangle given by two corners.
type Box struct {
	X0 int `toml:"x0"`
	Y0 int `toml:"y0"`
	X1 int `toml:"x1"`
	Y1 int `toml:"y1"`
}

func (b Box) Rect() image.Rectangle { return layout.Corners(b.X0, b.Y0, b.X1, b.Y1) }

// Bar is a solid accent strip.
type Bar struct {
	Box   Box        `toml:"box"`
	Color render.RGB `toml:"color"`
}

// PillarRow places the four pillar blocks.
type PillarRow struct {
	X     int     `toml:"x"`
	Y     int     `toml:"y"`
	Scale float64 `toml:"scale"`
}

// Snippet places the code panel.
type Snippet struct {
	X      int `toml:"x"`
	Y      int `toml:"y"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// QRCode places the optional QR stamp.
type QRCode struct {
	Payload string `toml:"payload"`
	X       int    `toml:"x"`
	Y       int    `toml:"y"`
	Size    int    `toml:"size"`
}

func drawText(d render.Drawer, fonts render.FontSource, t Text) render.TextMetrics {
	return d.DrawText(t.Text, t.X, t.Y, fonts.Get(t.Size, t.Bold), t.Color)
}

// drawCentered centers t on the canvas width and returns the x it used.
func drawCentered(d render.Drawer, fonts render.FontSource, t CenteredText) int {
	f := fonts.Get(t.Size, t.Bold)
	width, _ := d.Size()
	m := d.MeasureText(t.Text, f)
	x := layout.CenterOffset(width, m.Width)
	d.DrawText(t.Text, x, t.Y, f, t.Color)
	return x
}

func drawBars(d render.Drawer, bars []Bar) {
	for _, bar := range bars {
		d.FillRect(bar.Box.Rect(), bar.Color)
	}
}
