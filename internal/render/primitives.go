package render

import (
	"image"
	"image/color"

	"github.com/hybridbuilder/covergen/internal/render/layout"
)

// Code snippet panel geometry.
const (
	snippetRadius     = 8
	snippetDotOffsetY = 12
	snippetDotInset   = 12
	snippetDotStep    = 18
	snippetDotSize    = 8
	snippetTextInset  = 15
	snippetTextTop    = 35
	snippetLineHeight = 20
	snippetFontSize   = 14
)

// Pillar block base geometry, multiplied by the scale argument.
const (
	pillarBaseWidth    = 80
	pillarBaseHeight   = 40
	pillarBaseGap      = 10
	pillarBaseFontSize = 11
	pillarRadius       = 4
	pillarLabelLift    = 2
)

// Arrow geometry.
const (
	ArrowLineWidth = 3
	ArrowHeadSize  = 8
)

// CodeSegment is one run of the snippet text. A nil Color is a line break.
type CodeSegment struct {
	Text  string
	Color color.Color
}

// SnippetDots returns the window button colors of the code panel, left to right.
func SnippetDots() [3]RGB { return [3]RGB{DotRed, DotYellow, DotGreen} }

// SnippetCode returns the text drawn inside the code panel.
func SnippetCode() []CodeSegment {
	return []CodeSegment{
		{"import ", Primary},
		{"learning_pillars", TextLight},
		{"\n", nil},
		{"skills", Accent},
		{" = extract(", TextLight},
		{"pdf", Primary},
		{")", TextLight},
	}
}

// Pillar is one labeled block of the pillar row.
type Pillar struct {
	Label string
	Color RGB
}

// Pillars returns the four pillars in drawing order.
func Pillars() [4]Pillar {
	return [4]Pillar{
		{"Structure", Primary},
		{"Content", Accent},
		{"Practice", Purple},
		{"UX", Amber},
	}
}

// DrawCodeSnippet draws a dark editor-window mockup at the given bounds.
func DrawCodeSnippet(d Drawer, fonts FontSource, x, y, width, height int) {
	d.FillRoundedRect(layout.Box(x, y, width, height), snippetRadius, CodeBackground)

	dotY := y + snippetDotOffsetY
	for i, dot := range SnippetDots() {
		left := x + snippetDotInset + i*snippetDotStep
		d.FillEllipse(image.Rect(left, dotY-snippetDotSize/2, left+snippetDotSize, dotY+snippetDotSize/2), dot)
	}

	codeFont := fonts.Get(snippetFontSize, false)
	lineY := y + snippetTextTop
	cursorX := x + snippetTextInset
	for _, seg := range SnippetCode() {
		if seg.Text == "\n" {
			lineY += snippetLineHeight
			cursorX = x + snippetTextInset
			continue
		}
		if seg.Color == nil {
			continue
		}
		m := d.DrawText(seg.Text, cursorX, lineY, codeFont, seg.Color)
		cursorX = m.Right(cursorX)
	}
}

// PillarGeometry is the scaled size of one pillar block row.
type PillarGeometry struct {
	Width, Height, Gap, FontSize int
}

// PillarGeometryFor scales the base block size. Values truncate toward zero.
func PillarGeometryFor(scale float64) PillarGeometry {
	return PillarGeometry{
		Width:    layout.Scale(pillarBaseWidth, scale),
		Height:   layout.Scale(pillarBaseHeight, scale),
		Gap:      layout.Scale(pillarBaseGap, scale),
		FontSize: layout.Scale(pillarBaseFontSize, scale),
	}
}

// RowWidth is the full width of the four-block row.
func (g PillarGeometry) RowWidth() int { return layout.RowWidth(len(Pillars()), g.Width, g.Gap) }

// DrawPillarBlocks draws the four pillar blocks in one row starting at x,y and
// returns their rectangles in drawing order.
func DrawPillarBlocks(d Drawer, fonts FontSource, x, y int, scale float64) []image.Rectangle {
	geo := PillarGeometryFor(scale)
	labelFont := fonts.Get(geo.FontSize, false)
	pillars := Pillars()
	starts := layout.RowStarts(x, len(pillars), geo.Width, geo.Gap)

	blocks := make([]image.Rectangle, 0, len(pillars))
	for i, p := range pillars {
		block := layout.Box(starts[i], y, geo.Width, geo.Height)
		d.FillRoundedRect(block, pillarRadius, p.Color)

		m := d.MeasureText(p.Label, labelFont)
		textX := starts[i] + layout.FloorDiv(geo.Width-m.Width, 2)
		textY := y + layout.FloorDiv(geo.Height-m.Height, 2) - pillarLabelLift
		d.DrawText(p.Label, textX, textY, labelFont, TextWhite)
		blocks = append(blocks, block)
	}
	return blocks
}

// ArrowHead returns the head triangle for an arrow ending at x2,y2, apex first.
// The base sits ArrowHeadSize to the left of the tip and is spread
// vertically whatever the line angle, so only near-horizontal arrows look right.
func ArrowHead(x2, y2 int) [3]image.Point {
	half := ArrowHeadSize / 2
	return [3]image.Point{
		{X: x2, Y: y2},
		{X: x2 - ArrowHeadSize, Y: y2 - half},
		{X: x2 - ArrowHeadSize, Y: y2 + half},
	}
}

// DrawArrow draws a line from x1,y1 to x2,y2 with a filled head at the end.
func DrawArrow(d Drawer, x1, y1, x2, y2 int, c color.Color) {
	d.DrawLine(image.Pt(x1, y1), image.Pt(x2, y2), ArrowLineWidth, c)
	head := ArrowHead(x2, y2)
	d.FillPolygon(head[:], c)
}
