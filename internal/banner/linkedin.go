package banner

import (
	"fmt"

	"github.com/hybridbuilder/covergen/internal/render"
)

// LinkedInLayout is the full composition of the 1200x628 LinkedIn cover.
type LinkedInLayout struct {
	Title    Text           `toml:"title"`
	Subtitle Text           `toml:"subtitle"`
	Tagline  Text           `toml:"tagline"`
	Pillars  PillarRow      `toml:"pillars"`
	Snippet  Snippet        `toml:"snippet"`
	Loop     CompoundLoop   `toml:"loop"`
	Badges   []LiteralBadge `toml:"badges"`
	Footer   Text           `toml:"footer"`
	Bars     []Bar          `toml:"bars"`
	QRCode   QRCode         `toml:"qr_code"`
}

// CompoundLoop is the row of labels at fixed x positions joined by arrows.
// Arrows run from ArrowGap past a label's measured right edge to ArrowGap
// before the next label, ArrowDrop below the row top.
type CompoundLoop struct {
	Y         int      `toml:"y"`
	Size      int      `toml:"size"`
	Labels    []string `toml:"labels"`
	Positions []int    `toml:"positions"`
	ArrowGap  int      `toml:"arrow_gap"`
	ArrowDrop int      `toml:"arrow_drop"`
}

// LiteralBadge is a rounded box with its label at a fixed point.
type LiteralBadge struct {
	Box    Box        `toml:"box"`
	Radius int        `toml:"radius"`
	Color  render.RGB `toml:"color"`
	Label  Text       `toml:"label"`
}

func linkedInLayout() LinkedInLayout {
	return LinkedInLayout{
		Title:    Text{Text: "Building Shareable Learning Design Skills", X: 60, Y: 50, Size: 42, Bold: true, Color: render.TextWhite},
		Subtitle: Text{Text: "with Canvas MCP Integration", X: 60, Y: 105, Size: 28, Color: render.Primary},
		Tagline:  Text{Text: "PDF  →  Extraction  →  Skills  →  GitHub  →  Community", X: 60, Y: 160, Size: 20, Color: render.TextLight},
		Pillars:  PillarRow{X: 60, Y: 220, Scale: 1.2},
		Snippet:  Snippet{X: 700, Y: 200, Width: 440, Height: 120},
		Loop: CompoundLoop{
			Y:         380,
			Size:      16,
			Labels:    []string{"skill-creator", "validates", "new skills", "integrate with", "canvas-mcp"},
			Positions: []int{80, 250, 420, 600, 800},
			ArrowGap:  10,
			ArrowDrop: 10,
		},
		Badges: []LiteralBadge{
			{
				Box:    Box{60, 450, 200, 510},
				Radius: 8,
				Color:  render.Primary,
				Label:  Text{Text: "5 Skills", X: 85, Y: 465, Size: 24, Bold: true, Color: render.TextWhite},
			},
			{
				Box:    Box{220, 450, 420, 510},
				Radius: 8,
				Color:  render.Accent,
				Label:  Text{Text: "Open Source", X: 245, Y: 465, Size: 24, Bold: true, Color: render.TextWhite},
			},
		},
		Footer: Text{Text: "The Hybrid Builder  |  chatwithgpt.substack.com", X: 60, Y: 580, Size: 16, Color: render.TextLight},
		Bars: []Bar{
			{Box: Box{0, 0, linkedInWidth, 5}, Color: render.Primary},
		},
		QRCode: QRCode{Payload: "https://chatwithgpt.substack.com", X: 1040, Y: 440, Size: 120},
	}
}

// LinkedIn renders the LinkedIn cover.
func LinkedIn(fonts render.FontSource, opts Options) (*render.Canvas, error) {
	canvas := render.NewCanvas(linkedInWidth, linkedInHeight, render.BackgroundDark)
	if err := ComposeLinkedIn(canvas, fonts, opts); err != nil {
		return nil, err
	}
	return canvas, nil
}

// ComposeLinkedIn draws the LinkedIn cover onto d.
func ComposeLinkedIn(d render.Drawer, fonts render.FontSource, opts Options) error {
	l := linkedInLayout()

	drawText(d, fonts, l.Title)
	drawText(d, fonts, l.Subtitle)
	drawText(d, fonts, l.Tagline)

	render.DrawPillarBlocks(d, fonts, l.Pillars.X, l.Pillars.Y, l.Pillars.Scale)
	render.DrawCodeSnippet(d, fonts, l.Snippet.X, l.Snippet.Y, l.Snippet.Width, l.Snippet.Height)

	drawCompoundLoop(d, fonts, l.Loop)

	for _, badge := range l.Badges {
		d.FillRoundedRect(badge.Box.Rect(), badge.Radius, badge.Color)
		drawText(d, fonts, badge.Label)
	}

	drawText(d, fonts, l.Footer)
	drawBars(d, l.Bars)

	if opts.QRCode {
		if err := render.StampQRCode(d, l.QRCode.Payload, l.QRCode.X, l.QRCode.Y, l.QRCode.Size); err != nil {
			return fmt.Errorf("linkedin: %w", err)
		}
	}
	return nil
}

func drawCompoundLoop(d render.Drawer, fonts render.FontSource, loop CompoundLoop) {
	f := fonts.Get(loop.Size, false)
	for i, label := range loop.Labels {
		px := loop.Positions[i]
		labelColor := render.Accent
		if i%2 == 1 {
			labelColor = render.TextLight
		}
		m := d.DrawText(label, px, loop.Y, f, labelColor)
		if i < len(loop.Labels)-1 {
			next := loop.Positions[i+1]
			arrowY := loop.Y + loop.ArrowDrop
			render.DrawArrow(d, m.Right(px)+loop.ArrowGap, arrowY, next-loop.ArrowGap, arrowY, render.TextLight)
		}
	}
}
