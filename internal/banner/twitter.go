package banner

import (
	"fmt"
	"image/color"

	"github.com/hybridbuilder/covergen/internal/render"
	"github.com/hybridbuilder/covergen/internal/render/layout"
)

// TwitterLayout is the composition of the 1200x675 Twitter card. Everything
// except the pillar row is centered horizontally.
type TwitterLayout struct {
	Titles   []CenteredText `toml:"titles"`
	Subtitle CenteredText   `toml:"subtitle"`
	Pillars  PillarRow      `toml:"pillars"`
	Flow     MeasuredFlow   `toml:"flow"`
	Badges   BadgeRow       `toml:"badges"`
	Footer   CenteredText   `toml:"footer"`
	Bars     []Bar          `toml:"bars"`
	QRCode   QRCode         `toml:"qr_code"`
}

// MeasuredFlow is a centered flow diagram whose tokens advance by their
// measured width plus Padding.
type MeasuredFlow struct {
	Y       int      `toml:"y"`
	Size    int      `toml:"size"`
	Padding int      `toml:"padding"`
	Items   []string `toml:"items"`
}

// BadgeRow is a centered row of equally sized badges.
type BadgeRow struct {
	Y           int     `toml:"y"`
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Gap         int     `toml:"gap"`
	Radius      int     `toml:"radius"`
	TextOffsetY int     `toml:"text_offset_y"`
	Size        int     `toml:"size"`
	Items       []Badge `toml:"items"`
}

// Badge is one entry of a BadgeRow.
type Badge struct {
	Text  string     `toml:"text"`
	Color render.RGB `toml:"color"`
}

func twitterLayout() TwitterLayout {
	return TwitterLayout{
		Titles: []CenteredText{
			{Text: "Building Shareable", Y: 80, Size: 48, Bold: true, Color: render.TextWhite},
			{Text: "Learning Design Skills", Y: 140, Size: 48, Bold: true, Color: render.Primary},
		},
		Subtitle: CenteredText{Text: "Canvas MCP Integration + Evidence-Based Principles", Y: 210, Size: 24, Color: render.TextLight},
		Pillars:  PillarRow{X: 280, Y: 280, Scale: 1.3},
		Flow: MeasuredFlow{
			Y:       400,
			Size:    22,
			Padding: 15,
			Items:   []string{"PDF", FlowArrow, "Extract", FlowArrow, "Skills", FlowArrow, "Validate", FlowArrow, "Share"},
		},
		Badges: BadgeRow{
			Y:           500,
			Width:       180,
			Height:      50,
			Gap:         30,
			Radius:      8,
			TextOffsetY: 12,
			Size:        20,
			Items: []Badge{
				{Text: "5 Skills", Color: render.Primary},
				{Text: "46 Principles", Color: render.Accent},
				{Text: "Open Source", Color: render.Purple},
			},
		},
		Footer: CenteredText{Text: "The Hybrid Builder  |  github.com/vishalsachdev/learning-design-pillars", Y: 620, Size: 16, Color: render.TextLight},
		Bars: []Bar{
			{Box: Box{0, 0, twitterWidth, 5}, Color: render.Primary},
			{Box: Box{0, twitterHeight - 5, twitterWidth, twitterHeight}, Color: render.Accent},
		},
		QRCode: QRCode{Payload: "https://github.com/vishalsachdev/learning-design-pillars", X: 1070, Y: 520, Size: 100},
	}
}

// Twitter renders the Twitter card.
func Twitter(fonts render.FontSource, opts Options) (*render.Canvas, error) {
	canvas := render.NewCanvas(twitterWidth, twitterHeight, render.BackgroundDark)
	if err := ComposeTwitter(canvas, fonts, opts); err != nil {
		return nil, err
	}
	return canvas, nil
}

// ComposeTwitter draws the Twitter card onto d.
func ComposeTwitter(d render.Drawer, fonts render.FontSource, opts Options) error {
	l := twitterLayout()
	width, _ := d.Size()

	for _, title := range l.Titles {
		drawCentered(d, fonts, title)
	}
	drawCentered(d, fonts, l.Subtitle)

	render.DrawPillarBlocks(d, fonts, l.Pillars.X, l.Pillars.Y, l.Pillars.Scale)

	flowFont := fonts.Get(l.Flow.Size, false)
	flowWidth := MeasuredWidth(d, flowFont, l.Flow.Items, l.Flow.Padding)
	drawMeasuredFlow(d, flowFont, l.Flow.Items, layout.CenterOffset(width, flowWidth), l.Flow.Y, l.Flow.Padding, func(_ int, item string) color.Color {
		if item == FlowArrow {
			return render.TextLight
		}
		return render.Accent
	})

	drawBadgeRow(d, fonts, width, l.Badges)

	drawCentered(d, fonts, l.Footer)
	drawBars(d, l.Bars)

	if opts.QRCode {
		if err := render.StampQRCode(d, l.QRCode.Payload, l.QRCode.X, l.QRCode.Y, l.QRCode.Size); err != nil {
			return fmt.Errorf("twitter: %w", err)
		}
	}
	return nil
}

func drawBadgeRow(d render.Drawer, fonts render.FontSource, canvasWidth int, row BadgeRow) {
	f := fonts.Get(row.Size, true)
	start := layout.CenterOffset(canvasWidth, layout.RowWidth(len(row.Items), row.Width, row.Gap))
	xs := layout.RowStarts(start, len(row.Items), row.Width, row.Gap)
	for i, badge := range row.Items {
		d.FillRoundedRect(layout.Box(xs[i], row.Y, row.Width, row.Height), row.Radius, badge.Color)
		m := d.MeasureText(badge.Text, f)
		d.DrawText(badge.Text, xs[i]+layout.FloorDiv(row.Width-m.Width, 2), row.Y+row.TextOffsetY, f, render.TextWhite)
	}
}
