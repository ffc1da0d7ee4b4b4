package banner

import (
	"image/color"

	"github.com/hybridbuilder/covergen/internal/render"
)

// SubstackLayout is the composition of the 1100x220 Substack banner.
type SubstackLayout struct {
	Titles  []Text      `toml:"titles"`
	Flow    SteppedFlow `toml:"flow"`
	Pillars PillarRow   `toml:"pillars"`
	Footer  Text        `toml:"footer"`
	Bars    []Bar       `toml:"bars"`
}

// SteppedFlow is a flow diagram with a fixed horizontal step per token.
// Arrows are drawn in TextLight, the token at AccentIndex in Accent and the
// rest in TextWhite.
type SteppedFlow struct {
	X           int      `toml:"x"`
	Y           int      `toml:"y"`
	Step        int      `toml:"step"`
	Size        int      `toml:"size"`
	AccentIndex int      `toml:"accent_index"`
	Items       []string `toml:"items"`
}

func substackLayout() SubstackLayout {
	return SubstackLayout{
		Titles: []Text{
			{Text: "Building Shareable", X: 30, Y: 40, Size: 28, Bold: true, Color: render.TextWhite},
			{Text: "Learning Design Skills", X: 30, Y: 75, Size: 28, Bold: true, Color: render.Primary},
		},
		Flow: SteppedFlow{
			X:           420,
			Y:           90,
			Step:        70,
			Size:        18,
			AccentIndex: 2,
			Items:       []string{"PDF", FlowArrow, "Skills", FlowArrow, "GitHub"},
		},
		Pillars: PillarRow{X: 780, Y: 80, Scale: 0.7},
		Footer:  Text{Text: "The Hybrid Builder", X: 30, Y: 180, Size: 14, Color: render.TextLight},
		Bars: []Bar{
			{Box: Box{0, 0, substackWidth, 3}, Color: render.Primary},
			{Box: Box{0, substackHeight - 3, substackWidth, substackHeight}, Color: render.Accent},
		},
	}
}

// Substack renders the Substack banner.
func Substack(fonts render.FontSource, opts Options) (*render.Canvas, error) {
	canvas := render.NewCanvas(substackWidth, substackHeight, render.BackgroundDark)
	if err := ComposeSubstack(canvas, fonts, opts); err != nil {
		return nil, err
	}
	return canvas, nil
}

// ComposeSubstack draws the Substack banner onto d. The banner is too short
// for a QR stamp, so opts.QRCode is ignored.
func ComposeSubstack(d render.Drawer, fonts render.FontSource, opts Options) error {
	l := substackLayout()

	for _, title := range l.Titles {
		drawText(d, fonts, title)
	}

	flowFont := fonts.Get(l.Flow.Size, false)
	drawSteppedFlow(d, flowFont, l.Flow.Items, l.Flow.X, l.Flow.Y, l.Flow.Step, func(i int, item string) color.Color {
		switch {
		case item == FlowArrow:
			return render.TextLight
		case i == l.Flow.AccentIndex:
			return render.Accent
		default:
			return render.TextWhite
		}
	})

	render.DrawPillarBlocks(d, fonts, l.Pillars.X, l.Pillars.Y, l.Pillars.Scale)

	drawText(d, fonts, l.Footer)
	drawBars(d, l.Bars)
	return nil
}
