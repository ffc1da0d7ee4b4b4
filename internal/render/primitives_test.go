package render_test

import (
	"image"
	"testing"

	"github.com/hybridbuilder/covergen/internal/render"
	"github.com/hybridbuilder/covergen/internal/render/layout"
	"github.com/hybridbuilder/covergen/internal/render/rendertest"
)

func TestPillarGeometryFor(t *testing.T) {
	tests := []struct {
		scale float64
		want  render.PillarGeometry
		row   int
	}{
		{1.0, render.PillarGeometry{Width: 80, Height: 40, Gap: 10, FontSize: 11}, 350},
		{0.7, render.PillarGeometry{Width: 56, Height: 28, Gap: 7, FontSize: 7}, 245},
		{1.2, render.PillarGeometry{Width: 96, Height: 48, Gap: 12, FontSize: 13}, 420},
		{1.3, render.PillarGeometry{Width: 104, Height: 52, Gap: 13, FontSize: 14}, 455},
	}
	for _, tt := range tests {
		got := render.PillarGeometryFor(tt.scale)
		if got != tt.want {
			t.Errorf("PillarGeometryFor(%v) = %+v, want %+v", tt.scale, got, tt.want)
		}
		if row := got.RowWidth(); row != tt.row {
			t.Errorf("RowWidth(%v) = %d, want %d", tt.scale, row, tt.row)
		}
	}
}

func TestDrawPillarBlocks(t *testing.T) {
	rec := rendertest.New(1200, 628)
	fonts := rendertest.Fonts()

	blocks := render.DrawPillarBlocks(rec, fonts, 60, 220, 1.2)

	want := []image.Rectangle{
		image.Rect(60, 220, 156, 268),
		image.Rect(168, 220, 264, 268),
		image.Rect(276, 220, 372, 268),
		image.Rect(384, 220, 480, 268),
	}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(want))
	}
	rects := rec.Filter(rendertest.OpRoundedRect)
	texts := rec.Filter(rendertest.OpText)
	if len(rects) != 4 || len(texts) != 4 {
		t.Fatalf("got %d rects and %d texts", len(rects), len(texts))
	}

	for i, p := range render.Pillars() {
		if blocks[i] != want[i] || rects[i].Rect != want[i] {
			t.Errorf("block %d = %v (drawn %v), want %v", i, blocks[i], rects[i].Rect, want[i])
		}
		if rects[i].Color != p.Color || rects[i].Radius != 4 {
			t.Errorf("block %d color=%v radius=%d", i, rects[i].Color, rects[i].Radius)
		}
		label := texts[i]
		if label.Text != p.Label || label.Color != render.TextWhite {
			t.Errorf("label %d = %q %v", i, label.Text, label.Color)
		}
		if label.Font.Size != 13 {
			t.Errorf("label font size = %d, want 13", label.Font.Size)
		}
		wantX := want[i].Min.X + layout.FloorDiv(96-label.Metrics.Width, 2)
		wantY := 220 + layout.FloorDiv(48-label.Metrics.Height, 2) - 2
		if at := label.Points[0]; at != image.Pt(wantX, wantY) {
			t.Errorf("label %q at %v, want (%d,%d)", p.Label, at, wantX, wantY)
		}
	}
}

func TestPillarOrder(t *testing.T) {
	labels := []string{"Structure", "Content", "Practice", "UX"}
	colors := []render.RGB{render.Primary, render.Accent, render.Purple, render.Amber}
	for i, p := range render.Pillars() {
		if p.Label != labels[i] || p.Color != colors[i] {
			t.Errorf("pillar %d = %+v", i, p)
		}
	}
}

func TestDrawArrow(t *testing.T) {
	rec := rendertest.New(300, 100)
	render.DrawArrow(rec, 10, 20, 100, 20, render.TextLight)

	lines := rec.Filter(rendertest.OpLine)
	if len(lines) != 1 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0].Width != render.ArrowLineWidth || lines[0].Points[0] != image.Pt(10, 20) || lines[0].Points[1] != image.Pt(100, 20) {
		t.Errorf("line = %+v", lines[0])
	}

	heads := rec.Filter(rendertest.OpPolygon)
	if len(heads) != 1 {
		t.Fatalf("got %d polygons", len(heads))
	}
	want := []image.Point{{100, 20}, {92, 16}, {92, 24}}
	for i, p := range want {
		if heads[0].Points[i] != p {
			t.Errorf("head point %d = %v, want %v", i, heads[0].Points[i], p)
		}
	}
	if heads[0].Color != render.TextLight {
		t.Errorf("head color = %v", heads[0].Color)
	}
}

func TestArrowHeadIgnoresDirection(t *testing.T) {
	head := render.ArrowHead(50, 50)
	if head[1].X != 42 || head[2].X != 42 || head[1].Y != 46 || head[2].Y != 54 {
		t.Errorf("head = %v", head)
	}
}

func TestDrawCodeSnippet(t *testing.T) {
	rec := rendertest.New(1200, 628)
	render.DrawCodeSnippet(rec, rendertest.Fonts(), 700, 200, 440, 120)

	panels := rec.Filter(rendertest.OpRoundedRect)
	if len(panels) != 1 || panels[0].Rect != image.Rect(700, 200, 1140, 320) || panels[0].Radius != 8 {
		t.Fatalf("panel = %+v", panels)
	}
	if panels[0].Color != render.CodeBackground {
		t.Errorf("panel color = %v", panels[0].Color)
	}

	dots := rec.Filter(rendertest.OpEllipse)
	if len(dots) != 3 {
		t.Fatalf("got %d dots", len(dots))
	}
	for i, c := range render.SnippetDots() {
		left := 712 + i*18
		if dots[i].Rect != image.Rect(left, 208, left+8, 216) || dots[i].Color != c {
			t.Errorf("dot %d = %v %v", i, dots[i].Rect, dots[i].Color)
		}
	}

	texts := rec.Filter(rendertest.OpText)
	if len(texts) != 6 {
		t.Fatalf("got %d text runs, want 6", len(texts))
	}
	importRun, learning := texts[0], texts[1]
	if importRun.Text != "import " || importRun.Points[0] != image.Pt(715, 235) {
		t.Errorf("first run = %q at %v", importRun.Text, importRun.Points[0])
	}
	if learning.Points[0] != image.Pt(715+importRun.Metrics.Width, 235) {
		t.Errorf("second run at %v, want chained after %d", learning.Points[0], importRun.Metrics.Width)
	}
	skills := texts[2]
	if skills.Text != "skills" || skills.Points[0] != image.Pt(715, 255) || skills.Color != render.Accent {
		t.Errorf("second line starts with %q at %v", skills.Text, skills.Points[0])
	}
	if texts[0].Font.Size != 14 {
		t.Errorf("code font size = %d", texts[0].Font.Size)
	}
}
