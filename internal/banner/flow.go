package banner

import (
	"image/color"

	"github.com/hybridbuilder/covergen/internal/render"
)

// FlowArrow is the connector token in inline flow diagrams.
const FlowArrow = "→"

// MeasuredWidth is the width a measured flow occupies: each token's width
// plus padding after every token, the last one included.
func MeasuredWidth(d render.Drawer, f *render.Font, items []string, padding int) int {
	total := 0
	for _, item := range items {
		total += d.MeasureText(item, f).Width
	}
	return total + len(items)*padding
}

// drawMeasuredFlow lays tokens out left to right, each starting padding
// pixels after the previous one ends. It returns the x of every token.
func drawMeasuredFlow(d render.Drawer, f *render.Font, items []string, x, y, padding int, colorOf func(i int, item string) color.Color) []int {
	xs := make([]int, len(items))
	cursor := x
	for i, item := range items {
		xs[i] = cursor
		m := d.DrawText(item, cursor, y, f, colorOf(i, item))
		cursor = m.Right(cursor) + padding
	}
	return xs
}

// drawSteppedFlow lays tokens out at a fixed horizontal step.
func drawSteppedFlow(d render.Drawer, f *render.Font, items []string, x, y, step int, colorOf func(i int, item string) color.Color) {
	for i, item := range items {
		d.DrawText(item, x+i*step, y, f, colorOf(i, item))
	}
}
