// Package layout holds the small amount of arithmetic banner layouts share.
package layout

import "image"

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// CenterOffset returns the left offset that centers content of contentWidth
// inside a container of containerWidth.
func CenterOffset(containerWidth, contentWidth int) int {
	return FloorDiv(containerWidth-contentWidth, 2)
}

// Scale multiplies a base dimension and truncates toward zero.
func Scale(base int, scale float64) int {
	return int(float64(base) * scale)
}

// RowWidth is the total width of count items of itemWidth separated by gap.
func RowWidth(count, itemWidth, gap int) int {
	if count <= 0 {
		return 0
	}
	return count*itemWidth + (count-1)*gap
}

// RowStarts returns the left edge of each of count items laid out from x.
func RowStarts(x, count, itemWidth, gap int) []int {
	starts := make([]int, count)
	for i := range starts {
		starts[i] = x + i*(itemWidth+gap)
	}
	return starts
}

// Box builds a rectangle from a top-left corner and a size.
func Box(x, y, width, height int) image.Rectangle {
	return image.Rect(x, y, x+width, y+height)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Corners builds a rectangle from two corner points in any order.
func Corners(x0, y0, x1, y1 int) image.Rectangle {
	return Normalize(image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)})
}

// Fit returns the largest rectangle with the aspect ratio of a
// srcWidth x srcHeight image that fits inside dst, centered in it.
func Fit(srcWidth, srcHeight int, dst image.Rectangle) image.Rectangle {
	dst = Normalize(dst)
	if srcWidth <= 0 || srcHeight <= 0 || dst.Empty() {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}
	width := dst.Dx()
	height := srcHeight * width / srcWidth
	if height > dst.Dy() {
		height = dst.Dy()
		width = srcWidth * height / srcHeight
	}
	x := dst.Min.X + CenterOffset(dst.Dx(), width)
	y := dst.Min.Y + CenterOffset(dst.Dy(), height)
	return Box(x, y, width, height)
}
