// ABOUTME: Rect and Position types for cell-addressed terminal regions
// ABOUTME: All geometry math saturates at zero instead of going negative
package screen

// Position is an absolute character-cell coordinate in a Buffer.
type Position struct {
	X int
	Y int
}

// Rect is a rectangular cell region. Zero-width or zero-height rects are
// valid and render nothing.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Clamp0 returns a-b floored at zero.
func Clamp0(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}

// Empty reports whether the rect has no drawable cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Bottom returns the first row index below the rect.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Row returns the 1-cell-high rect for row y offset from the top of r,
// clipped to r's vertical extent.
func (r Rect) Row(y int) Rect {
	if y < 0 || y >= r.Height {
		return Rect{X: r.X, Y: r.Y + y}
	}
	return Rect{X: r.X, Y: r.Y + y, Width: r.Width, Height: 1}
}

// Inset returns r shifted right by dx and down by dy, with the width and
// height reduced to match. The result never has negative dimensions.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  Clamp0(r.Width, dx),
		Height: Clamp0(r.Height, dy),
	}
}

// WithHeight returns r with its height replaced, clipped to r's own height.
func (r Rect) WithHeight(h int) Rect {
	if h > r.Height {
		h = r.Height
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: h}
}
