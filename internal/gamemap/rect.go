package gamemap

// Rect is an axis-aligned rectangle in level pixels.
type Rect struct {
	X, Y, W, H int
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports whether r and other share a region of non-zero area.
// Edges are half-open: rectangles that only touch do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.Bottom() <= other.Y {
		return false
	}
	if r.Y >= other.Bottom() {
		return false
	}
	if r.Right() <= other.X {
		return false
	}
	if r.X >= other.Right() {
		return false
	}
	return true
}

// Contains reports whether other lies entirely inside r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}
