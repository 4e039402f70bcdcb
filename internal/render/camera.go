package render

import "red-rockit/internal/gamemap"

// Camera is the visible viewport into the level, in level pixels.
type Camera struct {
	gamemap.Rect
}

// NewCamera creates a camera at the origin with a fixed viewport size.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{Rect: gamemap.Rect{W: viewW, H: viewH}}
}

// Follow centers the camera on target and then keeps it inside level.
// The lower clamp runs before the upper one, so a level smaller than the
// viewport yields a negative offset on that axis.
func (c *Camera) Follow(target, level gamemap.Rect) {
	c.X = (target.X + target.W/2) - c.W/2
	c.Y = (target.Y + target.H/2) - c.H/2

	if c.X < level.X {
		c.X = level.X
	}
	if c.Y < level.Y {
		c.Y = level.Y
	}
	if c.X > level.Right()-c.W {
		c.X = level.Right() - c.W
	}
	if c.Y > level.Bottom()-c.H {
		c.Y = level.Bottom() - c.H
	}
}

// Snap aligns the camera origin to a multiple of the cell size, rounding
// toward zero.
func (c *Camera) Snap(cellW, cellH int) {
	c.X -= c.X % cellW
	c.Y -= c.Y % cellH
}

// WorldToScreen converts level (wx, wy) to viewport-relative pixels.
// visible is false when the point falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.X
	sy = wy - c.Y
	visible = sx >= 0 && sx < c.W && sy >= 0 && sy < c.H
	return
}
