// Package player holds the controllable character: its bounding box,
// velocity, facing, and the walk-cycle state machine.
package player

import "red-rockit/internal/gamemap"

// Bounding box of the player in level pixels.
const (
	Width  = 25
	Height = 60
)

// Heading is the direction the player last moved in.
type Heading uint8

const (
	HeadingNone Heading = iota
	HeadingNorth
	HeadingSouth
	HeadingEast
	HeadingWest
)

func (h Heading) String() string {
	switch h {
	case HeadingNorth:
		return "north"
	case HeadingSouth:
		return "south"
	case HeadingEast:
		return "east"
	case HeadingWest:
		return "west"
	}
	return "none"
}

// Player is the per-frame state of the controllable sprite.
type Player struct {
	Box         gamemap.Rect
	VelX, VelY  int
	Heading     Heading
	LastHeading Heading
	Counter     int // frames spent moving in the same direction, 0..14
	Frame       int // sprite frame published to the renderer
}

// New returns an idle player at (x, y) facing nowhere.
func New(x, y int) *Player {
	return &Player{Box: gamemap.Rect{X: x, Y: y, W: Width, H: Height}}
}

// Velocity returns the current per-axis velocity.
func (p *Player) Velocity() (int, int) { return p.VelX, p.VelY }

// Nudge adds (dx, dy) to the velocity.
func (p *Player) Nudge(dx, dy int) {
	p.VelX += dx
	p.VelY += dy
}
