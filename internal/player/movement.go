package player

import "red-rockit/internal/gamemap"

// Collider is the level the player moves through.
type Collider interface {
	Bounds() gamemap.Rect
	TouchesWall(box gamemap.Rect) bool
}

// MoveResult reports which axes were rolled back.
type MoveResult struct {
	BlockedX, BlockedY bool
}

// Move applies the velocity one axis at a time. Each axis move is dropped
// if it leaves the level or puts the box over a wall; the y pass sees the
// x position already settled.
func (p *Player) Move(level Collider) MoveResult {
	var res MoveResult
	bounds := level.Bounds()

	if next := p.Box.Translate(p.VelX, 0); fits(next, bounds, level) {
		p.Box = next
	} else {
		res.BlockedX = p.VelX != 0
	}
	if next := p.Box.Translate(0, p.VelY); fits(next, bounds, level) {
		p.Box = next
	} else {
		res.BlockedY = p.VelY != 0
	}
	return res
}

// fits reports whether box lies inside bounds and clear of walls.
func fits(box, bounds gamemap.Rect, level Collider) bool {
	return bounds.Contains(box) && !level.TouchesWall(box)
}
