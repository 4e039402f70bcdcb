package player

import "red-rockit/internal/sprite"

// State is the movement state derived from velocity each frame.
type State uint8

const (
	StateIdle State = iota
	StateNorth
	StateSouth
	StateEast
	StateWest
	// StateUnclassified covers velocities that match no single direction:
	// both axes moving, or an axis moving at other than the active speed.
	StateUnclassified
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateNorth:
		return "north"
	case StateSouth:
		return "south"
	case StateEast:
		return "east"
	case StateWest:
		return "west"
	}
	return "unclassified"
}

// Heading returns the facing a moving state implies.
func (s State) Heading() Heading {
	switch s {
	case StateNorth:
		return HeadingNorth
	case StateSouth:
		return HeadingSouth
	case StateEast:
		return HeadingEast
	case StateWest:
		return HeadingWest
	}
	return HeadingNone
}

// Walk cycle timing. The first pose holds for 8 ticks, the other three for
// 3 ticks each, and the counter wraps after 14.
const (
	counterMax  = 14
	phase1Start = 8
	phase2Start = 11
	phase3At    = 14
)

// Classify maps a velocity to a movement state. Screen y grows downward,
// so north is negative y.
func Classify(vx, vy, speed int) State {
	switch {
	case vx == 0 && vy == 0:
		return StateIdle
	case vy == 0 && vx == speed:
		return StateEast
	case vy == 0 && vx == -speed:
		return StateWest
	case vx == 0 && vy == -speed:
		return StateNorth
	case vx == 0 && vy == speed:
		return StateSouth
	}
	return StateUnclassified
}

// BaseFrame returns the first walk-cycle frame for h, which is also its
// idle pose.
func BaseFrame(h Heading) int {
	switch h {
	case HeadingEast:
		return sprite.FrameRight
	case HeadingWest:
		return sprite.FrameLeft
	case HeadingSouth:
		return sprite.FrameDown
	}
	// North and none share the first frame.
	return sprite.FrameUp
}

// Phase returns the walk-cycle pose (0-3) for a counter value.
func Phase(counter int) int {
	switch {
	case counter < phase1Start:
		return 0
	case counter < phase2Start:
		return 1
	case counter < phase3At:
		return 2
	}
	return 3
}

// Animate advances the walk cycle for the velocity the player just moved
// with and returns the state it classified. speed is the active per-axis
// speed.
func (p *Player) Animate(speed int) State {
	p.LastHeading = p.Heading

	s := Classify(p.VelX, p.VelY, speed)
	switch s {
	case StateIdle:
		// Heading and counter are kept, so resuming the same direction
		// continues the cycle.
		p.Frame = BaseFrame(p.LastHeading)
	case StateNorth, StateSouth, StateEast, StateWest:
		p.Heading = s.Heading()
		if p.Heading == p.LastHeading {
			p.Counter++
			if p.Counter > counterMax {
				p.Counter = 0
			}
		} else {
			p.Counter = 0
		}
		p.Frame = BaseFrame(p.Heading) + Phase(p.Counter)
	case StateUnclassified:
		// Frame, counter and heading freeze.
	}
	return s
}
