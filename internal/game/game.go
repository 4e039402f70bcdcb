package game

import (
	"errors"
	"fmt"

	"red-rockit/internal/gamemap"
	"red-rockit/internal/player"
	"red-rockit/internal/render"
	"red-rockit/internal/sprite"

	"github.com/sirupsen/logrus"
)

// ErrInvalidSprite is returned by Step when the animation produced a frame
// with no sprite. The run cannot continue.
var ErrInvalidSprite = errors.New("invalid player sprite")

// ErrSpawnBlocked is returned by New when the spawn box overlaps a wall.
var ErrSpawnBlocked = errors.New("spawn point overlaps a wall")

// Game is the simulation shared by the front-ends: one level, one player
// and the window camera.
type Game struct {
	cfg    Config
	grid   *gamemap.Grid
	player *player.Player
	camera *render.Camera
	log    logrus.FieldLogger

	// held remembers the speed each pressed key added so its release
	// removes exactly that amount.
	held   map[Key]int
	frames uint64
	quit   bool
}

// New validates cfg, loads the level map and places the player.
func New(cfg Config, log logrus.FieldLogger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	grid, err := gamemap.LoadFile(cfg.MapPath, cfg.Geometry)
	if err != nil {
		return nil, err
	}
	if spawn := cfg.SpawnBox(); grid.TouchesWall(spawn) {
		return nil, fmt.Errorf("%w: box %+v on map %s", ErrSpawnBlocked, spawn, cfg.MapPath)
	}
	log.WithFields(logrus.Fields{
		"map":   cfg.MapPath,
		"tiles": grid.Len(),
		"walls": grid.WallCount(),
	}).Info("level loaded")
	return NewWithGrid(cfg, grid, log), nil
}

// NewWithGrid builds a game over an already loaded grid. cfg and the spawn
// point are not checked.
func NewWithGrid(cfg Config, grid *gamemap.Grid, log logrus.FieldLogger) *Game {
	g := &Game{
		cfg:    cfg,
		grid:   grid,
		player: player.New(cfg.SpawnX, cfg.SpawnY),
		camera: render.NewCamera(cfg.ScreenWidth, cfg.ScreenHeight),
		log:    log,
		held:   make(map[Key]int),
	}
	g.camera.Follow(g.player.Box, grid.Bounds())
	return g
}

// HandleKey applies a key press or release to the player's velocity.
// Repeats are ignored, and a release only counts if its press was seen.
func (g *Game) HandleKey(ev KeyEvent) {
	if ev.Repeat {
		return
	}
	dx, dy := keyToDelta(ev.Key)
	if dx == 0 && dy == 0 {
		return
	}
	if ev.Down {
		if _, ok := g.held[ev.Key]; ok {
			return
		}
		speed := g.cfg.Speed()
		g.held[ev.Key] = speed
		g.player.Nudge(dx*speed, dy*speed)
		return
	}
	speed, ok := g.held[ev.Key]
	if !ok {
		return
	}
	delete(g.held, ev.Key)
	g.player.Nudge(-dx*speed, -dy*speed)
}

// Step advances one frame: move with collision, follow with the camera,
// then pick the sprite frame for the movement just made.
func (g *Game) Step() error {
	g.frames++
	g.player.Move(g.grid)
	g.camera.Follow(g.player.Box, g.grid.Bounds())

	prev := g.player.Heading
	state := g.player.Animate(g.cfg.Speed())
	if g.player.Heading != prev {
		g.log.WithFields(logrus.Fields{
			"from":  prev,
			"to":    g.player.Heading,
			"frame": g.frames,
		}).Debug("heading changed")
	}

	if _, ok := sprite.PlayerClip(g.player.Frame); !ok {
		g.quit = true
		return fmt.Errorf("%w: frame %d in state %s", ErrInvalidSprite, g.player.Frame, state)
	}
	return nil
}

// RequestQuit marks the run as finished.
func (g *Game) RequestQuit() { g.quit = true }

// Done reports whether the run has finished.
func (g *Game) Done() bool { return g.quit }

// Player returns the controlled player.
func (g *Game) Player() *player.Player { return g.player }

// Grid returns the level tiles.
func (g *Game) Grid() *gamemap.Grid { return g.grid }

// Camera returns the window camera.
func (g *Game) Camera() render.Camera { return *g.camera }

// Log returns the logger the game reports through.
func (g *Game) Log() logrus.FieldLogger { return g.log }

// Config returns the configuration the game was built with.
func (g *Game) Config() Config { return g.cfg }

// Frames returns how many frames have been stepped.
func (g *Game) Frames() uint64 { return g.frames }

// PlayerClip returns the sprite-sheet source rectangle for the current frame.
func (g *Game) PlayerClip() (gamemap.Rect, bool) {
	return sprite.PlayerClip(g.player.Frame)
}
