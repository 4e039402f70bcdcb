package game

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"red-rockit/internal/gamemap"
	"red-rockit/internal/player"
)

// Front-end names accepted by Config.Frontend.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Config holds the start-up parameters of one run.
type Config struct {
	Geometry gamemap.Geometry `json:"geometry"`

	// Window viewport in pixels.
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`

	// Per-axis speeds in pixels per frame. Run selects RunSpeed.
	WalkSpeed int  `json:"walkSpeed"`
	RunSpeed  int  `json:"runSpeed"`
	Run       bool `json:"run"`

	SpawnX int `json:"spawnX"`
	SpawnY int `json:"spawnY"`

	MapPath         string `json:"mapPath"`
	TileSheetPath   string `json:"tileSheetPath"`
	PlayerSheetPath string `json:"playerSheetPath"`

	Frontend  string `json:"frontend"`
	FrameRate int    `json:"frameRate"`
	// Terminals report no key release; a movement key counts as released
	// when no press or repeat arrives for this long.
	KeyReleaseMillis int `json:"keyReleaseMillis"`
}

// DefaultConfig returns the stock 1920x1080 window over the 3840x2160 level.
func DefaultConfig() Config {
	return Config{
		Geometry:         gamemap.DefaultGeometry(),
		ScreenWidth:      1920,
		ScreenHeight:     1080,
		WalkSpeed:        3,
		RunSpeed:         15,
		MapPath:          "maps/level1.map",
		TileSheetPath:    "textures/tiles.png",
		PlayerSheetPath:  "textures/player.png",
		Frontend:         FrontendWindow,
		FrameRate:        60,
		KeyReleaseMillis: 550,
	}
}

// LoadConfig decodes a JSON file over the defaults. Fields absent from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce a playable run.
func (c Config) Validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.New("screen size must be positive")
	}
	if c.WalkSpeed <= 0 || c.RunSpeed <= 0 {
		return errors.New("speeds must be positive")
	}
	if spawn := c.SpawnBox(); !c.Geometry.Bounds().Contains(spawn) {
		return fmt.Errorf("spawn box %dx%d at (%d,%d) is outside the %dx%d level",
			spawn.W, spawn.H, spawn.X, spawn.Y, c.Geometry.LevelWidth, c.Geometry.LevelHeight)
	}
	if c.FrameRate <= 0 {
		return errors.New("frame rate must be positive")
	}
	if c.KeyReleaseMillis <= 0 {
		return errors.New("key release timeout must be positive")
	}
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	return nil
}

// SpawnBox returns the player's bounding box at the spawn point.
func (c Config) SpawnBox() gamemap.Rect {
	return gamemap.Rect{X: c.SpawnX, Y: c.SpawnY, W: player.Width, H: player.Height}
}

// Speed returns the per-axis speed of the selected tier.
func (c Config) Speed() int {
	if c.Run {
		return c.RunSpeed
	}
	return c.WalkSpeed
}

// SpeedName names the selected tier.
func (c Config) SpeedName() string {
	if c.Run {
		return "run"
	}
	return "walk"
}

// FrameDuration returns the time budget of one frame.
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// KeyRelease returns the terminal key release timeout.
func (c Config) KeyRelease() time.Duration {
	return time.Duration(c.KeyReleaseMillis) * time.Millisecond
}

// Overrides are command-line settings applied over a loaded Config. Nil
// fields were not given and leave the config unchanged.
type Overrides struct {
	Frontend *string
	MapPath  *string
	Run      *bool
}

// ParseFlags parses the command line. It returns the config file path
// (empty for defaults) and the flags that were explicitly set.
func ParseFlags(name string, args []string) (string, Overrides, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON config file (defaults are used if empty)")
	frontend := fs.String("frontend", "", "window or terminal (overrides the config)")
	mapPath := fs.String("map", "", "level map file (overrides the config)")
	run := fs.Bool("run", false, "move at run speed; -run=false forces walk")
	if err := fs.Parse(args); err != nil {
		return "", Overrides{}, err
	}

	var o Overrides
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			o.Frontend = frontend
		case "map":
			o.MapPath = mapPath
		case "run":
			o.Run = run
		}
	})
	return *configPath, o, nil
}

// Apply returns c with every given override set.
func (o Overrides) Apply(c Config) Config {
	if o.Frontend != nil {
		c.Frontend = *o.Frontend
	}
	if o.MapPath != nil {
		c.MapPath = *o.MapPath
	}
	if o.Run != nil {
		c.Run = *o.Run
	}
	return c
}
