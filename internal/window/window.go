// Package window is the desktop front-end: it draws a Game with ebiten and
// feeds it keyboard transitions.
package window

import (
	"errors"
	"image/color"

	"red-rockit/internal/game"
	"red-rockit/internal/render"
	"red-rockit/internal/sprite"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// Title is the window caption.
const Title = "red_rockit"

// Window implements ebiten.Game over a game.Game.
type Window struct {
	game   *game.Game
	tiles  *Texture
	player *Texture
	hud    bool
}

// New loads both sprite sheets named by the game's config.
func New(g *game.Game) (*Window, error) {
	cfg := g.Config()
	w := &Window{game: g, tiles: NewTexture(), player: NewTexture()}
	if err := w.tiles.Load(cfg.TileSheetPath, sprite.TileRects()); err != nil {
		return nil, err
	}
	if err := w.player.Load(cfg.PlayerSheetPath, sprite.PlayerRects()); err != nil {
		w.tiles.Free()
		return nil, err
	}
	g.Log().WithFields(logrus.Fields{
		"tiles":  cfg.TileSheetPath,
		"player": cfg.PlayerSheetPath,
	}).Info("sprite sheets loaded")
	return w, nil
}

// Run opens the window and blocks until it closes or a frame fails.
func (w *Window) Run() error {
	defer w.Close()
	cfg := w.game.Config()
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(cfg.FrameRate)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	w.game.Log().WithField("frames", w.game.Frames()).Info("window closed")
	return err
}

// Close releases both textures.
func (w *Window) Close() {
	w.tiles.Free()
	w.player.Free()
}

// Update applies this tick's input and advances the game one frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.game.RequestQuit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		w.hud = !w.hud
	}
	if w.game.Done() {
		return ebiten.Termination
	}
	for _, ev := range keyEvents() {
		w.game.HandleKey(ev)
	}
	return w.game.Step()
}

// Draw clears to white, then draws the visible tiles and the player
// relative to the camera.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	cam := w.game.Camera()
	for _, t := range w.game.Grid().Visible(cam.Rect) {
		clip, ok := sprite.TileClip(t.Kind)
		if !ok {
			continue
		}
		w.tiles.Draw(screen, clip, t.Box.X-cam.X, t.Box.Y-cam.Y)
	}

	p := w.game.Player()
	if clip, ok := w.game.PlayerClip(); ok {
		w.player.Draw(screen, clip, p.Box.X-cam.X, p.Box.Y-cam.Y)
	}

	if w.hud {
		ebitenutil.DebugPrintAt(screen, render.StatusLine(p, cam, w.game.Config().SpeedName()), 8, 8)
	}
}

// Layout keeps the logical screen at the configured size.
func (w *Window) Layout(_, _ int) (int, int) {
	cfg := w.game.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}
