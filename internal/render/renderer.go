package render

import (
	"red-rockit/internal/gamemap"
	"red-rockit/internal/player"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved below the map.
const HUDRows = 3

// Renderer draws the level onto a tcell screen. Each tile occupies two
// terminal columns and one row.
type Renderer struct {
	screen tcell.Screen
	geo    gamemap.Geometry
	camera *Camera
}

// NewRenderer creates a Renderer sized to the screen.
func NewRenderer(screen tcell.Screen, geo gamemap.Geometry) *Renderer {
	r := &Renderer{screen: screen, geo: geo}
	r.Resize()
	return r
}

// Resize recomputes the viewport from the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	cols := w / 2
	rows := h - HUDRows
	if rows < 0 {
		rows = 0
	}
	r.camera = NewCamera(cols*r.geo.TileWidth, rows*r.geo.TileHeight)
}

// Camera returns the current viewport in level pixels.
func (r *Renderer) Camera() gamemap.Rect { return r.camera.Rect }

// CenterOn points the camera at the player's box, clamped to the level and
// aligned to whole tiles.
func (r *Renderer) CenterOn(box gamemap.Rect) {
	r.camera.Follow(box, r.geo.Bounds())
	r.camera.Snap(r.geo.TileWidth, r.geo.TileHeight)
}

// DrawFrame renders visible tiles and the player.
func (r *Renderer) DrawFrame(grid *gamemap.Grid, p *player.Player) {
	r.screen.Clear()
	r.drawMap(grid)
	r.drawPlayer(p)
}

// drawMap renders the tiles that overlap the camera.
func (r *Renderer) drawMap(grid *gamemap.Grid) {
	for _, t := range grid.Visible(r.camera.Rect) {
		sx, sy, ok := r.cell(t.Box.X, t.Box.Y)
		if !ok {
			continue
		}
		r.putGlyph(sx, sy, TileGlyph(t.Kind), styleMap)
	}
}

func (r *Renderer) drawPlayer(p *player.Player) {
	cx, cy := p.Box.Center()
	sx, sy, ok := r.cell(cx, cy)
	if !ok {
		return
	}
	r.putGlyph(sx, sy, PlayerGlyph(p.Frame), stylePlayer)
}

// cell converts a level pixel to the top-left terminal cell of the tile
// containing it.
func (r *Renderer) cell(wx, wy int) (int, int, bool) {
	px, py, visible := r.camera.WorldToScreen(wx, wy)
	if !visible {
		return 0, 0, false
	}
	return (px / r.geo.TileWidth) * 2, py / r.geo.TileHeight, true
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
