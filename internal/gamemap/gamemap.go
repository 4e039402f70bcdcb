package gamemap

import (
	"errors"
	"fmt"
)

// Geometry describes the level and tile dimensions in pixels.
type Geometry struct {
	LevelWidth, LevelHeight int
	TileWidth, TileHeight   int
	SpriteCount             int // valid tile kinds are [0, SpriteCount)
}

// DefaultGeometry is the 3840x2160 level of 80x80 tiles.
func DefaultGeometry() Geometry {
	return Geometry{
		LevelWidth:  3840,
		LevelHeight: 2160,
		TileWidth:   80,
		TileHeight:  80,
		SpriteCount: 100,
	}
}

// Columns returns the number of tiles per row.
func (g Geometry) Columns() int { return g.LevelWidth / g.TileWidth }

// Rows returns the number of tile rows.
func (g Geometry) Rows() int { return g.LevelHeight / g.TileHeight }

// TileCount returns the fixed grid length.
func (g Geometry) TileCount() int { return g.Columns() * g.Rows() }

// Bounds returns the level rectangle anchored at the origin.
func (g Geometry) Bounds() Rect {
	return Rect{W: g.LevelWidth, H: g.LevelHeight}
}

// Validate checks that the geometry describes a whole number of tiles.
func (g Geometry) Validate() error {
	if g.TileWidth <= 0 || g.TileHeight <= 0 {
		return errors.New("tile size must be positive")
	}
	if g.LevelWidth <= 0 || g.LevelHeight <= 0 {
		return errors.New("level size must be positive")
	}
	if g.LevelWidth%g.TileWidth != 0 || g.LevelHeight%g.TileHeight != 0 {
		return fmt.Errorf("level %dx%d is not a multiple of tile %dx%d",
			g.LevelWidth, g.LevelHeight, g.TileWidth, g.TileHeight)
	}
	if g.SpriteCount <= 0 {
		return errors.New("sprite count must be positive")
	}
	return nil
}

// Grid holds the tiles of one level in row-major order. Its length is
// fixed at Geometry.TileCount once built.
type Grid struct {
	geo   Geometry
	tiles []Tile
}

// Geometry returns the dimensions the grid was built with.
func (m *Grid) Geometry() Geometry { return m.geo }

// Len returns the number of tiles.
func (m *Grid) Len() int { return len(m.tiles) }

// Bounds returns the level rectangle.
func (m *Grid) Bounds() Rect { return m.geo.Bounds() }

// InBounds reports whether tile coordinates (col, row) are on the grid.
func (m *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < m.geo.Columns() && row >= 0 && row < m.geo.Rows()
}

// At returns the tile at (col, row). Panics if out of bounds.
func (m *Grid) At(col, row int) Tile {
	return m.Index(row*m.geo.Columns() + col)
}

// Index returns the i-th tile in load order.
func (m *Grid) Index(i int) Tile { return m.tiles[i] }

// Each calls fn for every tile in row-major order.
func (m *Grid) Each(fn func(i int, t Tile)) {
	for i, t := range m.tiles {
		fn(i, t)
	}
}

// Visible returns the tiles whose boxes overlap the camera rectangle.
func (m *Grid) Visible(camera Rect) []Tile {
	var out []Tile
	for _, t := range m.tiles {
		if t.Box.Overlaps(camera) {
			out = append(out, t)
		}
	}
	return out
}

// TouchesWall reports whether box overlaps any wall tile. Only the tiles
// under the box are examined; parts of the box off the grid touch nothing.
func (m *Grid) TouchesWall(box Rect) bool {
	if box.W <= 0 || box.H <= 0 {
		return false
	}
	c0, c1 := floorDiv(box.X, m.geo.TileWidth), floorDiv(box.Right()-1, m.geo.TileWidth)
	r0, r1 := floorDiv(box.Y, m.geo.TileHeight), floorDiv(box.Bottom()-1, m.geo.TileHeight)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if m.InBounds(col, row) && m.At(col, row).IsWall() {
				return true
			}
		}
	}
	return false
}

// WallCount returns how many tiles block movement.
func (m *Grid) WallCount() int {
	n := 0
	m.Each(func(_ int, t Tile) {
		if t.IsWall() {
			n++
		}
	})
	return n
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
