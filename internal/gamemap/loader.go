package gamemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	// ErrUnexpectedEOF is returned when the source ends before every cell is filled.
	ErrUnexpectedEOF = errors.New("unexpected end of map")
	// ErrInvalidTileType is returned for a tile value outside [0, SpriteCount).
	ErrInvalidTileType = errors.New("invalid tile type")
	// ErrMalformedToken is returned for a token that is not an integer.
	ErrMalformedToken = errors.New("malformed map token")
)

// LoadFile opens path and loads a grid from it.
func LoadFile(path string, geo Geometry) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	m, err := Load(f, geo)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	return m, nil
}

// Load reads geo.TileCount whitespace-separated integers from r and places
// them row-major. Any failure discards the whole grid. Input past the last
// cell is not read.
func Load(r io.Reader, geo Geometry) (*Grid, error) {
	if err := geo.Validate(); err != nil {
		return nil, fmt.Errorf("geometry: %w", err)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n := geo.TileCount()
	tiles := make([]Tile, 0, n)
	x, y := 0, 0
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read tile %d: %w", i, err)
			}
			return nil, fmt.Errorf("%w: got %d of %d tiles", ErrUnexpectedEOF, i, n)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: %q at %d", ErrMalformedToken, sc.Text(), i)
		}
		t, err := MakeTile(x, y, TileKind(v), geo)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		tiles = append(tiles, t)

		x += geo.TileWidth
		if x >= geo.LevelWidth {
			x = 0
			y += geo.TileHeight
		}
	}
	return &Grid{geo: geo, tiles: tiles}, nil
}

// FromKinds builds a grid from in-memory kinds, validating them the same
// way Load does.
func FromKinds(kinds []TileKind, geo Geometry) (*Grid, error) {
	if err := geo.Validate(); err != nil {
		return nil, fmt.Errorf("geometry: %w", err)
	}
	if len(kinds) < geo.TileCount() {
		return nil, fmt.Errorf("%w: got %d of %d tiles", ErrUnexpectedEOF, len(kinds), geo.TileCount())
	}
	tiles := make([]Tile, geo.TileCount())
	cols := geo.Columns()
	for i := range tiles {
		t, err := MakeTile((i%cols)*geo.TileWidth, (i/cols)*geo.TileHeight, kinds[i], geo)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		tiles[i] = t
	}
	return &Grid{geo: geo, tiles: tiles}, nil
}
