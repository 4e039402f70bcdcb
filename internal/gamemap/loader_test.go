package gamemap

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func mapText(values []int) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			if i%5 == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func TestLoadRowMajor(t *testing.T) {
	values := make([]int, 20)
	for i := range values {
		values[i] = i
	}
	m, err := Load(strings.NewReader(mapText(values)), smallGeo())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Len() != 20 {
		t.Fatalf("expected 20 tiles, got %d", m.Len())
	}
	for i := 0; i < 20; i++ {
		tile := m.Index(i)
		if int(tile.Kind) != i {
			t.Errorf("tile %d kind = %d", i, tile.Kind)
		}
		wantX, wantY := (i%5)*10, (i/5)*10
		if tile.Box.X != wantX || tile.Box.Y != wantY {
			t.Errorf("tile %d at (%d,%d), want (%d,%d)", i, tile.Box.X, tile.Box.Y, wantX, wantY)
		}
		if tile.Box.W != 10 || tile.Box.H != 10 {
			t.Errorf("tile %d size %dx%d", i, tile.Box.W, tile.Box.H)
		}
	}
}

func TestLoadWrapsAtLevelWidthRegardlessOfLineBreaks(t *testing.T) {
	// All on one line: wrapping comes from the level width, not the text.
	src := strings.Repeat("0 ", 19) + "18"
	m, err := Load(strings.NewReader(src), smallGeo())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	last := m.Index(19)
	if last.Box.X != 40 || last.Box.Y != 30 || last.Kind != TilePath {
		t.Fatalf("unexpected last tile %+v", last)
	}
}

func TestLoadFailures(t *testing.T) {
	full := make([]int, 20)
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"one short", mapText(full[:19]), ErrUnexpectedEOF},
		{"empty", "", ErrUnexpectedEOF},
		{"negative value", mapText(append([]int{-1}, full[1:]...)), ErrInvalidTileType},
		{"value at sprite count", mapText(append(append([]int{}, full[:10]...), append([]int{100}, full[11:]...)...)), ErrInvalidTileType},
		{"not a number", "0 0 x" + strings.Repeat(" 0", 17), ErrMalformedToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Load(strings.NewReader(tc.src), smallGeo())
			if !errors.Is(err, tc.want) {
				t.Fatalf("Load error = %v, want %v", err, tc.want)
			}
			if m != nil {
				t.Fatal("a failed load must not return a grid")
			}
		})
	}
}

func TestLoadIgnoresTrailingValues(t *testing.T) {
	values := make([]int, 25)
	values[24] = 999 // past the grid, never read
	if _, err := Load(strings.NewReader(mapText(values)), smallGeo()); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadRejectsBadGeometry(t *testing.T) {
	geo := smallGeo()
	geo.LevelWidth = 55
	if _, err := Load(strings.NewReader("0"), geo); err == nil {
		t.Fatal("expected geometry error")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.map")
	if err := os.WriteFile(path, []byte(mapText(make([]int, 20))), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadFile(path, smallGeo())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if m.Geometry() != smallGeo() {
		t.Errorf("geometry not carried: %+v", m.Geometry())
	}

	_, err = LoadFile(filepath.Join(dir, "missing.map"), smallGeo())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestMakeTile(t *testing.T) {
	geo := smallGeo()
	tile, err := MakeTile(30, 20, TileBoatPart1, geo)
	if err != nil {
		t.Fatalf("MakeTile: %v", err)
	}
	if tile.Box != (Rect{X: 30, Y: 20, W: 10, H: 10}) || tile.Kind != TileBoatPart1 {
		t.Fatalf("unexpected tile %+v", tile)
	}
	if _, err := MakeTile(0, 0, TileKind(geo.SpriteCount), geo); !errors.Is(err, ErrInvalidTileType) {
		t.Fatalf("expected ErrInvalidTileType, got %v", err)
	}
}

func TestFromKindsShort(t *testing.T) {
	if _, err := FromKinds(make([]TileKind, 19), smallGeo()); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}
