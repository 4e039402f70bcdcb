package gamemap

import "fmt"

// TileKind identifies a tile's sprite and its collision class.
type TileKind int

const (
	TileGrass TileKind = iota
	TileGrassPlant
	TilePath2
	TileCenter
	TileTop
	TileTopRight
	TileRight
	TileBottomRight
	TileBottom
	TileBottomLeft
	TileLeft
	TileTopLeft
	TileGrassTree1
	TileGrassTree2
	TileGrassTree3
	TileBoatPart1
	TileBoatPart2
	TileDock
	TilePath
)

// NamedKinds is the number of tile kinds with a name and a sheet clip.
const NamedKinds = int(TilePath) + 1

var kindNames = [NamedKinds]string{
	"grass", "grass-plant", "path2", "center", "top", "top-right", "right",
	"bottom-right", "bottom", "bottom-left", "left", "top-left",
	"tree1", "tree2", "tree3", "boat1", "boat2", "dock", "path",
}

func (k TileKind) String() string {
	if k >= 0 && int(k) < NamedKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsWall reports whether k blocks movement. Walls are the contiguous
// structural block from TileCenter through TileTopLeft.
func (k TileKind) IsWall() bool {
	return k >= TileCenter && k <= TileTopLeft
}

// Tile is one grid cell. It is not modified after loading.
type Tile struct {
	Box  Rect
	Kind TileKind
}

// MakeTile builds the tile at pixel position (x, y). kind must lie in
// [0, geo.SpriteCount).
func MakeTile(x, y int, kind TileKind, geo Geometry) (Tile, error) {
	if kind < 0 || int(kind) >= geo.SpriteCount {
		return Tile{}, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidTileType, int(kind), geo.SpriteCount)
	}
	return Tile{
		Box:  Rect{X: x, Y: y, W: geo.TileWidth, H: geo.TileHeight},
		Kind: kind,
	}, nil
}

// IsWall reports whether the tile blocks movement.
func (t Tile) IsWall() bool { return t.Kind.IsWall() }
