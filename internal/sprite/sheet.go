// Package sprite holds the fixed sprite-sheet layouts and the image
// processing applied to sheets before they are uploaded to a renderer.
package sprite

import (
	"image"

	"red-rockit/internal/gamemap"
)

// Player sheet cell size in pixels.
const (
	PlayerCellWidth  = 32
	PlayerCellHeight = 48
)

// PlayerFrames is the number of player animation frames.
const PlayerFrames = 16

// Player frames. Each direction owns four consecutive frames.
const (
	FrameUp    = 0
	FrameLeft  = 4
	FrameRight = 8
	FrameDown  = 12
)

// Tile sheet cell size in pixels.
const (
	TileCellWidth  = 80
	TileCellHeight = 80
)

// tileOrigins is the top-left of each named tile kind on the terrain sheet.
var tileOrigins = [gamemap.NamedKinds][2]int{
	gamemap.TileGrass:       {0, 0},
	gamemap.TileGrassPlant:  {0, 80},
	gamemap.TilePath:        {0, 160},
	gamemap.TileGrassTree1:  {0, 240},
	gamemap.TileGrassTree2:  {0, 320},
	gamemap.TileGrassTree3:  {0, 400},
	gamemap.TileTopLeft:     {80, 0},
	gamemap.TileLeft:        {80, 80},
	gamemap.TileBottomLeft:  {80, 160},
	gamemap.TileTop:         {160, 0},
	gamemap.TileCenter:      {160, 80},
	gamemap.TileBottom:      {160, 160},
	gamemap.TileTopRight:    {240, 0},
	gamemap.TileRight:       {240, 80},
	gamemap.TileBottomRight: {240, 160},
	gamemap.TileBoatPart1:   {320, 0},
	gamemap.TileBoatPart2:   {400, 0},
	gamemap.TileDock:        {320, 80},
	gamemap.TilePath2:       {320, 160},
}

// playerRows maps a direction's first frame to its row on the player sheet.
var playerRows = map[int]int{
	FrameDown:  0,
	FrameLeft:  1,
	FrameRight: 2,
	FrameUp:    3,
}

// TileClip returns the source rectangle for kind on the terrain sheet.
// Kinds that pass map validation but have no sheet cell report false.
func TileClip(kind gamemap.TileKind) (gamemap.Rect, bool) {
	if kind < 0 || int(kind) >= gamemap.NamedKinds {
		return gamemap.Rect{}, false
	}
	o := tileOrigins[kind]
	return gamemap.Rect{X: o[0], Y: o[1], W: TileCellWidth, H: TileCellHeight}, true
}

// PlayerClip returns the source rectangle for an animation frame.
func PlayerClip(frame int) (gamemap.Rect, bool) {
	if frame < 0 || frame >= PlayerFrames {
		return gamemap.Rect{}, false
	}
	base := frame - frame%4
	return gamemap.Rect{
		X: (frame % 4) * PlayerCellWidth,
		Y: playerRows[base] * PlayerCellHeight,
		W: PlayerCellWidth,
		H: PlayerCellHeight,
	}, true
}

// ToImage converts a level rectangle to an image rectangle.
func ToImage(r gamemap.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}
