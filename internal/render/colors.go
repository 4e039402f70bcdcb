package render

import (
	"red-rockit/internal/gamemap"
	"red-rockit/internal/player"

	"github.com/gdamore/tcell/v2"
)

// tileGlyphs holds the emoji drawn for each named tile kind. Emoji carry
// their own colors, so the terminal style only sets the background.
var tileGlyphs = [gamemap.NamedKinds]string{
	gamemap.TileGrass:       "🟩",
	gamemap.TileGrassPlant:  "🌱",
	gamemap.TilePath2:       "🟫",
	gamemap.TileCenter:      "🪨",
	gamemap.TileTop:         "🧱",
	gamemap.TileTopRight:    "🧱",
	gamemap.TileRight:       "🧱",
	gamemap.TileBottomRight: "🧱",
	gamemap.TileBottom:      "🧱",
	gamemap.TileBottomLeft:  "🧱",
	gamemap.TileLeft:        "🧱",
	gamemap.TileTopLeft:     "🧱",
	gamemap.TileGrassTree1:  "🌲",
	gamemap.TileGrassTree2:  "🌳",
	gamemap.TileGrassTree3:  "🌴",
	gamemap.TileBoatPart1:   "🛶",
	gamemap.TileBoatPart2:   "🛶",
	gamemap.TileDock:        "🟧",
	gamemap.TilePath:        "🟫",
}

// unknownGlyph is drawn for kinds that load but have no artwork.
const unknownGlyph = "⬛"

// TileGlyph returns the emoji for a tile kind.
func TileGlyph(k gamemap.TileKind) string {
	if k >= 0 && int(k) < gamemap.NamedKinds {
		return tileGlyphs[k]
	}
	return unknownGlyph
}

// PlayerGlyph returns the emoji for a player frame: standing on the first
// pose of a cycle, walking on the other three.
func PlayerGlyph(frame int) string {
	if frame%4 == 0 {
		return "🧍"
	}
	return "🚶"
}

// headingArrows marks the facing direction next to the player.
var headingArrows = map[player.Heading]rune{
	player.HeadingNone:  '·',
	player.HeadingNorth: '↑',
	player.HeadingSouth: '↓',
	player.HeadingEast:  '→',
	player.HeadingWest:  '←',
}

var (
	styleMap    = tcell.StyleDefault.Background(tcell.ColorBlack)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)
