package render

import (
	"github.com/gdamore/tcell/v2"

	"dungeongen/internal/gamemap"
)

// FloorTiles holds the emoji glyphs used to draw one dungeon's walls and
// floors. Emoji carry their own colours, so unlit cells get distinct dim
// glyphs instead of a tinted foreground.
type FloorTiles struct {
	Wall     string // lit wall
	Floor    string // lit floor
	DimWall  string // wall of an unlit area
	DimFloor string // floor of an unlit area
}

// TileThemes maps a dungeon number to its tile set.
var TileThemes = [...]FloorTiles{
	gamemap.DungeonsOfDoom: {
		Wall:     "🧱",
		Floor:    "🟫",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	gamemap.Gehennom: {
		Wall:     "🌋",
		Floor:    "🟥",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	gamemap.GnomishMines: {
		Wall:     "🪨",
		Floor:    "🟫",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	gamemap.Sokoban: {
		Wall:     "🧱",
		Floor:    "⬜",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	gamemap.Quest: {
		Wall:     "🏰",
		Floor:    "🟩",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	gamemap.FortLudios: {
		Wall:     "🏯",
		Floor:    "🟨",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	gamemap.VladsTower: {
		Wall:     "🦇",
		Floor:    "⬛",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	gamemap.Endgame: {
		Wall:     "🌈",
		Floor:    "🌟",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
}

// themeFor falls back to the main dungeon for unknown numbers.
func themeFor(dungeon int) FloorTiles {
	if dungeon < 0 || dungeon >= len(TileThemes) {
		return TileThemes[gamemap.DungeonsOfDoom]
	}
	return TileThemes[dungeon]
}

// featureEmoji covers the kinds that look the same in every dungeon.
var featureEmoji = map[gamemap.Kind]string{
	gamemap.Tree:           "🌳",
	gamemap.Pool:           "🟦",
	gamemap.Moat:           "🟦",
	gamemap.Water:          "🌊",
	gamemap.Lava:           "🔥",
	gamemap.IronBars:       "⛓",
	gamemap.Door:           "🚪",
	gamemap.Corridor:       "⬛",
	gamemap.Fountain:       "⛲",
	gamemap.Throne:         "👑",
	gamemap.Sink:           "🚰",
	gamemap.Grave:          "🪦",
	gamemap.Altar:          "🛐",
	gamemap.Ice:            "🧊",
	gamemap.DrawbridgeUp:   "🟦",
	gamemap.DrawbridgeDown: "🟫",
	gamemap.Air:            "🌫",
	gamemap.Cloud:          "☁️",
}

// ASCII mode colours, by what the cell shows.
var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDark    = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleDoor    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStairs  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleWater   = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleLava    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleTrap    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleFeature = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleTree    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)
