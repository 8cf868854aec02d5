// Package render draws levels onto a tcell screen, either as classic ASCII
// or with per-dungeon emoji tiles.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/mapdump"
	"dungeongen/internal/vision"
)

// Mode selects how cells are drawn.
type Mode uint8

const (
	ASCII Mode = iota
	Emoji
)

func (m Mode) String() string {
	if m == Emoji {
		return "emoji"
	}
	return "ascii"
}

func (m Mode) cellWidth() int {
	if m == Emoji {
		return 2
	}
	return 1
}

// hudRows is the space kept below the map for the status lines.
const hudRows = 3

// Renderer draws levels onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	mode   Mode
	mask   vision.Grid // nil draws every cell
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, mode Mode) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: &Camera{CellWidth: mode.cellWidth(), ViewWidth: w, ViewHeight: max(h-hudRows, 1)},
		mode:   mode,
	}
}

// Mode reports the current drawing mode.
func (r *Renderer) Mode() Mode { return r.mode }

// SetMode switches drawing mode, keeping the same map cell at the left edge.
func (r *Renderer) SetMode(m Mode) {
	r.mode = m
	r.camera.CellWidth = m.cellWidth()
}

// ToggleMode flips between ASCII and emoji.
func (r *Renderer) ToggleMode() {
	if r.mode == Emoji {
		r.SetMode(ASCII)
	} else {
		r.SetMode(Emoji)
	}
}

// SetMask limits drawing to the cells marked in g. A nil mask draws the
// whole level.
func (r *Renderer) SetMask(g vision.Grid) { r.mask = g }

func (r *Renderer) hidden(x, y int) bool {
	return r.mask != nil && !r.mask.Visible(x, y)
}

// Resize picks up a new screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-hudRows, 1)
}

// Pan scrolls the view by (dx, dy) cells.
func (r *Renderer) Pan(dx, dy int) { r.camera.Pan(dx, dy) }

// Home scrolls back to the top-left corner.
func (r *Renderer) Home() { r.camera.OffsetX, r.camera.OffsetY = 0, 0 }

// CenterOn recentres the camera on map position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// WorldToScreen converts map coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame clears the screen and renders the level's cells.
func (r *Renderer) DrawFrame(lvl *gamemap.Level) {
	r.screen.Clear()
	r.camera.Clamp(lvl.Width, lvl.Height)
	if r.mode == Emoji {
		r.drawEmoji(lvl)
	} else {
		r.drawASCII(lvl)
	}
}

func (r *Renderer) drawASCII(lvl *gamemap.Level) {
	for y, _n := 0, lvl.Height; y < _n; y++ {
		for x, _n := 0, lvl.Width; x < _n; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen || r.hidden(x, y) {
				continue
			}
			g := mapdump.Glyph(lvl, x, y)
			if g == ' ' {
				continue
			}
			r.screen.SetContent(sx, sy, g, nil, asciiStyle(lvl, x, y))
		}
	}
}

func asciiStyle(lvl *gamemap.Level, x, y int) tcell.Style {
	if _, ok := lvl.StairsAt(x, y); ok {
		return styleStairs
	}
	if lvl.HasBoulder(x, y) {
		return styleFloor
	}
	if _, ok := lvl.TrapAt(x, y); ok {
		return styleTrap
	}
	c := lvl.At(x, y)
	switch k := c.Kind; {
	case k == gamemap.Lava:
		return styleLava
	case k.IsLiquid():
		return styleWater
	case k.IsWall():
		return styleWall
	case k.IsDoor():
		return styleDoor
	case k == gamemap.Tree:
		return styleTree
	case k == gamemap.Fountain, k == gamemap.Throne, k == gamemap.Sink,
		k == gamemap.Altar, k == gamemap.Grave, k == gamemap.IronBars:
		return styleFeature
	case !c.Lit:
		return styleDark
	}
	return styleFloor
}

func (r *Renderer) drawEmoji(lvl *gamemap.Level) {
	theme := themeFor(lvl.DLevel.Dungeon)
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y, _n := 0, lvl.Height; y < _n; y++ {
		for x, _n := 0, lvl.Width; x < _n; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen || r.hidden(x, y) {
				continue
			}
			if g := EmojiAt(lvl, x, y, theme); g != "" {
				r.putGlyph(sx, sy, g, style)
			}
		}
	}
}

// EmojiAt returns the emoji tile for (x, y), or "" for blank rock. Objects
// on the cell win over its terrain, and unlit walls and floors use the
// theme's dim tiles.
func EmojiAt(lvl *gamemap.Level, x, y int, theme FloorTiles) string {
	if s, ok := lvl.StairsAt(x, y); ok {
		if s.Up {
			return "🔼"
		}
		return "🔽"
	}
	if lvl.HasBoulder(x, y) {
		return "⚪"
	}
	if t, ok := lvl.TrapAt(x, y); ok {
		if t.Kind == gamemap.MagicPortal {
			return "🌀"
		}
		return "🪤"
	}
	c := lvl.At(x, y)
	switch k := c.Kind; {
	case k == gamemap.Stone, k == gamemap.SecretCorridor:
		return ""
	case k.IsWall(), k == gamemap.SecretDoor:
		if c.Lit {
			return theme.Wall
		}
		return theme.DimWall
	case k == gamemap.Door:
		switch {
		case c.Door == gamemap.NoDoor, c.Door.Has(gamemap.Broken):
			break
		case c.Door.Has(gamemap.Locked):
			return "🔒"
		default:
			return "🚪"
		}
	case k == gamemap.Floor:
	default:
		if g, ok := featureEmoji[k]; ok {
			return g
		}
	}
	if c.Lit {
		return theme.Floor
	}
	return theme.DimFloor
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
	// Fill the rest of the cell to avoid rendering artifacts.
	for col := x + 1; col < x+max(r.camera.CellWidth, runewidth.StringWidth(glyph)); col++ {
		r.screen.SetContent(col, y, ' ', nil, style)
	}
}
