// Package mapdump writes levels as text: plain ASCII, ANSI-coloured ASCII
// and a JSON view for tools.
package mapdump

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"dungeongen/internal/gamemap"
)

// Glyph returns the symbol shown at (x, y). Stairs, boulders and traps are
// drawn over the terrain beneath them.
func Glyph(lvl *gamemap.Level, x, y int) rune {
	if s, ok := lvl.StairsAt(x, y); ok {
		if s.Up {
			return '<'
		}
		return '>'
	}
	if lvl.HasBoulder(x, y) {
		return '0'
	}
	if _, ok := lvl.TrapAt(x, y); ok {
		return '^'
	}
	c := lvl.At(x, y)
	if c.Kind == gamemap.Door {
		return doorGlyph(lvl, x, y, c.Door)
	}
	return c.Kind.Glyph()
}

// doorGlyph draws an open door across its doorway, a shut door as '+' and
// an empty or broken doorway as floor.
func doorGlyph(lvl *gamemap.Level, x, y int, st gamemap.DoorState) rune {
	switch {
	case st == gamemap.NoDoor || st.Has(gamemap.Broken):
		return '.'
	case st.Has(gamemap.Open):
		if lvl.KindAt(x-1, y).IsWall() || lvl.KindAt(x+1, y).IsWall() {
			return '|'
		}
		return '-'
	}
	return '+'
}

// Row renders line y of lvl with trailing blanks trimmed.
func Row(lvl *gamemap.Level, y int) string {
	var sb strings.Builder
	for x, _n := 0, lvl.Width; x < _n; x++ {
		sb.WriteRune(Glyph(lvl, x, y))
	}
	return strings.TrimRight(sb.String(), " ")
}

// Header is the one-line title printed above a dump.
func Header(lvl *gamemap.Level) string {
	name := lvl.Special
	if name == "" {
		name = "ordinary"
	}
	return fmt.Sprintf("%s  [%s]  depth %d  rooms %d", lvl.DLevel, name, lvl.DLevel.Depth(), len(lvl.Rooms))
}

// Write prints the header and the map as plain ASCII.
func Write(w io.Writer, lvl *gamemap.Level) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header(lvl))
	for y, _n := 0, lvl.Height; y < _n; y++ {
		fmt.Fprintln(bw, Row(lvl, y))
	}
	return bw.Flush()
}

var (
	styleWall    = color.Style{color.FgGray}
	styleFloor   = color.Style{color.FgWhite}
	styleDark    = color.Style{color.FgDarkGray}
	styleDoor    = color.Style{color.FgYellow, color.OpBold}
	styleStairs  = color.Style{color.FgWhite, color.OpBold}
	styleWater   = color.Style{color.FgBlue, color.OpBold}
	styleLava    = color.Style{color.FgRed, color.OpBold}
	styleTrap    = color.Style{color.FgMagenta}
	styleBoulder = color.Style{color.FgWhite}
	styleFeature = color.Style{color.FgCyan, color.OpBold}
	styleTree    = color.Style{color.FgGreen}
	styleBars    = color.Style{color.FgCyan}
)

func styleAt(lvl *gamemap.Level, x, y int) color.Style {
	if _, ok := lvl.StairsAt(x, y); ok {
		return styleStairs
	}
	if lvl.HasBoulder(x, y) {
		return styleBoulder
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
	case k == gamemap.IronBars:
		return styleBars
	case k == gamemap.Fountain, k == gamemap.Throne, k == gamemap.Sink,
		k == gamemap.Altar, k == gamemap.Grave:
		return styleFeature
	case !c.Lit:
		return styleDark
	}
	return styleFloor
}

// WriteColor prints the map with ANSI colours. Colour output follows the
// gookit/color global switches, so the caller decides whether codes are
// emitted. Runs of equally styled cells share one escape sequence.
func WriteColor(w io.Writer, lvl *gamemap.Level) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, color.Style{color.OpBold}.Sprint(Header(lvl)))
	for y, _n := 0, lvl.Height; y < _n; y++ {
		row := []rune(Row(lvl, y))
		for x := 0; x < len(row); {
			st := styleAt(lvl, x, y)
			end := x + 1
			for end < len(row) && sameStyle(styleAt(lvl, end, y), st) {
				end++
			}
			bw.WriteString(st.Sprint(string(row[x:end])))
			x = end
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func sameStyle(a, b color.Style) bool {
	return a.String() == b.String()
}

type legendEntry struct {
	glyph rune
	name  string
}

var legend = []legendEntry{
	{'-', "wall"}, {'.', "floor or doorway"}, {'#', "corridor"}, {'+', "door"},
	{'<', "up stairs"}, {'>', "down stairs"}, {'^', "trap"}, {'0', "boulder"},
	{'{', "fountain"}, {'_', "altar"}, {'\\', "throne"}, {'|', "grave or open door"},
	{'}', "water or lava"},
}

// WriteLegend prints the glyphs that appear on lvl with their meaning, in
// two padded columns.
func WriteLegend(w io.Writer, lvl *gamemap.Level) error {
	used := map[rune]bool{}
	for y, _n := 0, lvl.Height; y < _n; y++ {
		for _, r := range Row(lvl, y) {
			used[r] = true
		}
	}
	bw := bufio.NewWriter(w)
	col := 0
	for _, e := range legend {
		if !used[e.glyph] {
			continue
		}
		cell := runewidth.FillRight(fmt.Sprintf("%c  %s", e.glyph, e.name), 26)
		bw.WriteString(cell)
		if col++; col%3 == 0 {
			bw.WriteByte('\n')
		}
	}
	if col%3 != 0 {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
