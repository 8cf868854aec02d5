package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/generate"
	"dungeongen/internal/mapdump"
	"dungeongen/internal/vision"
)

func newSimScreen(w, h int) tcell.Screen {
	ss := tcell.NewSimulationScreen("UTF-8")
	_ = ss.Init()
	ss.SetSize(w, h)
	return ss
}

// sample is a small lit room with stairs, a trap, a portal and doors.
func sample() *gamemap.Level {
	lvl := gamemap.New(12, 7)
	lvl.DLevel = gamemap.DLevel{Dungeon: gamemap.GnomishMines, Level: 2}
	room := gamemap.Room{X: 2, Y: 2, W: 6, H: 3, Lit: true}
	generate.CarveRoom(lvl, room)
	lvl.Rooms = append(lvl.Rooms, room)
	lvl.AddStairs(2, 2, gamemap.DLevel{Dungeon: gamemap.GnomishMines, Level: 1}, true, false)
	lvl.AddStairs(7, 4, gamemap.DLevel{Dungeon: gamemap.GnomishMines, Level: 3}, false, false)
	lvl.AddTrap(4, 3, gamemap.Pit)
	lvl.AddPortal(6, 3, gamemap.DLevel{Dungeon: gamemap.Endgame, Level: 1})
	lvl.SetKind(8, 3, gamemap.Door)
	lvl.At(8, 3).Door = gamemap.Locked
	lvl.SetKind(5, 1, gamemap.Door)
	lvl.At(5, 1).Door = gamemap.Open
	return lvl
}

func screenRow(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x, _n := 0, w; x < _n; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestRendererViewFollowsScreenSize(t *testing.T) {
	s := newSimScreen(40, 13)
	if w, h := s.Size(); w != 40 || h != 13 {
		t.Fatalf("screen is %dx%d, want 40x13", w, h)
	}
	r := NewRenderer(s, ASCII)
	if r.camera.ViewWidth != 40 || r.camera.ViewHeight != 13-hudRows {
		t.Errorf("view %dx%d", r.camera.ViewWidth, r.camera.ViewHeight)
	}
}

func TestDrawASCIIMatchesDump(t *testing.T) {
	lvl := sample()
	s := newSimScreen(80, 24)
	r := NewRenderer(s, ASCII)
	r.DrawFrame(lvl)
	for y, _n := 0, lvl.Height; y < _n; y++ {
		if got, want := screenRow(s, y), mapdump.Row(lvl, y); got != want {
			t.Errorf("row %d = %q, want %q", y, got, want)
		}
	}
}

func TestDrawASCIIStandardLevelFits(t *testing.T) {
	lvl, err := generate.Generate(generate.DefaultConfig(5, gamemap.DLevel{Level: 2}))
	if err != nil {
		t.Fatal(err)
	}
	s := newSimScreen(gamemap.ColNo, gamemap.RowNo+hudRows)
	r := NewRenderer(s, ASCII)
	r.DrawFrame(lvl)
	for y, _n := 0, lvl.Height; y < _n; y++ {
		if got, want := screenRow(s, y), mapdump.Row(lvl, y); got != want {
			t.Fatalf("row %d = %q, want %q", y, got, want)
		}
	}
}

func TestDrawEmoji(t *testing.T) {
	lvl := sample()
	s := newSimScreen(80, 24)
	r := NewRenderer(s, Emoji)
	r.DrawFrame(lvl)
	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"up stairs", 2, 2, '🔼'},
		{"down stairs", 7, 4, '🔽'},
		{"trap", 4, 3, '🪤'},
		{"portal", 6, 3, '🌀'},
		{"locked door", 8, 3, '🔒'},
		{"open door", 5, 1, '🚪'},
		{"floor", 3, 3, '🟫'},
		{"wall", 1, 1, '🪨'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _, _ := s.GetContent(tt.x*2, tt.y)
			if got != tt.want {
				t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
	if got, _, _, _ := s.GetContent(0, 0); got != ' ' {
		t.Errorf("rock drawn as %q", got)
	}
}

func TestEmojiDimWhenUnlit(t *testing.T) {
	lvl := sample()
	theme := themeFor(lvl.DLevel.Dungeon)
	if got := EmojiAt(lvl, 3, 3, theme); got != theme.Floor {
		t.Errorf("lit floor = %q", got)
	}
	lvl.At(3, 3).Lit = false
	lvl.At(1, 1).Lit = false
	if got := EmojiAt(lvl, 3, 3, theme); got != theme.DimFloor {
		t.Errorf("unlit floor = %q", got)
	}
	if got := EmojiAt(lvl, 1, 1, theme); got != theme.DimWall {
		t.Errorf("unlit wall = %q", got)
	}
}

func TestThemeForEveryDungeon(t *testing.T) {
	for dn, _n := 0, gamemap.DungeonCount(); dn < _n; dn++ {
		th := themeFor(dn)
		if th.Wall == "" || th.Floor == "" || th.DimWall == "" || th.DimFloor == "" {
			t.Errorf("dungeon %d has an incomplete theme", dn)
		}
	}
	if themeFor(99) != TileThemes[gamemap.DungeonsOfDoom] {
		t.Error("unknown dungeon should fall back to the main dungeon")
	}
}

func TestHUD(t *testing.T) {
	lvl := sample()
	lvl.Flags.NoTeleport = true
	s := newSimScreen(80, 24)
	r := NewRenderer(s, ASCII)
	r.DrawFrame(lvl)
	r.DrawHUD(lvl, "seed 42")
	if got := screenRow(s, 21); got != mapdump.Header(lvl) {
		t.Errorf("header line = %q", got)
	}
	info := screenRow(s, 22)
	for _, want := range []string{"seed 42", "noteleport", "traps 2", "ascii"} {
		if !strings.Contains(info, want) {
			t.Errorf("info line %q lacks %q", info, want)
		}
	}
	if got := screenRow(s, 23); got != HelpLine {
		t.Errorf("help line = %q", got)
	}
}

func TestToggleModeKeepsOffset(t *testing.T) {
	s := newSimScreen(40, 10)
	r := NewRenderer(s, ASCII)
	r.Pan(5, 2)
	r.ToggleMode()
	if r.Mode() != Emoji || r.camera.CellWidth != 2 {
		t.Fatalf("mode %v width %d", r.Mode(), r.camera.CellWidth)
	}
	if r.camera.OffsetX != 5 || r.camera.OffsetY != 2 {
		t.Errorf("offset moved to %d,%d", r.camera.OffsetX, r.camera.OffsetY)
	}
	r.ToggleMode()
	if r.Mode() != ASCII {
		t.Errorf("mode = %v", r.Mode())
	}
}

func TestPanIsClampedToMap(t *testing.T) {
	lvl := gamemap.NewStandard(gamemap.DLevel{Level: 1})
	s := newSimScreen(40, 13)
	r := NewRenderer(s, ASCII)
	r.Pan(-10, -10)
	r.DrawFrame(lvl)
	if r.camera.OffsetX != 0 || r.camera.OffsetY != 0 {
		t.Errorf("offset %d,%d after panning past the corner", r.camera.OffsetX, r.camera.OffsetY)
	}
	r.Pan(500, 500)
	r.DrawFrame(lvl)
	if r.camera.OffsetX != lvl.Width-40 || r.camera.OffsetY != lvl.Height-10 {
		t.Errorf("offset %d,%d after panning past the far corner", r.camera.OffsetX, r.camera.OffsetY)
	}
}

func TestCamera(t *testing.T) {
	c := NewCamera(0, 0, 2, 20, 10)
	c.OffsetX, c.OffsetY = 3, 1
	tests := []struct {
		wx, wy  int
		sx, sy  int
		visible bool
	}{
		{3, 1, 0, 0, true},
		{12, 10, 18, 9, true},
		{13, 1, 20, 0, false},
		{2, 1, -2, 0, false},
		{3, 11, 0, 10, false},
	}
	for _, tt := range tests {
		sx, sy, vis := c.WorldToScreen(tt.wx, tt.wy)
		if sx != tt.sx || sy != tt.sy || vis != tt.visible {
			t.Errorf("WorldToScreen(%d,%d) = %d,%d,%v want %d,%d,%v",
				tt.wx, tt.wy, sx, sy, vis, tt.sx, tt.sy, tt.visible)
		}
		if tt.visible {
			if wx, wy := c.ScreenToWorld(sx, sy); wx != tt.wx || wy != tt.wy {
				t.Errorf("ScreenToWorld(%d,%d) = %d,%d", sx, sy, wx, wy)
			}
		}
	}
}

func TestCameraCenter(t *testing.T) {
	c := NewCamera(40, 10, 1, 20, 10)
	if c.OffsetX != 30 || c.OffsetY != 5 {
		t.Errorf("offset = %d,%d", c.OffsetX, c.OffsetY)
	}
	c = NewCamera(40, 10, 2, 20, 10)
	if c.OffsetX != 35 {
		t.Errorf("emoji offset = %d", c.OffsetX)
	}
}

func TestMaskHidesCells(t *testing.T) {
	lvl := sample()
	s := newSimScreen(80, 24)
	r := NewRenderer(s, ASCII)
	mask := make(vision.Grid, lvl.Height)
	for y := range mask {
		mask[y] = make([]bool, lvl.Width)
	}
	mask[2][2] = true
	r.SetMask(mask)
	r.DrawFrame(lvl)
	if got, _, _, _ := s.GetContent(2, 2); got != '<' {
		t.Errorf("unmasked stairs drawn as %q", got)
	}
	if got, _, _, _ := s.GetContent(3, 3); got != ' ' {
		t.Errorf("masked floor drawn as %q", got)
	}
	r.SetMask(nil)
	r.DrawFrame(lvl)
	if got, _, _, _ := s.GetContent(3, 3); got != '.' {
		t.Errorf("floor drawn as %q without a mask", got)
	}
}
