package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNewIsStone(t *testing.T) {
	m := NewStandard(DLevel{Dungeon: DungeonsOfDoom, Level: 3})
	if m.Width != ColNo || m.Height != RowNo {
		t.Fatalf("size = %dx%d, want %dx%d", m.Width, m.Height, ColNo, RowNo)
	}
	if got := m.Count(Stone); got != ColNo*RowNo {
		t.Errorf("Count(Stone) = %d, want %d", got, ColNo*RowNo)
	}
}

func TestIsPassable(t *testing.T) {
	m := New(5, 5)
	if m.IsPassable(2, 2) {
		t.Error("stone should not be passable")
	}
	m.SetKind(2, 2, Floor)
	if !m.IsPassable(2, 2) {
		t.Error("room floor should be passable")
	}
	if m.IsPassable(-1, 0) {
		t.Error("out-of-bounds should not be passable")
	}
}

func TestKindPredicates(t *testing.T) {
	cases := []struct {
		k                    Kind
		wall, door, passable bool
	}{
		{Stone, false, false, false},
		{VWall, true, false, false},
		{DBWall, true, false, false},
		{Tree, false, false, false},
		{SecretDoor, false, true, false},
		{SecretCorridor, false, false, false},
		{Door, false, true, true},
		{Corridor, false, false, true},
		{Lava, false, false, false},
		{Cloud, false, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.k.String(), func(t *testing.T) {
			if tc.k.IsWall() != tc.wall {
				t.Errorf("IsWall = %v", tc.k.IsWall())
			}
			if tc.k.IsDoor() != tc.door {
				t.Errorf("IsDoor = %v", tc.k.IsDoor())
			}
			if tc.k.IsPassable() != tc.passable {
				t.Errorf("IsPassable = %v", tc.k.IsPassable())
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for k := Stone; k < numKinds; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("marble"); ok {
		t.Error("unknown name should not parse")
	}
}

func TestDoorStateIndependentOfKind(t *testing.T) {
	m := New(5, 5)
	c := m.At(2, 2)
	c.Kind = SecretDoor
	c.Door = Locked | Trapped
	m.SetKind(2, 2, Door)
	if !m.At(2, 2).Door.Has(Locked) || !m.At(2, 2).Door.Has(Trapped) {
		t.Error("changing the kind must not clear the door state")
	}
	if NoDoor.Has(NoDoor) {
		t.Error("Has(NoDoor) should be false; use equality for doorways")
	}
	if got := (Closed | Trapped).String(); got != "closed+trapped" {
		t.Errorf("String() = %q", got)
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
}

func TestRoomOverlapsWithSpacing(t *testing.T) {
	a := Room{X: 5, Y: 5, W: 6, H: 5}
	cases := []struct {
		name string
		b    Room
		want bool
	}{
		{"walls one apart", Room{X: 13, Y: 5, W: 4, H: 4}, false},
		{"shared wall column", Room{X: 12, Y: 5, W: 4, H: 4}, true},
		{"far below", Room{X: 5, Y: 13, W: 3, H: 3}, false},
		{"interior overlap", Room{X: 7, Y: 6, W: 3, H: 3}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlaps(tc.b, 1); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			if got := tc.b.Overlaps(a, 1); got != tc.want {
				t.Errorf("Overlaps is not symmetric: %v", got)
			}
		})
	}
}

func TestRoomDoors(t *testing.T) {
	m := New(20, 10)
	m.Rooms = []Room{{X: 3, Y: 3, W: 4, H: 3}}
	m.SetKind(2, 4, Door)
	m.SetKind(5, 6, SecretDoor)
	m.SetKind(4, 4, Door) // interior, not part of the wall ring
	if got := len(m.RoomDoors(0)); got != 2 {
		t.Errorf("RoomDoors = %d, want 2", got)
	}
	if m.RoomAt(4, 4) != 0 || m.RoomAt(2, 4) != -1 {
		t.Error("RoomAt should only match interior cells")
	}
}

func TestDepth(t *testing.T) {
	cases := []struct {
		d    DLevel
		want int
	}{
		{DLevel{DungeonsOfDoom, 1}, 1},
		{DLevel{DungeonsOfDoom, 12}, 12},
		{DLevel{Gehennom, 1}, 30},
		{DLevel{GnomishMines, 3}, 4},
		{DLevel{Sokoban, 1}, 6},
		{DLevel{Quest, 5}, 20},
		{DLevel{VladsTower, 2}, 38},
		{DLevel{42, 3}, 3},
	}
	for _, tc := range cases {
		if got := tc.d.Depth(); got != tc.want {
			t.Errorf("%v.Depth() = %d, want %d", tc.d, got, tc.want)
		}
	}
}

func TestAt(t *testing.T) {
	m := New(5, 5)
	if m.At(2, 3).Kind != Stone {
		t.Fatal("expected Stone at (2,3) before any SetKind")
	}
	m.At(2, 3).Kind = Corridor
	if m.KindAt(2, 3) != Corridor {
		t.Fatal("At should return a pointer into the grid")
	}
	if m.KindAt(-4, 99) != Stone {
		t.Error("KindAt outside the grid should read as stone")
	}
}

func TestAddStairs(t *testing.T) {
	m := NewStandard(DLevel{DungeonsOfDoom, 4})
	m.AddStairs(10, 10, DLevel{DungeonsOfDoom, 3}, true, false)
	s, ok := m.StairsAt(10, 10)
	if !ok || !s.Up || s.Dest.Level != 3 {
		t.Fatalf("StairsAt = %+v, %v", s, ok)
	}
	if m.KindAt(10, 10) != Stairs {
		t.Error("stairs cell kind not set")
	}
}

func TestLevelCount(t *testing.T) {
	for n, _n := 0, DungeonCount(); n < _n; n++ {
		if LevelCount(n) < 1 {
			t.Errorf("%s has no levels", DungeonName(n))
		}
	}
	if LevelCount(-1) != 0 || LevelCount(DungeonCount()) != 0 {
		t.Error("unknown dungeons should have no levels")
	}
	cases := []struct {
		d    DLevel
		want bool
	}{
		{DLevel{DungeonsOfDoom, 1}, true},
		{DLevel{DungeonsOfDoom, 26}, true},
		{DLevel{DungeonsOfDoom, 27}, false},
		{DLevel{Sokoban, 0}, false},
		{DLevel{FortLudios, 1}, true},
		{DLevel{99, 1}, false},
	}
	for _, c := range cases {
		if got := c.d.Valid(); got != c.want {
			t.Errorf("%v.Valid() = %v, want %v", c.d, got, c.want)
		}
	}
}

func TestIsTransparent(t *testing.T) {
	m := New(6, 1)
	m.SetKind(0, 0, Floor)
	m.SetKind(1, 0, Door)
	m.At(1, 0).Door = Open
	m.SetKind(2, 0, Door)
	m.At(2, 0).Door = Locked
	m.SetKind(3, 0, HWall)
	m.SetKind(4, 0, Pool)
	cases := []struct {
		x    int
		want bool
	}{
		{0, true}, {1, true}, {2, false}, {3, false}, {4, true}, {5, false}, {6, false},
	}
	for _, c := range cases {
		if got := m.IsTransparent(c.x, 0); got != c.want {
			t.Errorf("IsTransparent(%d,0) = %v, want %v", c.x, got, c.want)
		}
	}
}
