package generate

import (
	"testing"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

func TestTrackerMerge(t *testing.T) {
	tr := NewTracker(5)
	if tr.Classes() != 5 || tr.Connected() {
		t.Fatalf("fresh tracker: classes=%d connected=%v", tr.Classes(), tr.Connected())
	}
	tr.Merge(3, 4)
	if tr.Class(4) != 3 {
		t.Errorf("Class(4) = %d, want 3", tr.Class(4))
	}
	tr.Merge(4, 1)
	for _, i := range []int{1, 3, 4} {
		if tr.Class(i) != 1 {
			t.Errorf("Class(%d) = %d, want 1 after merging into room 1", i, tr.Class(i))
		}
	}
	if !tr.Same(1, 4) || tr.Same(0, 4) {
		t.Error("Same disagrees with the merged classes")
	}
	if tr.Classes() != 3 {
		t.Errorf("Classes() = %d, want 3", tr.Classes())
	}
	tr.Merge(0, 2)
	tr.Merge(2, 3)
	if !tr.Connected() {
		t.Error("tracker should be connected after joining every class")
	}
	for i, _n := 0, tr.Len(); i < _n; i++ {
		if tr.Class(i) != 0 {
			t.Errorf("Class(%d) = %d, want 0", i, tr.Class(i))
		}
	}
}

// twoRooms returns a level holding two carved 6x5 rooms side by side.
func twoRooms() *gamemap.Level {
	lvl := gamemap.NewStandard(gamemap.DLevel{Level: 1})
	lvl.Rooms = []gamemap.Room{
		{X: 5, Y: 5, W: 6, H: 5, Lit: true},
		{X: 20, Y: 5, W: 6, H: 5, Lit: true},
	}
	for _, r := range lvl.Rooms {
		CarveRoom(lvl, r)
	}
	return lvl
}

func doorsInColumn(lvl *gamemap.Level, x, y1, y2 int) int {
	n := 0
	for y := y1; y <= y2; y++ {
		if lvl.KindAt(x, y).IsDoor() {
			n++
		}
	}
	return n
}

func TestJoinRoomsSideBySide(t *testing.T) {
	for seed, _n := uint64(0), uint64(100); seed < _n; seed++ {
		lvl := twoRooms()
		tr := NewTracker(2)
		if !JoinRooms(lvl, rng.New(seed), 0, 1, tr, false) {
			t.Errorf("seed %d: join failed", seed)
			continue
		}
		if !tr.Same(0, 1) {
			t.Errorf("seed %d: tracker not merged", seed)
		}
		if n := doorsInColumn(lvl, 11, 5, 9); n != 1 {
			t.Errorf("seed %d: %d doors on the left room's east wall, want 1", seed, n)
		}
		if n := doorsInColumn(lvl, 19, 5, 9); n != 1 {
			t.Errorf("seed %d: %d doors on the right room's west wall, want 1", seed, n)
		}
		for x := 12; x <= 18; x++ {
			dug := false
			for y, _n := 0, lvl.Height; y < _n; y++ {
				if k := lvl.KindAt(x, y); k == gamemap.Corridor || k == gamemap.SecretCorridor {
					dug = true
					break
				}
			}
			if !dug {
				t.Errorf("seed %d: no corridor cell in column %d", seed, x)
			}
		}
		if err := CheckConnectivity(lvl); err != nil {
			t.Errorf("seed %d: %v", seed, err)
		}
	}
}

func TestJoinRoomsAlreadyConnectedIsNoop(t *testing.T) {
	lvl := twoRooms()
	tr := NewTracker(2)
	tr.Merge(0, 1)
	rnd := rng.New(4)
	if !JoinRooms(lvl, rnd, 0, 1, tr, false) {
		t.Error("join of connected rooms should report success")
	}
	if rnd.Draws() != 0 || lvl.Count(gamemap.Corridor) != 0 {
		t.Error("join of connected rooms should neither draw nor dig")
	}
}

func TestJoinRoomsBadIndices(t *testing.T) {
	lvl := twoRooms()
	tr := NewTracker(2)
	for _, pair := range [][2]int{{0, 0}, {-1, 1}, {0, 2}} {
		if JoinRooms(lvl, rng.New(1), pair[0], pair[1], tr, false) {
			t.Errorf("JoinRooms(%d,%d) should fail", pair[0], pair[1])
		}
	}
}

func TestMakeCorridorsConnectsPlacedRooms(t *testing.T) {
	for seed, _n := uint64(0), uint64(100); seed < _n; seed++ {
		lvl := gamemap.NewStandard(gamemap.DLevel{Level: 3})
		rnd := rng.New(seed)
		lvl.Rooms = PlaceRooms(lvl, rnd, 8, DefaultSizes, 1, 24)
		SortRooms(lvl.Rooms)
		tr, err := ConnectAll(lvl, rnd)
		if err != nil {
			t.Errorf("seed %d: %v", seed, err)
			continue
		}
		if tr.Len() != len(lvl.Rooms) {
			t.Errorf("seed %d: tracker covers %d rooms, level has %d", seed, tr.Len(), len(lvl.Rooms))
		}
	}
}

func TestEnsureConnectedTunnels(t *testing.T) {
	cases := []struct {
		name      string
		rooms     []gamemap.Room
		doors     []gamemap.Point
		corridors []gamemap.Point
	}{
		{
			name:      "side by side",
			rooms:     []gamemap.Room{{X: 5, Y: 5, W: 6, H: 5}, {X: 20, Y: 5, W: 6, H: 5}},
			doors:     []gamemap.Point{{X: 11, Y: 5}, {X: 19, Y: 5}},
			corridors: []gamemap.Point{{X: 12, Y: 5}, {X: 15, Y: 5}, {X: 18, Y: 5}},
		},
		{
			name:  "shared wall line",
			rooms: []gamemap.Room{{X: 1, Y: 5, W: 9, H: 5}, {X: 12, Y: 5, W: 5, H: 5}},
			doors: []gamemap.Point{{X: 10, Y: 5}, {X: 11, Y: 5}},
		},
		{
			name:      "stacked",
			rooms:     []gamemap.Room{{X: 5, Y: 2, W: 6, H: 4}, {X: 7, Y: 12, W: 6, H: 4}},
			doors:     []gamemap.Point{{X: 7, Y: 6}, {X: 7, Y: 11}},
			corridors: []gamemap.Point{{X: 7, Y: 7}, {X: 7, Y: 10}},
		},
	}
	for _, tc := range cases {
		lvl := gamemap.NewStandard(gamemap.DLevel{Level: 1})
		lvl.Rooms = tc.rooms
		for _, r := range tc.rooms {
			CarveRoom(lvl, r)
		}
		if err := CheckConnectivity(lvl); err == nil {
			t.Fatalf("%s: rooms should start disconnected", tc.name)
		}
		tr := NewTracker(len(tc.rooms))
		if err := ensureConnected(lvl, tr); err != nil {
			t.Errorf("%s: %v", tc.name, err)
		}
		if !tr.Connected() {
			t.Errorf("%s: tracker not merged", tc.name)
		}
		for _, p := range tc.doors {
			if c := lvl.At(p.X, p.Y); c.Kind != gamemap.Door || c.Door != gamemap.NoDoor {
				t.Errorf("%s: %v = %v/%v, want doorway", tc.name, p, c.Kind, c.Door)
			}
		}
		for _, p := range tc.corridors {
			if k := lvl.KindAt(p.X, p.Y); k != gamemap.Corridor {
				t.Errorf("%s: %v = %v, want corridor", tc.name, p, k)
			}
		}
	}
}

func TestEnsureConnectedIgnoresVaults(t *testing.T) {
	lvl := gamemap.NewStandard(gamemap.DLevel{Level: 1})
	lvl.Rooms = []gamemap.Room{{X: 5, Y: 5, W: 6, H: 5}, {X: 40, Y: 10, W: 2, H: 2, Kind: gamemap.Vault}}
	for _, r := range lvl.Rooms {
		CarveRoom(lvl, r)
	}
	if err := ensureConnected(lvl, NewTracker(2)); err != nil {
		t.Fatal(err)
	}
	if n := lvl.Count(gamemap.Corridor); n != 0 {
		t.Errorf("vault was tunnelled to (%d corridor cells)", n)
	}
}
