package generate

import (
	"testing"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

// allKindRow checks that every cell at y between x1 and x2 (inclusive) is k.
func allKindRow(lvl *gamemap.Level, x1, x2, y int, k gamemap.Kind) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if lvl.KindAt(x, y) != k {
			return false
		}
	}
	return true
}

// allKindCol checks that every cell at x between y1 and y2 (inclusive) is k.
func allKindCol(lvl *gamemap.Level, y1, y2, x int, k gamemap.Kind) bool {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if lvl.KindAt(x, y) != k {
			return false
		}
	}
	return true
}

func TestCarveH(t *testing.T) {
	lvl := gamemap.New(20, 20)
	CarveH(lvl, 3, 8, 5, gamemap.Corridor)

	if !allKindRow(lvl, 3, 8, 5, gamemap.Corridor) {
		t.Error("CarveH(3,8,5) should carve corridor from x=3 to x=8 at y=5")
	}
	// Cells just outside the segment must remain stone.
	if lvl.KindAt(2, 5) != gamemap.Stone {
		t.Error("cell at x=2 should remain stone (not part of segment)")
	}
	if lvl.KindAt(9, 5) != gamemap.Stone {
		t.Error("cell at x=9 should remain stone (not part of segment)")
	}
}

func TestCarveHReversedArgs(t *testing.T) {
	lvl := gamemap.New(20, 20)
	CarveH(lvl, 8, 3, 5, gamemap.Floor) // reversed
	if !allKindRow(lvl, 3, 8, 5, gamemap.Floor) {
		t.Error("CarveH with reversed x args should still carve x=3..8")
	}
}

func TestCarveV(t *testing.T) {
	lvl := gamemap.New(20, 20)
	CarveV(lvl, 2, 7, 4, gamemap.Corridor)

	if !allKindCol(lvl, 2, 7, 4, gamemap.Corridor) {
		t.Error("CarveV(2,7,4) should carve corridor from y=2 to y=7 at x=4")
	}
	if lvl.KindAt(4, 1) != gamemap.Stone {
		t.Error("cell at y=1 should remain stone")
	}
	if lvl.KindAt(4, 8) != gamemap.Stone {
		t.Error("cell at y=8 should remain stone")
	}
}

func TestCarveVClipsToGrid(t *testing.T) {
	lvl := gamemap.New(10, 10)
	CarveV(lvl, -3, 20, 4, gamemap.Corridor) // must not panic
	if !allKindCol(lvl, 0, 9, 4, gamemap.Corridor) {
		t.Error("CarveV past the grid edges should still carve every in-bounds cell")
	}
}

func TestDigCorridorStraight(t *testing.T) {
	for seed, _n := uint64(0), uint64(5); seed < _n; seed++ {
		lvl := gamemap.NewStandard(gamemap.DLevel{Level: 1})
		rnd := rng.New(seed)
		ok := DigCorridor(lvl, rnd, gamemap.Point{X: 5, Y: 5}, gamemap.Point{X: 15, Y: 5}, false, gamemap.Corridor, gamemap.Stone)
		if !ok {
			t.Fatalf("seed %d: straight dig failed", seed)
		}
		for x := 5; x <= 15; x++ {
			if k := lvl.KindAt(x, 5); k != gamemap.Corridor && k != gamemap.SecretCorridor {
				t.Errorf("seed %d: (%d,5) = %v, want corridor", seed, x, k)
			}
		}
		if lvl.KindAt(4, 5) != gamemap.Stone || lvl.KindAt(16, 5) != gamemap.Stone {
			t.Errorf("seed %d: dig spilled past its endpoints", seed)
		}
		// one secret-corridor roll per painted cell, nothing else
		if got := rnd.Draws(); got != 11 {
			t.Errorf("seed %d: draws = %d, want 11", seed, got)
		}
	}
}

func TestDigCorridorStepBudget(t *testing.T) {
	cases := []struct {
		tx   int
		want bool
	}{
		{maxDigSteps + 1, true},
		{maxDigSteps + 2, false},
	}
	for _, tc := range cases {
		lvl := gamemap.New(maxDigSteps+10, 5)
		// a walk from x=1 takes tx steps
		got := DigCorridor(lvl, rng.New(3), gamemap.Point{X: 1, Y: 2}, gamemap.Point{X: tc.tx, Y: 2}, false, gamemap.Corridor, gamemap.Stone)
		if got != tc.want {
			t.Errorf("dig of %d steps = %v, want %v", tc.tx, got, tc.want)
		}
	}
}

func TestDigCorridorBlockedByWall(t *testing.T) {
	lvl := gamemap.NewStandard(gamemap.DLevel{Level: 1})
	CarveV(lvl, 1, 19, 10, gamemap.VWall)
	if DigCorridor(lvl, rng.New(1), gamemap.Point{X: 5, Y: 5}, gamemap.Point{X: 15, Y: 5}, false, gamemap.Corridor, gamemap.Stone) {
		t.Error("dig through a wall line should fail")
	}
}

func TestDigCorridorRejectsEdgeEndpoints(t *testing.T) {
	cases := []struct {
		name      string
		org, dest gamemap.Point
	}{
		{"origin on left edge", gamemap.Point{X: 0, Y: 5}, gamemap.Point{X: 10, Y: 5}},
		{"origin on top edge", gamemap.Point{X: 5, Y: 0}, gamemap.Point{X: 10, Y: 5}},
		{"dest past right edge", gamemap.Point{X: 5, Y: 5}, gamemap.Point{X: 80, Y: 5}},
		{"dest past bottom edge", gamemap.Point{X: 5, Y: 5}, gamemap.Point{X: 10, Y: 21}},
	}
	for _, tc := range cases {
		lvl := gamemap.NewStandard(gamemap.DLevel{Level: 1})
		rnd := rng.New(3)
		if DigCorridor(lvl, rnd, tc.org, tc.dest, false, gamemap.Corridor, gamemap.Stone) {
			t.Errorf("%s: dig should fail", tc.name)
		}
		if rnd.Draws() != 0 {
			t.Errorf("%s: rejected dig drew %d numbers", tc.name, rnd.Draws())
		}
		if n := lvl.Count(gamemap.Corridor); n != 0 {
			t.Errorf("%s: rejected dig painted %d cells", tc.name, n)
		}
	}
}

func TestDigCorridorReachesDiagonalTarget(t *testing.T) {
	for seed, _n := uint64(0), uint64(50); seed < _n; seed++ {
		lvl := gamemap.NewStandard(gamemap.DLevel{Level: 1})
		org, dest := gamemap.Point{X: 3, Y: 3}, gamemap.Point{X: 40, Y: 15}
		if !DigCorridor(lvl, rng.New(seed), org, dest, false, gamemap.Corridor, gamemap.Stone) {
			t.Errorf("seed %d: dig across open rock failed", seed)
			continue
		}
		seen := Reachable(lvl, org, Traversable)
		if !seen.Has(dest) {
			t.Errorf("seed %d: dug corridor does not connect %v to %v", seed, org, dest)
		}
	}
}

func TestDigCorridorArborealPaintsFloor(t *testing.T) {
	lvl := gamemap.NewStandard(gamemap.DLevel{Level: 1})
	rnd := rng.New(8)
	if !DigCorridor(lvl, rnd, gamemap.Point{X: 2, Y: 2}, gamemap.Point{X: 2, Y: 12}, false, gamemap.Floor, gamemap.Stone) {
		t.Fatal("floor dig failed")
	}
	if !allKindCol(lvl, 2, 12, 2, gamemap.Floor) {
		t.Error("floor dig should paint a solid column of floor")
	}
	if rnd.Draws() != 0 {
		t.Errorf("straight floor dig drew %d numbers, want 0", rnd.Draws())
	}
}
