package generate

import (
	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

// randomPoint draws an interior cell of r, x first.
func randomPoint(rnd *rng.Source, r gamemap.Room) gamemap.Point {
	x := r.Lx() + rnd.Intn(r.W)
	y := r.Ly() + rnd.Intn(r.H)
	return gamemap.Point{X: x, Y: y}
}

// placeStairs puts the up stairs in the first room and the down stairs in
// the last one. Down stairs are skipped when they would land on the up
// stairs.
func placeStairs(lvl *gamemap.Level, rnd *rng.Source) {
	if len(lvl.Rooms) == 0 {
		return
	}
	d := lvl.DLevel
	up := randomPoint(rnd, lvl.Rooms[0])
	lvl.AddStairs(up.X, up.Y, gamemap.DLevel{Dungeon: d.Dungeon, Level: d.Level - 1}, true, false)

	down := randomPoint(rnd, lvl.Rooms[len(lvl.Rooms)-1])
	if down == up {
		return
	}
	lvl.AddStairs(down.X, down.Y, gamemap.DLevel{Dungeon: d.Dungeon, Level: d.Level + 1}, false, false)
}
