package generate

import (
	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

// byDoor reports whether any orthogonal neighbour of (x, y) is a door.
func byDoor(lvl *gamemap.Level, x, y int) bool {
	for _, d := range orthogonal {
		if lvl.KindAt(x+d.X, y+d.Y).IsDoor() {
			return true
		}
	}
	return false
}

// nextToDoor is byDoor including the diagonals.
func nextToDoor(lvl *gamemap.Level, x, y int) bool {
	for _, d := range compass {
		if lvl.KindAt(x+d.X, y+d.Y).IsDoor() {
			return true
		}
	}
	return false
}

// okDoor reports whether (x, y) is a straight wall cell that can take a
// door without touching another one.
func okDoor(lvl *gamemap.Level, x, y int) bool {
	if !lvl.InBounds(x, y) {
		return false
	}
	k := lvl.At(x, y).Kind
	return (k == gamemap.HWall || k == gamemap.VWall) && !byDoor(lvl, x, y)
}

// FindDoorPos picks a door cell on the straight wall segment
// (xl,yl)-(xh,yh).
//
// A random cell is always drawn first, x then y, even for a one-cell
// segment. If that cell cannot hold a door the segment is scanned column
// by column for one that can, then for an existing door; failing both the
// (xl, yh) end of the segment is returned.
func FindDoorPos(lvl *gamemap.Level, rnd *rng.Source, xl, yl, xh, yh int) gamemap.Point {
	x := xl + rnd.Intn(max(xh-xl+1, 1))
	y := yl + rnd.Intn(max(yh-yl+1, 1))
	if okDoor(lvl, x, y) {
		return gamemap.Point{X: x, Y: y}
	}
	for sx := xl; sx <= xh; sx++ {
		for sy := yl; sy <= yh; sy++ {
			if okDoor(lvl, sx, sy) {
				return gamemap.Point{X: sx, Y: sy}
			}
		}
	}
	for sx := xl; sx <= xh; sx++ {
		for sy := yl; sy <= yh; sy++ {
			if lvl.KindAt(sx, sy).IsDoor() {
				return gamemap.Point{X: sx, Y: sy}
			}
		}
	}
	return gamemap.Point{X: xl, Y: yh}
}

// AddDoor stamps a door at (x, y): one in eight is secret.
func AddDoor(lvl *gamemap.Level, rnd *rng.Source, x, y int, shop bool) {
	k := gamemap.Door
	if rnd.OneIn(8) {
		k = gamemap.SecretDoor
	}
	SetDoor(lvl, rnd, x, y, k, shop)
}

// SetDoor makes (x, y) a door of kind k and rolls its state.
//
// Regular doors are bare doorways two times in three (open for shops);
// otherwise open 1/5, locked 1/6 of the rest, else closed. Deeper levels
// add door traps, and a trapped door at depth 9 or more is sometimes
// replaced by a doorway. Secret doors are locked 1/5 of the time, always
// for shops. A cell that is not a wall always becomes a regular door.
func SetDoor(lvl *gamemap.Level, rnd *rng.Source, x, y int, k gamemap.Kind, shop bool) {
	if !lvl.InBounds(x, y) {
		return
	}
	c := lvl.At(x, y)
	if !c.Kind.IsWall() {
		k = gamemap.Door
	}
	depth := lvl.DLevel.Depth()
	c.Kind = k

	if k == gamemap.Door {
		if rnd.Intn(3) != 0 {
			if shop {
				c.Door = gamemap.Open
			} else {
				c.Door = gamemap.NoDoor
			}
		} else {
			var st gamemap.DoorState
			switch {
			case rnd.OneIn(5):
				st = gamemap.Open
			case rnd.OneIn(6):
				st = gamemap.Locked
			default:
				st = gamemap.Closed
			}
			if st != gamemap.Open && !shop && depth >= 5 && rnd.OneIn(25) {
				st |= gamemap.Trapped
			}
			c.Door = st
		}
		if c.Door.Has(gamemap.Trapped) && depth >= 9 && rnd.OneIn(5) {
			// a mimic takes the door's place
			c.Door = gamemap.NoDoor
		}
		return
	}

	st := gamemap.Closed
	if shop || rnd.OneIn(5) {
		st = gamemap.Locked
	}
	if !shop && depth >= 4 && rnd.OneIn(20) {
		st |= gamemap.Trapped
	}
	c.Door = st
}
