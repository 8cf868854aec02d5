package generate

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"dungeongen/internal/gamemap"
)

// ErrDisconnected means a generated level left a room unreachable. It is
// a generator bug, never an expected outcome.
var ErrDisconnected = errors.New("level is not fully connected")

var orthogonal = []gamemap.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

var compass = []gamemap.Point{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
}

// Traversable reports the kinds a walker can cross after searching:
// passable terrain plus secret doors and corridors.
func Traversable(k gamemap.Kind) bool {
	return k.IsPassable() || k == gamemap.SecretDoor || k == gamemap.SecretCorridor
}

// Reachable flood-fills from start over cells whose kind satisfies pass.
// Moves go in all eight directions, except that nothing moves diagonally
// into or out of a door.
func Reachable(lvl *gamemap.Level, start gamemap.Point, pass func(gamemap.Kind) bool) mapset.Set[gamemap.Point] {
	seen := mapset.New[gamemap.Point]()
	if !lvl.InBounds(start.X, start.Y) || !pass(lvl.At(start.X, start.Y).Kind) {
		return seen
	}
	q := queue.New[gamemap.Point]()
	q.Enqueue(start)
	seen.Put(start)
	for !q.Empty() {
		cur := q.Dequeue()
		curDoor := lvl.At(cur.X, cur.Y).Kind.IsDoor()
		for _, d := range compass {
			n := gamemap.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !lvl.InBounds(n.X, n.Y) || seen.Has(n) {
				continue
			}
			k := lvl.At(n.X, n.Y).Kind
			if !pass(k) {
				continue
			}
			if d.X != 0 && d.Y != 0 && (curDoor || k.IsDoor()) {
				continue
			}
			seen.Put(n)
			q.Enqueue(n)
		}
	}
	return seen
}

// roomReached reports whether any interior cell of r is in seen.
func roomReached(r gamemap.Room, seen mapset.Set[gamemap.Point]) bool {
	for y := r.Ly(); y <= r.Hy(); y++ {
		for x := r.Lx(); x <= r.Hx(); x++ {
			if seen.Has(gamemap.Point{X: x, Y: y}) {
				return true
			}
		}
	}
	return false
}

// roomStart returns the first traversable interior cell of r.
func roomStart(lvl *gamemap.Level, r gamemap.Room) (gamemap.Point, bool) {
	for y := r.Ly(); y <= r.Hy(); y++ {
		for x := r.Lx(); x <= r.Hx(); x++ {
			if Traversable(lvl.At(x, y).Kind) {
				return gamemap.Point{X: x, Y: y}, true
			}
		}
	}
	return gamemap.Point{}, false
}

// CheckConnectivity flood-fills from room 0 and returns ErrDisconnected
// naming the first room, other than vaults, that the fill misses.
func CheckConnectivity(lvl *gamemap.Level) error {
	if len(lvl.Rooms) == 0 {
		return nil
	}
	start, ok := roomStart(lvl, lvl.Rooms[0])
	if !ok {
		return fmt.Errorf("room 0 has no floor: %w", ErrDisconnected)
	}
	seen := Reachable(lvl, start, Traversable)
	for i, r := range lvl.Rooms {
		if r.Kind == gamemap.Vault {
			continue
		}
		if !roomReached(r, seen) {
			return fmt.Errorf("room %d at (%d,%d) unreachable: %w", i, r.X, r.Y, ErrDisconnected)
		}
	}
	return nil
}

type wallExit struct {
	wall, out gamemap.Point
}

// wallExits lists the straight wall cells of r with the cell just outside
// each one.
func wallExits(r gamemap.Room) []wallExit {
	var exits []wallExit
	b := r.Bounds()
	for y := b.Y1; y <= b.Y2; y++ {
		for x := b.X1; x <= b.X2; x++ {
			var out gamemap.Point
			switch {
			case (x == b.X1 || x == b.X2) && (y == b.Y1 || y == b.Y2):
				continue
			case x == b.X1:
				out = gamemap.Point{X: x - 1, Y: y}
			case x == b.X2:
				out = gamemap.Point{X: x + 1, Y: y}
			case y == b.Y1:
				out = gamemap.Point{X: x, Y: y - 1}
			case y == b.Y2:
				out = gamemap.Point{X: x, Y: y + 1}
			default:
				continue
			}
			exits = append(exits, wallExit{wall: gamemap.Point{X: x, Y: y}, out: out})
		}
	}
	return exits
}

func makeDoorway(lvl *gamemap.Level, p gamemap.Point) {
	if c := lvl.At(p.X, p.Y); !c.Kind.IsDoor() {
		c.Kind = gamemap.Door
		c.Door = gamemap.NoDoor
	}
}

func straightWall(k gamemap.Kind) bool {
	return k == gamemap.HWall || k == gamemap.VWall
}

// tunnelTo cuts a corridor from a wall of room i to the nearest cell next
// to seen, or to the outside of a reached room's wall, found breadth first
// through rock and existing corridors. Walls the tunnel passes through
// become doorways. It reports whether a path was found.
func tunnelTo(lvl *gamemap.Level, i int, seen mapset.Set[gamemap.Point]) bool {
	inner := func(p gamemap.Point) bool {
		return p.X > 0 && p.Y > 0 && p.X < lvl.Width-1 && p.Y < lvl.Height-1
	}
	diggable := func(p gamemap.Point) bool {
		k := lvl.At(p.X, p.Y).Kind
		return k == gamemap.Stone || k == gamemap.Corridor || k == gamemap.SecretCorridor
	}

	// outside cell -> wall of a reached room
	entry := make(map[gamemap.Point]gamemap.Point)
	for _, o := range lvl.Rooms {
		if o.Kind == gamemap.Vault || !roomReached(o, seen) {
			continue
		}
		for _, e := range wallExits(o) {
			if _, dup := entry[e.out]; !dup && straightWall(lvl.At(e.wall.X, e.wall.Y).Kind) {
				entry[e.out] = e.wall
			}
		}
	}

	prev := make(map[gamemap.Point]gamemap.Point)
	door := make(map[gamemap.Point]gamemap.Point)
	visited := mapset.New[gamemap.Point]()
	q := queue.New[gamemap.Point]()

	for _, e := range wallExits(lvl.Rooms[i]) {
		if w, ok := entry[e.wall]; ok {
			// the two rooms share a wall line
			k := lvl.At(e.wall.X, e.wall.Y).Kind
			if straightWall(k) || k.IsDoor() {
				makeDoorway(lvl, e.wall)
				makeDoorway(lvl, w)
				return true
			}
		}
		if !inner(e.out) || visited.Has(e.out) || !diggable(e.out) {
			continue
		}
		visited.Put(e.out)
		door[e.out] = e.wall
		q.Enqueue(e.out)
	}

	touches := func(p gamemap.Point) bool {
		if seen.Has(p) {
			return true
		}
		for _, d := range orthogonal {
			if seen.Has(gamemap.Point{X: p.X + d.X, Y: p.Y + d.Y}) {
				return true
			}
		}
		return false
	}

	for !q.Empty() {
		cur := q.Dequeue()
		hit := touches(cur)
		w, atWall := entry[cur]
		if hit || atWall {
			p := cur
			for {
				if k := lvl.At(p.X, p.Y).Kind; k == gamemap.Stone || k == gamemap.SecretCorridor {
					lvl.SetKind(p.X, p.Y, gamemap.Corridor)
				}
				from, ok := prev[p]
				if !ok {
					break
				}
				p = from
			}
			makeDoorway(lvl, door[p])
			if !hit {
				makeDoorway(lvl, w)
			}
			return true
		}
		for _, d := range orthogonal {
			n := gamemap.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !inner(n) || visited.Has(n) || !diggable(n) {
				continue
			}
			visited.Put(n)
			prev[n] = cur
			q.Enqueue(n)
		}
	}
	return false
}

// ensureConnected tunnels every room the flood fill from room 0 misses
// back into the connected part of the level, then verifies the result.
func ensureConnected(lvl *gamemap.Level, tr *Tracker) error {
	if len(lvl.Rooms) == 0 {
		return nil
	}
	for _i, _n := 0, len(lvl.Rooms); _i < _n; _i++ {
		start, ok := roomStart(lvl, lvl.Rooms[0])
		if !ok {
			break
		}
		seen := Reachable(lvl, start, Traversable)
		fixed := false
		for i, r := range lvl.Rooms {
			if r.Kind == gamemap.Vault || roomReached(r, seen) {
				continue
			}
			if tunnelTo(lvl, i, seen) {
				tr.Merge(0, i)
				fixed = true
				break
			}
		}
		if !fixed {
			break
		}
	}
	return CheckConnectivity(lvl)
}
