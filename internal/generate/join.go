package generate

import (
	"slices"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

// Tracker records which rooms are already joined by corridors. Every room
// carries a class id; rooms sharing an id are connected, directly or
// transitively.
type Tracker struct {
	class []int
}

// NewTracker puts each of n rooms in its own class.
func NewTracker(n int) *Tracker {
	t := &Tracker{class: make([]int, n)}
	for i := range t.class {
		t.class[i] = i
	}
	return t
}

// Len returns the number of rooms tracked.
func (t *Tracker) Len() int { return len(t.class) }

// Class returns the class id of room i.
func (t *Tracker) Class(i int) int { return t.class[i] }

// Same reports whether rooms a and b are connected.
func (t *Tracker) Same(a, b int) bool { return t.class[a] == t.class[b] }

// Merge joins the classes of a and b. Every member of the class with the
// larger id is relabelled to the smaller id.
func (t *Tracker) Merge(a, b int) {
	ca, cb := t.class[a], t.class[b]
	if ca == cb {
		return
	}
	keep, drop := min(ca, cb), max(ca, cb)
	for i, c := range t.class {
		if c == drop {
			t.class[i] = keep
		}
	}
}

// Connected reports whether every room shares one class.
func (t *Tracker) Connected() bool {
	for _, c := range t.class {
		if c != t.class[0] {
			return false
		}
	}
	return true
}

// Classes returns the number of distinct classes.
func (t *Tracker) Classes() int {
	seen := make(map[int]struct{}, len(t.class))
	for _, c := range t.class {
		seen[c] = struct{}{}
	}
	return len(seen)
}

// JoinRooms digs a corridor between rooms a and b of lvl.Rooms.
//
// Without nxcor the call is a no-op when the rooms are already connected.
// Otherwise the facing walls are chosen from the rooms' relative position
// (b right of a, above, left, else below), a door position is found on
// each, a door is stamped on a's wall, the corridor is dug and a door is
// stamped on b's wall. The classes merge only when the dig succeeds. With
// nxcor set the corridor is an optional extra: it is skipped when the cell
// beyond a's door is already dug out, and doors are only stamped where
// they fit.
func JoinRooms(lvl *gamemap.Level, rnd *rng.Source, a, b int, tr *Tracker, nxcor bool) bool {
	rooms := lvl.Rooms
	if a < 0 || b < 0 || a >= len(rooms) || b >= len(rooms) || a == b {
		return false
	}
	if !nxcor && tr.Same(a, b) {
		return true
	}
	croom, troom := rooms[a], rooms[b]

	var dx, dy int
	var cc, tt gamemap.Point
	switch {
	case troom.Lx() > croom.Hx():
		dx = 1
		xx, tx := croom.Hx()+1, troom.Lx()-1
		cc = FindDoorPos(lvl, rnd, xx, croom.Ly(), xx, croom.Hy())
		tt = FindDoorPos(lvl, rnd, tx, troom.Ly(), tx, troom.Hy())
	case troom.Hy() < croom.Ly():
		dy = -1
		yy, ty := croom.Ly()-1, troom.Hy()+1
		cc = FindDoorPos(lvl, rnd, croom.Lx(), yy, croom.Hx(), yy)
		tt = FindDoorPos(lvl, rnd, troom.Lx(), ty, troom.Hx(), ty)
	case troom.Hx() < croom.Lx():
		dx = -1
		xx, tx := croom.Lx()-1, troom.Hx()+1
		cc = FindDoorPos(lvl, rnd, xx, croom.Ly(), xx, croom.Hy())
		tt = FindDoorPos(lvl, rnd, tx, troom.Ly(), tx, troom.Hy())
	default:
		dy = 1
		yy, ty := croom.Hy()+1, troom.Ly()-1
		cc = FindDoorPos(lvl, rnd, croom.Lx(), yy, croom.Hx(), yy)
		tt = FindDoorPos(lvl, rnd, troom.Lx(), ty, troom.Hx(), ty)
	}

	org := gamemap.Point{X: cc.X + dx, Y: cc.Y + dy}
	dest := gamemap.Point{X: tt.X - dx, Y: tt.Y - dy}

	if nxcor && org.X > 0 && org.Y > 0 && lvl.InBounds(org.X, org.Y) &&
		lvl.At(org.X, org.Y).Kind != gamemap.Stone {
		return false
	}

	if okDoor(lvl, cc.X, cc.Y) || !nxcor {
		AddDoor(lvl, rnd, cc.X, cc.Y, false)
	}

	ftyp := gamemap.Corridor
	if lvl.Flags.Arboreal {
		ftyp = gamemap.Floor
	}
	if !DigCorridor(lvl, rnd, org, dest, nxcor, ftyp, gamemap.Stone) {
		return false
	}

	if okDoor(lvl, tt.X, tt.Y) || !nxcor {
		AddDoor(lvl, rnd, tt.X, tt.Y, false)
	}
	tr.Merge(a, b)
	return true
}

// MakeCorridors joins every room of lvl and then adds a few extra
// corridors for loops.
//
// Joins run in four passes: each room to the next (stopping early one time
// in 50), each room to the one two further on when still apart, every room
// to every room it is not yet connected to, and finally rn2(n)+4 extra
// random pairs dug as nxcor corridors.
func MakeCorridors(lvl *gamemap.Level, rnd *rng.Source, tr *Tracker) {
	n := len(lvl.Rooms)
	if n < 2 {
		return
	}
	for a := 0; a < n-1; a++ {
		JoinRooms(lvl, rnd, a, a+1, tr, false)
		if rnd.OneIn(50) {
			break
		}
	}
	for a := 0; a < n-2; a++ {
		if !tr.Same(a, a+2) {
			JoinRooms(lvl, rnd, a, a+2, tr, false)
		}
	}
	progress := true
	for a := 0; progress && a < n; a++ {
		progress = false
		for b := 0; b < n; b++ {
			if !tr.Same(a, b) {
				JoinRooms(lvl, rnd, a, b, tr, false)
				progress = true
			}
		}
	}
	if n > 2 {
		for i := rnd.Intn(n) + 4; i > 0; i-- {
			a := rnd.Intn(n)
			b := rnd.Intn(n - 2)
			if b >= a {
				b += 2
			}
			JoinRooms(lvl, rnd, a, b, tr, true)
		}
	}
}

// retryJoins tries to attach every room still outside room 0's class to
// the nearest connected rooms first. It reports whether the tracker ends
// up with a single class.
func retryJoins(lvl *gamemap.Level, rnd *rng.Source, tr *Tracker) bool {
	n := len(lvl.Rooms)
	skip := func(i int) bool { return lvl.Rooms[i].Kind == gamemap.Vault }
	for a := 0; a < n; a++ {
		if skip(a) || tr.Same(a, 0) {
			continue
		}
		var targets []int
		for b := 0; b < n; b++ {
			if !skip(b) && tr.Same(b, 0) {
				targets = append(targets, b)
			}
		}
		ax, ay := lvl.Rooms[a].Center()
		slices.SortStableFunc(targets, func(p, q int) int {
			px, py := lvl.Rooms[p].Center()
			qx, qy := lvl.Rooms[q].Center()
			return (abs(px-ax) + abs(py-ay)) - (abs(qx-ax) + abs(qy-ay))
		})
		for _, b := range targets {
			if JoinRooms(lvl, rnd, a, b, tr, false) {
				break
			}
		}
	}
	for a := 0; a < n; a++ {
		if !skip(a) && !tr.Same(a, 0) {
			return false
		}
	}
	return true
}

// ConnectAll joins every room of lvl with corridors, retries the rooms the
// regular passes left apart and tunnels out any that are still cut off.
func ConnectAll(lvl *gamemap.Level, rnd *rng.Source) (*Tracker, error) {
	tr := NewTracker(len(lvl.Rooms))
	MakeCorridors(lvl, rnd, tr)
	retryJoins(lvl, rnd, tr)
	return tr, ensureConnected(lvl, tr)
}
