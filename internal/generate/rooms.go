package generate

import (
	"slices"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

// PlaceRooms tries to fit target rooms onto lvl and carves each accepted one.
//
// Every attempt draws, in order: width, height, x, y. When the room cannot
// fit the grid at all the attempt ends after the two size draws. Candidates
// whose spacing-widened rectangle meets an already placed room, or one
// already listed in lvl.Rooms, are rejected. Placement stops after target rooms or budget attempts, so the
// result may be shorter than target.
func PlaceRooms(lvl *gamemap.Level, rnd *rng.Source, target int, sizes SizeBounds, spacing, budget int) []gamemap.Room {
	var rooms []gamemap.Room
	for _i, _n := 0, budget; _i < _n; _i++ {
		if len(rooms) >= target {
			break
		}
		w := sizes.MinW + rnd.Intn(sizes.MaxW-sizes.MinW+1)
		h := sizes.MinH + rnd.Intn(sizes.MaxH-sizes.MinH+1)

		maxX := lvl.Width - (w + 2)
		maxY := lvl.Height - (h + 2)
		if maxX < 2 || maxY < 2 {
			continue
		}
		x := rnd.Intn(maxX-1) + 1
		y := rnd.Intn(maxY-1) + 1

		room := gamemap.Room{X: x, Y: y, W: w, H: h, Lit: true}
		hit := func(o gamemap.Room) bool { return room.Overlaps(o, spacing) }
		if slices.ContainsFunc(rooms, hit) || slices.ContainsFunc(lvl.Rooms, hit) {
			continue
		}
		CarveRoom(lvl, room)
		rooms = append(rooms, room)
	}
	return rooms
}

// CarveRoom paints the room's interior floor and its surrounding walls,
// corners included.
func CarveRoom(lvl *gamemap.Level, r gamemap.Room) {
	lvl.FillRect(r.Rect(), gamemap.Floor, r.Lit)
	b := r.Bounds()
	for x := b.X1 + 1; x < b.X2; x++ {
		setWall(lvl, x, b.Y1, gamemap.HWall, r.Lit)
		setWall(lvl, x, b.Y2, gamemap.HWall, r.Lit)
	}
	for y := b.Y1 + 1; y < b.Y2; y++ {
		setWall(lvl, b.X1, y, gamemap.VWall, r.Lit)
		setWall(lvl, b.X2, y, gamemap.VWall, r.Lit)
	}
	setWall(lvl, b.X1, b.Y1, gamemap.TLCorner, r.Lit)
	setWall(lvl, b.X2, b.Y1, gamemap.TRCorner, r.Lit)
	setWall(lvl, b.X1, b.Y2, gamemap.BLCorner, r.Lit)
	setWall(lvl, b.X2, b.Y2, gamemap.BRCorner, r.Lit)
}

func setWall(lvl *gamemap.Level, x, y int, k gamemap.Kind, lit bool) {
	if !lvl.InBounds(x, y) {
		return
	}
	c := lvl.At(x, y)
	c.Kind = k
	c.Lit = lit
}

// SortRooms orders rooms left to right so index neighbours are also
// spatial neighbours when corridors are joined.
func SortRooms(rooms []gamemap.Room) {
	slices.SortStableFunc(rooms, func(a, b gamemap.Room) int { return a.X - b.X })
}
