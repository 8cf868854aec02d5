package special

import (
	"dungeongen/internal/gamemap"
	"dungeongen/internal/generate"
)

var oracleSizes = generate.SizeBounds{MinW: 3, MaxW: 8, MinH: 2, MaxH: 4}

// oracle puts the Delphi in the middle of the map with a fountain in each
// quarter and scatters ordinary rooms around it.
func oracle(b *builder) {
	lvl := b.lvl
	b.fill(gamemap.Stone, false)
	const cx, cy = 40, 10
	i := b.room(cx-5, cy-3, 11, 7, gamemap.Delphi, true)
	delphi := lvl.Rooms[i].Bounds()
	for _, d := range []gamemap.Point{{X: -3, Y: -2}, {X: 3, Y: -2}, {X: -3, Y: 2}, {X: 3, Y: 2}} {
		b.feature(cx+d.X, cy+d.Y, gamemap.Fountain)
	}

	extra := generate.PlaceRooms(lvl, b.rnd, 4+b.rnd.Intn(5), oracleSizes, 1, 40)
	lvl.Rooms = append(lvl.Rooms, extra...)
	generate.SortRooms(lvl.Rooms)
	b.connect()
	b.specialStairs(true, true, delphi)
}

// bigRoom is one lit hall with a few rock pillars.
func bigRoom(b *builder) {
	b.fill(gamemap.Stone, false)
	b.room(3, 3, 74, 15, gamemap.Ordinary, true)
	for _i, _n := 0, 5+b.rnd.Intn(10); _i < _n; _i++ {
		x := 5 + b.rnd.Intn(70)
		y := 5 + b.rnd.Intn(11)
		b.set(x, y, gamemap.Stone)
	}
	b.specialStairs(true, true)
}

// rogueLevel lays rooms on a 3x3 grid, skipping a quarter of the slots.
func rogueLevel(b *builder) {
	b.fill(gamemap.Stone, false)
	for gx, _n := 0, 3; gx < _n; gx++ {
		for gy, _n := 0, 3; gy < _n; gy++ {
			if b.rnd.OneIn(4) {
				continue
			}
			w := 8 - b.rnd.Intn(3)
			h := 4 - b.rnd.Intn(2)
			b.room(5+gx*23, 2+gy*6, w, h, gamemap.Ordinary, true)
		}
	}
	if len(b.lvl.Rooms) == 0 {
		b.room(28, 8, 8, 4, gamemap.Ordinary, true)
	}
	b.connect()
	b.specialStairs(true, true)
}

// medusa sets an island hall in open water. Rooms are joined first and
// the water poured afterwards, so the corridors become causeways.
func medusa(b *builder) {
	b.fill(gamemap.Stone, false)
	b.room(3, 8, 4, 5, gamemap.Ordinary, true)
	b.room(17, 3, 4, 3, gamemap.Ordinary, false)
	b.room(30, 6, 20, 9, gamemap.Ordinary, true)
	b.room(58, 14, 5, 3, gamemap.Ordinary, false)
	b.connect()
	b.flood(gamemap.Rect{X1: 10, Y1: 1, X2: 69, Y2: 19}, gamemap.Water)
	b.up(4, 10, b.above())
	b.down(39, 10, b.below())
}

// castle is a walled keep inside a moat, reached from the west over a
// lowered drawbridge. Trap doors at the east end are the way down.
func castle(b *builder) {
	lvl := b.lvl
	b.fill(gamemap.Stone, false)
	b.room(2, 8, 4, 5, gamemap.Ordinary, true)
	keep := b.room(11, 4, 58, 13, gamemap.Court, true)
	lvl.Flags.HasCourt = true
	outer := lvl.Rooms[keep].Bounds()

	b.flood(outer.Grow(2), gamemap.Moat)
	b.door(6, 10, gamemap.NoDoor)
	b.set(7, 10, gamemap.Corridor)
	b.set(8, 10, gamemap.DrawbridgeDown)
	b.set(9, 10, gamemap.DrawbridgeDown)
	b.door(10, 10, gamemap.Closed)

	for _, x := range []int{24, 55} {
		b.wallLine(x, outer.Y1+1, x, outer.Y2-1)
		b.door(x, 10, gamemap.Locked)
	}
	b.feature(39, 10, gamemap.Throne)
	for y := 6; y <= 14; y += 2 {
		lvl.AddTrap(66, y, gamemap.TrapDoor)
	}

	b.hardWalls(outer)
	lvl.Flags.NoTeleport = true
	lvl.Flags.HardFloor = true
	b.up(3, 10, b.above())
}

// valley is a dark graveyard path ending at a temple in the east, where
// the stairs down into Gehennom wait.
func valley(b *builder) {
	lvl := b.lvl
	b.fill(gamemap.Stone, false)
	b.room(3, 8, 56, 5, gamemap.Ordinary, false)
	temple := b.room(63, 6, 11, 9, gamemap.Ordinary, true)
	b.connect()
	b.dress(temple, gamemap.Temple)
	for x := 6; x < 57; x += 4 {
		if b.rnd.OneIn(2) {
			b.set(x, 8, gamemap.Grave)
		}
		if b.rnd.OneIn(2) {
			b.set(x, 12, gamemap.Grave)
		}
	}
	lvl.Flags.Graveyard = true
	lvl.Flags.NoTeleport = true
	b.up(4, 10, b.above())
	b.down(72, 13, dl(gamemap.Gehennom, 1))
}
