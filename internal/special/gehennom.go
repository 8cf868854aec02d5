package special

import (
	"dungeongen/internal/gamemap"
	"dungeongen/internal/generate"
)

// juiblex is one dark swamp. Pools only ever sit on cells with both
// coordinates odd, so the even rows and columns stay open and the swamp
// cannot be cut in two. Islands are kept dry.
func juiblex(b *builder) {
	lvl := b.lvl
	b.fill(gamemap.Stone, false)
	i := b.room(2, 2, 76, 17, gamemap.Swamp, false)
	lvl.Flags.HasSwamp = true
	swamp := lvl.Rooms[i].Rect()

	dry := []gamemap.Rect{{X1: 33, Y1: 6, X2: 43, Y2: 12}}
	for _i, _n := 0, 10+b.rnd.Intn(3); _i < _n; _i++ {
		x := 5 + b.rnd.Intn(60)
		y := 3 + b.rnd.Intn(12)
		w := 4 + b.rnd.Intn(5)
		h := 3 + b.rnd.Intn(3)
		dry = append(dry, gamemap.Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1})
	}
	for y := swamp.Y1 + 1; y <= swamp.Y2; y += 2 {
		for x := swamp.X1 + 1; x <= swamp.X2; x += 2 {
			if inAny(gamemap.Point{X: x, Y: y}, dry) {
				continue
			}
			if b.rnd.Intn(10) < 7 {
				b.set(x, y, gamemap.Pool)
			}
		}
	}
	b.feature(35, 8, gamemap.Fountain)
	b.specialStairs(true, true)
}

var lairSizes = generate.SizeBounds{MinW: 3, MaxW: 6, MinH: 2, MaxH: 3}

// baalzebub rings a throne room with four chambers and scatters more
// rooms and traps around them.
func baalzebub(b *builder) {
	lvl := b.lvl
	b.fill(gamemap.Stone, false)
	b.room(35, 8, 10, 5, gamemap.Court, true)
	lvl.Flags.HasCourt = true
	b.feature(39, 10, gamemap.Throne)
	b.room(37, 2, 6, 3, gamemap.Ordinary, false)
	b.room(37, 16, 6, 2, gamemap.Ordinary, false)
	b.room(24, 9, 6, 3, gamemap.Ordinary, false)
	b.room(50, 9, 6, 3, gamemap.Ordinary, false)

	extra := generate.PlaceRooms(lvl, b.rnd, 6+b.rnd.Intn(3), lairSizes, 1, 40)
	for i := range extra {
		extra[i].Lit = false
	}
	lvl.Rooms = append(lvl.Rooms, extra...)
	generate.SortRooms(lvl.Rooms)
	b.connect()

	area := gamemap.Rect{X1: 10, Y1: 2, X2: 69, Y2: 18}
	b.scatterTraps(12, area, gamemap.Floor,
		gamemap.ArrowTrap, gamemap.DartTrap, gamemap.Pit, gamemap.SpikedPit, gamemap.TeleportTrap)
	lvl.Flags.NoTeleport = true
	b.specialStairs(true, true)
}

// asmodeus puts a throne keep between two side halls and pours lava
// around it once the three are joined.
func asmodeus(b *builder) {
	lvl := b.lvl
	b.fill(gamemap.Stone, false)
	b.room(5, 7, 8, 5, gamemap.Ordinary, false)
	b.room(28, 6, 24, 9, gamemap.Ordinary, true)
	b.room(67, 7, 8, 5, gamemap.Ordinary, false)
	b.connect()
	b.flood(gamemap.Rect{X1: 22, Y1: 2, X2: 57, Y2: 18}, gamemap.Lava)
	b.feature(39, 10, gamemap.Throne)
	b.scatterTraps(10, gamemap.Rect{X1: 30, Y1: 8, X2: 49, Y2: 12}, gamemap.Floor, gamemap.FireTrap)
	lvl.Flags.NoTeleport = true
	b.up(8, 9, b.above())
	b.down(70, 9, b.below())
}

// sanctum is Moloch's temple behind a lava moat, with iron bars flanking
// the altar. There is no way further down.
func sanctum(b *builder) {
	lvl := b.lvl
	b.fill(gamemap.Stone, false)
	b.room(3, 8, 6, 5, gamemap.Ordinary, false)
	temple := b.room(26, 5, 28, 10, gamemap.Ordinary, true)
	b.connect()
	b.dress(temple, gamemap.Temple)
	outer := lvl.Rooms[temple].Bounds()
	b.flood(outer.Grow(4), gamemap.Lava)
	for _, x := range []int{34, 45} {
		for y := 8; y <= 10; y++ {
			b.set(x, y, gamemap.IronBars)
		}
	}
	b.hardWalls(outer)
	lvl.Flags.NoTeleport = true
	lvl.Flags.HardFloor = true
	lvl.Flags.NoMagicMap = true
	b.up(5, 10, b.above())
}
