package special

import "dungeongen/internal/gamemap"

// Each elemental plane's portal leads to the next plane.
var planeExit = map[ID]ID{
	EarthPlane: AirPlane,
	AirPlane:   FirePlane,
	FirePlane:  WaterPlane,
	WaterPlane: AstralPlane,
}

func planeDest(id ID) gamemap.DLevel {
	return dl(gamemap.Endgame, int(planeExit[id]-EarthPlane)+1)
}

var centrePlatform = gamemap.Rect{X1: 36, Y1: 8, X2: 43, Y2: 12}

func (b *builder) planeFlags() {
	b.lvl.Flags.NoTeleport = true
	b.lvl.Flags.HardFloor = true
}

// patch draws a rectangle of up to w by h cells at (x, y), trimmed to the
// grid interior.
func (b *builder) patch(x, y, w, h int, k gamemap.Kind, lit bool) {
	r := gamemap.Rect{
		X1: clamp(x, 1, b.lvl.Width-2),
		Y1: clamp(y, 1, b.lvl.Height-2),
		X2: clamp(x+w-1, 1, b.lvl.Width-2),
		Y2: clamp(y+h-1, 1, b.lvl.Height-2),
	}
	b.rect(r, k, lit)
}

// earthPlane is solid rock hollowed into one winding cave.
func earthPlane(b *builder) {
	b.fill(gamemap.Stone, false)
	b.cavern(gamemap.Point{X: 40, Y: 10}, 4, 40, false)
	wallify(b.lvl)
	inner := gamemap.Rect{X1: 2, Y1: 2, X2: b.lvl.Width - 3, Y2: b.lvl.Height - 3}
	b.scatterTraps(10, inner, gamemap.Floor, gamemap.RockFallTrap)
	b.portal(gamemap.Floor, planeDest(EarthPlane))
	b.lvl.Flags.Cavernous = true
	b.planeFlags()
}

// airPlane is open sky with drifting clouds around a central platform.
func airPlane(b *builder) {
	b.fill(gamemap.Air, true)
	for _i, _n := 0, 20; _i < _n; _i++ {
		x := 3 + b.rnd.Intn(b.lvl.Width-6)
		y := 2 + b.rnd.Intn(b.lvl.Height-4)
		b.patch(x, y, 2+b.rnd.Intn(4), 1+b.rnd.Intn(2), gamemap.Cloud, true)
	}
	b.rect(centrePlatform, gamemap.Floor, true)
	b.portal(gamemap.Floor, planeDest(AirPlane))
	b.planeFlags()
}

// firePlane is a lava sea dotted with islands.
func firePlane(b *builder) {
	b.fill(gamemap.Lava, true)
	for _i, _n := 0, 8; _i < _n; _i++ {
		x := 5 + b.rnd.Intn(b.lvl.Width-12)
		y := 3 + b.rnd.Intn(b.lvl.Height-7)
		b.patch(x, y, 3+b.rnd.Intn(5), 2+b.rnd.Intn(3), gamemap.Floor, true)
	}
	b.rect(centrePlatform, gamemap.Floor, true)
	b.scatterTraps(8, b.grid(), gamemap.Floor, gamemap.FireTrap)
	b.portal(gamemap.Floor, planeDest(FirePlane))
	b.planeFlags()
}

// waterPlane is deep water holding a few air bubbles.
func waterPlane(b *builder) {
	b.fill(gamemap.Water, false)
	for _i, _n := 0, 10; _i < _n; _i++ {
		x := 5 + b.rnd.Intn(b.lvl.Width-12)
		y := 3 + b.rnd.Intn(b.lvl.Height-7)
		b.patch(x, y, 3+b.rnd.Intn(4), 2+b.rnd.Intn(2), gamemap.Air, true)
	}
	b.rect(centrePlatform, gamemap.Air, true)
	b.portal(gamemap.Air, planeDest(WaterPlane))
	b.planeFlags()
}

// astralTemples are the x centres of the three high temples.
var astralTemples = []int{15, 40, 65}

// astralPlane is a cloud field with a long hall and a temple for each
// alignment opening onto it.
func astralPlane(b *builder) {
	lvl := b.lvl
	b.fill(gamemap.Cloud, true)
	b.rect(gamemap.Rect{X1: 5, Y1: 13, X2: 74, Y2: 15}, gamemap.Floor, true)
	for _, tx := range astralTemples {
		i := b.room(tx-4, 3, 9, 7, gamemap.Ordinary, true)
		b.door(tx, 10, gamemap.Open)
		b.set(tx, 11, gamemap.Corridor)
		b.set(tx, 12, gamemap.Corridor)
		b.dress(i, gamemap.Temple)
	}
	lvl.Flags.NoMagicMap = true
	b.planeFlags()
}
