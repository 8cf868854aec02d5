package special

import (
	"dungeongen/internal/gamemap"
	"dungeongen/internal/generate"
)

// cavern digs a blob of floor by stamping small rectangles along a few
// walkers that wander sideways from start. Each stamp covers the cell the
// previous one ended on, so the blob is always in one piece.
func (b *builder) cavern(start gamemap.Point, walkers, steps int, lit bool) {
	lvl := b.lvl
	area := gamemap.Rect{X1: 2, Y1: 2, X2: lvl.Width - 3, Y2: lvl.Height - 3}
	b.check(start.X, start.Y)
	for _i, _n := 0, walkers; _i < _n; _i++ {
		x, y := start.X, start.Y
		dir := 1
		if b.rnd.OneIn(2) {
			dir = -1
		}
		for _i, _n := 0, steps; _i < _n; _i++ {
			w := 2 + b.rnd.Intn(5)
			h := 1 + b.rnd.Intn(3)
			x1 := x
			if dir < 0 {
				x1 = x - w + 1
			}
			y1 := y - b.rnd.Intn(h)
			x1 = clamp(x1, area.X1, area.X2-w+1)
			y1 = clamp(y1, area.Y1, area.Y2-h+1)
			lvl.FillRect(gamemap.Rect{X1: x1, Y1: y1, X2: x1 + w - 1, Y2: y1 + h - 1}, gamemap.Floor, lit)

			x = x1
			if dir > 0 {
				x = x1 + w - 1
			}
			y = y1 + b.rnd.Intn(h)
			if x <= area.X1 || x >= area.X2 {
				dir = -dir
			}
		}
	}
}

// scatter tries n times to put furniture k on a random cell of area that
// currently holds on.
func (b *builder) scatter(n int, area gamemap.Rect, on, k gamemap.Kind) {
	b.checkRect(area)
	for _i, _n := 0, n; _i < _n; _i++ {
		x := area.X1 + b.rnd.Intn(area.X2-area.X1+1)
		y := area.Y1 + b.rnd.Intn(area.Y2-area.Y1+1)
		if b.lvl.At(x, y).Kind == on {
			b.feature(x, y, k)
		}
	}
}

// mineLit rolls whether a mines level is lit; deeper levels are darker.
func (b *builder) mineLit() bool {
	return b.rnd.Rnd(1+b.lvl.DLevel.Depth()) < 11 && b.rnd.Intn(77) != 0
}

func minesFiller(b *builder) {
	lvl := b.lvl
	b.fill(gamemap.Stone, false)
	lvl.Flags.Cavernous = true
	lit := b.mineLit()
	start := gamemap.Point{X: 10 + b.rnd.Intn(lvl.Width-20), Y: 5 + b.rnd.Intn(lvl.Height-10)}
	b.cavern(start, 3, 30, lit)
	wallify(lvl)
	b.specialStairs(true, true)
}

// minesEnd builds the bottom of the mines around a central chamber. The
// first variant is a catacomb strewn with graves, the second a cellar
// with fountains.
func minesEnd(variant int) func(*builder) {
	return func(b *builder) {
		lvl := b.lvl
		b.fill(gamemap.Stone, false)
		lvl.Flags.Cavernous = true
		chamber := gamemap.Rect{X1: 36, Y1: 8, X2: 43, Y2: 11}
		b.rect(chamber, gamemap.Floor, false)
		b.cavern(gamemap.Point{X: 40, Y: 10}, 4, 35, false)
		inner := gamemap.Rect{X1: 3, Y1: 2, X2: lvl.Width - 4, Y2: lvl.Height - 3}
		switch variant {
		case 1:
			b.scatter(4+b.rnd.Intn(4), inner, gamemap.Floor, gamemap.Grave)
			lvl.Flags.Graveyard = true
		default:
			b.scatter(3+b.rnd.Intn(3), inner, gamemap.Floor, gamemap.Fountain)
		}
		wallify(lvl)
		b.specialStairs(true, false)
	}
}

type townBuilding struct {
	x, y, w int
	kind    gamemap.RoomKind
	house   bool
}

// Minetown's buildings face one east-west street at y 10. Top-row doors
// sit in the bottom wall at y 9, bottom-row doors in the top wall at y 11.
var townBuildings = []townBuilding{
	{x: 17, y: 5, w: 6, kind: gamemap.GeneralShop},
	{x: 27, y: 5, w: 5, kind: gamemap.FoodShop},
	{x: 36, y: 5, w: 6, kind: gamemap.ToolShop},
	{x: 46, y: 5, w: 5, kind: gamemap.CandleShop},
	{x: 55, y: 5, w: 6, house: true},
	{x: 17, y: 12, w: 8, kind: gamemap.Temple},
	{x: 29, y: 12, w: 5, house: true},
	{x: 38, y: 12, w: 4, house: true},
	{x: 46, y: 12, w: 6, kind: gamemap.WeaponShop},
	{x: 56, y: 12, w: 5, house: true},
}

const (
	townStreet = 10
	houseH     = 4
)

func minesTown(b *builder) {
	b.fill(gamemap.Stone, false)
	b.room(14, 3, 52, 15, gamemap.Ordinary, true)

	for _, t := range townBuildings {
		i := b.room(t.x, t.y, t.w, houseH, gamemap.Ordinary, true)
		dx, dy := t.x+t.w/2, townStreet-1
		if t.y > townStreet {
			dy = townStreet + 1
		}
		b.check(dx, dy)
		generate.SetDoor(b.lvl, b.rnd, dx, dy, gamemap.Door, t.kind.IsShop())
		if !t.house {
			b.dress(i, t.kind)
		}
	}
	b.feature(25, townStreet, gamemap.Fountain)
	b.feature(53, townStreet, gamemap.Fountain)

	b.up(14, townStreet, b.above())
	b.down(65, townStreet, b.below())
}
