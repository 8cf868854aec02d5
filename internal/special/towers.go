package special

import "dungeongen/internal/gamemap"

// wizardTower builds one floor of the Wizard's tower: a sealed tower in
// the middle of a Gehennom maze. Floor 1 is the top, where the Wizard
// keeps a hidden inner chamber; ladders join the floors inside the tower
// and the maze has its own stairs.
func wizardTower(floor int) func(*builder) {
	return func(b *builder) {
		lvl := b.lvl
		tower := gamemap.Room{X: 31, Y: 6, W: 19, H: 9, Lit: floor == 1}
		outer := tower.Bounds()
		b.maze(outer.Grow(1))
		b.room(tower.X, tower.Y, tower.W, tower.H, gamemap.Ordinary, tower.Lit)

		if floor == 1 {
			b.room(37, 9, 7, 3, gamemap.Ordinary, true)
			b.set(40, 8, gamemap.SecretDoor)
			lvl.At(40, 8).Door = gamemap.Locked
		} else {
			b.wallLine(40, tower.Y, 40, tower.Hy())
			b.door(40, 10, gamemap.Closed)
		}

		d := lvl.DLevel
		if floor > 1 {
			b.ladder(33, 10, gamemap.DLevel{Dungeon: d.Dungeon, Level: d.Level - 1}, true)
		}
		if floor < 3 {
			b.ladder(47, 10, gamemap.DLevel{Dungeon: d.Dungeon, Level: d.Level + 1}, false)
		}
		inner := gamemap.Rect{X1: tower.X + 2, Y1: tower.Y + 2, X2: tower.Hx() - 2, Y2: tower.Hy() - 2}
		b.scatterTraps(floor+2, inner, gamemap.Floor, gamemap.MagicTrap)

		b.hardWalls(outer)
		lvl.Flags.NoTeleport = true
	}
}

// vladsTower builds one floor of Vlad's tower, narrowing as it rises.
// Floor 1 is the bottom; each floor's stairs sit either side of the
// centre, split by a wall with one door on all but the top floor.
func vladsTower(floor int) func(*builder) {
	return func(b *builder) {
		lvl := b.lvl
		b.fill(gamemap.Stone, false)
		w, h := 20-2*floor, 9-floor
		i := b.room(40-w/2, 10-h/2, w, h, gamemap.Ordinary, floor == 3)
		r := lvl.Rooms[i]

		if floor < 3 {
			b.wallLine(40, r.Y, 40, r.Hy())
			b.door(40, 10, gamemap.Closed)
		}
		for _i, _n := 0, floor+2; _i < _n; _i++ {
			x := r.X + 2 + b.rnd.Intn(r.W-4)
			y := r.Y + 2 + b.rnd.Intn(r.H-4)
			if lvl.At(x, y).Kind == gamemap.Floor {
				b.set(x, y, gamemap.Grave)
			}
		}
		switch floor {
		case 2:
			b.feature(35, 8, gamemap.Fountain)
		case 3:
			b.set(40, 10, gamemap.Grave)
		}

		d := lvl.DLevel
		if floor > 1 {
			b.down(37, 10, gamemap.DLevel{Dungeon: d.Dungeon, Level: d.Level - 1})
		}
		if floor < 3 {
			b.up(43, 10, gamemap.DLevel{Dungeon: d.Dungeon, Level: d.Level + 1})
		}
		b.hardWalls(r.Bounds())
		lvl.Flags.NoTeleport = true
		lvl.Flags.HardFloor = true
	}
}
