package generate

import (
	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

const maxSpotTries = 200

// someSpot draws random interior cells of r until one is plain floor with
// no door beside it and no stairs on it.
func someSpot(lvl *gamemap.Level, rnd *rng.Source, r gamemap.Room) (gamemap.Point, bool) {
	for _i, _n := 0, maxSpotTries; _i < _n; _i++ {
		x := r.Lx() + rnd.Intn(r.W)
		y := r.Ly() + rnd.Intn(r.H)
		if lvl.At(x, y).Kind != gamemap.Floor || byDoor(lvl, x, y) {
			continue
		}
		if _, ok := lvl.TrapAt(x, y); ok {
			continue
		}
		return gamemap.Point{X: x, Y: y}, true
	}
	return gamemap.Point{}, false
}

// addFeatures dresses ordinary rooms with fountains, sinks, altars and
// graves. Graves get likelier with depth.
func addFeatures(lvl *gamemap.Level, rnd *rng.Source) {
	graveOdds := uint32(max(2, 80-2*lvl.DLevel.Depth()))
	place := func(r gamemap.Room, k gamemap.Kind) {
		if p, ok := someSpot(lvl, rnd, r); ok {
			lvl.SetKind(p.X, p.Y, k)
			switch k {
			case gamemap.Fountain:
				lvl.Flags.Fountains++
			case gamemap.Sink:
				lvl.Flags.Sinks++
			}
		}
	}
	for _, r := range lvl.Rooms {
		if r.Kind != gamemap.Ordinary {
			continue
		}
		if rnd.OneIn(10) {
			place(r, gamemap.Fountain)
		}
		if rnd.OneIn(60) {
			place(r, gamemap.Sink)
		}
		if rnd.OneIn(60) {
			place(r, gamemap.Altar)
		}
		if rnd.OneIn(graveOdds) {
			place(r, gamemap.Grave)
		}
	}
}

type nicheTrap uint8

const (
	nicheNone nicheTrap = iota
	nicheTrapDoor
	nicheTeleporter
)

// makeNiches cuts a few one-cell closets above or below ordinary rooms.
// Deep levels may hide a level teleporter or trap door in one of them.
func makeNiches(lvl *gamemap.Level, rnd *rng.Source) {
	n := len(lvl.Rooms)
	if n == 0 {
		return
	}
	depth := lvl.DLevel.Depth()
	teleporter := !lvl.Flags.NoTeleport && depth > 15
	trapDoor := depth > 5 && depth < 25
	for ct := rnd.Rnd(n/2 + 1); ct > 0; ct-- {
		switch {
		case teleporter && rnd.OneIn(6):
			teleporter = false
			makeNiche(lvl, rnd, nicheTeleporter)
		case trapDoor && rnd.OneIn(6):
			trapDoor = false
			makeNiche(lvl, rnd, nicheTrapDoor)
		default:
			makeNiche(lvl, rnd, nicheNone)
		}
	}
}

func makeNiche(lvl *gamemap.Level, rnd *rng.Source, trap nicheTrap) {
	for _i, _n := 0, 8; _i < _n; _i++ {
		i := rnd.Intn(len(lvl.Rooms))
		r := lvl.Rooms[i]
		if r.Kind != gamemap.Ordinary {
			continue
		}
		if len(lvl.RoomDoors(i)) == 1 && rnd.Intn(5) != 0 {
			continue
		}
		var dd gamemap.Point
		dy := 1
		if rnd.Intn(2) != 0 {
			dd = FindDoorPos(lvl, rnd, r.Lx(), r.Hy()+1, r.Hx(), r.Hy()+1)
		} else {
			dy = -1
			dd = FindDoorPos(lvl, rnd, r.Lx(), r.Ly()-1, r.Hx(), r.Ly()-1)
		}
		nx, ny := dd.X, dd.Y+dy
		if ny < 1 || ny >= lvl.Height-1 || lvl.At(nx, ny).Kind != gamemap.Stone {
			continue
		}
		if !lvl.At(dd.X, dd.Y).Kind.IsWall() && !lvl.At(dd.X, dd.Y).Kind.IsDoor() {
			continue
		}
		doorKind := func() gamemap.Kind {
			if rnd.Intn(5) != 0 {
				return gamemap.SecretDoor
			}
			return gamemap.Door
		}
		lvl.SetKind(nx, ny, gamemap.Corridor)
		if trap != nicheNone || rnd.OneIn(4) {
			switch trap {
			case nicheTeleporter:
				lvl.AddTrap(nx, ny, gamemap.LevelTeleporter)
			case nicheTrapDoor:
				lvl.AddTrap(nx, ny, gamemap.TrapDoor)
			}
			SetDoor(lvl, rnd, dd.X, dd.Y, doorKind(), false)
			return
		}
		if rnd.Intn(7) != 0 {
			SetDoor(lvl, rnd, dd.X, dd.Y, doorKind(), false)
		} else if rnd.OneIn(5) && lvl.At(dd.X, dd.Y).Kind.IsWall() {
			// sealed closet behind bars
			lvl.SetKind(dd.X, dd.Y, gamemap.IronBars)
		}
		return
	}
}

// placeVault looks for a stone pocket big enough for a closed 2x2 vault.
// The vault is deliberately not joined to the rest of the level.
func placeVault(lvl *gamemap.Level, rnd *rng.Source) bool {
	const size = 2
	for _i, _n := 0, 20; _i < _n; _i++ {
		x := rnd.Intn(lvl.Width-size-5) + 2
		y := rnd.Intn(lvl.Height-size-5) + 2
		if !allStone(lvl, gamemap.Rect{X1: x - 2, Y1: y - 2, X2: x + size + 1, Y2: y + size + 1}) {
			continue
		}
		v := gamemap.Room{X: x, Y: y, W: size, H: size, Kind: gamemap.Vault}
		CarveRoom(lvl, v)
		lvl.Rooms = append(lvl.Rooms, v)
		lvl.Flags.HasVault = true
		return true
	}
	return false
}

func allStone(lvl *gamemap.Level, r gamemap.Rect) bool {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if !lvl.InBounds(x, y) || lvl.At(x, y).Kind != gamemap.Stone {
				return false
			}
		}
	}
	return true
}
