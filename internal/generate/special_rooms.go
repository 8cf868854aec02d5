package generate

import (
	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

// maxShopDepth is the first depth without random shops.
const maxShopDepth = 19

type roomChance struct {
	kind     gamemap.RoomKind
	minDepth int
	oneIn    uint32
}

// roomChances is tried in order once the shop roll fails.
var roomChances = []roomChance{
	{gamemap.Court, 4, 6},
	{gamemap.LeprechaunHall, 5, 8},
	{gamemap.Zoo, 6, 7},
	{gamemap.Temple, 8, 5},
	{gamemap.Beehive, 9, 5},
	{gamemap.Morgue, 11, 6},
	{gamemap.Anthole, 12, 5},
	{gamemap.Barracks, 14, 4},
	{gamemap.Swamp, 15, 6},
	{gamemap.CockatriceNest, 16, 8},
}

// shopTable maps a percentile roll to a shop kind.
var shopTable = []struct {
	upTo int
	kind gamemap.RoomKind
}{
	{43, gamemap.GeneralShop},
	{59, gamemap.FoodShop},
	{73, gamemap.WeaponShop},
	{83, gamemap.ArmorShop},
	{91, gamemap.ToolShop},
	{95, gamemap.BookShop},
	{97, gamemap.RingShop},
	{98, gamemap.WandShop},
	{99, gamemap.CandleShop},
}

// ShopKind turns a 0..99 roll into a shop kind.
func ShopKind(roll int) gamemap.RoomKind {
	for _, e := range shopTable {
		if roll <= e.upTo {
			return e.kind
		}
	}
	return gamemap.GeneralShop
}

// selectSpecialKind rolls which special room, if any, the level gets.
// Shallow levels favour shops; other kinds are tried deepest-last, each
// with its own minimum depth and chance.
func selectSpecialKind(rnd *rng.Source, depth int) (gamemap.RoomKind, bool) {
	if depth < 2 {
		return gamemap.Ordinary, false
	}
	if depth < maxShopDepth && rnd.Intn(depth) < 3 {
		return ShopKind(rnd.Intn(100)), true
	}
	for _, c := range roomChances {
		if depth >= c.minDepth && rnd.OneIn(c.oneIn) {
			return c.kind, true
		}
	}
	return gamemap.Ordinary, false
}

func minAreaFor(k gamemap.RoomKind) int {
	switch {
	case k == gamemap.Vault:
		return 4
	case k.IsShop():
		return 12
	}
	return 9
}

// pickSpecialRoom chooses the room to convert, preferring later rooms.
// Room 0 is only used when it is the only room; rooms holding stairs are
// never used, and shops also need exactly one door.
func pickSpecialRoom(lvl *gamemap.Level, k gamemap.RoomKind) (int, bool) {
	need := minAreaFor(k)
	for i := len(lvl.Rooms) - 1; i >= 0; i-- {
		r := lvl.Rooms[i]
		if r.Kind != gamemap.Ordinary || r.Area() < need {
			continue
		}
		if i == 0 && len(lvl.Rooms) > 1 {
			continue
		}
		if roomHasStairs(lvl, r) {
			continue
		}
		if k.IsShop() && len(lvl.RoomDoors(i)) != 1 {
			continue
		}
		return i, true
	}
	return 0, false
}

func roomHasStairs(lvl *gamemap.Level, r gamemap.Room) bool {
	for _, s := range lvl.Stairs {
		if r.Contains(s.X, s.Y) {
			return true
		}
	}
	return false
}

// MakeSpecialRoom converts room i into kind k and dresses it.
func MakeSpecialRoom(lvl *gamemap.Level, rnd *rng.Source, i int, k gamemap.RoomKind) {
	r := &lvl.Rooms[i]
	r.Kind = k
	if k == gamemap.Morgue || k == gamemap.Vault {
		r.Lit = false
		darken(lvl, r.Bounds())
	}
	setRoomFlag(&lvl.Flags, k)

	switch {
	case k.IsShop():
		for _, d := range lvl.RoomDoors(i) {
			fixShopDoor(lvl.At(d.X, d.Y))
		}
	case k == gamemap.Temple:
		x, y := r.Center()
		lvl.SetKind(x, y, gamemap.Altar)
	case k == gamemap.Court:
		if p, ok := someSpot(lvl, rnd, *r); ok {
			lvl.SetKind(p.X, p.Y, gamemap.Throne)
		}
	case k == gamemap.Swamp:
		for y := r.Ly(); y <= r.Hy(); y++ {
			for x := r.Lx(); x <= r.Hx(); x++ {
				if (x+y)%2 == 1 && lvl.At(x, y).Kind == gamemap.Floor && !nextToDoor(lvl, x, y) {
					lvl.SetKind(x, y, gamemap.Pool)
				}
			}
		}
	}
}

// fixShopDoor makes a shop entrance usable: it is never secret, missing or
// trapped.
func fixShopDoor(c *gamemap.Cell) {
	if c.Kind == gamemap.SecretDoor {
		c.Kind = gamemap.Door
	}
	if c.Door == gamemap.NoDoor || c.Door.Has(gamemap.Broken) {
		c.Door = gamemap.Open
	}
	if c.Door.Has(gamemap.Trapped) {
		c.Door = gamemap.Locked
	}
}

func darken(lvl *gamemap.Level, b gamemap.Rect) {
	for y := b.Y1; y <= b.Y2; y++ {
		for x := b.X1; x <= b.X2; x++ {
			if lvl.InBounds(x, y) {
				lvl.At(x, y).Lit = false
			}
		}
	}
}

func setRoomFlag(f *gamemap.Flags, k gamemap.RoomKind) {
	switch {
	case k.IsShop():
		f.HasShop = true
	case k == gamemap.Court:
		f.HasCourt = true
	case k == gamemap.Swamp:
		f.HasSwamp = true
	case k == gamemap.Vault:
		f.HasVault = true
	case k == gamemap.Beehive:
		f.HasBeehive = true
	case k == gamemap.Morgue:
		f.HasMorgue = true
		f.Graveyard = true
	case k == gamemap.Barracks:
		f.HasBarracks = true
	case k == gamemap.Zoo:
		f.HasZoo = true
	case k == gamemap.Temple:
		f.HasTemple = true
	}
}

// addSpecialRoom rolls for and applies the level's special room.
func addSpecialRoom(lvl *gamemap.Level, rnd *rng.Source) {
	k, ok := selectSpecialKind(rnd, lvl.DLevel.Depth())
	if !ok {
		return
	}
	if i, ok := pickSpecialRoom(lvl, k); ok {
		MakeSpecialRoom(lvl, rnd, i, k)
	}
}
