package gamemap

// Rect is an axis-aligned rectangle with inclusive corners.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Grow returns r expanded by n cells on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{r.X1 - n, r.Y1 - n, r.X2 + n, r.Y2 + n}
}

// RoomKind tags what a room is used for. Values keep the legacy numbering.
type RoomKind uint8

const (
	Ordinary RoomKind = 0
	Court    RoomKind = iota + 1
	Swamp
	Vault
	Beehive
	Morgue
	Barracks
	Zoo
	Delphi
	Temple
	LeprechaunHall
	CockatriceNest
	Anthole
	GeneralShop
	ArmorShop
	ScrollShop
	PotionShop
	WeaponShop
	FoodShop
	RingShop
	WandShop
	ToolShop
	BookShop
	HealthFoodShop
	CandleShop
)

var roomKindNames = map[RoomKind]string{
	Ordinary: "ordinary", Court: "court", Swamp: "swamp", Vault: "vault",
	Beehive: "beehive", Morgue: "morgue", Barracks: "barracks", Zoo: "zoo",
	Delphi: "delphi", Temple: "temple", LeprechaunHall: "leprechaun hall",
	CockatriceNest: "cockatrice nest", Anthole: "anthole",
	GeneralShop: "general store", ArmorShop: "armor shop",
	ScrollShop: "scroll shop", PotionShop: "potion shop",
	WeaponShop: "weapon shop", FoodShop: "delicatessen", RingShop: "jewelers",
	WandShop: "wand shop", ToolShop: "tool shop", BookShop: "bookstore",
	HealthFoodShop: "health food store", CandleShop: "lighting store",
}

func (k RoomKind) String() string {
	if s, ok := roomKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsShop reports whether k is one of the shop kinds.
func (k RoomKind) IsShop() bool { return k >= GeneralShop && k <= CandleShop }

// Room is a rectangular room. (X, Y) is the top-left interior cell; walls
// occupy the ring one cell outside the interior. Rooms are referred to by
// their index in Level.Rooms.
type Room struct {
	X, Y int
	W, H int
	Kind RoomKind
	Lit  bool
}

func (r Room) Lx() int { return r.X }
func (r Room) Ly() int { return r.Y }
func (r Room) Hx() int { return r.X + r.W - 1 }
func (r Room) Hy() int { return r.Y + r.H - 1 }

// Rect returns the interior as an inclusive rectangle.
func (r Room) Rect() Rect { return Rect{r.X, r.Y, r.Hx(), r.Hy()} }

// Bounds returns the interior plus its walls.
func (r Room) Bounds() Rect { return r.Rect().Grow(1) }

func (r Room) Area() int { return r.W * r.H }

func (r Room) Center() (int, int) { return r.Rect().Center() }

// Contains reports whether (x, y) is an interior cell.
func (r Room) Contains(x, y int) bool { return r.Rect().Contains(x, y) }

// Overlaps reports whether the two rooms come within spacing cells of each
// other, using half-open rectangles widened by spacing on every side.
func (r Room) Overlaps(o Room, spacing int) bool {
	x1, y1 := max(r.X-spacing, 0), max(r.Y-spacing, 0)
	x2, y2 := r.X+r.W+spacing, r.Y+r.H+spacing
	ox1, oy1 := max(o.X-spacing, 0), max(o.Y-spacing, 0)
	ox2, oy2 := o.X+o.W+spacing, o.Y+o.H+spacing
	return !(x2 <= ox1 || x1 >= ox2 || y2 <= oy1 || y1 >= oy2)
}
