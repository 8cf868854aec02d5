package gamemap

import "fmt"

// Fixed grid size shared by every level.
const (
	ColNo = 80
	RowNo = 21
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Stairway links a cell on this level to another level.
type Stairway struct {
	X, Y   int
	Dest   DLevel
	Up     bool
	Ladder bool
}

// TrapKind identifies a trap placed by a template.
type TrapKind uint8

const (
	ArrowTrap TrapKind = iota + 1
	DartTrap
	RockFallTrap
	SqueakyBoard
	BearTrap
	LandMine
	RollingBoulderTrap
	SleepingGasTrap
	RustTrap
	FireTrap
	Pit
	SpikedPit
	Hole
	TrapDoor
	TeleportTrap
	LevelTeleporter
	MagicPortal
	Web
	StatueTrap
	MagicTrap
	AntiMagicTrap
	PolymorphTrap
	VibratingSquare
)

var trapNames = []string{
	"", "arrow trap", "dart trap", "falling rock trap", "squeaky board",
	"bear trap", "land mine", "rolling boulder trap", "sleeping gas trap",
	"rust trap", "fire trap", "pit", "spiked pit", "hole", "trap door",
	"teleportation trap", "level teleporter", "magic portal", "web",
	"statue trap", "magic trap", "anti-magic field", "polymorph trap",
	"vibrating square",
}

func (k TrapKind) String() string {
	if int(k) < len(trapNames) && k != 0 {
		return trapNames[k]
	}
	return "trap"
}

// Trap is a trap location.
type Trap struct {
	X, Y int
	Kind TrapKind
}

// Portal is a magic portal trap together with the level it sends to.
type Portal struct {
	X, Y int
	Dest DLevel
}

// Flags records level-wide properties set during generation.
type Flags struct {
	HasShop      bool
	HasVault     bool
	HasZoo       bool
	HasCourt     bool
	HasMorgue    bool
	HasBeehive   bool
	HasBarracks  bool
	HasTemple    bool
	HasSwamp     bool
	NoTeleport   bool
	HardFloor    bool
	NoMagicMap   bool
	Graveyard    bool
	SokobanRules bool
	Maze         bool
	Cavernous    bool
	Arboreal     bool
	Fountains    int
	Sinks        int
}

// Level holds the cell grid and everything placed on it for one level.
// Cells is indexed [y][x].
type Level struct {
	Width, Height int
	Cells         [][]Cell
	Rooms         []Room
	Stairs        []Stairway
	Traps         []Trap
	Boulders      []Point
	Portals       []Portal
	DLevel        DLevel
	Special       string
	Flags         Flags
}

// New creates a Level filled with stone.
func New(width, height int) *Level {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Level{Width: width, Height: height, Cells: cells}
}

// NewStandard creates a ColNo x RowNo level for d.
func NewStandard(d DLevel) *Level {
	l := New(ColNo, RowNo)
	l.DLevel = d
	return l
}

// InBounds reports whether (x, y) is within the map boundaries.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// At returns a pointer to the cell at (x, y). Panics if out of bounds.
func (l *Level) At(x, y int) *Cell {
	return &l.Cells[y][x]
}

// KindAt returns the kind at (x, y), or Stone outside the grid.
func (l *Level) KindAt(x, y int) Kind {
	if !l.InBounds(x, y) {
		return Stone
	}
	return l.Cells[y][x].Kind
}

// SetKind changes the terrain at (x, y), leaving the other flags alone.
func (l *Level) SetKind(x, y int, k Kind) {
	l.Cells[y][x].Kind = k
}

// Fill sets every cell of the grid to k and clears all flags.
func (l *Level) Fill(k Kind) {
	for y := range l.Cells {
		for x := range l.Cells[y] {
			l.Cells[y][x] = Cell{Kind: k}
		}
	}
}

// FillRect sets every cell of r to k, lit as given.
func (l *Level) FillRect(r Rect, k Kind, lit bool) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			c := l.At(x, y)
			c.Kind = k
			c.Lit = lit
		}
	}
}

// IsPassable returns true when (x, y) is in bounds and passable.
func (l *Level) IsPassable(x, y int) bool {
	return l.InBounds(x, y) && l.Cells[y][x].Kind.IsPassable()
}

// IsTransparent reports whether light passes through (x, y). Rock, walls,
// trees, clouds, raised drawbridges and shut doors block sight.
func (l *Level) IsTransparent(x, y int) bool {
	if !l.InBounds(x, y) {
		return false
	}
	c := l.Cells[y][x]
	switch k := c.Kind; {
	case k == Stone, k.IsWall(), k == Tree, k == SecretDoor, k == SecretCorridor,
		k == Cloud, k == DrawbridgeUp:
		return false
	case k == Door:
		return !c.Door.Has(Closed) && !c.Door.Has(Locked)
	}
	return true
}

// Count returns how many cells have kind k.
func (l *Level) Count(k Kind) int {
	n := 0
	for y := range l.Cells {
		for x := range l.Cells[y] {
			if l.Cells[y][x].Kind == k {
				n++
			}
		}
	}
	return n
}

// RoomAt returns the index of the room whose interior holds (x, y), or -1.
func (l *Level) RoomAt(x, y int) int {
	for i, r := range l.Rooms {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// RoomDoors lists the door and secret door cells in room i's wall ring.
func (l *Level) RoomDoors(i int) []Point {
	b := l.Rooms[i].Bounds()
	var doors []Point
	for y := b.Y1; y <= b.Y2; y++ {
		for x := b.X1; x <= b.X2; x++ {
			if y != b.Y1 && y != b.Y2 && x != b.X1 && x != b.X2 {
				continue
			}
			if l.InBounds(x, y) && l.Cells[y][x].Kind.IsDoor() {
				doors = append(doors, Point{x, y})
			}
		}
	}
	return doors
}

// StairsAt returns the stairway at (x, y), if any.
func (l *Level) StairsAt(x, y int) (Stairway, bool) {
	for _, s := range l.Stairs {
		if s.X == x && s.Y == y {
			return s, true
		}
	}
	return Stairway{}, false
}

// AddStairs marks (x, y) as stairs (or a ladder) leading to dest.
func (l *Level) AddStairs(x, y int, dest DLevel, up, ladder bool) {
	k := Stairs
	if ladder {
		k = Ladder
	}
	l.SetKind(x, y, k)
	l.Stairs = append(l.Stairs, Stairway{X: x, Y: y, Dest: dest, Up: up, Ladder: ladder})
}

// AddTrap records a trap at (x, y).
func (l *Level) AddTrap(x, y int, k TrapKind) {
	l.Traps = append(l.Traps, Trap{X: x, Y: y, Kind: k})
}

// AddPortal records a magic portal trap at (x, y) leading to dest.
func (l *Level) AddPortal(x, y int, dest DLevel) {
	l.AddTrap(x, y, MagicPortal)
	l.Portals = append(l.Portals, Portal{X: x, Y: y, Dest: dest})
}

// TrapAt returns the trap at (x, y), if any.
func (l *Level) TrapAt(x, y int) (Trap, bool) {
	for _, t := range l.Traps {
		if t.X == x && t.Y == y {
			return t, true
		}
	}
	return Trap{}, false
}

// HasBoulder reports whether a boulder sits on (x, y).
func (l *Level) HasBoulder(x, y int) bool {
	for _, b := range l.Boulders {
		if b.X == x && b.Y == y {
			return true
		}
	}
	return false
}

func (l *Level) String() string {
	name := l.Special
	if name == "" {
		name = "ordinary"
	}
	return fmt.Sprintf("%s (%s, depth %d, %d rooms)", l.DLevel, name, l.DLevel.Depth(), len(l.Rooms))
}
