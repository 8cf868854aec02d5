package gamemap

// Kind identifies the terrain of a map cell. The numbering follows the
// legacy rm.h order so wall kinds form the contiguous range VWall..DBWall.
type Kind uint8

const (
	Stone Kind = iota
	VWall
	HWall
	TLCorner
	TRCorner
	BLCorner
	BRCorner
	CrossWall
	TUWall
	TDWall
	TLWall
	TRWall
	DBWall
	Tree
	SecretDoor
	SecretCorridor
	Pool
	Moat
	Water
	DrawbridgeUp
	Lava
	IronBars
	Door
	Corridor
	Floor // room interior
	Stairs
	Ladder
	Fountain
	Throne
	Sink
	Grave
	Altar
	Ice
	DrawbridgeDown
	Air
	Cloud
	numKinds
)

var kindNames = [numKinds]string{
	"stone", "vwall", "hwall", "tlcorner", "trcorner", "blcorner", "brcorner",
	"crosswall", "tuwall", "tdwall", "tlwall", "trwall", "dbwall", "tree",
	"sdoor", "scorr", "pool", "moat", "water", "drawbridge_up", "lava",
	"iron_bars", "door", "corr", "room", "stairs", "ladder", "fountain",
	"throne", "sink", "grave", "altar", "ice", "drawbridge_down", "air", "cloud",
}

var kindGlyphs = [numKinds]rune{
	' ', '|', '-', '-', '-', '-', '-',
	'-', '-', '-', '|', '|', '|', '#',
	'#', '#', '}', '}', '}', '#', '}',
	'#', '+', '#', '.', '>', '>', '{',
	'\\', '#', '|', '_', '.', '.', ' ', '#',
}

func (k Kind) String() string {
	if k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// Glyph returns the classic ASCII symbol for k as a player would see it;
// secret doors and corridors are indistinguishable from rock and tunnels.
func (k Kind) Glyph() rune {
	if k >= numKinds {
		return '?'
	}
	return kindGlyphs[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return Stone, false
}

func (k Kind) IsWall() bool { return k >= VWall && k <= DBWall }

func (k Kind) IsDoor() bool { return k == Door || k == SecretDoor }

// IsPassable reports whether a walker can stand on k without flying or
// searching first.
func (k Kind) IsPassable() bool {
	switch k {
	case Floor, Corridor, Door, Stairs, Ladder, Fountain, Throne, Sink,
		Grave, Altar, Ice, DrawbridgeDown, Air, Cloud:
		return true
	}
	return false
}

// IsLiquid reports pools, moats, water and lava.
func (k Kind) IsLiquid() bool {
	return k == Pool || k == Moat || k == Water || k == Lava
}

// DoorState is the lock/trap substate of a door cell. It is stored apart
// from Kind because a doorway's shape and its lock state vary independently.
type DoorState uint8

const (
	NoDoor  DoorState = 0
	Broken  DoorState = 1 << 0
	Open    DoorState = 1 << 1
	Closed  DoorState = 1 << 2
	Locked  DoorState = 1 << 3
	Trapped DoorState = 1 << 4
	Secret  DoorState = 1 << 5
)

// Has reports whether every bit of f is set in d.
func (d DoorState) Has(f DoorState) bool { return f != 0 && d&f == f }

func (d DoorState) String() string {
	var s string
	switch {
	case d.Has(Broken):
		s = "broken"
	case d.Has(Open):
		s = "open"
	case d.Has(Locked):
		s = "locked"
	case d.Has(Closed):
		s = "closed"
	default:
		s = "nodoor"
	}
	if d.Has(Trapped) {
		s += "+trapped"
	}
	return s
}

// Cell is one grid position.
type Cell struct {
	Kind        Kind
	Door        DoorState
	Lit         bool
	Explored    bool
	NonDiggable bool
}
