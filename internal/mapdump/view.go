package mapdump

import (
	"encoding/json"
	"io"

	"dungeongen/internal/gamemap"
)

// View is the JSON shape of a level.
type View struct {
	DLevel  gamemap.DLevel `json:"dlevel"`
	Name    string         `json:"name"`
	Special string         `json:"special,omitempty"`
	Depth   int            `json:"depth"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Rows    []string       `json:"rows"`
	Rooms   []RoomView     `json:"rooms"`
	Stairs  []StairView    `json:"stairs"`
	Traps   []TrapView     `json:"traps,omitempty"`
	Portals []PortalView   `json:"portals,omitempty"`
	Doors   []DoorView     `json:"doors,omitempty"`
	Flags   []string       `json:"flags,omitempty"`
}

type RoomView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
	Kind string `json:"kind"`
	Lit  bool   `json:"lit"`
}

type StairView struct {
	X      int            `json:"x"`
	Y      int            `json:"y"`
	Up     bool           `json:"up"`
	Ladder bool           `json:"ladder,omitempty"`
	Dest   gamemap.DLevel `json:"dest"`
}

type TrapView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

type PortalView struct {
	X    int            `json:"x"`
	Y    int            `json:"y"`
	Dest gamemap.DLevel `json:"dest"`
}

type DoorView struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	State  string `json:"state"`
	Secret bool   `json:"secret,omitempty"`
}

// NewView flattens lvl for encoding.
func NewView(lvl *gamemap.Level) View {
	v := View{
		DLevel:  lvl.DLevel,
		Name:    gamemap.DungeonName(lvl.DLevel.Dungeon),
		Special: lvl.Special,
		Depth:   lvl.DLevel.Depth(),
		Width:   lvl.Width,
		Height:  lvl.Height,
		Rows:    make([]string, lvl.Height),
		Rooms:   make([]RoomView, 0, len(lvl.Rooms)),
		Stairs:  make([]StairView, 0, len(lvl.Stairs)),
		Flags:   flagNames(lvl.Flags),
	}
	for y, _n := 0, lvl.Height; y < _n; y++ {
		v.Rows[y] = Row(lvl, y)
		for x, _n := 0, lvl.Width; x < _n; x++ {
			c := lvl.At(x, y)
			if c.Kind.IsDoor() {
				v.Doors = append(v.Doors, DoorView{X: x, Y: y, State: c.Door.String(), Secret: c.Kind == gamemap.SecretDoor})
			}
		}
	}
	for _, r := range lvl.Rooms {
		v.Rooms = append(v.Rooms, RoomView{X: r.X, Y: r.Y, W: r.W, H: r.H, Kind: r.Kind.String(), Lit: r.Lit})
	}
	for _, s := range lvl.Stairs {
		v.Stairs = append(v.Stairs, StairView{X: s.X, Y: s.Y, Up: s.Up, Ladder: s.Ladder, Dest: s.Dest})
	}
	for _, t := range lvl.Traps {
		v.Traps = append(v.Traps, TrapView{X: t.X, Y: t.Y, Kind: t.Kind.String()})
	}
	for _, p := range lvl.Portals {
		v.Portals = append(v.Portals, PortalView{X: p.X, Y: p.Y, Dest: p.Dest})
	}
	return v
}

func flagNames(f gamemap.Flags) []string {
	var out []string
	add := func(on bool, name string) {
		if on {
			out = append(out, name)
		}
	}
	add(f.HasShop, "shop")
	add(f.HasVault, "vault")
	add(f.HasZoo, "zoo")
	add(f.HasCourt, "court")
	add(f.HasMorgue, "morgue")
	add(f.HasBeehive, "beehive")
	add(f.HasBarracks, "barracks")
	add(f.HasTemple, "temple")
	add(f.HasSwamp, "swamp")
	add(f.NoTeleport, "noteleport")
	add(f.HardFloor, "hardfloor")
	add(f.NoMagicMap, "nommap")
	add(f.Graveyard, "graveyard")
	add(f.SokobanRules, "sokoban")
	add(f.Maze, "maze")
	add(f.Cavernous, "cavernous")
	add(f.Arboreal, "arboreal")
	return out
}

// WriteJSON encodes lvl's view, indented, followed by a newline.
func WriteJSON(w io.Writer, lvl *gamemap.Level) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewView(lvl))
}
