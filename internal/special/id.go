package special

import (
	"errors"
	"fmt"
	"strings"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

// ErrUnknownLevel is returned for a name or id no template answers to.
var ErrUnknownLevel = errors.New("unknown special level")

// ID names one special level template.
type ID uint8

const (
	None ID = iota
	Oracle
	BigRoom
	RogueLevel
	Medusa
	Castle
	Valley
	MinesTown
	MinesEnd1
	MinesEnd2
	Sokoban1a
	Sokoban1b
	Sokoban2a
	Sokoban2b
	Sokoban3a
	Sokoban3b
	Sokoban4a
	Sokoban4b
	Juiblex
	Baalzebub
	Asmodeus
	WizardTower1
	WizardTower2
	WizardTower3
	Sanctum
	VladsTower1
	VladsTower2
	VladsTower3
	EarthPlane
	AirPlane
	FirePlane
	WaterPlane
	AstralPlane
	QuestHome
	QuestLocate
	QuestGoal
	Maze
	MinesFiller
	numIDs
)

// bigRoomChance is the percentage of games that get the big room.
const bigRoomChance = 40

type template struct {
	name  string
	title string
	at    gamemap.DLevel
	// home marks a template that always occupies at. Variants, the big
	// room and the fillers are chosen by Choose instead.
	home  bool
	build func(*builder)
}

func dl(dungeon, level int) gamemap.DLevel {
	return gamemap.DLevel{Dungeon: dungeon, Level: level}
}

var templates = [numIDs]template{
	Oracle:       {"oracle", "The Oracle", dl(gamemap.DungeonsOfDoom, 5), true, oracle},
	BigRoom:      {"bigrm", "A Big Room", dl(gamemap.DungeonsOfDoom, 10), false, bigRoom},
	RogueLevel:   {"rogue", "A Primitive Area", dl(gamemap.DungeonsOfDoom, 15), true, rogueLevel},
	Medusa:       {"medusa", "Medusa's Lair", dl(gamemap.DungeonsOfDoom, 20), true, medusa},
	Castle:       {"castle", "The Castle", dl(gamemap.DungeonsOfDoom, 25), true, castle},
	Valley:       {"valley", "The Valley of the Dead", dl(gamemap.DungeonsOfDoom, 26), true, valley},
	MinesTown:    {"minetn", "Minetown", dl(gamemap.GnomishMines, 3), true, minesTown},
	MinesEnd1:    {"minend-1", "Mines' End", dl(gamemap.GnomishMines, 8), true, minesEnd(1)},
	MinesEnd2:    {"minend-2", "Mines' End", dl(gamemap.GnomishMines, 8), false, minesEnd(2)},
	Sokoban1a:    {"soko1a", "Sokoban Level 1", dl(gamemap.Sokoban, 1), true, sokoban(soko1a, 1)},
	Sokoban1b:    {"soko1b", "Sokoban Level 1", dl(gamemap.Sokoban, 1), false, sokoban(soko1b, 1)},
	Sokoban2a:    {"soko2a", "Sokoban Level 2", dl(gamemap.Sokoban, 2), true, sokoban(soko2a, 2)},
	Sokoban2b:    {"soko2b", "Sokoban Level 2", dl(gamemap.Sokoban, 2), false, sokoban(soko2b, 2)},
	Sokoban3a:    {"soko3a", "Sokoban Level 3", dl(gamemap.Sokoban, 3), true, sokoban(soko3a, 3)},
	Sokoban3b:    {"soko3b", "Sokoban Level 3", dl(gamemap.Sokoban, 3), false, sokoban(soko3b, 3)},
	Sokoban4a:    {"soko4a", "Sokoban Level 4", dl(gamemap.Sokoban, 4), true, sokoban(soko4a, 4)},
	Sokoban4b:    {"soko4b", "Sokoban Level 4", dl(gamemap.Sokoban, 4), false, sokoban(soko4b, 4)},
	Juiblex:      {"juiblex", "Juiblex's Swamp", dl(gamemap.Gehennom, 5), true, juiblex},
	Baalzebub:    {"baalz", "Baalzebub's Lair", dl(gamemap.Gehennom, 10), true, baalzebub},
	Asmodeus:     {"asmodeus", "Asmodeus' Lair", dl(gamemap.Gehennom, 15), true, asmodeus},
	WizardTower1: {"wizard1", "The Wizard's Tower", dl(gamemap.Gehennom, 17), true, wizardTower(1)},
	WizardTower2: {"wizard2", "The Wizard's Tower", dl(gamemap.Gehennom, 18), true, wizardTower(2)},
	WizardTower3: {"wizard3", "The Wizard's Tower", dl(gamemap.Gehennom, 19), true, wizardTower(3)},
	Sanctum:      {"sanctum", "Moloch's Sanctum", dl(gamemap.Gehennom, 20), true, sanctum},
	VladsTower1:  {"tower1", "Vlad's Tower", dl(gamemap.VladsTower, 1), true, vladsTower(1)},
	VladsTower2:  {"tower2", "Vlad's Tower", dl(gamemap.VladsTower, 2), true, vladsTower(2)},
	VladsTower3:  {"tower3", "Vlad's Tower", dl(gamemap.VladsTower, 3), true, vladsTower(3)},
	EarthPlane:   {"earth", "The Plane of Earth", dl(gamemap.Endgame, 1), true, earthPlane},
	AirPlane:     {"air", "The Plane of Air", dl(gamemap.Endgame, 2), true, airPlane},
	FirePlane:    {"fire", "The Plane of Fire", dl(gamemap.Endgame, 3), true, firePlane},
	WaterPlane:   {"water", "The Plane of Water", dl(gamemap.Endgame, 4), true, waterPlane},
	AstralPlane:  {"astral", "The Astral Plane", dl(gamemap.Endgame, 5), true, astralPlane},
	QuestHome:    {"quest-strt", "Quest Home", dl(gamemap.Quest, 1), true, questHome},
	QuestLocate:  {"quest-loca", "Quest Locate", dl(gamemap.Quest, 2), false, questLocate},
	QuestGoal:    {"quest-goal", "Quest Goal", dl(gamemap.Quest, 5), true, questGoal},
	Maze:         {"maze", "A Maze", gamemap.DLevel{}, false, mazeFiller},
	MinesFiller:  {"minefill", "The Gnomish Mines", gamemap.DLevel{}, false, minesFiller},
}

// variants lists the interchangeable layouts for one location.
var variants = map[ID][]ID{
	MinesEnd1: {MinesEnd1, MinesEnd2},
	Sokoban1a: {Sokoban1a, Sokoban1b},
	Sokoban2a: {Sokoban2a, Sokoban2b},
	Sokoban3a: {Sokoban3a, Sokoban3b},
	Sokoban4a: {Sokoban4a, Sokoban4b},
}

func (id ID) valid() bool { return id > None && id < numIDs }

func (id ID) String() string {
	if !id.valid() {
		return fmt.Sprintf("special(%d)", uint8(id))
	}
	return templates[id].name
}

// Title is the display name of the level.
func (id ID) Title() string {
	if !id.valid() {
		return ""
	}
	return templates[id].title
}

// Location returns where the template normally sits. Fillers report false.
func (id ID) Location() (gamemap.DLevel, bool) {
	if !id.valid() || id == Maze || id == MinesFiller {
		return gamemap.DLevel{}, false
	}
	return templates[id].at, true
}

// IDs lists every template in declaration order.
func IDs() []ID {
	ids := make([]ID, 0, numIDs-1)
	for id := Oracle; id < numIDs; id++ {
		ids = append(ids, id)
	}
	return ids
}

// ParseID is the inverse of ID.String. Matching ignores case.
func ParseID(s string) (ID, error) {
	for id := Oracle; id < numIDs; id++ {
		if strings.EqualFold(templates[id].name, s) {
			return id, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Lookup resolves the template that always occupies d. Levels that only
// sometimes hold a special layout, and the fillers, are left to Choose.
func Lookup(d gamemap.DLevel) (ID, bool) {
	for id := Oracle; id < numIDs; id++ {
		if t := templates[id]; t.home && t.at == d {
			return id, true
		}
	}
	if d.Dungeon == gamemap.Quest && d.Level >= 2 && d.Level <= 4 {
		return QuestLocate, true
	}
	return None, false
}

// IsMazeLevel reports levels filled by the maze generator when no fixed
// template claims them.
func IsMazeLevel(d gamemap.DLevel) bool {
	return d.Dungeon == gamemap.Gehennom || (d.Dungeon == gamemap.DungeonsOfDoom && d.Level >= 25)
}

// Choose picks the layout for d: a fixed template, one of its variants,
// the big room roll, or a filler. It draws from rnd only when there is a
// choice to make and reports false for ordinary room-and-corridor levels.
func Choose(d gamemap.DLevel, rnd *rng.Source) (ID, bool) {
	if id, ok := Lookup(d); ok {
		if vs := variants[id]; len(vs) > 1 {
			id = vs[rnd.Intn(len(vs))]
		}
		return id, true
	}
	switch {
	case d == templates[BigRoom].at:
		if rnd.Percent(bigRoomChance) {
			return BigRoom, true
		}
	case IsMazeLevel(d):
		return Maze, true
	case d.Dungeon == gamemap.GnomishMines:
		return MinesFiller, true
	}
	return None, false
}
