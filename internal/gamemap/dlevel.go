package gamemap

import "fmt"

// Dungeon numbers.
const (
	DungeonsOfDoom = iota
	Gehennom
	GnomishMines
	Sokoban
	Quest
	FortLudios
	VladsTower
	Endgame
)

var dungeonNames = []string{
	"The Dungeons of Doom", "Gehennom", "The Gnomish Mines", "Sokoban",
	"The Quest", "Fort Ludios", "Vlad's Tower", "The Elemental Planes",
}

// depthStart is the absolute depth of level 1 of each dungeon.
var depthStart = []int{1, 30, 2, 6, 16, 18, 37, 1}

// levelCounts is how many levels each dungeon has.
var levelCounts = []int{26, 20, 8, 4, 5, 1, 3, 5}

// DLevel addresses one level of one dungeon branch.
type DLevel struct {
	Dungeon int `json:"dungeon"`
	Level   int `json:"level"`
}

// Depth returns the absolute depth used for difficulty checks.
func (d DLevel) Depth() int {
	start := 1
	if d.Dungeon >= 0 && d.Dungeon < len(depthStart) {
		start = depthStart[d.Dungeon]
	}
	return start + d.Level - 1
}

func (d DLevel) String() string {
	return fmt.Sprintf("%s:%d", DungeonName(d.Dungeon), d.Level)
}

// DungeonName returns a display name for dungeon number n.
func DungeonName(n int) string {
	if n >= 0 && n < len(dungeonNames) {
		return dungeonNames[n]
	}
	return fmt.Sprintf("dungeon %d", n)
}

// DungeonCount is the number of known dungeon branches.
func DungeonCount() int { return len(dungeonNames) }

// LevelCount returns the number of levels in dungeon n, or 0 if n is not
// a known branch.
func LevelCount(n int) int {
	if n < 0 || n >= len(levelCounts) {
		return 0
	}
	return levelCounts[n]
}

// Valid reports whether d names an existing level.
func (d DLevel) Valid() bool {
	return d.Level >= 1 && d.Level <= LevelCount(d.Dungeon)
}
