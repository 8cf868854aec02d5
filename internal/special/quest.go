package special

import (
	"errors"
	"fmt"
	"strings"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/generate"
)

// ErrUnknownRole is returned by ParseRole for a name no role answers to.
var ErrUnknownRole = errors.New("unknown role")

// Role picks the quest the player is sent on.
type Role uint8

const (
	Archeologist Role = iota
	Barbarian
	Caveman
	Healer
	Knight
	Monk
	Priest
	Ranger
	Rogue
	Samurai
	Tourist
	Valkyrie
	Wizard
	numRoles
)

type roleInfo struct {
	name   string
	abbrev string
	home   string
	locate string
	goal   string
}

var roles = [numRoles]roleInfo{
	Archeologist: {"Archeologist", "Arc", "the College of Archeology", "the Tomb of the Toltec Kings", "the Sanctum of Huhetotl"},
	Barbarian:    {"Barbarian", "Bar", "the Camp of the Duali", "the Subterranean Caves", "Thoth Amon's Lair"},
	Caveman:      {"Caveman", "Cav", "the Caves of the Ancestors", "the Dragon's Lair", "the Dragon's Den"},
	Healer:       {"Healer", "Hea", "the Temple of Epidaurus", "the Temple of Coeus", "the Cyclops's Lair"},
	Knight:       {"Knight", "Kni", "Camelot Castle", "the Questing Beast's Lair", "Ixoth's Lair"},
	Monk:         {"Monk", "Mon", "the Monastery", "the Caves of Thought", "Master Kaen's Dojo"},
	Priest:       {"Priest", "Pri", "the Great Temple", "the Temple of Moloch", "Nalzok's Sanctum"},
	Ranger:       {"Ranger", "Ran", "Orion's Camp", "the Scorpion's Nest", "Scorpius's Lair"},
	Rogue:        {"Rogue", "Rog", "the Thieves' Guild", "the Assassins' Den", "the Master Assassin's Lair"},
	Samurai:      {"Samurai", "Sam", "the Castle of the Taro Clan", "the Shogun's Castle", "Ashikaga's Stronghold"},
	Tourist:      {"Tourist", "Tou", "Ankh-Morpork", "the Thieves' Guild Hall", "the Master Thief's Lair"},
	Valkyrie:     {"Valkyrie", "Val", "the Shrine of Destiny", "Muspelheim", "Surtur's Stronghold"},
	Wizard:       {"Wizard", "Wiz", "the Tower of the Archmage", "the Dark Tower", "the Dark One's Sanctum"},
}

func (r Role) String() string {
	if r >= numRoles {
		return fmt.Sprintf("role(%d)", uint8(r))
	}
	return roles[r].name
}

// Abbrev is the three-letter role code used in quest level names.
func (r Role) Abbrev() string {
	if r >= numRoles {
		return "???"
	}
	return roles[r].abbrev
}

// Roles lists every role in order.
func Roles() []Role {
	out := make([]Role, numRoles)
	for i := range out {
		out[i] = Role(i)
	}
	return out
}

// ParseRole accepts a role's full name or its abbreviation, ignoring case.
func ParseRole(s string) (Role, error) {
	for r, info := range roles {
		if strings.EqualFold(info.name, s) || strings.EqualFold(info.abbrev, s) {
			return Role(r), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// QuestPlace names the home, locate or goal level of r's quest.
func QuestPlace(r Role, id ID) string {
	if r >= numRoles {
		return ""
	}
	switch id {
	case QuestHome:
		return roles[r].home
	case QuestLocate:
		return roles[r].locate
	case QuestGoal:
		return roles[r].goal
	}
	return ""
}

func questLevelName(r Role, id ID) string {
	suffix := strings.TrimPrefix(templates[id].name, "quest-")
	return r.Abbrev() + "-" + suffix
}

// questEntry is the Dungeons of Doom level the home portal returns to.
const questEntry = 14

// questHome is the leader's hall. The magic portal back to the main
// dungeon stands at the west end and the stairs down at the east.
func questHome(b *builder) {
	lvl := b.lvl
	b.fill(gamemap.Stone, false)
	i := b.room(20, 5, 40, 11, gamemap.Ordinary, true)
	hall := lvl.Rooms[i]
	cx, cy := hall.Center()

	switch b.opts.Role {
	case Knight:
		for _, x := range []int{28, 51} {
			b.wallLine(x, hall.Y, x, hall.Hy())
			b.door(x, 10, gamemap.Open)
		}
		b.feature(cx, cy, gamemap.Throne)
	case Monk:
		b.feature(cx, cy, gamemap.Fountain)
		for _, p := range []gamemap.Point{{X: 33, Y: 7}, {X: 45, Y: 7}, {X: 33, Y: 13}, {X: 45, Y: 13}} {
			b.set(p.X, p.Y, gamemap.Stone)
		}
	case Priest:
		b.dress(i, gamemap.Temple)
	case Valkyrie:
		for y := hall.Y; y <= hall.Hy(); y++ {
			for x := hall.X; x <= hall.Hx(); x++ {
				if b.rnd.Intn(3) == 0 {
					b.set(x, y, gamemap.Ice)
				}
			}
		}
		b.feature(cx, cy, gamemap.Throne)
	default:
		b.feature(27, 10, gamemap.Fountain)
		b.feature(52, 10, gamemap.Fountain)
	}

	b.check(22, 10)
	lvl.AddPortal(22, 10, dl(gamemap.DungeonsOfDoom, questEntry))
	b.down(57, 10, b.below())
}

// questTraps lists the traps strewn over each role's locate level.
var questTraps = map[Role][]gamemap.TrapKind{
	Wizard:   {gamemap.MagicTrap, gamemap.TeleportTrap, gamemap.AntiMagicTrap},
	Rogue:    {gamemap.DartTrap, gamemap.ArrowTrap, gamemap.SleepingGasTrap},
	Valkyrie: {gamemap.FireTrap, gamemap.Pit, gamemap.SpikedPit},
	Ranger:   {gamemap.ArrowTrap, gamemap.BearTrap, gamemap.Pit},
}

var defaultQuestTraps = []gamemap.TrapKind{gamemap.Pit, gamemap.ArrowTrap, gamemap.DartTrap}

// questLocate is a maze for the roles whose enemies build them and a
// cavern for everyone else.
func questLocate(b *builder) {
	lvl := b.lvl
	switch b.opts.Role {
	case Wizard, Monk, Rogue:
		b.maze()
	default:
		b.fill(gamemap.Stone, false)
		lvl.Flags.Cavernous = true
		b.cavern(gamemap.Point{X: 40, Y: 10}, 4, 35, false)
		wallify(lvl)
		b.specialStairs(true, true)
	}

	kinds, ok := questTraps[b.opts.Role]
	if !ok {
		kinds = defaultQuestTraps
	}
	for _i, _n := 0, 6+b.rnd.Intn(3); _i < _n; _i++ {
		for _i, _n := 0, 20; _i < _n; _i++ {
			x := 5 + b.rnd.Intn(70)
			y := 2 + b.rnd.Intn(17)
			if k := lvl.At(x, y).Kind; k != gamemap.Floor && k != gamemap.Corridor {
				continue
			}
			if _, taken := lvl.TrapAt(x, y); taken {
				continue
			}
			if _, stairs := lvl.StairsAt(x, y); stairs {
				continue
			}
			lvl.AddTrap(x, y, kinds[b.rnd.Intn(len(kinds))])
			break
		}
	}
}

// questGoal is the nemesis's dark lair at the end of a long corridor.
// There is no way further down.
func questGoal(b *builder) {
	lvl := b.lvl
	b.fill(gamemap.Stone, false)
	i := b.room(25, 5, 30, 11, gamemap.Ordinary, false)
	lair := lvl.Rooms[i]
	cx, cy := lair.Center()

	switch b.opts.Role {
	case Valkyrie:
		for x := lair.X + 2; x <= lair.Hx()-2; x++ {
			if b.rnd.OneIn(4) {
				b.set(x, cy, gamemap.Lava)
			}
		}
	case Ranger:
		for _i, _n := 0, 5; _i < _n; _i++ {
			b.set(lair.X+1+b.rnd.Intn(lair.W-2), lair.Y+1+b.rnd.Intn(lair.H-2), gamemap.Pool)
		}
	case Wizard:
		b.scatterTraps(5, lair.Rect(), gamemap.Floor, gamemap.MagicTrap)
	case Caveman:
		b.feature(cx, cy, gamemap.Throne)
	default:
		b.feature(cx, cy, gamemap.Altar)
	}

	generate.CarveH(lvl, 5, 23, 10, gamemap.Corridor)
	b.door(24, 10, gamemap.Closed)
	b.up(5, 10, b.above())
}
