package special

import "dungeongen/internal/gamemap"

// Sokoban maps, bottom level first. Legend: - and | walls, . floor,
// 0 boulder on floor, ^ hole, < and > stairs, + door, # corridor.
var (
	soko1a = []string{
		"-------- ------",
		"|.|....|-|....|",
		"|.|....|..0...|",
		"|.|....|.|....|",
		"|.|....|.|....|",
		"|.|-.---.---..|",
		"|.+.........0.|",
		"|.|..|--.--|..|",
		"|.|..|  |..|..|",
		"|.|..|  |..|..|",
		"|.----  |..--.|",
		"|.......|..0..|",
		"|.......+.0...|",
		"|.......|.....|",
		"-----------.--|",
		"          |.<.|",
		"          ----|",
	}
	soko1b = []string{
		"------  -----",
		"|....|  |...|",
		"|.0..---|...|",
		"|.0....0..0.|",
		"|...|..|.0..|",
		"|...|..|..0.|",
		"|-.--..|.---|",
		"|..0....|...|",
		"|.....0.|...|",
		"-------.--+-|",
		"  |.........|",
		"  |.........|",
		"  |...|.--.-|",
		"  |...|.....|",
		"  ------|.--|",
		"       |.<.|",
		"       ----|",
	}
	soko2a = []string{
		" ----          -----------",
		"--.>.-----------.........|",
		"|....|.........0.........|",
		"|....+.........0..-------|",
		"--.--..........0..|      ",
		"  |....0.0..0.0...|      ",
		"  |....|..0..0.---|      ",
		"  |-..--........|        ",
		"   |...|..0..0..|        ",
		"   |...|........|        ",
		"   |...---......|        ",
		"   |.....|.^^^^.|        ",
		"   |.....|......|        ",
		"   --------+-----        ",
		"          |..|            ",
		"          |..|            ",
		"          -<--            ",
	}
	soko2b = []string{
		"-------- ------",
		"|.>....|--....|",
		"|..-...|.0..0.|",
		"|...--..|.0...|",
		"|.....|.|..0..|",
		"|.....+.+..0..|",
		"|.....|.|.0...|",
		"|..---..|.....|",
		"|..-...|.0..0.|",
		"|..0...|----..|",
		"----...|  |...|",
		"   |...|  |...|",
		"   |...---|...|",
		"   |..0..0..0.|",
		"   |...|..|...|",
		"   |...+..+...|",
		"   |...|..|...|",
		"   |...----...|",
		"   |..^^^^....|",
		"   |..---------",
		"   ----        ",
	}
	soko3a = []string{
		"  --------",
		"--|.>....|",
		"|.+..0...|",
		"|.|--.-..|",
		"|.|  |...|",
		"|.|  |...|",
		"|.----|..|",
		"|.....0..|",
		"|..0..-..|",
		"|.....0..|",
		"---...--.--",
		"  |.0.....|",
		"  |...--..|",
		"  |.0.....|",
		"  |...--..|",
		"  |.0.....|",
		"  |...--..|",
		"  |.0.....|",
		"  |..^^^^.|",
		"  |...----|",
		"  ----    ",
	}
	soko3b = []string{
		"  --------",
		"--|.>....|",
		"|.+.....0|",
		"|.|..-...|",
		"|.|..|...|",
		"|.|..--0.|",
		"|......0.|",
		"|.|..-...|",
		"|.|.0|...|",
		"|.|..--0.|",
		"|......0.|",
		"|.|..-...|",
		"|.|.0|...|",
		"|.|..--0.|",
		"|......0.|",
		"|.|..-...|",
		"|.|.0|...|",
		"|.|..--0.|",
		"|......0.|",
		"|..^^^^..|",
		"----------",
	}
	soko4a = []string{
		"--------------------------",
		"|<......^^^^^^^^^^^^^^^^.|",
		"|.......----------------.|",
		"-------.------         |.|",
		" |...........|         |.|",
		" |.0.0.0.0.0.|         |.|",
		"--------.----|         |.|",
		"|...0.0..0.0.|         |.|",
		"|...0........|         |.|",
		"-----.--------   ------|.|",
		" |..0...|        |.......|",
		" |.....0|        |.......|",
		" |.0....|        |.......|",
		" |..0...|        |.......|",
		" |......|        |.......|",
		" --------        ---------",
	}
	soko4b = []string{
		"--------------------------",
		"|.^^^^^^^^^^^^^^^^......<|",
		"|.----------------.......|",
		"|.|         ------.-------",
		"|.|         |.........0.|",
		"|.|         |.0.0.0.0...|",
		"|.|         |----.--------",
		"|.|         |.0.0...0.0..|",
		"|.|         |.....0......|",
		"|.|------   --------.-----",
		"|.......|        |..0...|",
		"|.......|        |....0.|",
		"|.......|        |.0....|",
		"|.......|        |.0..0.|",
		"|.......|        |......|",
		"---------        --------",
	}
)

// sokoban returns the builder for one Sokoban map. Levels are numbered
// from the entry upward: up stairs lead to the level below in the
// branch, or back to the Dungeons of Doom from level 1.
func sokoban(rows []string, n int) func(*builder) {
	return func(b *builder) {
		b.fill(gamemap.Stone, false)
		lvl := b.lvl
		lvl.Flags.SokobanRules = true
		lvl.Flags.NoTeleport = true
		lvl.Flags.HardFloor = true

		w := 0
		for _, r := range rows {
			w = max(w, len(r))
		}
		ox := max(0, (lvl.Width-w)/2)
		oy := max(0, (lvl.Height-len(rows))/2)

		upDest := gamemap.DLevel{Dungeon: gamemap.Sokoban, Level: n - 1}
		if n == 1 {
			upDest = gamemap.DLevel{Dungeon: gamemap.DungeonsOfDoom, Level: 6}
		}
		downDest := gamemap.DLevel{Dungeon: gamemap.Sokoban, Level: n + 1}

		for row, line := range rows {
			for col, ch := range line {
				x, y := ox+col, oy+row
				switch ch {
				case '-':
					b.set(x, y, gamemap.HWall)
				case '|':
					b.set(x, y, gamemap.VWall)
				case '.', '0', '^':
					b.set(x, y, gamemap.Floor)
					if ch == '0' {
						lvl.Boulders = append(lvl.Boulders, gamemap.Point{X: x, Y: y})
					}
					if ch == '^' {
						lvl.AddTrap(x, y, gamemap.Hole)
					}
				case '<':
					b.up(x, y, upDest)
				case '>':
					b.down(x, y, downDest)
				case '+':
					b.door(x, y, gamemap.Closed)
				case '#':
					b.set(x, y, gamemap.Corridor)
				default:
					continue
				}
				lvl.At(x, y).Lit = true
				lvl.At(x, y).NonDiggable = true
			}
		}
	}
}
