package special

import (
	"github.com/zyedidia/generic/stack"

	"dungeongen/internal/gamemap"
)

// spine maps the wall neighbours of a wall cell, packed N<<3|S<<2|E<<1|W,
// to the wall piece that joins them.
var spine = [16]gamemap.Kind{
	gamemap.VWall, gamemap.HWall, gamemap.HWall, gamemap.HWall,
	gamemap.VWall, gamemap.TRCorner, gamemap.TLCorner, gamemap.TDWall,
	gamemap.VWall, gamemap.BRCorner, gamemap.BLCorner, gamemap.TUWall,
	gamemap.VWall, gamemap.TLWall, gamemap.TRWall, gamemap.CrossWall,
}

var mazeSteps = [4]gamemap.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: 2, Y: 0}, {X: -2, Y: 0}}

var (
	shallowMazeTraps = []gamemap.TrapKind{
		gamemap.TeleportTrap, gamemap.Pit, gamemap.SpikedPit, gamemap.ArrowTrap,
		gamemap.DartTrap, gamemap.BearTrap, gamemap.SleepingGasTrap,
	}
	deepMazeTraps = []gamemap.TrapKind{
		gamemap.TeleportTrap, gamemap.TeleportTrap, gamemap.FireTrap, gamemap.Pit,
		gamemap.SpikedPit, gamemap.Hole, gamemap.TrapDoor, gamemap.LandMine,
		gamemap.MagicTrap, gamemap.AntiMagicTrap,
	}
)

const (
	maxMazeTraps   = 15
	mazeStairTries = 100
	mazeStairGap   = 20
	mazeRoomTries  = 50
)

func mazeFiller(b *builder) {
	b.maze()
}

// maze fills the level with a perfect maze, a few open rooms, wallified
// rock, stairs and traps. Cells inside keepOut are left as rock for the
// caller to build on; the maze routes around them.
func (b *builder) maze(keepOut ...gamemap.Rect) {
	lvl := b.lvl
	depth := lvl.DLevel.Depth()
	b.fill(gamemap.Stone, depth < 10)
	lvl.Flags.Maze = true

	for _, r := range keepOut {
		b.rect(r, gamemap.IronBars, false)
	}
	b.carveMaze()
	for _i, _n := 0, b.rnd.Rnd(3); _i < _n; _i++ {
		b.mazeRoom()
	}
	for _, r := range keepOut {
		b.rect(r, gamemap.Stone, false)
	}
	wallify(lvl)
	b.mazeStairs(keepOut)
	b.mazeTraps(depth)
}

func (b *builder) inMaze(p gamemap.Point) bool {
	return p.X >= 2 && p.X < b.lvl.Width-2 && p.Y >= 2 && p.Y < b.lvl.Height-2
}

type mazeFrame struct {
	at   gamemap.Point
	dirs [4]gamemap.Point
	next int
}

// carveMaze runs a depth-first backtracker over the odd cells. Each cell
// shuffles its four directions once, on first visit.
func (b *builder) carveMaze() {
	lvl := b.lvl
	var start gamemap.Point
	for {
		start = gamemap.Point{
			X: 3 + 2*b.rnd.Intn((lvl.Width-4)/2),
			Y: 3 + 2*b.rnd.Intn((lvl.Height-4)/2),
		}
		if lvl.At(start.X, start.Y).Kind == gamemap.Stone {
			break
		}
	}

	frames := stack.New[*mazeFrame]()
	visit := func(p gamemap.Point) {
		lvl.SetKind(p.X, p.Y, gamemap.Corridor)
		f := &mazeFrame{at: p, dirs: mazeSteps}
		for i := 3; i > 0; i-- {
			j := b.rnd.Intn(i + 1)
			f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
		}
		frames.Push(f)
	}
	visit(start)
	for frames.Size() > 0 {
		f := frames.Peek()
		if f.next == len(f.dirs) {
			frames.Pop()
			continue
		}
		d := f.dirs[f.next]
		f.next++
		n := gamemap.Point{X: f.at.X + d.X, Y: f.at.Y + d.Y}
		if !b.inMaze(n) || lvl.At(n.X, n.Y).Kind != gamemap.Stone {
			continue
		}
		lvl.SetKind(f.at.X+d.X/2, f.at.Y+d.Y/2, gamemap.Corridor)
		visit(n)
	}
}

// mazeRoom opens a small lit room over a stretch that is still mostly
// rock. Any 3x3 block of the maze holds a passage cell, so the room always
// meets the maze.
func (b *builder) mazeRoom() {
	lvl := b.lvl
	w := 3 + b.rnd.Intn(4)
	h := 3 + b.rnd.Intn(2)
	for _i, _n := 0, mazeRoomTries; _i < _n; _i++ {
		x := 3 + b.rnd.Intn(lvl.Width-w-6)
		y := 2 + b.rnd.Intn(lvl.Height-h-4)
		r := gamemap.Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
		stone, blocked := 0, false
		for yy := r.Y1; yy <= r.Y2; yy++ {
			for xx := r.X1; xx <= r.X2; xx++ {
				switch lvl.At(xx, yy).Kind {
				case gamemap.Stone:
					stone++
				case gamemap.Corridor:
				default:
					blocked = true
				}
			}
		}
		if blocked || stone*10 < w*h*6 {
			continue
		}
		lvl.FillRect(r, gamemap.Floor, true)
		lvl.Rooms = append(lvl.Rooms, gamemap.Room{X: x, Y: y, W: w, H: h, Lit: true})
		return
	}
}

func isPassage(k gamemap.Kind) bool {
	return k != gamemap.Stone && !k.IsWall() && !k.IsLiquid() && k != gamemap.IronBars
}

// wallify turns the rock bordering open ground into walls and picks each
// wall's piece from the walls beside it.
func wallify(lvl *gamemap.Level) {
	var walls []gamemap.Point
	for y := 1; y < lvl.Height-1; y++ {
		for x := 1; x < lvl.Width-1; x++ {
			if lvl.At(x, y).Kind != gamemap.Stone {
				continue
			}
			if borders(lvl, x, y) {
				walls = append(walls, gamemap.Point{X: x, Y: y})
			}
		}
	}
	for _, p := range walls {
		lvl.SetKind(p.X, p.Y, gamemap.VWall)
	}
	isWall := func(x, y int) int {
		if lvl.KindAt(x, y).IsWall() {
			return 1
		}
		return 0
	}
	for _, p := range walls {
		idx := isWall(p.X, p.Y-1)<<3 | isWall(p.X, p.Y+1)<<2 | isWall(p.X+1, p.Y)<<1 | isWall(p.X-1, p.Y)
		c := lvl.At(p.X, p.Y)
		c.Kind = spine[idx]
		c.Lit = litNeighbour(lvl, p.X, p.Y)
	}
}

func borders(lvl *gamemap.Level, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && isPassage(lvl.KindAt(x+dx, y+dy)) {
				return true
			}
		}
	}
	return false
}

func litNeighbour(lvl *gamemap.Level, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if lvl.InBounds(x+dx, y+dy) && lvl.At(x+dx, y+dy).Lit && isPassage(lvl.At(x+dx, y+dy).Kind) {
				return true
			}
		}
	}
	return false
}

// mazeStairs drops the up stairs on a random passage and the down stairs
// on another at least mazeStairGap steps away. If the random tries run out
// the down stairs go to the farthest passage instead.
func (b *builder) mazeStairs(avoid []gamemap.Rect) {
	lvl := b.lvl
	open := func(p gamemap.Point) bool {
		k := lvl.At(p.X, p.Y).Kind
		return (k == gamemap.Corridor || k == gamemap.Floor) && !inAny(p, avoid)
	}
	var up *gamemap.Point
	placed := false
	for _i, _n := 0, mazeStairTries; _i < _n; _i++ {
		p := gamemap.Point{X: 2 + b.rnd.Intn(lvl.Width-4), Y: 2 + b.rnd.Intn(lvl.Height-4)}
		if !open(p) {
			continue
		}
		if up == nil {
			up = &p
			b.up(p.X, p.Y, b.above())
			continue
		}
		if manhattan(p, *up) < mazeStairGap {
			continue
		}
		b.down(p.X, p.Y, b.below())
		placed = true
		break
	}
	if up == nil || placed {
		return
	}
	best, far := *up, 0
	for _, p := range b.cellsOf(b.grid(), gamemap.Corridor, gamemap.Floor) {
		if d := manhattan(p, *up); open(p) && d > far {
			best, far = p, d
		}
	}
	if far > 0 {
		b.down(best.X, best.Y, b.below())
	}
}

// mazeTraps places Rnd(depth)+2 traps, at most maxMazeTraps, on corridor
// cells. Deep mazes draw from a nastier table.
func (b *builder) mazeTraps(depth int) {
	kinds := shallowMazeTraps
	if depth >= 15 {
		kinds = deepMazeTraps
	}
	n := min(b.rnd.Rnd(max(depth, 1))+2, maxMazeTraps)
	area := gamemap.Rect{X1: 2, Y1: 2, X2: b.lvl.Width - 3, Y2: b.lvl.Height - 3}
	for _i, _n := 0, n; _i < _n; _i++ {
		for _i, _n := 0, 20; _i < _n; _i++ {
			x := area.X1 + b.rnd.Intn(area.X2-area.X1+1)
			y := area.Y1 + b.rnd.Intn(area.Y2-area.Y1+1)
			if b.lvl.At(x, y).Kind != gamemap.Corridor {
				continue
			}
			if _, ok := b.lvl.TrapAt(x, y); ok {
				continue
			}
			b.lvl.AddTrap(x, y, kinds[b.rnd.Intn(len(kinds))])
			break
		}
	}
}
