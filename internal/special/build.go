// Package special builds the fixed-layout levels: the Oracle, Sokoban,
// the Castle, the Gehennom lairs, the towers, the planes, the quest, and
// the maze and mines fillers that surround them.
package special

import (
	"fmt"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/generate"
	"dungeongen/internal/rng"
)

// Options carries the player-dependent choices some templates need.
type Options struct {
	Role Role
}

// TemplateError reports a template coordinate that falls outside the grid.
type TemplateError struct {
	Template string
	X, Y     int
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: (%d,%d) is outside the grid", e.Template, e.X, e.Y)
}

// Generate stamps template id onto lvl, which should be freshly made.
// Template coordinates outside the grid panic with a *TemplateError;
// Build recovers them.
func Generate(lvl *gamemap.Level, rnd *rng.Source, id ID, opts Options) error {
	if !id.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, uint8(id))
	}
	t := templates[id]
	lvl.Special = t.name
	if id >= QuestHome && id <= QuestGoal {
		lvl.Special = questLevelName(opts.Role, id)
	}
	b := &builder{lvl: lvl, rnd: rnd, name: t.name, opts: opts}
	t.build(b)
	if b.err != nil {
		return fmt.Errorf("%s: %w", t.name, b.err)
	}
	return nil
}

// Build creates a standard-size level at d and stamps template id on it.
func Build(d gamemap.DLevel, rnd *rng.Source, id ID, opts Options) (*gamemap.Level, error) {
	return build(gamemap.NewStandard(d), rnd, id, opts)
}

func build(lvl *gamemap.Level, rnd *rng.Source, id ID, opts Options) (out *gamemap.Level, err error) {
	defer func() {
		if r := recover(); r != nil {
			te, ok := r.(*TemplateError)
			if !ok {
				panic(r)
			}
			out, err = nil, te
		}
	}()
	if err := Generate(lvl, rnd, id, opts); err != nil {
		return lvl, err
	}
	return lvl, nil
}

// builder wraps the level a template writes to. Every coordinate it is
// handed is checked against the grid.
type builder struct {
	lvl  *gamemap.Level
	rnd  *rng.Source
	name string
	opts Options
	err  error
}

func (b *builder) check(x, y int) {
	if !b.lvl.InBounds(x, y) {
		panic(&TemplateError{Template: b.name, X: x, Y: y})
	}
}

func (b *builder) checkRect(r gamemap.Rect) {
	b.check(r.X1, r.Y1)
	b.check(r.X2, r.Y2)
}

func (b *builder) set(x, y int, k gamemap.Kind) {
	b.check(x, y)
	b.lvl.SetKind(x, y, k)
}

func (b *builder) fill(k gamemap.Kind, lit bool) {
	b.lvl.Fill(k)
	if lit {
		b.lvl.FillRect(gamemap.Rect{X2: b.lvl.Width - 1, Y2: b.lvl.Height - 1}, k, true)
	}
}

func (b *builder) rect(r gamemap.Rect, k gamemap.Kind, lit bool) {
	b.checkRect(r)
	b.lvl.FillRect(r, k, lit)
}

// room carves a walled room and appends it to the room list.
func (b *builder) room(x, y, w, h int, kind gamemap.RoomKind, lit bool) int {
	r := gamemap.Room{X: x, Y: y, W: w, H: h, Kind: kind, Lit: lit}
	b.checkRect(r.Bounds())
	generate.CarveRoom(b.lvl, r)
	b.lvl.Rooms = append(b.lvl.Rooms, r)
	return len(b.lvl.Rooms) - 1
}

// dress turns room i into kind k with the ordinary special-room fittings.
func (b *builder) dress(i int, k gamemap.RoomKind) {
	generate.MakeSpecialRoom(b.lvl, b.rnd, i, k)
}

// connect joins every room on the level. The first failure sticks.
func (b *builder) connect() {
	if _, err := generate.ConnectAll(b.lvl, b.rnd); err != nil && b.err == nil {
		b.err = err
	}
}

func (b *builder) door(x, y int, st gamemap.DoorState) {
	b.set(x, y, gamemap.Door)
	b.lvl.At(x, y).Door = st
}

// feature places furniture and keeps the level counters in step.
func (b *builder) feature(x, y int, k gamemap.Kind) {
	b.set(x, y, k)
	switch k {
	case gamemap.Fountain:
		b.lvl.Flags.Fountains++
	case gamemap.Sink:
		b.lvl.Flags.Sinks++
	}
}

// wallLine draws a straight internal wall from (x1,y1) to (x2,y2) and
// turns the cells where it meets an outer wall into tee junctions.
func (b *builder) wallLine(x1, y1, x2, y2 int) {
	b.check(x1, y1)
	b.check(x2, y2)
	if x1 == x2 {
		generate.CarveV(b.lvl, y1, y2, x1, gamemap.VWall)
		b.tee(x1, y1-1, gamemap.TDWall)
		b.tee(x1, y2+1, gamemap.TUWall)
		return
	}
	generate.CarveH(b.lvl, x1, x2, y1, gamemap.HWall)
	b.tee(x1-1, y1, gamemap.TRWall)
	b.tee(x2+1, y1, gamemap.TLWall)
}

func (b *builder) tee(x, y int, k gamemap.Kind) {
	if b.lvl.KindAt(x, y) == gamemap.HWall || b.lvl.KindAt(x, y) == gamemap.VWall {
		b.lvl.SetKind(x, y, k)
	}
}

// flood turns every stone cell of r into k. Rooms and dug corridors inside
// r survive, so anything connected before stays connected.
func (b *builder) flood(r gamemap.Rect, k gamemap.Kind) {
	b.checkRect(r)
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if b.lvl.At(x, y).Kind == gamemap.Stone {
				b.lvl.SetKind(x, y, k)
			}
		}
	}
}

// hardWalls makes every wall in r undiggable.
func (b *builder) hardWalls(r gamemap.Rect) {
	b.checkRect(r)
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if c := b.lvl.At(x, y); c.Kind.IsWall() || c.Kind.IsDoor() {
				c.NonDiggable = true
			}
		}
	}
}

func (b *builder) grid() gamemap.Rect {
	return gamemap.Rect{X2: b.lvl.Width - 1, Y2: b.lvl.Height - 1}
}

// valleyLevel is the Dungeons of Doom level Gehennom hangs from.
const valleyLevel = 26

// above is the level the up stairs lead to. The first level of a branch
// leads back to the dungeon it hangs from, one depth shallower.
func (b *builder) above() gamemap.DLevel {
	d := b.lvl.DLevel
	if d.Level > 1 {
		return gamemap.DLevel{Dungeon: d.Dungeon, Level: d.Level - 1}
	}
	switch d.Dungeon {
	case gamemap.DungeonsOfDoom, gamemap.Endgame:
		return gamemap.DLevel{Dungeon: d.Dungeon, Level: d.Level - 1}
	case gamemap.Gehennom:
		return dl(gamemap.DungeonsOfDoom, valleyLevel)
	case gamemap.VladsTower:
		return dl(gamemap.Gehennom, d.Depth()-dl(gamemap.Gehennom, 1).Depth())
	}
	return dl(gamemap.DungeonsOfDoom, d.Depth()-1)
}

func (b *builder) below() gamemap.DLevel {
	d := b.lvl.DLevel
	return gamemap.DLevel{Dungeon: d.Dungeon, Level: d.Level + 1}
}

func (b *builder) up(x, y int, dest gamemap.DLevel) {
	b.check(x, y)
	b.lvl.AddStairs(x, y, dest, true, false)
}

func (b *builder) down(x, y int, dest gamemap.DLevel) {
	b.check(x, y)
	b.lvl.AddStairs(x, y, dest, false, false)
}

func (b *builder) ladder(x, y int, dest gamemap.DLevel, up bool) {
	b.check(x, y)
	b.lvl.AddStairs(x, y, dest, up, true)
}

// scatterTraps tries n times to drop a trap from kinds on a random cell
// of area whose terrain is on. Each try draws x, y and, on success, the
// trap kind.
func (b *builder) scatterTraps(n int, area gamemap.Rect, on gamemap.Kind, kinds ...gamemap.TrapKind) {
	b.checkRect(area)
	w, h := area.X2-area.X1+1, area.Y2-area.Y1+1
	for _i, _n := 0, n; _i < _n; _i++ {
		x := area.X1 + b.rnd.Intn(w)
		y := area.Y1 + b.rnd.Intn(h)
		if b.lvl.At(x, y).Kind != on {
			continue
		}
		if _, ok := b.lvl.TrapAt(x, y); ok {
			continue
		}
		b.lvl.AddTrap(x, y, kinds[b.rnd.Intn(len(kinds))])
	}
}

// cellsOf lists the cells of r whose kind is one of ks, x-major.
func (b *builder) cellsOf(r gamemap.Rect, ks ...gamemap.Kind) []gamemap.Point {
	var out []gamemap.Point
	for x := r.X1; x <= r.X2; x++ {
		for y := r.Y1; y <= r.Y2; y++ {
			if !b.lvl.InBounds(x, y) {
				continue
			}
			k := b.lvl.At(x, y).Kind
			for _, want := range ks {
				if k == want {
					out = append(out, gamemap.Point{X: x, Y: y})
					break
				}
			}
		}
	}
	return out
}

// portal drops the exit portal on a random untrapped cell of kind on.
func (b *builder) portal(on gamemap.Kind, dest gamemap.DLevel) {
	var spots []gamemap.Point
	for _, p := range b.cellsOf(b.grid(), on) {
		if _, trapped := b.lvl.TrapAt(p.X, p.Y); !trapped {
			spots = append(spots, p)
		}
	}
	if len(spots) == 0 {
		return
	}
	p := spots[b.rnd.Intn(len(spots))]
	b.lvl.AddPortal(p.X, p.Y, dest)
}

// specialStairs places the up stairs on a random floor or corridor cell
// and the down stairs on the cell farthest from it, measured in steps
// along the axes. Candidates lie in x 3..w-4, y 2..h-3 and outside avoid.
func (b *builder) specialStairs(up, down bool, avoid ...gamemap.Rect) {
	area := gamemap.Rect{X1: 3, Y1: 2, X2: b.lvl.Width - 4, Y2: b.lvl.Height - 3}
	var spots []gamemap.Point
	for _, p := range b.cellsOf(area, gamemap.Floor, gamemap.Corridor) {
		if !inAny(p, avoid) {
			spots = append(spots, p)
		}
	}
	if len(spots) == 0 {
		return
	}
	first := spots[b.rnd.Intn(len(spots))]
	if up {
		b.up(first.X, first.Y, b.above())
	}
	if !down {
		return
	}
	best, far := first, 0
	for _, p := range spots {
		if d := manhattan(p, first); d > far {
			best, far = p, d
		}
	}
	if far == 0 {
		return
	}
	b.down(best.X, best.Y, b.below())
}

func inAny(p gamemap.Point, rs []gamemap.Rect) bool {
	for _, r := range rs {
		if r.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}

func manhattan(a, b gamemap.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
