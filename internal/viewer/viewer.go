// Package viewer is an interactive level browser: it draws one level on a
// tcell screen and lets the user step through levels, branches and seeds.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"dungeongen/internal/dungeon"
	"dungeongen/internal/gamemap"
	"dungeongen/internal/render"
	"dungeongen/internal/rng"
	"dungeongen/internal/special"
	"dungeongen/internal/vision"
)

// Options configures a Viewer.
type Options struct {
	Seed  uint64
	Start gamemap.DLevel
	Role  special.Role
	Mode  render.Mode
	// Levels is shared between viewers; nil gets a private cache.
	Levels *dungeon.Cache
}

// Viewer browses the levels of one game seed.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	levels   *dungeon.Cache

	seed uint64
	at   gamemap.DLevel
	role special.Role

	lvl *gamemap.Level
	err error
	msg string
	// sight limits the map to what is seen on arrival.
	sight bool
}

// New creates a Viewer on screen and builds its first level. The screen
// must already be initialised.
func New(screen tcell.Screen, opts Options) *Viewer {
	if opts.Levels == nil {
		opts.Levels = dungeon.NewCache(64)
	}
	at := opts.Start
	if !at.Valid() {
		at = gamemap.DLevel{Dungeon: gamemap.DungeonsOfDoom, Level: 1}
	}
	v := &Viewer{
		screen:   screen,
		renderer: render.NewRenderer(screen, opts.Mode),
		levels:   opts.Levels,
		seed:     opts.Seed,
		at:       at,
		role:     opts.Role,
	}
	v.load()
	return v
}

// Level returns the level on display, or nil if it failed to build.
func (v *Viewer) Level() *gamemap.Level { return v.lvl }

// At returns the location on display.
func (v *Viewer) At() gamemap.DLevel { return v.at }

// Seed returns the game seed being browsed.
func (v *Viewer) Seed() uint64 { return v.seed }

// Run draws and handles input until the user quits, the screen closes or
// ctx is done.
func (v *Viewer) Run(ctx context.Context) {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		v.draw()
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return // screen closed / disconnected
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
				v.renderer.Resize()
			case *tcell.EventKey:
				if !v.apply(keyToAction(ev)) {
					return
				}
			}
		}
	}
}

// apply performs one action and reports false when the viewer should
// close.
func (v *Viewer) apply(a Action) bool {
	v.msg = ""
	switch a {
	case ActionQuit:
		return false
	case ActionPanN, ActionPanS, ActionPanE, ActionPanW:
		dx, dy := actionToDelta(a)
		v.renderer.Pan(dx, dy)
	case ActionHome:
		v.renderer.Home()
	case ActionNextLevel:
		if v.at.Level >= gamemap.LevelCount(v.at.Dungeon) {
			v.msg = "bottom of branch"
			break
		}
		v.at.Level++
		v.load()
	case ActionPrevLevel:
		if v.at.Level <= 1 {
			v.msg = "top of branch"
			break
		}
		v.at.Level--
		v.load()
	case ActionNextBranch:
		v.at = gamemap.DLevel{Dungeon: (v.at.Dungeon + 1) % gamemap.DungeonCount(), Level: 1}
		v.load()
	case ActionPrevBranch:
		n := gamemap.DungeonCount()
		v.at = gamemap.DLevel{Dungeon: (v.at.Dungeon + n - 1) % n, Level: 1}
		v.load()
	case ActionReseed:
		v.seed = rng.New(v.seed).Uint64()
		v.load()
	case ActionToggleMode:
		v.renderer.ToggleMode()
	case ActionToggleSight:
		v.sight = !v.sight
		v.updateMask()
	}
	return true
}

// load builds the level at v.at and scrolls to its up stairs.
func (v *Viewer) load() {
	v.lvl, v.err = v.levels.Build(dungeon.Params{
		Seed:   dungeon.LevelSeed(v.seed, v.at),
		DLevel: v.at,
		Role:   v.role,
	})
	if v.err != nil {
		v.lvl = nil
		return
	}
	v.updateMask()
	v.renderer.Home()
	for _, s := range v.lvl.Stairs {
		if s.Up {
			v.renderer.CenterOn(s.X, s.Y)
			break
		}
	}
}

func (v *Viewer) updateMask() {
	if !v.sight || v.lvl == nil {
		v.renderer.SetMask(nil)
		return
	}
	g, ok := vision.FromArrival(v.lvl)
	if !ok {
		v.msg = "no way in"
		g = nil
	}
	v.renderer.SetMask(g)
}

func (v *Viewer) status() string {
	s := fmt.Sprintf("seed %d", v.seed)
	if v.at.Dungeon == gamemap.Quest {
		s += "  " + v.role.String()
	}
	if v.sight {
		s += "  arrival view"
	}
	if v.msg != "" {
		s += "  (" + v.msg + ")"
	}
	return s
}

func (v *Viewer) draw() {
	if v.lvl == nil {
		v.renderer.DrawMessage(fmt.Sprintf("%v: %v", v.at, v.err))
		return
	}
	v.renderer.DrawFrame(v.lvl)
	v.renderer.DrawHUD(v.lvl, v.status())
}
