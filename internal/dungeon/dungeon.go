// Package dungeon decides what kind of level belongs at a dungeon location
// and builds it, one level at a time or a whole branch at once.
package dungeon

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/generate"
	"dungeongen/internal/rng"
	"dungeongen/internal/special"
)

// ErrBadLocation is returned for a dungeon or level number outside the
// known branches.
var ErrBadLocation = errors.New("bad dungeon location")

// Params selects one level to build.
type Params struct {
	Seed   uint64
	DLevel gamemap.DLevel
	// Special forces a template. Nil picks by location.
	Special *special.ID
	Role    special.Role
	// Tune adjusts the ordinary-level config after defaults are applied.
	// Special levels ignore it.
	Tune func(*generate.Config)
}

func (p Params) validate() error {
	d := p.DLevel
	if d.Dungeon < 0 || d.Dungeon >= gamemap.DungeonCount() || d.Level < 1 {
		return fmt.Errorf("%w: dungeon %d level %d", ErrBadLocation, d.Dungeon, d.Level)
	}
	return nil
}

// Kind reports which generator Build would use for p without building
// anything. The returned id is None for ordinary levels.
func Kind(p Params) (special.ID, bool) {
	if p.Special != nil {
		return *p.Special, true
	}
	return special.Choose(p.DLevel, rng.New(p.Seed))
}

// Build makes the level p describes. An explicit template wins; otherwise
// the location decides between a fixed template, a variant, the big room
// roll, a maze or mines filler and an ordinary room-and-corridor level.
// Every call owns its random source, so equal params give equal levels.
func Build(p Params) (*gamemap.Level, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	rnd := rng.New(p.Seed)

	var (
		id special.ID
		ok bool
	)
	if p.Special != nil {
		id, ok = *p.Special, true
	} else {
		id, ok = special.Choose(p.DLevel, rnd)
	}
	if ok {
		lvl, err := special.Build(p.DLevel, rnd, id, special.Options{Role: p.Role})
		if err != nil {
			return lvl, fmt.Errorf("build %v at %v: %w", id, p.DLevel, err)
		}
		return lvl, nil
	}

	cfg := generate.ConfigFrom(rnd, p.DLevel)
	if p.Tune != nil {
		p.Tune(&cfg)
		cfg.DLevel = p.DLevel
		cfg.Rand = rnd
	}
	lvl, err := generate.Generate(cfg)
	if err != nil {
		return lvl, fmt.Errorf("generate %v: %w", p.DLevel, err)
	}
	return lvl, nil
}

// LevelSeed derives the seed for one level of a game from the game seed.
// It is a splitmix64 step over the seed mixed with the location, so every
// level gets an independent stream whatever order they are built in.
func LevelSeed(seed uint64, d gamemap.DLevel) uint64 {
	z := seed + uint64(d.Dungeon)<<32 + uint64(d.Level)
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// BranchOptions carries the per-level settings BuildBranch passes on.
type BranchOptions struct {
	Role special.Role
	Tune func(*generate.Config)
	// Workers caps concurrent builds; 0 uses GOMAXPROCS.
	Workers int
}

// BuildBranch builds levels from..to of one dungeon concurrently. Level i
// of the result is level from+i. Each level is seeded with LevelSeed, so
// the result does not depend on scheduling. The first failure cancels
// the builds not yet started.
func BuildBranch(ctx context.Context, seed uint64, dungeon, from, to int, opts BranchOptions) ([]*gamemap.Level, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("%w: levels %d..%d", ErrBadLocation, from, to)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	levels := make([]*gamemap.Level, to-from+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range levels {
		i := i
		d := gamemap.DLevel{Dungeon: dungeon, Level: from + i}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lvl, err := Build(Params{
				Seed:   LevelSeed(seed, d),
				DLevel: d,
				Role:   opts.Role,
				Tune:   opts.Tune,
			})
			if err != nil {
				return err
			}
			levels[i] = lvl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return levels, nil
}
