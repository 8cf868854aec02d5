package generate

import (
	"errors"
	"reflect"
	"testing"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

var testLevels = []gamemap.DLevel{
	{Dungeon: gamemap.DungeonsOfDoom, Level: 1},
	{Dungeon: gamemap.DungeonsOfDoom, Level: 5},
	{Dungeon: gamemap.DungeonsOfDoom, Level: 12},
	{Dungeon: gamemap.DungeonsOfDoom, Level: 20},
	{Dungeon: gamemap.Gehennom, Level: 3},
}

func TestGenerateConnectivity(t *testing.T) {
	for _, d := range testLevels {
		for seed, _n := uint64(0), uint64(50); seed < _n; seed++ {
			lvl, err := Generate(DefaultConfig(seed, d))
			if err != nil {
				t.Errorf("%v seed=%d: %v", d, seed, err)
				continue
			}
			if len(lvl.Rooms) < 2 {
				t.Errorf("%v seed=%d: only %d rooms", d, seed, len(lvl.Rooms))
			}
			if lvl.DLevel != d {
				t.Errorf("%v seed=%d: level tagged %v", d, seed, lvl.DLevel)
			}
		}
	}
}

func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for _, d := range testLevels {
		for seed, _n := uint64(0), uint64(50); seed < _n; seed++ {
			lvl, err := Generate(DefaultConfig(seed, d))
			if err != nil {
				t.Fatalf("%v seed=%d: %v", d, seed, err)
			}
			for i, a := range lvl.Rooms {
				for j := i + 1; j < len(lvl.Rooms); j++ {
					if a.Overlaps(lvl.Rooms[j], 1) {
						t.Errorf("%v seed=%d: rooms %d and %d overlap", d, seed, i, j)
					}
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 12345} {
		d := gamemap.DLevel{Level: 7}
		cfgA, cfgB := DefaultConfig(seed, d), DefaultConfig(seed, d)
		a, errA := Generate(cfgA)
		b, errB := Generate(cfgB)
		if errA != nil || errB != nil {
			t.Fatalf("seed=%d: %v / %v", seed, errA, errB)
		}
		if !reflect.DeepEqual(a.Cells, b.Cells) || !reflect.DeepEqual(a.Rooms, b.Rooms) {
			t.Errorf("seed=%d: two runs produced different levels", seed)
		}
		if cfgA.Rand.Draws() != cfgB.Rand.Draws() {
			t.Errorf("seed=%d: draw counts differ: %d vs %d", seed, cfgA.Rand.Draws(), cfgB.Rand.Draws())
		}
	}
}

func TestConfigFromMatchesDefaultConfig(t *testing.T) {
	d := gamemap.DLevel{Level: 5}
	for _, seed := range []uint64{0, 7, 99} {
		rnd := rng.New(seed)
		cfg := ConfigFrom(rnd, d)
		if cfg.Rand != rnd {
			t.Fatalf("seed=%d: ConfigFrom replaced the stream", seed)
		}
		want := DefaultConfig(seed, d)
		a, errA := Generate(cfg)
		b, errB := Generate(want)
		if errA != nil || errB != nil {
			t.Fatalf("seed=%d: %v / %v", seed, errA, errB)
		}
		if !reflect.DeepEqual(a.Cells, b.Cells) || rnd.Draws() != want.Rand.Draws() {
			t.Errorf("seed=%d: ConfigFrom and DefaultConfig levels differ", seed)
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	d := gamemap.DLevel{Level: 3}
	a, _ := Generate(DefaultConfig(1, d))
	b, _ := Generate(DefaultConfig(2, d))
	if reflect.DeepEqual(a.Cells, b.Cells) {
		t.Error("seeds 1 and 2 produced identical levels")
	}
}

func TestGenerateStairs(t *testing.T) {
	for _, d := range testLevels {
		for seed, _n := uint64(0), uint64(50); seed < _n; seed++ {
			lvl, err := Generate(DefaultConfig(seed, d))
			if err != nil {
				t.Fatalf("%v seed=%d: %v", d, seed, err)
			}
			var ups, downs []gamemap.Stairway
			for _, s := range lvl.Stairs {
				if lvl.KindAt(s.X, s.Y) != gamemap.Stairs {
					t.Errorf("%v seed=%d: stairway at (%d,%d) over %v", d, seed, s.X, s.Y, lvl.KindAt(s.X, s.Y))
				}
				if s.Up {
					ups = append(ups, s)
				} else {
					downs = append(downs, s)
				}
			}
			if len(ups) != 1 || !lvl.Rooms[0].Contains(ups[0].X, ups[0].Y) {
				t.Errorf("%v seed=%d: want one up stairway in room 0, got %+v", d, seed, ups)
				continue
			}
			if ups[0].Dest.Level != d.Level-1 {
				t.Errorf("%v seed=%d: up stairs lead to %v", d, seed, ups[0].Dest)
			}
			last := -1
			for i, r := range lvl.Rooms {
				if r.Kind != gamemap.Vault {
					last = i
				}
			}
			if len(downs) != 1 || !lvl.Rooms[last].Contains(downs[0].X, downs[0].Y) {
				t.Errorf("%v seed=%d: want one down stairway in room %d, got %+v", d, seed, last, downs)
			}
		}
	}
}

func TestGenerateVaultsAreSealed(t *testing.T) {
	vaults := 0
	for seed, _n := uint64(0), uint64(100); seed < _n; seed++ {
		lvl, err := Generate(DefaultConfig(seed, gamemap.DLevel{Level: 4}))
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		for i, r := range lvl.Rooms {
			if r.Kind != gamemap.Vault {
				continue
			}
			vaults++
			if !lvl.Flags.HasVault {
				t.Errorf("seed=%d: vault without the level flag", seed)
			}
			if doors := lvl.RoomDoors(i); len(doors) != 0 {
				t.Errorf("seed=%d: vault has doors %v", seed, doors)
			}
			if r.W != 2 || r.H != 2 || lvl.At(r.X, r.Y).Lit {
				t.Errorf("seed=%d: vault %+v should be a dark 2x2 room", seed, r)
			}
		}
	}
	if vaults == 0 {
		t.Error("no vault in 100 levels")
	}
}

func TestGenerateSpecialRooms(t *testing.T) {
	seen := make(map[gamemap.RoomKind]bool)
	for _, d := range testLevels {
		for seed, _n := uint64(0), uint64(50); seed < _n; seed++ {
			lvl, err := Generate(DefaultConfig(seed, d))
			if err != nil {
				t.Fatalf("%v seed=%d: %v", d, seed, err)
			}
			for i, r := range lvl.Rooms {
				seen[r.Kind] = true
				switch {
				case r.Kind.IsShop():
					doors := lvl.RoomDoors(i)
					if len(doors) != 1 {
						t.Errorf("%v seed=%d: shop with %d doors", d, seed, len(doors))
					}
					for _, p := range doors {
						c := lvl.At(p.X, p.Y)
						if c.Kind != gamemap.Door || c.Door == gamemap.NoDoor || c.Door.Has(gamemap.Trapped) {
							t.Errorf("%v seed=%d: shop door %v/%v", d, seed, c.Kind, c.Door)
						}
					}
				case r.Kind == gamemap.Temple:
					x, y := r.Center()
					if lvl.KindAt(x, y) != gamemap.Altar {
						t.Errorf("%v seed=%d: temple without a central altar", d, seed)
					}
				case r.Kind == gamemap.Morgue:
					if lvl.At(r.X, r.Y).Lit || !lvl.Flags.HasMorgue {
						t.Errorf("%v seed=%d: morgue should be dark and flagged", d, seed)
					}
				}
				if r.Kind != gamemap.Ordinary && r.Kind != gamemap.Vault && i == 0 {
					t.Errorf("%v seed=%d: room 0 became %v", d, seed, r.Kind)
				}
			}
		}
	}
	for _, k := range []gamemap.RoomKind{gamemap.Court, gamemap.Temple, gamemap.Beehive} {
		if !seen[k] {
			t.Errorf("no %v across the sample", k)
		}
	}
}

func TestGenerateFirstLevelHasNoSpecialRoom(t *testing.T) {
	for seed, _n := uint64(0), uint64(50); seed < _n; seed++ {
		lvl, err := Generate(DefaultConfig(seed, gamemap.DLevel{Level: 1}))
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		for _, r := range lvl.Rooms {
			if r.Kind != gamemap.Ordinary && r.Kind != gamemap.Vault {
				t.Errorf("seed=%d: depth 1 got a %v", seed, r.Kind)
			}
		}
	}
}

func TestGenerateTargetRooms(t *testing.T) {
	cfg := DefaultConfig(3, gamemap.DLevel{Level: 2})
	cfg.TargetRooms = 3
	cfg.Vault = false
	lvl, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(lvl.Rooms) > 3 {
		t.Errorf("got %d rooms, target 3", len(lvl.Rooms))
	}
}

func TestGeneratePlainRoomsOnly(t *testing.T) {
	cfg := DefaultConfig(9, gamemap.DLevel{Level: 14})
	cfg.SpecialRooms, cfg.Features, cfg.Niches, cfg.Vault = false, false, false, false
	lvl, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []gamemap.Kind{gamemap.Fountain, gamemap.Sink, gamemap.Altar, gamemap.Grave, gamemap.Pool} {
		if n := lvl.Count(k); n != 0 {
			t.Errorf("%d %v cells with dressing disabled", n, k)
		}
	}
	if len(lvl.Traps) != 0 {
		t.Errorf("%d traps with niches disabled", len(lvl.Traps))
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"nil rand", func(c *Config) { c.Rand = nil }},
		{"tiny grid", func(c *Config) { c.Width, c.Height = 5, 5 }},
		{"inverted sizes", func(c *Config) { c.Sizes = SizeBounds{MinW: 5, MaxW: 3, MinH: 3, MaxH: 4} }},
		{"negative spacing", func(c *Config) { c.Spacing = -1 }},
		{"negative target", func(c *Config) { c.TargetRooms = -2 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig(1, gamemap.DLevel{Level: 1})
		tc.mutate(&cfg)
		if _, err := Generate(cfg); err == nil {
			t.Errorf("%s: Generate should reject the config", tc.name)
		}
	}
	cfg := DefaultConfig(1, gamemap.DLevel{Level: 1})
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config rejected: %v", err)
	}
}

func TestCheckConnectivityReportsRoom(t *testing.T) {
	lvl := twoRooms()
	err := CheckConnectivity(lvl)
	if !errors.Is(err, ErrDisconnected) {
		t.Fatalf("err = %v, want ErrDisconnected", err)
	}
}

func TestReachableNoDiagonalThroughDoors(t *testing.T) {
	lvl := gamemap.New(5, 5)
	lvl.SetKind(1, 1, gamemap.Floor)
	lvl.SetKind(2, 2, gamemap.Door)
	lvl.SetKind(3, 3, gamemap.Floor)
	seen := Reachable(lvl, gamemap.Point{X: 1, Y: 1}, Traversable)
	if seen.Has(gamemap.Point{X: 2, Y: 2}) {
		t.Error("walker entered a door diagonally")
	}
	lvl.SetKind(2, 2, gamemap.Corridor)
	seen = Reachable(lvl, gamemap.Point{X: 1, Y: 1}, Traversable)
	if !seen.Has(gamemap.Point{X: 3, Y: 3}) {
		t.Error("diagonal corridor steps should be allowed")
	}
}

func TestReachableSecretPassages(t *testing.T) {
	lvl := gamemap.New(6, 3)
	CarveH(lvl, 0, 5, 1, gamemap.Corridor)
	lvl.SetKind(2, 1, gamemap.SecretCorridor)
	lvl.SetKind(4, 1, gamemap.SecretDoor)
	seen := Reachable(lvl, gamemap.Point{X: 0, Y: 1}, Traversable)
	if seen.Size() != 6 {
		t.Errorf("reached %d cells, want 6", seen.Size())
	}
	seen = Reachable(lvl, gamemap.Point{X: 0, Y: 1}, gamemap.Kind.IsPassable)
	if seen.Size() != 2 {
		t.Errorf("without searching reached %d cells, want 2", seen.Size())
	}
}

func TestRandSharedAcrossCalls(t *testing.T) {
	rnd := rng.New(5)
	cfg := DefaultConfig(0, gamemap.DLevel{Level: 2})
	cfg.Rand = rnd
	if _, err := Generate(cfg); err != nil {
		t.Fatal(err)
	}
	if rnd.Draws() == 0 {
		t.Error("Generate did not draw from the supplied source")
	}
}
