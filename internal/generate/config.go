package generate

import (
	"errors"
	"fmt"

	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

// SizeBounds limits room interior sizes, inclusive.
type SizeBounds struct {
	MinW, MaxW int
	MinH, MaxH int
}

// DefaultSizes matches the classic 3..9 by 3..7 room interiors.
var DefaultSizes = SizeBounds{MinW: 3, MaxW: 9, MinH: 3, MaxH: 7}

// Config drives procedural generation for one ordinary level.
type Config struct {
	Width, Height int
	DLevel        gamemap.DLevel
	TargetRooms   int // 0 draws 6..9 from Rand
	Sizes         SizeBounds
	Spacing       int
	Attempts      int // placement budget; 0 means three tries per room
	SpecialRooms  bool
	Features      bool
	Niches        bool
	Vault         bool
	Rand          *rng.Source
}

// DefaultConfig returns the settings used for regular dungeon levels.
func DefaultConfig(seed uint64, d gamemap.DLevel) Config {
	return ConfigFrom(rng.New(seed), d)
}

// ConfigFrom returns the DefaultConfig settings drawing from an existing
// stream, which keeps its position.
func ConfigFrom(rnd *rng.Source, d gamemap.DLevel) Config {
	return Config{
		Width:        gamemap.ColNo,
		Height:       gamemap.RowNo,
		DLevel:       d,
		Sizes:        DefaultSizes,
		Spacing:      1,
		SpecialRooms: true,
		Features:     true,
		Niches:       true,
		Vault:        true,
		Rand:         rnd,
	}
}

// Validate reports configuration values generation cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Rand == nil {
		errs = append(errs, errors.New("Rand is nil"))
	}
	if c.Width < 10 || c.Height < 8 {
		errs = append(errs, fmt.Errorf("grid %dx%d is too small", c.Width, c.Height))
	}
	s := c.Sizes
	if s.MinW < 1 || s.MinH < 1 || s.MaxW < s.MinW || s.MaxH < s.MinH {
		errs = append(errs, fmt.Errorf("bad room size bounds %+v", s))
	}
	if c.Spacing < 0 {
		errs = append(errs, fmt.Errorf("negative spacing %d", c.Spacing))
	}
	if c.TargetRooms < 0 || c.Attempts < 0 {
		errs = append(errs, errors.New("negative room target or attempt budget"))
	}
	return errors.Join(errs...)
}
