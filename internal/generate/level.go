// Package generate builds ordinary room-and-corridor levels and provides
// the placement, corridor and door primitives special levels reuse.
package generate

import (
	"fmt"

	"dungeongen/internal/gamemap"
)

// Generate builds one ordinary level from cfg. Every random draw comes
// from cfg.Rand in a fixed order:
//
//  1. room count (when TargetRooms is 0), then room placement
//  2. corridors, then retry joins for rooms left apart
//  3. niches
//  4. stairs
//  5. the special room roll
//  6. room features
//  7. the vault
//
// A level whose rooms cannot all be reached from room 0 is returned
// together with an error wrapping ErrDisconnected.
func Generate(cfg Config) (*gamemap.Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	rnd := cfg.Rand
	lvl := gamemap.New(cfg.Width, cfg.Height)
	lvl.DLevel = cfg.DLevel

	target := cfg.TargetRooms
	if target == 0 {
		target = rnd.Rnd(4) + 5
	}
	budget := cfg.Attempts
	if budget == 0 {
		budget = target * 3
	}
	rooms := PlaceRooms(lvl, rnd, target, cfg.Sizes, cfg.Spacing, budget)
	SortRooms(rooms)
	lvl.Rooms = rooms

	if _, err := ConnectAll(lvl, rnd); err != nil {
		return lvl, fmt.Errorf("connect rooms: %w", err)
	}

	if cfg.Niches {
		makeNiches(lvl, rnd)
	}
	placeStairs(lvl, rnd)
	if cfg.SpecialRooms {
		addSpecialRoom(lvl, rnd)
	}
	if cfg.Features {
		addFeatures(lvl, rnd)
	}
	if cfg.Vault && rnd.OneIn(2) {
		placeVault(lvl, rnd)
	}

	if err := CheckConnectivity(lvl); err != nil {
		return lvl, err
	}
	return lvl, nil
}
