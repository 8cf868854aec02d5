package generate

import (
	"dungeongen/internal/gamemap"
	"dungeongen/internal/rng"
)

// maxDigSteps bounds a single corridor walk. The count is checked before
// it is bumped, so a walk may take maxDigSteps+1 steps.
const maxDigSteps = 500

// DigCorridor walks a tunnel from org to dest, painting cells of kind btyp
// with ftyp. With nxcor set the walk is a speculative extra corridor: each
// step may give up (1 in 35) and fresh tunnel cells may get a boulder.
//
// Draws per step, in order: the nxcor abort roll; the secret corridor roll
// (1 in 100, only when painting corridors onto btyp); the boulder roll
// (nxcor only); one deviation roll when both axes still have distance left
// and one dominates.
//
// The walk fails when it leaves the grid interior, meets terrain other than
// btyp, ftyp or secret corridor, or runs past maxDigSteps. Cells painted
// before a failure stay painted.
func DigCorridor(lvl *gamemap.Level, rnd *rng.Source, org, dest gamemap.Point, nxcor bool, ftyp, btyp gamemap.Kind) bool {
	xx, yy := org.X, org.Y
	tx, ty := dest.X, dest.Y
	if xx <= 0 || yy <= 0 || tx <= 0 || ty <= 0 ||
		xx > lvl.Width-1 || tx > lvl.Width-1 || yy > lvl.Height-1 || ty > lvl.Height-1 {
		return false
	}

	var dx, dy int
	switch {
	case tx > xx:
		dx = 1
	case ty > yy:
		dy = 1
	case tx < xx:
		dx = -1
	default:
		dy = -1
	}
	xx -= dx
	yy -= dy

	open := func(k gamemap.Kind) bool {
		return k == btyp || k == ftyp || k == gamemap.SecretCorridor
	}

	for cct := 0; xx != tx || yy != ty; cct++ {
		if cct > maxDigSteps || (nxcor && rnd.OneIn(35)) {
			return false
		}
		xx += dx
		yy += dy
		if xx >= lvl.Width-1 || xx <= 0 || yy <= 0 || yy >= lvl.Height-1 {
			return false
		}

		c := lvl.At(xx, yy)
		switch {
		case c.Kind == btyp:
			if ftyp != gamemap.Corridor || rnd.Intn(100) != 0 {
				c.Kind = ftyp
				if nxcor && rnd.OneIn(50) {
					lvl.Boulders = append(lvl.Boulders, gamemap.Point{X: xx, Y: yy})
				}
			} else {
				c.Kind = gamemap.SecretCorridor
			}
		case c.Kind != ftyp && c.Kind != gamemap.SecretCorridor:
			return false
		}

		dix, diy := abs(xx-tx), abs(yy-ty)
		if dix > diy && diy != 0 && rnd.OneIn(uint32(dix-diy+1)) {
			dix = 0
		} else if diy > dix && dix != 0 && rnd.OneIn(uint32(diy-dix+1)) {
			diy = 0
		}

		if dy != 0 && dix > diy {
			ddx := 1
			if xx > tx {
				ddx = -1
			}
			if open(lvl.At(xx+ddx, yy).Kind) {
				dx, dy = ddx, 0
				continue
			}
		} else if dx != 0 && diy > dix {
			ddy := 1
			if yy > ty {
				ddy = -1
			}
			if open(lvl.At(xx, yy+ddy).Kind) {
				dx, dy = 0, ddy
				continue
			}
		}

		if open(lvl.At(xx+dx, yy+dy).Kind) {
			continue
		}

		if dx != 0 {
			dx = 0
			dy = 1
			if ty < yy {
				dy = -1
			}
		} else {
			dy = 0
			dx = 1
			if tx < xx {
				dx = -1
			}
		}
		if open(lvl.At(xx+dx, yy+dy).Kind) {
			continue
		}
		dx, dy = -dx, -dy
	}
	return true
}

// CarveH paints a horizontal run of k between x1 and x2 on row y.
func CarveH(lvl *gamemap.Level, x1, x2, y int, k gamemap.Kind) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if lvl.InBounds(x, y) {
			lvl.SetKind(x, y, k)
		}
	}
}

// CarveV paints a vertical run of k between y1 and y2 on column x.
func CarveV(lvl *gamemap.Level, y1, y2, x int, k gamemap.Kind) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if lvl.InBounds(x, y) {
			lvl.SetKind(x, y, k)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
