// Package vision computes what can be seen from a point on a level.
package vision

import "dungeongen/internal/gamemap"

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a level offset via:
//
//	x = cx + dx*xx + dy*xy
//	y = cy + dx*yx + dy*yy
//
// where dx sweeps within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Grid marks visible cells, indexed [y][x].
type Grid [][]bool

// Visible reports whether (x, y) is marked; out-of-range cells are not.
func (g Grid) Visible(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y]) && g[y][x]
}

// Count returns the number of visible cells.
func (g Grid) Count() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// FOV runs recursive shadowcasting from (ox, oy) out to radius. Cells in
// line of sight are seen when lit or adjacent to the origin, so a lit room
// shows in full while a dark corridor shows one step ahead. The level is
// not modified.
func FOV(lvl *gamemap.Level, ox, oy, radius int) Grid {
	g := make(Grid, lvl.Height)
	for y := range g {
		g[y] = make([]bool, lvl.Width)
	}
	if !lvl.InBounds(ox, oy) {
		return g
	}
	// Origin is always visible.
	g[oy][ox] = true

	for _, m := range octants {
		castLight(lvl, g, ox, oy, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3])
	}
	return g
}

func (g Grid) see(lvl *gamemap.Level, ox, oy, x, y int) {
	if !lvl.InBounds(x, y) {
		return
	}
	if lvl.At(x, y).Lit || (abs(x-ox) <= 1 && abs(y-oy) <= 1) {
		g[y][x] = true
	}
}

// castLight casts light for one octant using recursive shadowcasting.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0 within the row
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(lvl *gamemap.Level, g Grid, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dy*dy) < radiusSq {
				g.see(lvl, cx, cy, wx, wy)
			}

			opaque := !lvl.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					// Still inside a wall run.
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				// Hit a new wall: scan beyond it with a narrower beam.
				blocked = true
				castLight(lvl, g, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Arrival returns where a visitor enters lvl: the up stairs, else any
// stairway, else the first portal.
func Arrival(lvl *gamemap.Level) (gamemap.Point, bool) {
	for _, s := range lvl.Stairs {
		if s.Up {
			return gamemap.Point{X: s.X, Y: s.Y}, true
		}
	}
	if len(lvl.Stairs) > 0 {
		return gamemap.Point{X: lvl.Stairs[0].X, Y: lvl.Stairs[0].Y}, true
	}
	if len(lvl.Portals) > 0 {
		return gamemap.Point{X: lvl.Portals[0].X, Y: lvl.Portals[0].Y}, true
	}
	return gamemap.Point{}, false
}

// FromArrival is the view on entering lvl, unlimited by distance.
func FromArrival(lvl *gamemap.Level) (Grid, bool) {
	p, ok := Arrival(lvl)
	if !ok {
		return nil, false
	}
	return FOV(lvl, p.X, p.Y, max(lvl.Width, lvl.Height)), true
}
