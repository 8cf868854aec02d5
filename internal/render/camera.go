package render

// Camera translates between level coordinates and screen coordinates.
// In emoji mode every cell is two terminal columns wide.
type Camera struct {
	OffsetX    int
	OffsetY    int
	CellWidth  int // terminal columns per map cell
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centred on (cx, cy).
func NewCamera(cx, cy, cellWidth, viewW, viewH int) *Camera {
	if cellWidth < 1 {
		cellWidth = 1
	}
	c := &Camera{CellWidth: cellWidth, ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/c.CellWidth)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Columns is the number of map cells that fit across the view.
func (c *Camera) Columns() int { return c.ViewWidth / c.CellWidth }

// Clamp keeps the view over a width x height map. A map smaller than the
// view is pinned to the top-left corner.
func (c *Camera) Clamp(width, height int) {
	c.OffsetX = clamp(c.OffsetX, 0, width-c.Columns())
	c.OffsetY = clamp(c.OffsetY, 0, height-c.ViewHeight)
}

// Pan moves the view by (dx, dy) cells.
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// WorldToScreen converts map (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * c.CellWidth
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+c.CellWidth <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to map coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/c.CellWidth + c.OffsetX, sy + c.OffsetY
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
