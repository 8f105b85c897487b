package core

import "math"

// Canvas is a drawing surface in world coordinates.
// The game issues clear and filled-rectangle commands against it; the
// frontend decides how they reach the display.
type Canvas interface {
	// Clear fills the whole surface with the given colour.
	Clear(c Color)
	// FillRect fills an axis-aligned world rectangle with the given colour.
	FillRect(r RectF, c Color)
}

// FillRune is the character ScreenCanvas uses for filled rectangles.
const FillRune = '█'

// ScreenCanvas draws world-space rectangles onto a character Screen.
// A cell is filled when its centre, mapped back into world space, falls
// inside the rectangle.
type ScreenCanvas struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewScreenCanvas returns a canvas that scales a worldW x worldH world onto dst.
func NewScreenCanvas(dst *Screen, worldW, worldH float64) *ScreenCanvas {
	return &ScreenCanvas{screen: dst, worldW: worldW, worldH: worldH}
}

// Clear fills every cell with a blank of the given colour.
func (c *ScreenCanvas) Clear(col Color) {
	c.screen.Fill(Cell{Rune: ' ', Color: col})
}

// FillRect fills the cells covered by r.
func (c *ScreenCanvas) FillRect(r RectF, col Color) {
	cell := Cell{Rune: FillRune, Color: col}
	cells := c.cellRect(r)
	if cells.Empty() {
		if r.W <= 0 || r.H <= 0 {
			return
		}
		// Thinner than a cell: paint the cell under its centre so it stays visible.
		cx, cy := c.toCell(r.X+r.W/2, r.Y+r.H/2)
		c.screen.SetCell(cx, cy, cell)
		return
	}
	c.screen.FillRect(cells, cell)
}

// scale returns world units per cell on each axis.
func (c *ScreenCanvas) scale() (float64, float64) {
	w, h := c.screen.Width(), c.screen.Height()
	if w == 0 || h == 0 {
		return 0, 0
	}
	return c.worldW / float64(w), c.worldH / float64(h)
}

// cellRect converts a world rectangle into the cells whose centres it covers.
func (c *ScreenCanvas) cellRect(r RectF) Rect {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return Rect{}
	}
	x0 := int(math.Ceil(r.X/sx - 0.5))
	y0 := int(math.Ceil(r.Y/sy - 0.5))
	x1 := int(math.Ceil(r.Right()/sx - 0.5))
	y1 := int(math.Ceil(r.Bottom()/sy - 0.5))
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// toCell returns the cell containing a world point.
func (c *ScreenCanvas) toCell(x, y float64) (int, int) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return -1, -1
	}
	return int(math.Floor(x / sx)), int(math.Floor(y / sy))
}
