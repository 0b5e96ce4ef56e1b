package core

import "math"

// Surface is a drawable area measured in world units.
// Games draw through it without knowing how pixels reach the display.
type Surface interface {
	Width() float64
	Height() float64
	Clear()
	FillRect(r Rect, c Color)
	Line(x1, y1, x2, y2 float64, c Color)
}

// Glyphs used when rasterizing onto a character screen.
const (
	FillGlyph  = '█'
	HLineGlyph = '─'
	VLineGlyph = '│'
	DotGlyph   = '·'
)

// Canvas is a Surface that rasterizes world units onto a Screen.
// Each screen cell covers cellW x cellH world units.
type Canvas struct {
	screen *Screen
	width  float64
	height float64
	cellW  float64
	cellH  float64
}

// NewCanvas creates a canvas of the given world size backed by a screen
// large enough to hold it at the given cell size.
func NewCanvas(width, height, cellW, cellH float64) *Canvas {
	cols := int(math.Ceil(width / cellW))
	rows := int(math.Ceil(height / cellH))
	return &Canvas{
		screen: NewScreen(cols, rows),
		width:  width,
		height: height,
		cellW:  cellW,
		cellH:  cellH,
	}
}

// Screen returns the backing character buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Width returns the canvas width in world units.
func (c *Canvas) Width() float64 {
	return c.width
}

// Height returns the canvas height in world units.
func (c *Canvas) Height() float64 {
	return c.height
}

// Clear erases the whole canvas.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect fills every cell the rectangle touches.
func (c *Canvas) FillRect(r Rect, col Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := int(math.Floor(r.X / c.cellW))
	x1 := int(math.Ceil(r.Right() / c.cellW))
	y0 := int(math.Floor(r.Y / c.cellH))
	y1 := int(math.Ceil(r.Bottom() / c.cellH))
	c.screen.FillCells(x0, y0, x1-x0, y1-y0, Cell{Rune: FillGlyph, Color: col})
}

// Line draws a line between two world points.
// Axis-aligned lines use box-drawing glyphs; others are dotted.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col Color) {
	cx1, cy1 := c.cell(x1, y1)
	cx2, cy2 := c.cell(x2, y2)

	switch {
	case cy1 == cy2:
		if cx1 > cx2 {
			cx1, cx2 = cx2, cx1
		}
		for x := cx1; x <= cx2; x++ {
			c.screen.SetCell(x, cy1, Cell{Rune: HLineGlyph, Color: col})
		}
	case cx1 == cx2:
		if cy1 > cy2 {
			cy1, cy2 = cy2, cy1
		}
		for y := cy1; y <= cy2; y++ {
			c.screen.SetCell(cx1, y, Cell{Rune: VLineGlyph, Color: col})
		}
	default:
		dx := float64(cx2 - cx1)
		dy := float64(cy2 - cy1)
		steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			x := cx1 + int(math.Round(dx*t))
			y := cy1 + int(math.Round(dy*t))
			c.screen.SetCell(x, y, Cell{Rune: DotGlyph, Color: col})
		}
	}
}

// cell maps a world point to the screen cell containing it.
// Points on the far right or bottom edge map to the last column or row.
func (c *Canvas) cell(x, y float64) (int, int) {
	col := Clamp(int(math.Floor(x/c.cellW)), 0, c.screen.Width()-1)
	row := Clamp(int(math.Floor(y/c.cellH)), 0, c.screen.Height()-1)
	return col, row
}
