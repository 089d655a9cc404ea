package render

import (
	"math"

	"raytree/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Cells is a surface that plots strokes onto a character grid, scaling
// simulation coordinates down to terminal cells.
type Cells struct {
	grid   *core.ByteGrid
	sx, sy float64

	penX, penY float64
	hasPen     bool
}

// NewCells maps a simW×simH drawing area onto cols×rows cells.
func NewCells(cols, rows int, simW, simH float64) *Cells {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c := &Cells{grid: core.NewByteGrid(cols, rows)}
	c.sx = float64(cols) / math.Max(simW, 1)
	c.sy = float64(rows) / math.Max(simH, 1)
	return c
}

// Grid exposes the backing cells; non-zero cells are inked.
func (c *Cells) Grid() *core.ByteGrid { return c.grid }

func (c *Cells) cell(x, y float64) (int, int) {
	cx := int(math.Floor(x * c.sx))
	cy := int(math.Floor(y * c.sy))
	// The far border maps onto the last column or row.
	cx = min(max(cx, 0), c.grid.W-1)
	cy = min(max(cy, 0), c.grid.H-1)
	return cx, cy
}

// MoveTo moves the pen without drawing.
func (c *Cells) MoveTo(x, y float64) {
	c.penX, c.penY, c.hasPen = x, y, true
}

// LineTo inks the cells between the pen and (x, y).
func (c *Cells) LineTo(x, y float64) {
	if !c.hasPen {
		c.MoveTo(x, y)
		return
	}
	x0, y0 := c.cell(c.penX, c.penY)
	x1, y1 := c.cell(x, y)
	c.grid.Line(x0, y0, x1, y1, 1)
	c.penX, c.penY = x, y
}

// Stroke ends the current polyline.
func (c *Cells) Stroke() { c.hasPen = false }

// Clear erases every cell.
func (c *Cells) Clear() {
	c.grid.Clear()
	c.hasPen = false
}

// Flush writes every inked cell to screen at the given offset.
func (c *Cells) Flush(screen tcell.Screen, offX, offY int, r rune, style tcell.Style) {
	for y := 0; y < c.grid.H; y++ {
		for x := 0; x < c.grid.W; x++ {
			if c.grid.At(x, y) != 0 {
				screen.SetContent(offX+x, offY+y, r, nil, style)
			}
		}
	}
}
