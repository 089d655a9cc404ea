//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"raytree/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	padding  = 12
	rowH     = 30
	buttonW  = 22
	gap      = 6
	titleY   = padding + 13
	rowsTop  = titleY + 14
	baseline = 19
	lineH    = 14

	resetHint = "changes apply on restart (R)"
)

var (
	panelBg   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleFg   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textFg    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimFg     = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	buttonBg  = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD is the parameter panel drawn to the right of the simulation view: one
// row per control with -/+ buttons, and the run status at the bottom.
type HUD struct {
	ctl     *controls
	width   int
	offsetX int

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD builds a panel of the given width for sim. A zero width hides it.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{ctl: newControls(sim), width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update reads the current values and applies clicks on the buttons. The
// panel starts at offsetX in screen space.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.offsetX = offsetX
	h.ctl.refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-h.offsetX, my)
	for i := range h.ctl.rows {
		minus, plus := h.buttons(i)
		switch {
		case p.In(minus):
			h.ctl.adjust(i, -1)
			return
		case p.In(plus):
			h.ctl.adjust(i, 1)
			return
		}
	}
}

// buttons returns the -/+ rectangles of row i in panel space.
func (h *HUD) buttons(i int) (image.Rectangle, image.Rectangle) {
	top := rowsTop + i*rowH + (rowH-buttonW)/2
	plus := image.Rect(h.width-padding-buttonW, top, h.width-padding, top+buttonW)
	minus := plus.Sub(image.Pt(buttonW+gap, 0))
	return minus, plus
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.ctl.sim.Name(), face, padding, titleY, titleFg)
	for i, row := range h.ctl.rows {
		y := rowsTop + i*rowH + baseline
		text.Draw(h.panel, row.def.Label, face, padding, y, textFg)
		minus, plus := h.buttons(i)
		value := row.label()
		fg := textFg
		if !row.known {
			fg = dimFg
		}
		text.Draw(h.panel, value, face, minus.Min.X-gap-text.BoundString(face, value).Dx(), y, fg)
		h.button(minus, "-", h.ctl.canAdjust(i, -1))
		h.button(plus, "+", h.ctl.canAdjust(i, 1))
	}

	bottom := height - padding
	text.Draw(h.panel, resetHint, face, padding, bottom-lineH, dimFg)
	if status := h.ctl.status(); status != "" {
		text.Draw(h.panel, status, face, padding, bottom, dimFg)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) button(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBg, textFg
	if !enabled {
		bg, fg = buttonOff, dimFg
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	b := text.BoundString(basicfont.Face7x13, label)
	text.Draw(h.panel, label, basicfont.Face7x13, r.Min.X+(r.Dx()-b.Dx())/2, r.Min.Y+(r.Dy()+b.Dy())/2, fg)
}
