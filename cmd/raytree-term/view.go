package main

import (
	"time"

	"raytree/internal/core"
	"raytree/internal/render"
	"raytree/internal/spatial"

	"github.com/gdamore/tcell/v2"
)

type segmentSource interface {
	Segments() []spatial.Entry
}

type statusSource interface {
	Status() string
}

var (
	committedStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	liveStyle      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	statusStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
)

// viewer draws a layered simulation onto a terminal, one cell per scaled
// pixel block, with a status line on the bottom row.
type viewer struct {
	screen tcell.Screen
	sim    core.Sim
	pacer  *core.Pacer
	seed   int64

	committed *render.Cells
	transient *render.Cells
	width     int
	height    int
}

func newViewer(screen tcell.Screen, pacer *core.Pacer, sim core.Sim, seed int64) *viewer {
	v := &viewer{screen: screen, sim: sim, pacer: pacer, seed: seed}
	v.layout()
	return v
}

// layout sizes the cell layers to the screen and replays committed history
// into the fresh committed layer.
func (v *viewer) layout() {
	v.width, v.height = v.screen.Size()
	rows := max(v.height-1, 1)
	size := v.sim.Size()
	v.committed = render.NewCells(v.width, rows, float64(size.W), float64(size.H))
	v.transient = render.NewCells(v.width, rows, float64(size.W), float64(size.H))
	if layered, ok := v.sim.(core.Layered); ok {
		layered.AttachLayers(v.committed, v.transient)
	}
	if src, ok := v.sim.(segmentSource); ok {
		for _, e := range src.Segments() {
			e.Seg.Draw(v.committed)
		}
	}
}

func (v *viewer) reset(seed int64) {
	v.seed = seed
	v.pacer.Reset(seed)
}

func (v *viewer) draw() {
	v.screen.Clear()
	v.committed.Flush(v.screen, 0, 0, '█', committedStyle)
	v.transient.Flush(v.screen, 0, 0, '█', liveStyle)

	status := v.sim.Name()
	if src, ok := v.sim.(statusSource); ok {
		status = src.Status()
	}
	switch {
	case v.pacer.Paused():
		status += "  [paused]"
	case v.pacer.Settled():
		status += "  [settled]"
	}
	row := v.height - 1
	col := 0
	for _, r := range status {
		if col >= v.width {
			break
		}
		v.screen.SetContent(col, row, r, nil, statusStyle)
		col++
	}
	for ; col < v.width; col++ {
		v.screen.SetContent(col, row, ' ', nil, statusStyle)
	}
	v.screen.Show()
}

// handleInput applies one terminal event and reports whether to keep running.
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.pacer.TogglePause()
		case 'n':
			if v.pacer.Paused() {
				v.pacer.StepOnce()
			}
		case 'r':
			v.reset(v.seed)
		case 's':
			v.reset(time.Now().UnixNano())
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.layout()
	}
	return true
}
