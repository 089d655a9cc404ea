package core

import "raytree/internal/geom"

// Size describes the dimensions of a simulation's drawing area.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a growth simulation must implement. Step
// advances one tick; Active reports whether another tick would do anything.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Active() bool
}

// Surface is a drawing target accepting stroke commands.
type Surface interface {
	geom.Pen
	Clear()
}

// Layered is implemented by sims that draw onto a committed layer, which only
// ever receives new strokes, and a transient layer, which is cleared and
// redrawn every tick. Either layer may be nil.
type Layered interface {
	AttachLayers(committed, transient Surface)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Discard is a Surface that drops every command.
var Discard Surface = discard{}

type discard struct{}

func (discard) MoveTo(x, y float64) {}
func (discard) LineTo(x, y float64) {}
func (discard) Stroke()             {}
func (discard) Clear()              {}

// Tee returns a Surface that forwards every command to each of surfaces.
func Tee(surfaces ...Surface) Surface {
	return tee(surfaces)
}

type tee []Surface

func (t tee) MoveTo(x, y float64) {
	for _, s := range t {
		s.MoveTo(x, y)
	}
}

func (t tee) LineTo(x, y float64) {
	for _, s := range t {
		s.LineTo(x, y)
	}
}

func (t tee) Stroke() {
	for _, s := range t {
		s.Stroke()
	}
}

func (t tee) Clear() {
	for _, s := range t {
		s.Clear()
	}
}
