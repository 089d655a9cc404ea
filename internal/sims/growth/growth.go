// Package growth implements the branching ray simulation: rays start from a
// random point, travel straight, split into pairs at random and stop at the
// border or when they run into an earlier path.
package growth

import (
	"fmt"

	"raytree/internal/core"
	"raytree/internal/geom"
	"raytree/internal/spatial"
)

// World holds all state for one run.
type World struct {
	cfg Config

	// Captured at Reset; edits to cfg apply to the next run.
	params Params
	steps  int
	speed  float64

	w, h float64

	rng       *core.RNG
	rays      []*Ray
	spawned   []*Ray
	committed []spatial.Entry
	index     *spatial.Index
	nextID    int
	ticks     int

	committedLayer core.Surface
	transientLayer core.Surface

	entries    []spatial.Entry
	candidates []spatial.Entry
}

// New returns a growth simulation with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// world is empty until Reset is called.
func NewWithConfig(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	if cfg.MicroSteps <= 0 {
		cfg.MicroSteps = 1
	}
	if cfg.Speed <= 0 {
		cfg.Speed = 1
	}
	return &World{
		cfg:            cfg,
		w:              float64(cfg.Width),
		h:              float64(cfg.Height),
		index:          spatial.New(float64(cfg.Width)),
		committedLayer: core.Discard,
		transientLayer: core.Discard,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "growth" }

// Size reports the drawing area.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Config returns the configuration the next Reset will use.
func (w *World) Config() Config { return w.cfg }

// ActiveParams returns the parameters of the current run.
func (w *World) ActiveParams() Params { return w.params }

// Active reports whether any ray is still growing.
func (w *World) Active() bool { return len(w.rays) > 0 }

// Live returns the number of growing rays.
func (w *World) Live() int { return len(w.rays) }

// Ticks returns the number of ticks since the last Reset.
func (w *World) Ticks() int { return w.ticks }

// Status summarises the run for display.
func (w *World) Status() string {
	return fmt.Sprintf("tick %d  live %d  segments %d", w.ticks, len(w.rays), len(w.committed))
}

// Rays returns copies of the live rays in creation order.
func (w *World) Rays() []Ray {
	out := make([]Ray, len(w.rays))
	for i, r := range w.rays {
		out[i] = *r
	}
	return out
}

// HeadingLines appends to dst the line each live ray travels along.
func (w *World) HeadingLines(dst []geom.Line) []geom.Line {
	for _, r := range w.rays {
		dst = append(dst, geom.LineFromPoints(r.Start, geom.Add(r.Start, r.Vel)))
	}
	return dst
}

// Tips appends to dst the tip of every live ray.
func (w *World) Tips(dst []geom.Vector) []geom.Vector {
	for _, r := range w.rays {
		dst = append(dst, r.End)
	}
	return dst
}

// Segments returns the committed segments in commit order. The slice is
// owned by the world.
func (w *World) Segments() []spatial.Entry { return w.committed }

// Index exposes the collision index as built for the current tick.
func (w *World) Index() *spatial.Index { return w.index }

// AttachLayers sets the surfaces committed and live paths are drawn to.
func (w *World) AttachLayers(committed, transient core.Surface) {
	if committed == nil {
		committed = core.Discard
	}
	if transient == nil {
		transient = core.Discard
	}
	w.committedLayer = committed
	w.transientLayer = transient
}

// Reset discards the current run and starts a new one from a random point.
// A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.discard(effective)
	origin := geom.New(w.rng.Float64()*w.w, w.rng.Float64()*w.h)
	w.rays = append(w.rays, w.newRay(origin, 0), w.newRay(origin, 180))
}

func (w *World) discard(seed int64) {
	w.rng = core.NewRNG(seed)
	w.params = w.cfg.Params
	w.steps = w.cfg.MicroSteps
	w.speed = w.cfg.Speed
	clear(w.rays)
	clear(w.spawned)
	w.rays = w.rays[:0]
	w.spawned = w.spawned[:0]
	w.committed = w.committed[:0]
	w.index.Reset()
	w.nextID = 0
	w.ticks = 0
	w.committedLayer.Clear()
	w.transientLayer.Clear()
}

func (w *World) newRay(start geom.Vector, degs float64) *Ray {
	w.nextID++
	return newRay(w.nextID, start, degs)
}

// Step advances every live ray through one tick of micro-steps. Children of
// splits join the population once the tick is over.
func (w *World) Step() {
	if len(w.rays) == 0 {
		return
	}
	w.transientLayer.Clear()
	w.rebuildIndex()
	w.spawned = w.spawned[:0]

	last := w.steps - 1
	for t := 0; t <= last; t++ {
		for _, r := range w.rays {
			if r.Alive {
				w.advance(r, t == last)
			}
		}
	}

	n := 0
	for _, r := range w.rays {
		if r.Alive {
			w.rays[n] = r
			n++
		}
	}
	clear(w.rays[n:])
	w.rays = append(w.rays[:n], w.spawned...)
	clear(w.spawned)
	w.ticks++
}

// rebuildIndex fills the index with every committed segment followed by the
// path of every live ray as of the start of the tick.
func (w *World) rebuildIndex() {
	w.entries = append(w.entries[:0], w.committed...)
	for _, r := range w.rays {
		w.entries = append(w.entries, spatial.Entry{Seg: r.Segment(), Owner: r.ID})
	}
	w.index.Rebuild(w.entries)
}

func (w *World) advance(r *Ray, lastStep bool) {
	r.Age++
	prev := r.End
	r.End = geom.Add(r.End, r.Vel.Scale(w.speed))

	if w.clampTip(r) {
		w.commit(r)
		return
	}

	if hit, ok := w.collide(r, prev); ok {
		r.End = hit
		seg := w.commit(r)
		w.index.Insert(seg, r.ID)
		return
	}

	if r.Age > minSplitAge && w.rng.Float64() < w.params.splitChance() {
		w.commit(r)
		a, b := childHeadings(w.params, r.Heading(), w.rng)
		w.spawned = append(w.spawned, w.newRay(r.End, a), w.newRay(r.End, b))
		return
	}

	if lastStep {
		geom.StrokeLine(w.transientLayer, r.Start, r.End)
	}
}

// clampTip reports whether the tip left the area, pulling it back onto the
// border if so.
func (w *World) clampTip(r *Ray) bool {
	e := r.End
	if e.X >= 0 && e.Y >= 0 && e.X < w.w && e.Y < w.h {
		return false
	}
	r.End.X = min(max(e.X, 0), w.w)
	r.End.Y = min(max(e.Y, 0), w.h)
	return true
}

// collide tests the step prev->tip against nearby segments, skipping the
// ray's own path.
func (w *World) collide(r *Ray, prev geom.Vector) (geom.Vector, bool) {
	step := geom.NewSegment(prev, r.End)
	w.candidates = w.index.Candidates(w.candidates[:0], step)

	var best geom.Vector
	bestDist := 0.0
	found := false
	for _, c := range w.candidates {
		if c.Owner == r.ID {
			continue
		}
		p, ok := geom.IntersectSegments(step, c.Seg)
		if !ok {
			continue
		}
		if w.params.CollisionPolicy == CollideFirst {
			return p, true
		}
		if d := geom.Dist(prev, p); !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, found
}

// commit ends the ray and records its path.
func (w *World) commit(r *Ray) geom.Segment {
	r.Alive = false
	seg := r.Segment()
	w.committed = append(w.committed, spatial.Entry{Seg: seg, Owner: r.ID})
	geom.StrokeLine(w.committedLayer, r.Start, r.End)
	return seg
}

func init() {
	core.Register("growth", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
