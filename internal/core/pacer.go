package core

import "time"

// Pacer drives a Sim one tick at a time. It holds the pause state, counts
// ticks since the last reset and reports when the sim settles.
type Pacer struct {
	sim      Sim
	interval time.Duration
	paused   bool
	settled  bool
	ticks    int

	// OnSettled is called once per run with the tick count when the sim
	// stops being active.
	OnSettled func(ticks int)
}

// NewPacer returns a pacer stepping sim at tps ticks per second.
func NewPacer(sim Sim, tps int) *Pacer {
	p := &Pacer{sim: sim}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the tick rate; non-positive rates fall back to 60.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.interval = time.Second / time.Duration(tps)
}

// Interval is the time between ticks at the current rate.
func (p *Pacer) Interval() time.Duration { return p.interval }

// Ticks returns the number of ticks since the last Reset.
func (p *Pacer) Ticks() int { return p.ticks }

// Paused reports whether Tick is currently a no-op.
func (p *Pacer) Paused() bool { return p.paused }

// SetPaused pauses or resumes ticking.
func (p *Pacer) SetPaused(paused bool) { p.paused = paused }

// TogglePause flips the pause state.
func (p *Pacer) TogglePause() { p.paused = !p.paused }

// Settled reports whether the current run has stopped growing.
func (p *Pacer) Settled() bool { return p.settled }

// Tick advances the sim by one tick unless paused and reports whether it did.
func (p *Pacer) Tick() bool {
	if p.paused {
		return false
	}
	return p.advance()
}

// StepOnce advances one tick regardless of the pause state.
func (p *Pacer) StepOnce() bool { return p.advance() }

// Reset restarts the sim from seed.
func (p *Pacer) Reset(seed int64) {
	p.sim.Reset(seed)
	p.ticks = 0
	p.settled = false
}

func (p *Pacer) advance() bool {
	if !p.sim.Active() {
		p.settle()
		return false
	}
	p.sim.Step()
	p.ticks++
	if !p.sim.Active() {
		p.settle()
	}
	return true
}

func (p *Pacer) settle() {
	if p.settled {
		return
	}
	p.settled = true
	if p.OnSettled != nil {
		p.OnSettled(p.ticks)
	}
}
