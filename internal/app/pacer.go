package app

import "time"

// Pacer throttles a loop to a steady ticks-per-second rate by sleeping
// until the next deadline. Overshoot carries into the following tick, so
// the average rate holds even when single ticks run long.
type Pacer struct {
	step time.Duration
	next time.Time
}

// NewPacer constructs a Pacer targeting the given TPS; tps <= 0 disables
// pacing entirely.
func NewPacer(tps int) *Pacer {
	if tps <= 0 {
		return &Pacer{}
	}
	return &Pacer{step: time.Second / time.Duration(tps)}
}

// Wait blocks until the next tick is due. The first call returns
// immediately and starts the clock.
func (p *Pacer) Wait() {
	if p.step == 0 {
		return
	}
	now := time.Now()
	if p.next.IsZero() {
		p.next = now.Add(p.step)
		return
	}
	if d := p.next.Sub(now); d > 0 {
		time.Sleep(d)
	}
	p.next = p.next.Add(p.step)
}
