package core

import "time"

// Pacer converts elapsed frame time into a number of simulation steps so the
// generation rate stays independent of the frame rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxSteps    int
	now         func() time.Time
}

// NewPacer targets rate steps per second and never reports more than
// maxSteps for a single frame.
func NewPacer(rate, maxSteps int) *Pacer {
	if maxSteps <= 0 {
		maxSteps = 1
	}
	p := &Pacer{maxSteps: maxSteps, now: time.Now}
	p.SetRate(rate)
	return p
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (p *Pacer) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	p.step = time.Second / time.Duration(rate)
}

// Rate returns the configured steps per second.
func (p *Pacer) Rate() int { return int(time.Second / p.step) }

// Steps reports how many steps are due since the previous call. Backlog
// beyond maxSteps is dropped.
func (p *Pacer) Steps() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now

	n := 0
	for p.accumulator >= p.step && n < p.maxSteps {
		p.accumulator -= p.step
		n++
	}
	if n == p.maxSteps {
		p.accumulator = 0
	}
	return n
}
