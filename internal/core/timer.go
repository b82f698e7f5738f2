package core

import "time"

// Pacer inserts a fixed delay between rendered generations.
type Pacer struct {
	delay time.Duration
	sleep func(time.Duration)
}

// NewPacer constructs a Pacer waiting ms milliseconds per call to Wait.
// Non-positive values disable pacing.
func NewPacer(ms int) *Pacer {
	p := &Pacer{sleep: time.Sleep}
	p.SetDelay(ms)
	return p
}

// SetDelay changes the delay.
func (p *Pacer) SetDelay(ms int) {
	if ms <= 0 {
		p.delay = 0
		return
	}
	p.delay = time.Duration(ms) * time.Millisecond
}

// Delay reports the configured delay.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Wait blocks for the configured delay.
func (p *Pacer) Wait() {
	if p.delay <= 0 {
		return
	}
	p.sleep(p.delay)
}
