package core

import "time"

// Pacer caps a pull-style frame loop at a steady frames-per-second rate.
type Pacer struct {
	step time.Duration
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer constructs a Pacer targeting the given FPS. A non-positive fps
// disables pacing.
func NewPacer(fps int) *Pacer {
	p := &Pacer{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		p.step = time.Second / time.Duration(fps)
	}
	return p
}

// Step returns the frame period, or zero when pacing is disabled.
func (p *Pacer) Step() time.Duration { return p.step }

// Wait blocks until the next frame is due. A frame that ran long does not
// accumulate debt; the schedule restarts from now.
func (p *Pacer) Wait() {
	if p.step <= 0 {
		return
	}
	now := p.now()
	if p.next.IsZero() {
		p.next = now
	}
	p.next = p.next.Add(p.step)
	if d := p.next.Sub(now); d > 0 {
		p.sleep(d)
		return
	}
	p.next = now
}
