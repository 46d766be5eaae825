package core

import "time"

// smoothingWindow is the number of frames averaged by FramePacer.Smoothed.
const smoothingWindow = 10

// FramePacer turns wall-clock timestamps into simulation dt values.
type FramePacer struct {
	target  time.Duration
	maxDT   float64
	last    time.Time
	samples [smoothingWindow]float64
	count   int
	next    int
}

// NewFramePacer creates a pacer targeting fps frames per second.
// dt is clamped to four target frames so a stalled frontend cannot
// teleport entities.
func NewFramePacer(fps int) *FramePacer {
	if fps <= 0 {
		fps = 60
	}
	target := time.Second / time.Duration(fps)
	return &FramePacer{
		target: target,
		maxDT:  4 * target.Seconds(),
	}
}

// Target returns the frame duration the pacer aims for.
func (p *FramePacer) Target() time.Duration {
	return p.target
}

// Tick records a frame at now and returns dt in seconds.
// The first call returns the target frame time.
func (p *FramePacer) Tick(now time.Time) float64 {
	dt := p.target.Seconds()
	if !p.last.IsZero() {
		dt = ClampF(now.Sub(p.last).Seconds(), 0, p.maxDT)
	}
	p.last = now

	p.samples[p.next] = dt
	p.next = (p.next + 1) % smoothingWindow
	if p.count < smoothingWindow {
		p.count++
	}
	return dt
}

// Smoothed returns the average dt over the last frames.
func (p *FramePacer) Smoothed() float64 {
	if p.count == 0 {
		return p.target.Seconds()
	}
	sum := 0.0
	for i := 0; i < p.count; i++ {
		sum += p.samples[i]
	}
	return sum / float64(p.count)
}

// FPS returns the smoothed frame rate.
func (p *FramePacer) FPS() float64 {
	s := p.Smoothed()
	if s <= 0 {
		return 0
	}
	return 1 / s
}
