package core

import (
	"testing"
	"time"
)

func TestFramePacer(t *testing.T) {
	p := NewFramePacer(60)
	start := time.Unix(0, 0)

	if got := p.Target(); got != time.Second/60 {
		t.Errorf("Target() = %v, expected %v", got, time.Second/60)
	}

	if dt := p.Tick(start); !approx(dt, 1.0/60) {
		t.Errorf("first Tick dt = %v, expected target", dt)
	}
	if dt := p.Tick(start.Add(20 * time.Millisecond)); !approx(dt, 0.02) {
		t.Errorf("Tick dt = %v, expected 0.02", dt)
	}

	// A stall is clamped
	if dt := p.Tick(start.Add(10 * time.Second)); dt > 4.0/60+1e-9 {
		t.Errorf("stalled Tick dt = %v, expected clamp", dt)
	}

	// Going backwards yields zero, never negative
	if dt := p.Tick(start); dt != 0 {
		t.Errorf("backwards Tick dt = %v, expected 0", dt)
	}
}

func TestFramePacerSmoothing(t *testing.T) {
	p := NewFramePacer(50)
	now := time.Unix(0, 0)
	p.Tick(now)
	for i := 0; i < 20; i++ {
		now = now.Add(20 * time.Millisecond)
		p.Tick(now)
	}
	if !approx(p.Smoothed(), 0.02) {
		t.Errorf("Smoothed() = %v, expected 0.02", p.Smoothed())
	}
	if f := p.FPS(); f < 49.99 || f > 50.01 {
		t.Errorf("FPS() = %v, expected 50", f)
	}
}
