package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length tone, optionally sweeping its frequency.
type oscillator struct {
	freq, sweep float64 // start frequency and Hz change per second
	phase       float64
	length      int
	pos         int
	wave        Wave
	rate        beep.SampleRate
	rng         *rand.Rand
}

// Tone returns a constant-frequency oscillator of the given length.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Sweep(freq, freq, d, wave, rate)
}

// Sweep returns an oscillator gliding linearly from one frequency to another.
func Sweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   from,
		sweep:  (to - from) / d.Seconds(),
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		rng:    rand.New(rand.NewSource(int64(from*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.pos) / float64(o.rate)
		o.phase += (o.freq + o.sweep*t) / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and an exponential decay.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	decay    float64 // per-sample multiplier after the attack
	gain     float64
}

// Envelope applies a linear attack followed by an exponential decay that
// falls to about 1% of full volume after d.
func Envelope(s beep.Streamer, attack, d time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	if n < 1 {
		n = 1
	}
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		decay:    math.Pow(0.01, 1/float64(n)),
		gain:     1,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.gain
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		} else {
			e.gain *= e.decay
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// repeat plays streams from a factory back to back, forever.
type repeat struct {
	next    func() beep.Streamer
	current beep.Streamer
}

// Repeat loops a synthesized sound. Generators cannot seek, so each cycle
// gets a fresh streamer.
func Repeat(factory func() beep.Streamer) beep.Streamer {
	return &repeat{next: factory, current: factory()}
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		m, more := r.current.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			r.current = r.next()
		}
	}
	return n, true
}

func (r *repeat) Err() error { return nil }

// volume scales a stream linearly. Zero or less is silence.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
