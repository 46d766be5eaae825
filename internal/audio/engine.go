// Package audio plays synthesized sound effects and music through the
// system speaker. It implements core.Audio.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Engine mixes every playing sound into one speaker stream.
type Engine struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	loops   map[core.Sound]*beep.Ctrl
	volume  float64
	started bool
}

// NewEngine creates an engine. Nothing is audible until Start.
func NewEngine(vol float64) *Engine {
	return &Engine{
		rate:   sampleRate,
		mixer:  &beep.Mixer{},
		loops:  make(map[core.Sound]*beep.Ctrl),
		volume: vol,
	}
}

// Start opens the speaker and begins playback of the mixer.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}
	if err := speaker.Init(e.rate, e.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot init speaker: %w", err)
	}
	speaker.Play(e.mixer)
	e.started = true
	return nil
}

// Close silences everything. The speaker stays open for the process lifetime.
func (e *Engine) Close() {
	e.withLock(func() {
		e.mixer.Clear()
		clear(e.loops)
	})
}

// withLock runs fn holding the engine mutex and, once the speaker is
// running, the speaker lock so the playback goroutine sees a consistent mixer.
func (e *Engine) withLock(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// PlaySound implements core.Audio. Looping sounds are started once and
// resumed on later calls.
func (e *Engine) PlaySound(s core.Sound, loop bool) {
	e.withLock(func() {
		if !loop {
			e.mixer.Add(volume(Synth(s, e.rate), e.volume))
			return
		}

		if ctrl, ok := e.loops[s]; ok {
			ctrl.Paused = false
			return
		}
		ctrl := &beep.Ctrl{
			Streamer: volume(Repeat(func() beep.Streamer { return Synth(s, e.rate) }), e.volume),
		}
		e.loops[s] = ctrl
		e.mixer.Add(ctrl)
	})
}

// PauseMusic implements core.Audio.
func (e *Engine) PauseMusic() {
	e.setMusicPaused(true)
}

// ResumeMusic implements core.Audio.
func (e *Engine) ResumeMusic() {
	e.setMusicPaused(false)
}

func (e *Engine) setMusicPaused(paused bool) {
	e.withLock(func() {
		if ctrl, ok := e.loops[core.SoundMusic]; ok {
			ctrl.Paused = paused
		}
	})
}

// MusicPaused reports whether the music loop exists and is paused.
func (e *Engine) MusicPaused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	ctrl, ok := e.loops[core.SoundMusic]
	return ok && ctrl.Paused
}

// Playing returns the number of streams in the mixer.
func (e *Engine) Playing() int {
	var n int
	e.withLock(func() { n = e.mixer.Len() })
	return n
}

// Synth builds a fresh streamer for a sound.
func Synth(s core.Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case core.SoundFire:
		return Envelope(Sweep(1200, 300, 120*time.Millisecond, WaveSquare, rate), 5*time.Millisecond, 120*time.Millisecond, rate)
	case core.SoundExplode:
		return Envelope(Tone(0, 450*time.Millisecond, WaveNoise, rate), 2*time.Millisecond, 450*time.Millisecond, rate)
	case core.SoundEngine:
		return Tone(55, 400*time.Millisecond, WaveSaw, rate)
	case core.SoundTeleport:
		return Envelope(Sweep(200, 1600, 300*time.Millisecond, WaveSine, rate), 10*time.Millisecond, 300*time.Millisecond, rate)
	case core.SoundMusic:
		return melody(rate)
	default:
		return beep.Silence(0)
	}
}

// melody is one bar of the background loop: a minor arpeggio over a bass note.
func melody(rate beep.SampleRate) beep.Streamer {
	notes := []float64{220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94}
	step := 180 * time.Millisecond

	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		lead := Envelope(Tone(f, step, WaveSquare, rate), 5*time.Millisecond, step, rate)
		bass := Tone(f/2, step, WaveSine, rate)
		seq = append(seq, beep.Mix(volume(lead, 0.25), volume(bass, 0.35)))
	}
	return beep.Seq(seq...)
}
