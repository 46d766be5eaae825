package core

// Sound is a handle to a sound effect or music track.
type Sound int

const (
	SoundFire Sound = iota
	SoundExplode
	SoundEngine
	SoundTeleport
	SoundMusic
)

// String returns the sound's name.
func (s Sound) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundExplode:
		return "explode"
	case SoundEngine:
		return "engine"
	case SoundTeleport:
		return "teleport"
	case SoundMusic:
		return "music"
	default:
		return "unknown"
	}
}

// Audio plays sounds. Implementations must not block the caller.
type Audio interface {
	PlaySound(s Sound, loop bool)
	PauseMusic()
	ResumeMusic()
}

// NopAudio is a silent Audio. Used for SSH sessions, --mute and tests.
type NopAudio struct{}

func (NopAudio) PlaySound(Sound, bool) {}
func (NopAudio) PauseMusic()           {}
func (NopAudio) ResumeMusic()          {}

// AudioLog records every call. Tests use it to assert sound events.
type AudioLog struct {
	Played      []Sound
	MusicPaused bool
}

func (a *AudioLog) PlaySound(s Sound, loop bool) { a.Played = append(a.Played, s) }
func (a *AudioLog) PauseMusic()                  { a.MusicPaused = true }
func (a *AudioLog) ResumeMusic()                 { a.MusicPaused = false }

// Count returns how many times s was played.
func (a *AudioLog) Count(s Sound) int {
	n := 0
	for _, p := range a.Played {
		if p == s {
			n++
		}
	}
	return n
}
