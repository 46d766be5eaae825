package scene

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/save"
)

// Context carries the per-frame capabilities and the shared services a scene
// may use. One Context exists per App.
type Context struct {
	Input   core.Input
	Audio   core.Audio
	Runtime core.RuntimeConfig
	Log     *log.Logger

	// Saves persists scene attributes between runs. May be nil.
	Saves *save.Store

	next string
}

// NewContext fills in silent defaults for missing capabilities.
func NewContext(rt core.RuntimeConfig, audio core.Audio, logger *log.Logger, saves *save.Store) *Context {
	if audio == nil {
		audio = core.NopAudio{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Context{
		Input:   core.NewInputFrame(),
		Audio:   audio,
		Runtime: rt,
		Log:     logger,
		Saves:   saves,
	}
}

// Change requests a switch to the scene with the given ID.
// The switch happens after the current frame completes.
func (c *Context) Change(id string) {
	c.next = id
}

// Pending returns the requested scene ID, if any.
func (c *Context) Pending() (string, bool) {
	return c.next, c.next != ""
}
