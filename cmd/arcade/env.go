package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-sim/internal/audio"
	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/games/asteroids"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/save"
	"github.com/vovakirdan/arcade-sim/internal/scene"
	"github.com/vovakirdan/arcade-sim/internal/storage"
)

// applySceneFlags hands --config and --difficulty to the asteroids scene.
func applySceneFlags() error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)
	return nil
}

// env holds the services shared by every scene of one run.
type env struct {
	logger *log.Logger
	store  *storage.Store
	audio  core.Audio
	saves  *save.Store

	closers []func()
}

// newEnv opens logging, storage and audio. Only a bad log level is fatal;
// storage and audio failures are logged and the run continues without them.
// Logs go to --log-file unless toStderr is set, since the TUI owns the terminal.
func newEnv(toStderr bool) (*env, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	e := &env{}
	var out io.Writer = os.Stderr
	if !toStderr {
		f, fileErr := openLogFile(flagLogFile)
		if fileErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", fileErr)
			out = io.Discard
		} else {
			out = f
			e.closers = append(e.closers, func() { f.Close() })
		}
	}
	e.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		e.logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		e.store = store
		e.closers = append(e.closers, func() { store.Close() })
	}

	savesDir, err := storage.ExpandHome(flagSavesDir)
	if err != nil {
		e.logger.Warn("saves disabled", "error", err)
	} else {
		e.saves = save.NewStore(savesDir)
	}

	e.audio = core.NopAudio{}
	if !flagMute {
		eng := audio.NewEngine(0.5)
		if err := eng.Start(); err != nil {
			e.logger.Warn("audio disabled", "error", err)
		} else {
			e.audio = eng
			e.closers = append(e.closers, eng.Close)
		}
	}
	return e, nil
}

func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// runtimeConfig builds the world settings from the global flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}

// newApp builds an App over every registered scene, wired to the env.
func (e *env) newApp() *scene.App {
	ctx := scene.NewContext(runtimeConfig(), e.audio, e.logger, e.saves)
	app := registry.NewApp(ctx)
	if e.store != nil {
		app.SetScoreSink(e.store)
	}
	return app
}

// Close releases everything newEnv opened, newest first.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// terminalSize returns the terminal size, falling back to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// requireScene fails with a hint when id is not registered.
func requireScene(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown scene %q\nRun 'arcade list' to see available scenes", id)
	}
	return nil
}
