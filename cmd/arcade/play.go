package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-sim/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Play a scene in the terminal",
	Long: `Start the specified scene in the terminal.

Controls:
  A/D, Left/Right  - Rotate (asteroids) or move (drift)
  W/Up, S/Down     - Throttle up/down
  Space            - Fire
  T/R/E            - Turret lab: add turret, remove turret, add enemy
  1-9              - Press the buttons shown in the status bar
  P                - Pause
  Esc              - Leave the scene
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options (asteroids):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play asteroids
  arcade play asteroids --difficulty hard
  arcade play asteroids --config ./my-asteroids.yaml
  arcade play turrets --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	sceneID := args[0]
	if err := requireScene(sceneID); err != nil {
		return err
	}

	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	app := e.newApp()
	if err := app.Start(sceneID); err != nil {
		return err
	}

	width, height := terminalSize()
	_, err = tui.Run(app, tui.Options{TickRate: flagFPS, Width: width, Height: height})
	return err
}
