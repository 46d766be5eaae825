package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-sim/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a scene picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scene.
Esc leaves a scene and returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select scene
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := newEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	// One App for the whole loop so audio and saves carry across scenes.
	app := e.newApp()
	width, height := terminalSize()

	for {
		res, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		width, height = res.Width, res.Height

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(e.store, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			if err := app.Start(res.SceneID); err != nil {
				e.logger.Warn("cannot start scene", "scene", res.SceneID, "err", err)
				continue
			}
			backToMenu, err := tui.Run(app, tui.Options{TickRate: flagFPS, Width: width, Height: height})
			if err != nil {
				return err
			}
			if !backToMenu {
				return nil
			}
		}
	}
}
