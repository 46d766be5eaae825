package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-sim/internal/games/title"
	"github.com/vovakirdan/arcade-sim/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [scene]",
	Short: "Play in a desktop window",
	Long: `Open a window running the given scene, or the title scene when none
is given. The title scene has a button per scene; press the digit shown next
to a button to activate it.

Escape or closing the window ends the run.

Examples:
  arcade window
  arcade window asteroids --difficulty easy
  arcade window turrets --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	sceneID := title.ID
	if len(args) == 1 {
		sceneID = args[0]
	}
	if err := requireScene(sceneID); err != nil {
		return err
	}

	e, err := newEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	app := e.newApp()
	if err := app.Start(sceneID); err != nil {
		return err
	}
	return window.Run(app, window.Options{Title: "Arcade", TickRate: flagFPS})
}
