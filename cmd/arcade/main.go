// arcade runs a small set of simulation scenes (asteroids, a turret lab,
// free flight, bouncing ships and a soundboard) in the terminal, in a
// window, or over SSH.
//
// Usage:
//
//	arcade list               - List available scenes
//	arcade play <scene>       - Play a scene in the terminal
//	arcade menu               - Pick scenes from a terminal menu
//	arcade window [scene]     - Play in a desktop window
//	arcade serve              - Start SSH server for remote play
//	arcade scores <scene>     - Show high scores for a scene
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--saves <dir>       - Set save directory (default: ~/.arcade/saves)
//	--log-file <path>   - Write logs here (default: ~/.arcade/arcade.log)
//	--log-level <lvl>   - debug, info, warn or error
//	--mute              - Disable audio
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/arcade-sim/internal/games/asteroids"
	_ "github.com/vovakirdan/arcade-sim/internal/games/bounce"
	_ "github.com/vovakirdan/arcade-sim/internal/games/drift"
	_ "github.com/vovakirdan/arcade-sim/internal/games/soundboard"
	_ "github.com/vovakirdan/arcade-sim/internal/games/title"
	_ "github.com/vovakirdan/arcade-sim/internal/games/turrets"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagSavesDir   string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - small game simulations for terminal, window and SSH",
	Long: `Arcade runs a handful of scenes on one scene framework: an asteroids
field, a turret lab, free flight, bouncing ships and a soundboard.

Available commands:
  list     - Show all available scenes
  play     - Play a scene in the terminal
  menu     - Interactive scene picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play asteroids --difficulty hard
  arcade menu
  arcade window turrets
  arcade serve --ssh :2222
  arcade scores asteroids`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applySceneFlags()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagSavesDir, "saves", "~/.arcade/saves", "Directory for scene save files")
	pf.StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Log file path")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagMute, "mute", false, "Disable audio")
	pf.StringVar(&flagConfig, "config", "", "Path to custom asteroids config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Asteroids difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
