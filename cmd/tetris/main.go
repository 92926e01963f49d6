// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play a game
//	tetris list              - List available games
//	tetris config            - Print the effective rules as YAML
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Load rules from a YAML file
//	--log <path>     - Write a log file
//
// Flag defaults can be set with TETRIS_FPS, TETRIS_SEED, TETRIS_CONFIG and
// TETRIS_LOG, either in the environment or in a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	initFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - stack falling blocks in your terminal",
	Long: `Tetris is a terminal version of the classic falling-block puzzle.

Available commands:
  play     - Play a game
  list     - Show all available games
  config   - Print the effective rules

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./configs/tetris.yaml --log tetris.log
  tetris config > my-rules.yaml`,
}

// initFlags registers persistent flags. It runs after .env is loaded so the
// environment can supply defaults.
func initFlags() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", config.GetEnvAsInt(config.EnvFPS, 60), "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", config.GetEnvAsInt64(config.EnvSeed, 0), "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", config.GetEnv(config.EnvConfig, ""), "Path to a rules YAML file")
	pf.StringVar(&flagLogPath, "log", config.GetEnv(config.EnvLog, ""), "Path to a log file (default: no logging)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
