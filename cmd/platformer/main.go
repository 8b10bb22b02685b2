// platformer is a side-scrolling platformer for the terminal: run, jump
// across ledges, stomp enemies and reach the flagpole.
//
// Usage:
//
//	platformer play            - Play a session
//	platformer menu            - Title screen with difficulty picker and scores
//	platformer serve           - Start SSH server for remote play
//	platformer scores          - Show high scores and recent runs
//	platformer config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set seed passed to the game
//	--db <path>        - Set database path (default: ~/.platformer/scores.db)
//	--config <path>    - Load game config from a YAML or TOML file
//	--log-file <path>  - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - a side-scroller in your terminal",
	Long: `Platformer is a side-scrolling jump-and-run for the terminal.

Run right, jump across the ledges, stomp the patrolling enemies and touch
the flagpole as high as you can. Three lives; falling off the map or
walking into an enemy costs one.

Available commands:
  play     - Play a session directly
  menu     - Title screen with difficulty picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  config   - Print the effective configuration

Examples:
  platformer play
  platformer play --difficulty easy
  platformer menu
  platformer serve --ssh :2222
  platformer config --format toml`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		platformer.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed passed to the game (0 = based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger returns a debug logger writing to --log-file, or a discarding
// logger when no file was given. The returned closer is never nil.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	return logger, f, nil
}
