// elemental is a TUI arcade platform for Elemental Breakout, a brick
// breaker where the ball carries an element and collisions trigger
// elemental reactions.
//
// Usage:
//
//	elemental list               - List available modes
//	elemental play <mode>        - Play a mode
//	elemental menu               - Start menu to pick modes interactively
//	elemental serve              - Start SSH server for remote play
//	elemental scores <mode>      - Show best runs for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.elemental/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/arcadelab/elemental/internal/games/elemental"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "elemental",
	Short: "Elemental Breakout - elemental brick breaker in your terminal",
	Long: `Elemental Breakout is a terminal brick breaker where the ball picks
up the paddle's element and collisions with bricks trigger elemental
reactions: explosions, chain bursts, freezes, and conversions.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  elemental list
  elemental play elemental
  elemental menu
  elemental serve --ssh :2222
  elemental scores elemental`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.elemental/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
