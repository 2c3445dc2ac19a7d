// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake
//
// Steer with the arrow keys, quit with Esc. The final score is printed when
// the game ends.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/platform/tui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - play the classic snake game in your terminal",
	Long: `Snake - play the classic snake game in your terminal.

Guide the snake to the food to grow and score 10 points per bite.
Running into a wall or into yourself ends the game.

Controls:
  Arrow keys  - Steer
  Esc         - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runGame(cmd *cobra.Command, _ []string) error {
	if _, _, err := tui.CheckTerminal(os.Stdin, os.Stdout); err != nil {
		return err
	}

	logs := tui.NewDeferredLog(log.WarnLevel)
	defer func() {
		//nolint:errcheck // Best-effort, nothing left to report to
		logs.Flush(os.Stderr)
	}()

	cfg, err := config.LoadSnake()
	if err != nil {
		logs.Logger.Warn("using built-in defaults", "err", err)
	}

	help := tui.DefaultKeyMap().HelpLine(snake.FrameWidth)
	game := snake.New(snake.ThemeFromConfig(cfg, help))

	runtime := core.DefaultConfig()
	runtime.TickPeriod = cfg.TickPeriod()

	state, err := tui.Run(game, runtime, logs.Logger)
	if err != nil {
		return err
	}

	if state.Won {
		fmt.Fprintf(cmd.OutOrStdout(), "You win! Final score: %d\n", state.Score)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Game over! Final score: %d\n", state.Score)
	}
	return nil
}
