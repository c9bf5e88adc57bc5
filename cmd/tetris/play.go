package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single-player game",
	Long: `Start a single-player game in the terminal.

Controls come from the config file; the defaults are:
  Left/Right - Move the falling piece
  Up         - Rotate clockwise
  Z          - Rotate counter-clockwise
  Down       - Soft drop
  Space      - Hard drop
  C          - Hold
  Esc/Q      - Quit

Examples:
  tetris play
  tetris play --start-level 5
  tetris play --party
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := sessionLogger()
	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.MaxFrameRate,
		Seed:     time.Now().UnixNano(),
	}

	seed := rc.Seed
	newEngine := func() *engine.Engine {
		eng := engine.New(engine.Config{
			Caps:       engine.Caps{Agent: cfg.Display.Party},
			StartLevel: cfg.Gameplay.StartLevel,
			LocalSeed:  uint64(seed),
			FrameRate:  rc.TickRate,
			Logger:     logger,
		})
		seed = time.Now().UnixNano() // replays deal a fresh bag
		return eng
	}

	err = tui.Run(newEngine(), cfg, tui.ModelOptions{
		Runtime: rc,
		Party:   cfg.Display.Party,
		Debug:   cfg.Display.DisplayFrameRate,
		Restart: newEngine,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
