// tetris is a terminal tetris game with a networked versus mode.
//
// Usage:
//
//	tetris                   - Play a single-player game
//	tetris play              - Same as above
//	tetris duel host         - Host a versus session and wait for a peer
//	tetris duel join         - Join a hosted versus session
//	tetris serve             - Start SSH server for remote play
//	tetris version           - Print the version
//
// Global flags:
//
//	--config <path>    - Explicit config file (default: ~/.tetris/tetris.yaml)
//	--start-level <n>  - Override the configured start level
//	--party            - Gradient borders plus autoplay
//	--debug            - Frame-rate overlay plus logging to ~/.tetris/debug.log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

var (
	// Global flags
	flagConfig     string
	flagStartLevel int
	flagParty      bool
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal, solo or head to head",
	Long: `A falling-block game for the terminal with a two-player versus mode.

Running tetris with no subcommand starts a single-player game.

Available commands:
  play     - Single-player game (the default)
  duel     - Two-player versus over the network
  serve    - Start SSH server for remote play
  version  - Print the version

Examples:
  tetris
  tetris play --start-level 5
  tetris play --party
  tetris duel host --bind :12000
  tetris duel join --connect 192.168.1.7:12000
  tetris serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.tetris/tetris.yaml)")
	rootCmd.PersistentFlags().IntVar(&flagStartLevel, "start-level", 0, "Start level (0 = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagParty, "party", false, "Party mode: gradient borders, autoplay")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show frame rate and log to ~/.tetris/debug.log")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(duelCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the effective config and folds the CLI overrides in.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagStartLevel > 0 {
		cfg.Gameplay.StartLevel = flagStartLevel
	}
	if flagParty {
		cfg.Display.Party = true
	}
	if flagDebug {
		cfg.Display.DisplayFrameRate = true
	}
	return cfg, nil
}

// sessionLogger builds the logger for interactive sessions. The TUI
// owns the terminal, so diagnostics go to a file or nowhere.
func sessionLogger() *log.Logger {
	if !flagDebug {
		return log.New(io.Discard)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard)
	}
	dir := filepath.Join(home, ".tetris")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}

	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	logger.SetLevel(log.DebugLevel)
	return logger
}

// terminalSize reads the terminal dimensions, falling back to the
// defaults when stdout is not a terminal.
func terminalSize() (int, int) {
	def := core.DefaultRuntimeConfig()
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return def.ScreenW, def.ScreenH
	}
	return w, h
}
