package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/netplay"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagBind    string
	flagConnect string
)

var duelCmd = &cobra.Command{
	Use:   "duel",
	Short: "Play head to head over the network",
	Long: `Versus mode for exactly two players.

One player hosts, the other joins. Each peer runs its own simulation
and mirrors the opponent from committed placements, so play stays
smooth on a laggy link. Line clears send garbage both ways; the first
well to fill up loses.

Examples:
  tetris duel host
  tetris duel host --bind :12000
  tetris duel join --connect 192.168.1.7:12000`,
}

var duelHostCmd = &cobra.Command{
	Use:   "host",
	Short: "Host a session and wait for an opponent",
	Args:  cobra.NoArgs,
	Run:   runDuelHost,
}

var duelJoinCmd = &cobra.Command{
	Use:   "join",
	Short: "Join a hosted session",
	Args:  cobra.NoArgs,
	Run:   runDuelJoin,
}

func init() {
	duelHostCmd.Flags().StringVar(&flagBind, "bind", "", "Listen address (default from config, :12000)")
	duelJoinCmd.Flags().StringVar(&flagConnect, "connect", "", "Host address (default from config, 127.0.0.1:12000)")

	duelCmd.AddCommand(duelHostCmd)
	duelCmd.AddCommand(duelJoinCmd)
}

func runDuelHost(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	bind := flagBind
	if bind == "" {
		bind = cfg.Netplay.Bind
	}

	logger := sessionLogger()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Waiting for an opponent on %s...\n", bind)
	ln, err := netplay.Listen(ctx, bind, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	conn, err := ln.Accept(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The host deals both bags and opens with the seed frame.
	seeds := netplay.Seeds{
		HostSeed:  rand.Uint64(),
		GuestSeed: rand.Uint64(),
	}
	if err := conn.SendSeeds(seeds); err != nil {
		conn.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Opponent connected from %s\n", conn.RemoteAddr())

	cancel() // hand signal handling back before the TUI takes over
	runDuel(cfg, logger, conn, seeds.HostSeed, seeds.GuestSeed)
}

func runDuelJoin(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	addr := flagConnect
	if addr == "" {
		addr = cfg.Netplay.Connect
	}

	logger := sessionLogger()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Connecting to %s...\n", addr)
	conn, err := netplay.Join(ctx, addr, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	seeds, err := conn.AwaitSeeds(ctx)
	if err != nil {
		conn.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Connected to %s\n", conn.RemoteAddr())

	cancel()
	runDuel(cfg, logger, conn, seeds.GuestSeed, seeds.HostSeed)
}

// runDuel starts the versus TUI over an established connection. The
// local player deals from localSeed and the opponent mirror from
// remoteSeed; the engine closes the connection when the session ends.
func runDuel(cfg config.Config, logger *log.Logger, conn *netplay.Conn, localSeed, remoteSeed uint64) {
	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.MaxFrameRate,
	}

	eng := engine.New(engine.Config{
		Caps:       engine.Caps{Remote: true},
		StartLevel: cfg.Gameplay.StartLevel,
		LocalSeed:  localSeed,
		RemoteSeed: remoteSeed,
		Conn:       conn,
		FrameRate:  rc.TickRate,
		Logger:     logger,
	})

	err := tui.Run(eng, cfg, tui.ModelOptions{
		Runtime: rc,
		Party:   cfg.Display.Party,
		Debug:   cfg.Display.DisplayFrameRate,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
