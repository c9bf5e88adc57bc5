package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Gameplay: GameplayConfig{
			StartLevel: 1,
		},
		Display: DisplayConfig{
			MaxFrameRate:     60,
			DisplayFrameRate: false,
			Party:            false,
		},
		Controls: ControlsConfig{
			MoveRight:   "right",
			MoveLeft:    "left",
			RotateRight: "up",
			RotateLeft:  "z",
			SoftDrop:    "down",
			HardDrop:    "space",
			Hold:        "c",
			Quit:        "escape, q",
		},
		Netplay: NetplayConfig{
			Bind:    ":12000",
			Connect: "127.0.0.1:12000",
		},
	}
}
