// Package config provides YAML-based configuration loading for the
// terminal client: gameplay defaults, display options, key bindings,
// and versus-mode addresses.
package config

import (
	"fmt"
	"strings"
	"unicode"
)

// Config is the full tetris.yaml schema.
type Config struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Display  DisplayConfig  `yaml:"display"`
	Controls ControlsConfig `yaml:"controls"`
	Netplay  NetplayConfig  `yaml:"netplay"`
}

// GameplayConfig defines rule parameters the player may tune.
type GameplayConfig struct {
	StartLevel int `yaml:"start_level"`
}

// DisplayConfig defines presentation parameters.
type DisplayConfig struct {
	MaxFrameRate     int  `yaml:"max_frame_rate"`
	DisplayFrameRate bool `yaml:"display_frame_rate"`
	Party            bool `yaml:"party"`
}

// ControlsConfig defines key bindings. Each value is a comma-separated
// list of key names: the arrow names, "space", "escape", or a single
// character. Letters match case-insensitively.
type ControlsConfig struct {
	MoveRight   string `yaml:"move_right"`
	MoveLeft    string `yaml:"move_left"`
	RotateRight string `yaml:"rotate_right"`
	RotateLeft  string `yaml:"rotate_left"`
	SoftDrop    string `yaml:"soft_drop"`
	HardDrop    string `yaml:"hard_drop"`
	Hold        string `yaml:"hold"`
	Quit        string `yaml:"quit"`
}

// NetplayConfig defines default addresses for versus mode.
type NetplayConfig struct {
	Bind    string `yaml:"bind"`
	Connect string `yaml:"connect"`
}

// ParseKeys expands a comma-separated binding value into Bubble Tea key
// strings. A letter expands to both of its cases.
func ParseKeys(binding string) ([]string, error) {
	var keys []string
	for _, name := range strings.Split(binding, ",") {
		name = strings.TrimSpace(name)
		switch name {
		case "up", "down", "left", "right":
			keys = append(keys, name)
		case "space":
			keys = append(keys, " ")
		case "escape":
			keys = append(keys, "esc")
		case "":
			return nil, fmt.Errorf("empty key name in binding %q", binding)
		default:
			runes := []rune(name)
			if len(runes) > 1 {
				return nil, fmt.Errorf("unknown key name %q", name)
			}
			r := runes[0]
			if unicode.IsLetter(r) {
				keys = append(keys, string(unicode.ToLower(r)), string(unicode.ToUpper(r)))
			} else {
				keys = append(keys, string(r))
			}
		}
	}
	return keys, nil
}
