// Package config loads the engine's tunable defaults from an optional
// gryphon.toml file, falling back to hardcoded values when the file
// is absent.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Options holds every setting the UCI loop's "setoption" command, or
// a gryphon.toml file in the working directory, can adjust.
type Options struct {
	HashMiB      int `toml:"hash_mib"`
	DefaultDepth int `toml:"default_depth"`
	MoveTimeMS   int `toml:"move_time_ms"`
}

// Defaults returns the hardcoded configuration used when no
// gryphon.toml is present.
func Defaults() Options {
	return Options{
		HashMiB:      64,
		DefaultDepth: 6,
		MoveTimeMS:   5000,
	}
}

// Load reads path and overlays any fields it sets onto the defaults.
// A missing file is not an error: the engine should start with sane
// defaults rather than refuse to run.
func Load(path string) (Options, error) {
	opts := Defaults()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, nil
	}
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}
