// This file is part of docjoy.
//
// docjoy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// docjoy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with docjoy.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the settings for a conversion. Settings are read from
// the environment and can then be overridden by command line flags. The
// environment variables are:
//
//	DOCJOY_SYSTEM              target system (ds or gb)
//	DOCJOY_POLICY              unmapped character policy (drop or substitute)
//	DOCJOY_HOLD_FRAMES         frames each input is held for
//	DOCJOY_FRAME_RATE          frames per second of the target system
//	DOCJOY_PROGRESS_INTERVAL   inputs between progress messages
//	DOCJOY_OUTPUT_DIR          directory for the generated files
//	DOCJOY_TAPE_FILENAME       filename of the tape
//	DOCJOY_SCRIPT_FILENAME     filename of the playback script
//	DOCJOY_IR_FILENAME         filename of the intermediate file
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/mapping"
	"github.com/docjoy/docjoy/normalize"
	"github.com/docjoy/docjoy/paths"
	"github.com/docjoy/docjoy/playback"
	"github.com/docjoy/docjoy/sequencer"
)

// Config for a conversion run.
type Config struct {
	System string `env:"DOCJOY_SYSTEM" envDefault:"ds"`
	Policy string `env:"DOCJOY_POLICY" envDefault:"drop"`

	HoldFrames       int `env:"DOCJOY_HOLD_FRAMES" envDefault:"9"`
	FrameRate        int `env:"DOCJOY_FRAME_RATE" envDefault:"60"`
	ProgressInterval int `env:"DOCJOY_PROGRESS_INTERVAL" envDefault:"100"`

	OutputDir      string `env:"DOCJOY_OUTPUT_DIR" envDefault:"."`
	TapeFilename   string `env:"DOCJOY_TAPE_FILENAME"`
	ScriptFilename string `env:"DOCJOY_SCRIPT_FILENAME"`
	IRFilename     string `env:"DOCJOY_IR_FILENAME"`
}

// Load the configuration from the environment. Variables that are not set
// take the default value.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, curated.Errorf("config: %v", curated.Errorf(curated.ConfigurationError, err))
	}
	return cfg, nil
}

// Validate checks every setting. The first problem found is returned as a
// ConfigurationError.
func (cfg Config) Validate() error {
	if _, err := mapping.ForSystem(cfg.System); err != nil {
		return curated.Errorf("config: %v", err)
	}
	if _, err := normalize.ParsePolicy(cfg.Policy); err != nil {
		return curated.Errorf("config: %v", err)
	}

	for _, v := range []struct {
		name  string
		value int
	}{
		{"hold frames", cfg.HoldFrames},
		{"frame rate", cfg.FrameRate},
		{"progress interval", cfg.ProgressInterval},
	} {
		if v.value < 1 {
			return curated.Errorf("config: %v", curated.Errorf(curated.ConfigurationError,
				fmt.Sprintf("%s must be at least one (%d)", v.name, v.value)))
		}
	}

	if _, err := paths.Resolve(cfg.OutputDir, "", cfg.Names()); err != nil {
		return curated.Errorf("config: %v", err)
	}

	return nil
}

// Names returns the artifact filename overrides.
func (cfg Config) Names() paths.Names {
	return paths.Names{
		IR:     cfg.IRFilename,
		Tape:   cfg.TapeFilename,
		Script: cfg.ScriptFilename,
	}
}

// Table returns the mapping table for the configured system.
func (cfg Config) Table() (*mapping.Table, error) {
	return mapping.ForSystem(cfg.System)
}

// NormalizePolicy returns the configured fallback policy.
func (cfg Config) NormalizePolicy() (normalize.Policy, error) {
	return normalize.ParsePolicy(cfg.Policy)
}

// Sequencer returns the sequencer options for the configuration.
func (cfg Config) Sequencer() sequencer.Options {
	return sequencer.Options{
		HoldFrames: cfg.HoldFrames,
		FrameRate:  cfg.FrameRate,
	}
}

// Playback returns the playback options for the configuration.
func (cfg Config) Playback() playback.Options {
	return playback.Options{
		OutputDir:        cfg.OutputDir,
		TapeFilename:     cfg.TapeFilename,
		ScriptFilename:   cfg.ScriptFilename,
		ProgressInterval: cfg.ProgressInterval,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("%s, %s policy, %d frames at %dfps, output to %s", cfg.System, cfg.Policy, cfg.HoldFrames, cfg.FrameRate, cfg.OutputDir)
}
