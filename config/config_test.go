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

package config_test

import (
	"testing"

	"github.com/docjoy/docjoy/config"
	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/mapping"
	"github.com/docjoy/docjoy/normalize"
	"github.com/docjoy/docjoy/test"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cfg.Validate())

	test.ExpectEquality(t, cfg.System, "ds")
	test.ExpectEquality(t, cfg.Policy, "drop")
	test.ExpectEquality(t, cfg.HoldFrames, 9)
	test.ExpectEquality(t, cfg.FrameRate, 60)
	test.ExpectEquality(t, cfg.ProgressInterval, 100)
	test.ExpectEquality(t, cfg.OutputDir, ".")
	test.ExpectEquality(t, cfg.TapeFilename, "")

	tab, err := cfg.Table()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.System(), mapping.DS)

	p, err := cfg.NormalizePolicy()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, normalize.Drop)

	test.ExpectEquality(t, cfg.Sequencer().HoldFrames, 9)
	test.ExpectEquality(t, cfg.Playback().ProgressInterval, 100)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("DOCJOY_SYSTEM", "gb")
	t.Setenv("DOCJOY_POLICY", "substitute")
	t.Setenv("DOCJOY_HOLD_FRAMES", "6")
	t.Setenv("DOCJOY_FRAME_RATE", "30")
	t.Setenv("DOCJOY_PROGRESS_INTERVAL", "50")
	t.Setenv("DOCJOY_OUTPUT_DIR", "out")
	t.Setenv("DOCJOY_TAPE_FILENAME", "tape.txt")
	t.Setenv("DOCJOY_SCRIPT_FILENAME", "player.lua")
	t.Setenv("DOCJOY_IR_FILENAME", "inputs.json")

	cfg, err := config.Load()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cfg.Validate())

	test.ExpectEquality(t, cfg.System, "gb")
	test.ExpectEquality(t, cfg.Policy, "substitute")
	test.ExpectEquality(t, cfg.Sequencer().HoldFrames, 6)
	test.ExpectEquality(t, cfg.Sequencer().FrameRate, 30)

	pb := cfg.Playback()
	test.ExpectEquality(t, pb.OutputDir, "out")
	test.ExpectEquality(t, pb.TapeFilename, "tape.txt")
	test.ExpectEquality(t, pb.ScriptFilename, "player.lua")
	test.ExpectEquality(t, pb.ProgressInterval, 50)

	n := cfg.Names()
	test.ExpectEquality(t, n.IR, "inputs.json")
}

func TestBadEnvironment(t *testing.T) {
	t.Setenv("DOCJOY_HOLD_FRAMES", "nine")

	_, err := config.Load()
	test.ExpectSuccess(t, curated.Has(err, curated.ConfigurationError))
}

func TestValidate(t *testing.T) {
	good, err := config.Load()
	test.DemandSuccess(t, err)

	for _, brk := range []func(cfg *config.Config){
		func(cfg *config.Config) { cfg.System = "n64" },
		func(cfg *config.Config) { cfg.Policy = "ignore" },
		func(cfg *config.Config) { cfg.HoldFrames = 0 },
		func(cfg *config.Config) { cfg.FrameRate = -1 },
		func(cfg *config.Config) { cfg.ProgressInterval = 0 },
		func(cfg *config.Config) { cfg.TapeFilename = "sub/tape.txt" },
		func(cfg *config.Config) { cfg.TapeFilename = "x"; cfg.ScriptFilename = "x" },
	} {
		cfg := good
		brk(&cfg)
		test.ExpectSuccess(t, curated.Has(cfg.Validate(), curated.ConfigurationError), cfg)
	}
}
