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

package luahost

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/digest"
	"github.com/docjoy/docjoy/ir"
	"github.com/docjoy/docjoy/logger"
)

// Run the playback script until it unregisters its frame callback or until
// maxFrames frames have been run. Files opened by the script are found
// relative to the script's directory.
//
// An error is returned if the script fails. Reaching the frame limit is not an
// error: the Completed field of the Report will be false.
func Run(scriptPath string, maxFrames int) (*Report, error) {
	if maxFrames < 1 {
		return nil, curated.Errorf("luahost: %v", curated.Errorf(curated.ConfigurationError,
			fmt.Sprintf("frame limit must be at least one (%d)", maxFrames)))
	}

	if _, err := os.Stat(scriptPath); err != nil {
		return nil, curated.Errorf("luahost: %v", curated.Errorf(curated.IOError, scriptPath, err))
	}

	rep := &Report{
		Script: scriptPath,
	}

	h, err := newHost(filepath.Dir(scriptPath), rep)
	if err != nil {
		return nil, err
	}
	defer h.close()

	// the body of the script is run once. a playback script reads the tape
	// and registers its frame callback at this point
	err = h.L.DoFile(scriptPath)
	if err != nil {
		return nil, curated.Errorf("luahost: %v", scriptError(err))
	}

	if h.callback == nil {
		return nil, curated.Errorf("luahost: %v", curated.Errorf(curated.ScriptError,
			"no frame callback registered"))
	}

	for h.callback != nil && rep.Frames < maxFrames {
		pressed, err := h.frame()
		if err != nil {
			return nil, curated.Errorf("luahost: %v", err)
		}
		rep.Frames++

		// the frame in which the callback unregisters itself releases the
		// buttons. it is not part of the tape
		if h.callback != nil {
			rep.push(pressed)
		}
	}

	rep.Completed = h.callback == nil
	rep.State = h.state()

	logger.Logf(logger.Allow, "luahost", "%s", rep)

	return rep, nil
}

// Verify runs the playback script and checks that the inputs it makes are
// the inputs of the sequence. The frame limit is the expected number of
// frames plus a small margin.
func Verify(seq *ir.Sequence, scriptPath string) (*Report, error) {
	if seq == nil || len(seq.Events) == 0 {
		return nil, curated.Errorf("luahost: %v", curated.Errorf(curated.EmptyTapeError,
			"nothing to verify"))
	}

	expected := len(seq.Events) * seq.HoldFrames
	rep, err := Run(scriptPath, expected+seq.HoldFrames+1)
	if err != nil {
		return nil, err
	}

	if !rep.Completed {
		return rep, curated.Errorf("luahost: %v", curated.Errorf(curated.ScriptError,
			fmt.Sprintf("script did not complete in %d frames", rep.Frames)))
	}
	if rep.State != "completed" {
		return rep, curated.Errorf("luahost: %v", curated.Errorf(curated.ScriptError,
			fmt.Sprintf("script ended in the %s state", rep.State)))
	}
	if len(rep.Pressed) != expected {
		return rep, curated.Errorf("luahost: %v", curated.Errorf(curated.ScriptError,
			fmt.Sprintf("script played for %d frames, expected %d", len(rep.Pressed), expected)))
	}

	tape, err := rep.Tape(seq.HoldFrames)
	if err != nil {
		return rep, err
	}
	if len(tape) != len(seq.Events) {
		return rep, curated.Errorf("luahost: %v", curated.Errorf(curated.ScriptError,
			fmt.Sprintf("script made %d inputs, expected %d", len(tape), len(seq.Events))))
	}
	if digest.Tokens(tape) != seq.Stats.Digest {
		return rep, curated.Errorf("luahost: %v", curated.Errorf(curated.ScriptError,
			"inputs made by the script do not match the sequence"))
	}

	logger.Logf(logger.Allow, "luahost", "%s: verified %d inputs", scriptPath, len(tape))

	return rep, nil
}
