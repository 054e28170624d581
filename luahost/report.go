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
	"strings"

	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/mapping"
	"github.com/docjoy/docjoy/playback"
)

// keySep joins the keys of a frame in which more than one button is asserted
const keySep = "+"

// Run is a number of consecutive frames with the same buttons asserted. Key
// is empty if no buttons were asserted.
type Run struct {
	Key    string
	Frames int
}

func (r Run) String() string {
	k := r.Key
	if k == "" {
		k = "none"
	}
	return fmt.Sprintf("%s x%d", k, r.Frames)
}

// Report is the result of running a playback script.
type Report struct {
	Script string

	// number of frames the callback was run for. this includes the frame in
	// which the script unregistered its callback
	Frames int

	// buttons asserted on each frame that the callback remained registered.
	// the keys of a frame are sorted and joined with a '+'
	Pressed []string

	// Pressed grouped into runs of the same buttons
	Runs []Run

	// lines printed by the script
	Output []string

	// the most recent gui.text() message
	Overlay string

	// value of player.state when the run ended
	State string

	// the script unregistered its callback before the frame limit
	Completed bool
}

func (rep *Report) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %d frames, %d runs, state %s", rep.Script, rep.Frames, len(rep.Runs), rep.State))
	if !rep.Completed {
		s.WriteString(" (incomplete)")
	}
	return s.String()
}

func (rep *Report) push(pressed []string) {
	k := strings.Join(pressed, keySep)
	rep.Pressed = append(rep.Pressed, k)

	if n := len(rep.Runs); n > 0 && rep.Runs[n-1].Key == k {
		rep.Runs[n-1].Frames++
		return
	}
	rep.Runs = append(rep.Runs, Run{Key: k, Frames: 1})
}

// the token for each joypad key
var keyTokens map[string]mapping.Token

func init() {
	keyTokens = make(map[string]mapping.Token)
	for _, sys := range mapping.Systems {
		tab, _ := mapping.ForSystem(string(sys))
		for _, tok := range tab.Buttons() {
			if k, ok := playback.JoypadKey(tok); ok {
				keyTokens[k] = tok
			}
		}
	}
}

// Tape reconstructs the tape from the runs in the report. Every run must be
// a whole number of holds and no more than one button may be asserted on a
// single frame.
func (rep *Report) Tape(holdFrames int) ([]mapping.Token, error) {
	if holdFrames < 1 {
		return nil, curated.Errorf("luahost: %v", curated.Errorf(curated.ConfigurationError,
			fmt.Sprintf("hold frames must be at least one (%d)", holdFrames)))
	}

	var tape []mapping.Token

	for i, r := range rep.Runs {
		if r.Frames%holdFrames != 0 {
			return nil, curated.Errorf("luahost: %v", curated.Errorf(curated.ScriptError,
				fmt.Sprintf("run %d (%s) is not a multiple of %d frames", i, r, holdFrames)))
		}

		tok := mapping.NoInput
		if r.Key != "" {
			var ok bool
			tok, ok = keyTokens[r.Key]
			if !ok {
				return nil, curated.Errorf("luahost: %v", curated.Errorf(curated.ScriptError,
					fmt.Sprintf("run %d (%s) does not correspond to an input", i, r)))
			}
		}

		for j := 0; j < r.Frames/holdFrames; j++ {
			tape = append(tape, tok)
		}
	}

	return tape, nil
}
