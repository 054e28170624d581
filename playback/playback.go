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

package playback

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/ir"
	"github.com/docjoy/docjoy/logger"
	"github.com/docjoy/docjoy/mapping"
	"github.com/docjoy/docjoy/paths"
)

// DefaultProgressInterval is the number of inputs between progress messages.
const DefaultProgressInterval = 100

// Options for the Generate() function.
type Options struct {
	// directory the artifacts are written to. the current directory if empty
	OutputDir string

	// the default filenames in the paths package are used if empty
	TapeFilename   string
	ScriptFilename string

	ProgressInterval int
}

// DefaultOptions returns the Options used when nothing is specified.
func DefaultOptions() Options {
	return Options{
		ProgressInterval: DefaultProgressInterval,
	}
}

// Artifacts are the paths of the files written by Generate().
type Artifacts struct {
	TapePath   string
	ScriptPath string
}

func (art Artifacts) String() string {
	return fmt.Sprintf("%s, %s", art.TapePath, art.ScriptPath)
}

// Generate writes the tape and the playback script for the sequence. Either
// both files are written or neither is.
func Generate(seq *ir.Sequence, docName string, opts Options) (Artifacts, error) {
	if seq == nil || len(seq.Events) == 0 {
		return Artifacts{}, curated.Errorf("playback: %v", curated.Errorf(curated.EmptyTapeError,
			"the input sequence has no events"))
	}

	if opts.ProgressInterval < 1 {
		return Artifacts{}, curated.Errorf("playback: %v", curated.Errorf(curated.ConfigurationError,
			fmt.Sprintf("progress interval must be at least one (%d)", opts.ProgressInterval)))
	}
	if seq.HoldFrames < 1 || seq.FrameRate < 1 {
		return Artifacts{}, curated.Errorf("playback: %v", curated.Errorf(curated.ConfigurationError,
			fmt.Sprintf("invalid timing (%d frames at %d fps)", seq.HoldFrames, seq.FrameRate)))
	}

	tab, err := mapping.ForSystem(string(seq.System))
	if err != nil {
		return Artifacts{}, curated.Errorf("playback: %v", err)
	}

	docName = tidyName(docName)
	if docName == "" {
		return Artifacts{}, curated.Errorf("playback: %v", curated.Errorf(curated.TemplateError,
			"no document name"))
	}

	res, err := paths.Resolve(opts.OutputDir, seq.Source, paths.Names{
		Tape:   opts.TapeFilename,
		Script: opts.ScriptFilename,
	})
	if err != nil {
		return Artifacts{}, curated.Errorf("playback: %v", err)
	}

	for _, ev := range seq.Events {
		if !tab.Valid(ev.Token) {
			return Artifacts{}, curated.Errorf("playback: %v", curated.Errorf(curated.ConfigurationError,
				fmt.Sprintf("%s is not a %s input", ev.Token, seq.System)))
		}
	}

	tape, err := paths.Stage(res.Tape)
	if err != nil {
		return Artifacts{}, curated.Errorf("playback: %v", err)
	}
	defer tape.Discard()

	scr, err := paths.Stage(res.Script)
	if err != nil {
		return Artifacts{}, curated.Errorf("playback: %v", err)
	}
	defer scr.Discard()

	err = WriteTape(tape, seq)
	if err != nil {
		return Artifacts{}, curated.Errorf("playback: %v", err)
	}

	// the script refers to the tape by filename only. the two files are
	// always in the same directory
	err = writeScript(scr, tab, seq, docName, filepath.Base(res.Tape), opts.ProgressInterval)
	if err != nil {
		return Artifacts{}, curated.Errorf("playback: %v", err)
	}

	err = tape.Close()
	if err != nil {
		return Artifacts{}, curated.Errorf("playback: %v", err)
	}
	err = scr.Close()
	if err != nil {
		return Artifacts{}, curated.Errorf("playback: %v", err)
	}

	err = tape.Commit()
	if err != nil {
		return Artifacts{}, curated.Errorf("playback: %v", err)
	}
	err = scr.Commit()
	if err != nil {
		_ = os.Remove(res.Tape)
		return Artifacts{}, curated.Errorf("playback: %v", err)
	}

	logger.Logf(logger.Allow, "playback", "%q: %d inputs written to %s", docName, len(seq.Events), res.Tape)
	logger.Logf(logger.Allow, "playback", "%q: script written to %s", docName, res.Script)

	return Artifacts{
		TapePath:   res.Tape,
		ScriptPath: res.Script,
	}, nil
}

// WriteTape writes the tokens of the sequence to io.Writer, one token per
// line.
func WriteTape(output io.Writer, seq *ir.Sequence) error {
	w := bufio.NewWriter(output)
	for _, ev := range seq.Events {
		_, err := w.WriteString(string(ev.Token))
		if err != nil {
			return err
		}
		err = w.WriteByte('\n')
		if err != nil {
			return err
		}
	}
	return w.Flush()
}
