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

// Package sequencer walks normalised text and produces the timed input
// events of the intermediate representation.
//
// Timing is uniform. Every event is held for the same number of frames
// regardless of the character it came from, so the same text always produces
// the same sequence.
package sequencer

import (
	"fmt"

	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/digest"
	"github.com/docjoy/docjoy/ir"
	"github.com/docjoy/docjoy/logger"
	"github.com/docjoy/docjoy/mapping"
	"github.com/docjoy/docjoy/normalize"
)

// Default timing. Nine frames at sixty frames per second is 150ms per input.
const (
	DefaultHoldFrames = 9
	DefaultFrameRate  = 60
)

// Options for the Sequence() function.
type Options struct {
	HoldFrames int
	FrameRate  int

	// metadata copied to the sequence
	Document string
	Source   string
}

// DefaultOptions returns Options with the default timing and no metadata.
func DefaultOptions() Options {
	return Options{
		HoldFrames: DefaultHoldFrames,
		FrameRate:  DefaultFrameRate,
	}
}

// Sequence creates the input sequence for the normalised text. The text must
// have been normalised with the same table.
func Sequence(table *mapping.Table, text normalize.Text, opts Options) (*ir.Sequence, error) {
	if opts.HoldFrames < 1 {
		return nil, curated.Errorf("sequencer: %v", curated.Errorf(curated.ConfigurationError,
			fmt.Sprintf("hold frames must be at least one (%d)", opts.HoldFrames)))
	}
	if opts.FrameRate < 1 {
		return nil, curated.Errorf("sequencer: %v", curated.Errorf(curated.ConfigurationError,
			fmt.Sprintf("frame rate must be at least one (%d)", opts.FrameRate)))
	}

	if text.Len() == 0 {
		return nil, curated.Errorf("sequencer: %v", curated.Errorf(curated.EmptyInputError,
			fmt.Sprintf("no characters left after normalisation (%d skipped)", text.Skipped)))
	}

	seq := &ir.Sequence{
		System:     table.System(),
		Document:   opts.Document,
		Source:     opts.Source,
		FrameRate:  opts.FrameRate,
		HoldFrames: opts.HoldFrames,
		Events:     make([]ir.Event, 0, text.Len()),
		Stats: ir.Stats{
			Policy:      text.Policy.String(),
			Skipped:     text.Skipped,
			Substituted: text.Substituted,
			Tokens:      make(map[mapping.Token]int),
		},
	}

	dig := digest.NewTape()

	for i, c := range text.Chars {
		tok, ok := table.Lookup(c)
		if !ok {
			return nil, curated.Errorf("sequencer: %v", curated.Errorf(curated.ConfigurationError,
				fmt.Sprintf("character %q at position %d is not in the %s table", c, i, table.System())))
		}

		seq.Events = append(seq.Events, ir.Event{
			Position:   i,
			Token:      tok,
			HoldFrames: opts.HoldFrames,
		})

		seq.Stats.Tokens[tok]++
		dig.Push(string(tok))
	}

	seq.Stats.Inputs = len(seq.Events)
	seq.Stats.EstimatedSeconds = ir.EstimateSeconds(seq.Stats.Inputs, opts.HoldFrames, opts.FrameRate)
	seq.Stats.Digest = dig.Hash()

	logger.Logf(logger.Allow, "sequencer", "%d inputs for %s, %d skipped, %d substituted (%.2fs)",
		seq.Stats.Inputs, table.System(), seq.Stats.Skipped, seq.Stats.Substituted, seq.Stats.EstimatedSeconds)

	return seq, nil
}
