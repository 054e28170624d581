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

package ir

import (
	"fmt"
	"time"

	"github.com/docjoy/docjoy/mapping"
)

// Event is a single timed input. The Position is the index of the normalised
// character the event was created from.
type Event struct {
	Position   int           `json:"position"`
	Token      mapping.Token `json:"token"`
	HoldFrames int           `json:"holdFrames"`
}

func (ev Event) String() string {
	return fmt.Sprintf("%d: %s (%d frames)", ev.Position, ev.Token, ev.HoldFrames)
}

// Stats summarises a Sequence.
type Stats struct {
	// number of events
	Inputs int `json:"inputs"`

	// outcome of the normalisation fallback policy
	Policy      string `json:"policy"`
	Skipped     int    `json:"skipped"`
	Substituted int    `json:"substituted"`

	// number of events for each token
	Tokens map[mapping.Token]int `json:"tokens"`

	// playback time if every event is held for the full duration
	EstimatedSeconds float64 `json:"estimatedSeconds"`

	// chained hash of the tape. see the digest package
	Digest string `json:"digest"`
}

// Sequence is the intermediate representation of a document. It is the
// hand-off between sequencing and playback script generation.
//
// A Sequence is owned by the run that created or loaded it and is not
// modified once created.
type Sequence struct {
	System   mapping.System `json:"system"`
	Document string         `json:"document"`
	Source   string         `json:"source"`

	FrameRate  int `json:"frameRate"`
	HoldFrames int `json:"holdFrames"`

	Events []Event `json:"events"`
	Stats  Stats   `json:"stats"`
}

func (seq *Sequence) String() string {
	return fmt.Sprintf("%s: %d inputs (%s)", seq.System, len(seq.Events), seq.Duration())
}

// Tape returns the tokens of the sequence in order.
func (seq *Sequence) Tape() []mapping.Token {
	tape := make([]mapping.Token, len(seq.Events))
	for i, ev := range seq.Events {
		tape[i] = ev.Token
	}
	return tape
}

// Duration returns the estimated playback time as a time.Duration.
func (seq *Sequence) Duration() time.Duration {
	return time.Duration(seq.Stats.EstimatedSeconds * float64(time.Second))
}

// EstimateSeconds returns the playback time of a number of inputs held for
// holdFrames each at the frame rate.
func EstimateSeconds(inputs int, holdFrames int, frameRate int) float64 {
	if frameRate <= 0 {
		return 0
	}
	return float64(inputs*holdFrames) / float64(frameRate)
}
