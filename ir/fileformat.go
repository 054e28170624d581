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
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/digest"
	"github.com/docjoy/docjoy/logger"
	"github.com/docjoy/docjoy/mapping"
	"github.com/docjoy/docjoy/paths"
	"github.com/tidwall/gjson"
)

// intermediate file header
// ------------------------
//
// the file is a single JSON object. the first two fields identify the file
// and the version of the format. the remaining fields are the fields of the
// Sequence type
//
//	{
//	  "format": "docjoy-ir",
//	  "version": 1,
//	  "system": "ds",
//	  ...
//	}
const (
	formatID      = "docjoy-ir"
	formatVersion = 1
)

type file struct {
	Format  string `json:"format"`
	Version int    `json:"version"`
	Sequence
}

// the fields that must be present and the kind of value they must have.
// checked before the document is decoded so that a missing field is reported
// as missing rather than silently decoded as a zero value
var requiredFields = []struct {
	path string
	kind gjson.Type
}{
	{"format", gjson.String},
	{"version", gjson.Number},
	{"system", gjson.String},
	{"document", gjson.String},
	{"source", gjson.String},
	{"frameRate", gjson.Number},
	{"holdFrames", gjson.Number},
	{"stats.inputs", gjson.Number},
	{"stats.policy", gjson.String},
	{"stats.skipped", gjson.Number},
	{"stats.substituted", gjson.Number},
	{"stats.estimatedSeconds", gjson.Number},
	{"stats.digest", gjson.String},
}

var requiredEventFields = []struct {
	path string
	kind gjson.Type
}{
	{"position", gjson.Number},
	{"token", gjson.String},
	{"holdFrames", gjson.Number},
}

// Save the sequence to the named file. The file is written in its entirety or
// not at all.
func Save(seq *Sequence, filename string) error {
	f := file{
		Format:   formatID,
		Version:  formatVersion,
		Sequence: *seq,
	}

	// an empty list of events must still be written as a list
	if f.Events == nil {
		f.Events = []Event{}
	}
	if f.Stats.Tokens == nil {
		f.Stats.Tokens = map[mapping.Token]int{}
	}

	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return curated.Errorf("ir: %v", err)
	}
	b = append(b, '\n')

	err = paths.WriteFile(filename, b)
	if err != nil {
		return curated.Errorf("ir: %v", err)
	}

	logger.Logf(logger.Allow, "ir", "saved %d events to %s", len(seq.Events), filename)

	return nil
}

func formatError(detail string, args ...any) error {
	return curated.Errorf("ir: %v", curated.Errorf(curated.FormatError, fmt.Sprintf(detail, args...)))
}

// Load a sequence from the named file. The sequence is validated in full and
// no sequence is returned if there is any problem with the file.
func Load(filename string) (*Sequence, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("ir: %v", curated.Errorf(curated.IOError, filename, err))
	}

	err = validateFields(b)
	if err != nil {
		return nil, err
	}

	var f file
	dec := json.NewDecoder(bytes.NewReader(b))
	err = dec.Decode(&f)
	if err != nil {
		return nil, formatError("%s: %v", filename, err)
	}

	if f.Format != formatID {
		return nil, formatError("%s: not an intermediate file (%s)", filename, f.Format)
	}
	if f.Version != formatVersion {
		return nil, formatError("%s: unsupported version (%d)", filename, f.Version)
	}

	seq := f.Sequence
	err = validate(&seq)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "ir", "loaded %d events from %s", len(seq.Events), filename)

	return &seq, nil
}

func validateFields(b []byte) error {
	if !gjson.ValidBytes(b) {
		return formatError("malformed JSON")
	}

	doc := gjson.ParseBytes(b)
	if !doc.IsObject() {
		return formatError("not a JSON object")
	}

	for _, f := range requiredFields {
		r := doc.Get(f.path)
		if !r.Exists() {
			return formatError("missing field (%s)", f.path)
		}
		if r.Type != f.kind {
			return formatError("field %s should be a %s", f.path, f.kind)
		}
	}

	if !doc.Get("stats.tokens").IsObject() {
		return formatError("missing field (stats.tokens)")
	}

	events := doc.Get("events")
	if !events.IsArray() {
		return formatError("missing field (events)")
	}

	var err error
	events.ForEach(func(key, ev gjson.Result) bool {
		if !ev.IsObject() {
			err = formatError("event %d is not an object", key.Int())
			return false
		}
		for _, f := range requiredEventFields {
			r := ev.Get(f.path)
			if !r.Exists() {
				err = formatError("event %d: missing field (%s)", key.Int(), f.path)
				return false
			}
			if r.Type != f.kind {
				err = formatError("event %d: field %s should be a %s", key.Int(), f.path, f.kind)
				return false
			}
		}
		return true
	})

	return err
}

// validate checks the invariants of a decoded sequence
func validate(seq *Sequence) error {
	// the system tag must be written exactly as it is in the mapping package
	if !slices.Contains(mapping.Systems, seq.System) {
		return formatError("unknown system (%s)", seq.System)
	}

	tab, err := mapping.ForSystem(string(seq.System))
	if err != nil {
		return formatError("unknown system (%s)", seq.System)
	}

	if seq.FrameRate < 1 {
		return formatError("frame rate must be positive (%d)", seq.FrameRate)
	}
	if seq.HoldFrames < 1 {
		return formatError("hold frames must be positive (%d)", seq.HoldFrames)
	}

	dig := digest.NewTape()
	tokens := make(map[mapping.Token]int)

	for i, ev := range seq.Events {
		if ev.Position != i {
			return formatError("event %d has position %d: positions must be contiguous from zero", i, ev.Position)
		}
		if !tab.Valid(ev.Token) {
			return formatError("event %d: %s is not a %s input", i, ev.Token, seq.System)
		}
		if ev.HoldFrames != seq.HoldFrames {
			return formatError("event %d: hold frames (%d) differs from sequence (%d)", i, ev.HoldFrames, seq.HoldFrames)
		}
		dig.Push(string(ev.Token))
		tokens[ev.Token]++
	}

	if seq.Stats.Inputs != len(seq.Events) {
		return formatError("stats: inputs (%d) does not match number of events (%d)", seq.Stats.Inputs, len(seq.Events))
	}

	if len(tokens) != len(seq.Stats.Tokens) {
		return formatError("stats: token counts do not match events")
	}
	for tok, n := range tokens {
		if seq.Stats.Tokens[tok] != n {
			return formatError("stats: count for %s (%d) does not match events (%d)", tok, seq.Stats.Tokens[tok], n)
		}
	}

	est := EstimateSeconds(len(seq.Events), seq.HoldFrames, seq.FrameRate)
	if math.Abs(est-seq.Stats.EstimatedSeconds) > 1e-9 {
		return formatError("stats: estimated seconds (%v) does not match events (%v)", seq.Stats.EstimatedSeconds, est)
	}

	if seq.Stats.Digest != dig.Hash() {
		return formatError("stats: digest does not match events")
	}

	return nil
}
