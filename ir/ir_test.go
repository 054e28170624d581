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

package ir_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/digest"
	"github.com/docjoy/docjoy/ir"
	"github.com/docjoy/docjoy/mapping"
	"github.com/docjoy/docjoy/test"
)

func hello() *ir.Sequence {
	tape := []mapping.Token{mapping.Select, mapping.A, mapping.Down, mapping.Down, mapping.A}

	seq := &ir.Sequence{
		System:     mapping.DS,
		Document:   "Hello",
		Source:     "hello.txt",
		FrameRate:  60,
		HoldFrames: 9,
		Stats: ir.Stats{
			Inputs: len(tape),
			Policy: "drop",
			Tokens: map[mapping.Token]int{
				mapping.Select: 1,
				mapping.A:      2,
				mapping.Down:   2,
			},
			EstimatedSeconds: ir.EstimateSeconds(len(tape), 9, 60),
			Digest:           digest.Tokens(tape),
		},
	}

	for i, tok := range tape {
		seq.Events = append(seq.Events, ir.Event{Position: i, Token: tok, HoldFrames: 9})
	}

	return seq
}

func TestRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hello_inputs.json")

	seq := hello()
	test.DemandSuccess(t, ir.Save(seq, fn))

	ld, err := ir.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, reflect.DeepEqual(seq, ld))
	test.ExpectEquality(t, ld.Duration().Milliseconds(), int64(750))
	test.ExpectEquality(t, len(ld.Tape()), 5)
}

func TestEmptyEvents(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty_inputs.json")

	seq := &ir.Sequence{
		System:     mapping.GB,
		FrameRate:  60,
		HoldFrames: 9,
		Stats: ir.Stats{
			Policy: "drop",
			Digest: digest.Tokens([]mapping.Token{}),
		},
	}
	test.DemandSuccess(t, ir.Save(seq, fn))

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), `"events": []`))

	ld, err := ir.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(ld.Events), 0)
}

// save a sequence after letting the test break it, and check that loading
// fails with a format error
func expectBrokenSequence(t *testing.T, tag string, brk func(seq *ir.Sequence)) {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "broken.json")
	seq := hello()
	brk(seq)
	test.DemandSuccess(t, ir.Save(seq, fn))

	ld, err := ir.Load(fn)
	test.ExpectSuccess(t, curated.Has(err, curated.FormatError), tag)
	test.ExpectSuccess(t, ld == nil, tag)
}

func TestInvalidSequence(t *testing.T) {
	expectBrokenSequence(t, "gap in positions", func(seq *ir.Sequence) {
		seq.Events[3].Position = 4
		seq.Events[4].Position = 5
	})

	expectBrokenSequence(t, "positions not from zero", func(seq *ir.Sequence) {
		for i := range seq.Events {
			seq.Events[i].Position++
		}
	})

	expectBrokenSequence(t, "unknown system", func(seq *ir.Sequence) {
		seq.System = "n64"
	})

	expectBrokenSequence(t, "upper case system", func(seq *ir.Sequence) {
		seq.System = "DS"
	})

	expectBrokenSequence(t, "padded system", func(seq *ir.Sequence) {
		seq.System = " ds "
	})

	expectBrokenSequence(t, "token not on system", func(seq *ir.Sequence) {
		seq.System = mapping.GB
		seq.Events[0].Token = mapping.X
		seq.Stats.Tokens = map[mapping.Token]int{mapping.X: 1, mapping.A: 2, mapping.Down: 2}
	})

	expectBrokenSequence(t, "unknown token", func(seq *ir.Sequence) {
		seq.Events[0].Token = "TURBO"
	})

	expectBrokenSequence(t, "non-uniform hold", func(seq *ir.Sequence) {
		seq.Events[2].HoldFrames = 3
	})

	expectBrokenSequence(t, "zero frame rate", func(seq *ir.Sequence) {
		seq.FrameRate = 0
	})

	expectBrokenSequence(t, "input count", func(seq *ir.Sequence) {
		seq.Stats.Inputs = 6
	})

	expectBrokenSequence(t, "token counts", func(seq *ir.Sequence) {
		seq.Stats.Tokens[mapping.A] = 1
	})

	expectBrokenSequence(t, "estimated seconds", func(seq *ir.Sequence) {
		seq.Stats.EstimatedSeconds = 10
	})

	expectBrokenSequence(t, "digest", func(seq *ir.Sequence) {
		seq.Stats.Digest = "0000"
	})
}

func expectBrokenFile(t *testing.T, tag string, content string) {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "broken.json")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0644))

	ld, err := ir.Load(fn)
	test.ExpectSuccess(t, curated.Has(err, curated.FormatError), tag)
	test.ExpectSuccess(t, ld == nil, tag)
}

func TestInvalidFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "good.json")
	test.DemandSuccess(t, ir.Save(hello(), fn))
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	good := string(b)

	expectBrokenFile(t, "malformed", good[:len(good)/2])
	expectBrokenFile(t, "not an object", "[1, 2, 3]")
	expectBrokenFile(t, "empty", "")
	expectBrokenFile(t, "missing system", strings.Replace(good, `"system"`, `"platform"`, 1))
	expectBrokenFile(t, "missing events", strings.Replace(good, `"events"`, `"inputs_"`, 1))
	expectBrokenFile(t, "missing digest", strings.Replace(good, `"digest"`, `"hash"`, 1))
	expectBrokenFile(t, "wrong format", strings.Replace(good, `"docjoy-ir"`, `"something-else"`, 1))
	expectBrokenFile(t, "wrong version", strings.Replace(good, `"version": 1`, `"version": 99`, 1))
	expectBrokenFile(t, "string hold frames", strings.Replace(good, `"holdFrames": 9`, `"holdFrames": "9"`, 1))
	expectBrokenFile(t, "missing event token", strings.Replace(good, `"token": "SELECT"`, `"button": "SELECT"`, 1))
}

func TestIOError(t *testing.T) {
	dir := t.TempDir()

	_, err := ir.Load(filepath.Join(dir, "missing.json"))
	test.ExpectSuccess(t, curated.Has(err, curated.IOError))

	err = ir.Save(hello(), filepath.Join(dir, "no", "such", "dir", "out.json"))
	test.ExpectSuccess(t, curated.Has(err, curated.IOError))
}

func TestEstimateSeconds(t *testing.T) {
	test.ExpectApproximate(t, ir.EstimateSeconds(5, 9, 60), 0.75, 0.0001)
	test.ExpectApproximate(t, ir.EstimateSeconds(0, 9, 60), 0.0, 0.0001)
	test.ExpectApproximate(t, ir.EstimateSeconds(10, 6, 30), 2.0, 0.0001)
	test.ExpectApproximate(t, ir.EstimateSeconds(10, 6, 0), 0.0, 0.0001)
}
