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

package pipeline_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docjoy/docjoy/config"
	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/digest"
	"github.com/docjoy/docjoy/ir"
	"github.com/docjoy/docjoy/luahost"
	"github.com/docjoy/docjoy/mapping"
	"github.com/docjoy/docjoy/paths"
	"github.com/docjoy/docjoy/pipeline"
	"github.com/docjoy/docjoy/test"
)

// source writes a plain text document to a new temporary directory
func source(t *testing.T, filename string, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), filename)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func options(t *testing.T, src string) pipeline.Options {
	t.Helper()
	cfg, err := config.Load()
	test.DemandSuccess(t, err)
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	return pipeline.Options{
		Config: cfg,
		Source: src,
	}
}

func TestConvert(t *testing.T) {
	opts := options(t, source(t, "hello_world.txt", "HELLO"))

	var summary strings.Builder
	opts.Summary = &summary

	res, err := pipeline.Convert(opts)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, res.Document, "Hello World")
	test.ExpectEquality(t, res.IRPath, filepath.Join(opts.Config.OutputDir, "hello_world_inputs.json"))
	test.ExpectEquality(t, res.TapePath, filepath.Join(opts.Config.OutputDir, paths.DefaultTape))
	test.ExpectEquality(t, res.ScriptPath, filepath.Join(opts.Config.OutputDir, paths.DefaultScript))

	seq := res.Sequence
	test.ExpectEquality(t, digest.Tokens(seq.Tape()),
		digest.Tokens([]mapping.Token{mapping.Select, mapping.A, mapping.Down, mapping.Down, mapping.A}))
	test.ExpectEquality(t, seq.Document, "Hello World")
	test.ExpectEquality(t, seq.Source, "hello_world.txt")
	test.ExpectApproximate(t, seq.Stats.EstimatedSeconds, 0.75, 0.0001)

	tape, err := os.ReadFile(res.TapePath)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(tape), "SELECT\nA\nDOWN\nDOWN\nA\n")

	s := summary.String()
	test.ExpectSuccess(t, strings.Contains(s, "document:    Hello World\n"), s)
	test.ExpectSuccess(t, strings.Contains(s, "inputs:      5\n"), s)
	test.ExpectSuccess(t, strings.Contains(s, "play time:   0:00:01\n"), s)
	test.ExpectSuccess(t, strings.Contains(s, "tokens:      A 2, DOWN 2, SELECT 1\n"), s)
	test.ExpectSuccess(t, strings.Contains(s, res.ScriptPath), s)

	// the generated files play back the sequence
	rep, err := luahost.Verify(seq, res.ScriptPath)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, rep.Completed)
}

func TestHalves(t *testing.T) {
	opts := options(t, source(t, "hello.txt", "Hello, World!"))
	opts.Name = "Greeting"

	first, err := pipeline.Sequence(opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, first.TapePath, "")
	test.ExpectEquality(t, first.ScriptPath, "")

	// nothing but the intermediate file has been written
	d, err := os.ReadDir(opts.Config.OutputDir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 1)

	gen := opts
	gen.Source = first.IRPath
	gen.Name = ""

	second, err := pipeline.Generate(gen)
	test.DemandSuccess(t, err)

	// the name stored in the intermediate file is used
	test.ExpectEquality(t, second.Document, "Greeting")
	test.ExpectEquality(t, second.Sequence.Stats.Digest, first.Sequence.Stats.Digest)

	_, err = luahost.Verify(second.Sequence, second.ScriptPath)
	test.ExpectSuccess(t, err)

	// an explicit name overrides the stored name
	gen.Name = "Salutation"
	third, err := pipeline.Generate(gen)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, third.Document, "Salutation")
}

func TestDeterminism(t *testing.T) {
	src := source(t, "address.txt", "Four score and seven years ago our fathers brought forth on this continent, a new nation.")

	a, err := pipeline.Convert(options(t, src))
	test.DemandSuccess(t, err)
	b, err := pipeline.Convert(options(t, src))
	test.DemandSuccess(t, err)

	test.ExpectInequality(t, a.IRPath, b.IRPath)

	for _, p := range [][2]string{
		{a.IRPath, b.IRPath},
		{a.TapePath, b.TapePath},
		{a.ScriptPath, b.ScriptPath},
	} {
		x, err := os.ReadFile(p[0])
		test.DemandSuccess(t, err)
		y, err := os.ReadFile(p[1])
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, bytes.Equal(x, y), p[0])
	}
}

func TestSkipped(t *testing.T) {
	opts := options(t, source(t, "emoji.txt", "HI😀"))

	var summary strings.Builder
	opts.Summary = &summary

	res, err := pipeline.Convert(opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(res.Sequence.Events), 2)
	test.ExpectEquality(t, res.Sequence.Stats.Skipped, 1)
	test.ExpectSuccess(t, strings.Contains(summary.String(), "skipped:     1 characters (drop policy)"), summary.String())
}

func TestSubstituted(t *testing.T) {
	opts := options(t, source(t, "emoji.txt", "HI😀"))
	opts.Config.System = "gb"
	opts.Config.Policy = "substitute"

	res, err := pipeline.Convert(opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(res.Sequence.Events), 3)
	test.ExpectEquality(t, res.Sequence.Stats.Substituted, 1)
	test.ExpectEquality(t, res.Sequence.Events[2].Token, mapping.NoInput)

	_, err = luahost.Verify(res.Sequence, res.ScriptPath)
	test.ExpectSuccess(t, err)
}

func TestEmptyInput(t *testing.T) {
	for _, content := range []string{"", "😀😀😀"} {
		opts := options(t, source(t, "empty.txt", content))

		_, err := pipeline.Convert(opts)
		test.ExpectSuccess(t, curated.Has(err, curated.EmptyInputError), content)

		// output directory is never created
		_, err = os.Stat(opts.Config.OutputDir)
		test.ExpectSuccess(t, os.IsNotExist(err))
	}
}

func TestMissingSource(t *testing.T) {
	opts := options(t, filepath.Join(t.TempDir(), "missing.txt"))
	_, err := pipeline.Convert(opts)
	test.ExpectSuccess(t, curated.Has(err, curated.IOError))

	opts = options(t, filepath.Join(t.TempDir(), "missing_inputs.json"))
	_, err = pipeline.Generate(opts)
	test.ExpectSuccess(t, curated.Has(err, curated.IOError))
}

func TestBadConfig(t *testing.T) {
	opts := options(t, source(t, "hello.txt", "HELLO"))
	opts.Config.HoldFrames = 0
	_, err := pipeline.Convert(opts)
	test.ExpectSuccess(t, curated.Has(err, curated.ConfigurationError))

	opts = options(t, source(t, "hello.txt", "HELLO"))
	opts.Config.System = "n64"
	_, err = pipeline.Convert(opts)
	test.ExpectSuccess(t, curated.Has(err, curated.ConfigurationError))
}

func TestGenerateEmpty(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty_inputs.json")
	empty := &ir.Sequence{
		System:     mapping.DS,
		FrameRate:  60,
		HoldFrames: 9,
		Stats: ir.Stats{
			Policy: "drop",
			Digest: digest.Tokens([]mapping.Token{}),
		},
	}
	test.DemandSuccess(t, ir.Save(empty, fn))

	opts := options(t, fn)
	test.DemandSuccess(t, os.MkdirAll(opts.Config.OutputDir, 0o755))

	_, err := pipeline.Generate(opts)
	test.ExpectSuccess(t, curated.Has(err, curated.EmptyTapeError))

	d, err := os.ReadDir(opts.Config.OutputDir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 0)
}

func TestNoSummaryOnFailure(t *testing.T) {
	opts := options(t, source(t, "___.txt", "HELLO"))

	var summary strings.Builder
	opts.Summary = &summary

	// no document name can be derived from the filename
	_, err := pipeline.Convert(opts)
	test.ExpectSuccess(t, curated.Has(err, curated.TemplateError))
	test.ExpectEquality(t, summary.Len(), 0)

	// nothing is left behind by the failed conversion
	_, err = os.Stat(opts.Config.OutputDir)
	test.ExpectSuccess(t, os.IsNotExist(err))
}

func TestUnnamedSequence(t *testing.T) {
	opts := options(t, source(t, "___.txt", "HELLO"))

	// the intermediate file can still be written and named later
	res, err := pipeline.Sequence(opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Document, "")

	opts.Source = res.IRPath
	opts.Name = "Later"
	res, err = pipeline.Generate(opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Document, "Later")
}
