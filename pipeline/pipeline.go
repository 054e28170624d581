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

// Package pipeline joins the stages of a conversion together. A conversion
// has two halves with the intermediate file between them:
//
//	source document -> extract -> normalize -> sequence -> intermediate file
//	intermediate file -> tape and playback script
//
// Each half can be run on its own. Convert() runs both.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/docjoy/docjoy/config"
	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/extract"
	"github.com/docjoy/docjoy/ir"
	"github.com/docjoy/docjoy/logger"
	"github.com/docjoy/docjoy/normalize"
	"github.com/docjoy/docjoy/paths"
	"github.com/docjoy/docjoy/playback"
	"github.com/docjoy/docjoy/sequencer"
)

// Options for a conversion.
type Options struct {
	Config config.Config

	// the source document (for Sequence() and Convert()) or the intermediate
	// file (for Generate())
	Source string

	// explicit document name. derived from the source filename if empty
	Name string

	// summary of the conversion is written here if it is not nil
	Summary io.Writer
}

// Result of a conversion. Fields are filled in as far as the conversion got.
type Result struct {
	Document string
	Sequence *ir.Sequence

	IRPath     string
	TapePath   string
	ScriptPath string
}

// Sequence runs the first half of the conversion and writes the intermediate
// file.
func Sequence(opts Options) (Result, error) {
	return sequence(opts, false)
}

// sequence writes the intermediate file. if named is true the document must
// have a name before anything is written
func sequence(opts Options, named bool) (Result, error) {
	var res Result

	err := opts.Config.Validate()
	if err != nil {
		return res, curated.Errorf("pipeline: %v", err)
	}

	art, err := paths.Resolve(opts.Config.OutputDir, opts.Source, opts.Config.Names())
	if err != nil {
		return res, curated.Errorf("pipeline: %v", err)
	}

	tab, err := opts.Config.Table()
	if err != nil {
		return res, curated.Errorf("pipeline: %v", err)
	}
	policy, err := opts.Config.NormalizePolicy()
	if err != nil {
		return res, curated.Errorf("pipeline: %v", err)
	}

	raw, err := extract.Text(opts.Source)
	if err != nil {
		return res, curated.Errorf("pipeline: %v", err)
	}

	txt := normalize.NewNormalizer(tab, policy).Normalize(raw)

	res.Document = playback.DocumentName(opts.Name, opts.Source)

	seqOpts := opts.Config.Sequencer()
	seqOpts.Document = res.Document
	seqOpts.Source = filepath.Base(opts.Source)

	res.Sequence, err = sequencer.Sequence(tab, txt, seqOpts)
	if err != nil {
		return res, curated.Errorf("pipeline: %v", err)
	}

	if named && res.Document == "" {
		return res, curated.Errorf("pipeline: %v", curated.Errorf(curated.TemplateError,
			fmt.Sprintf("no document name for %s", filepath.Base(opts.Source))))
	}

	err = os.MkdirAll(art.Dir, 0o755)
	if err != nil {
		return res, curated.Errorf("pipeline: %v", curated.Errorf(curated.IOError, art.Dir, err))
	}

	err = ir.Save(res.Sequence, art.IR)
	if err != nil {
		return res, curated.Errorf("pipeline: %v", err)
	}
	res.IRPath = art.IR

	logger.Logf(logger.Allow, "pipeline", "%s: %s", opts.Source, res.Sequence)

	if opts.Summary != nil {
		WriteSummary(opts.Summary, res)
	}

	return res, nil
}

// Generate runs the second half of the conversion from the intermediate file
// named in the Source field of Options.
func Generate(opts Options) (Result, error) {
	var res Result

	err := opts.Config.Validate()
	if err != nil {
		return res, curated.Errorf("pipeline: %v", err)
	}

	res.Sequence, err = ir.Load(opts.Source)
	if err != nil {
		return res, curated.Errorf("pipeline: %v", err)
	}
	res.IRPath = opts.Source

	res, err = generate(opts, res)
	if err != nil {
		return res, err
	}

	if opts.Summary != nil {
		WriteSummary(opts.Summary, res)
	}

	return res, nil
}

// generate the tape and script for the sequence in the Result. the document
// name is the explicit name, the name stored in the sequence or a name derived
// from the sequence's source, in that order of preference
func generate(opts Options, res Result) (Result, error) {
	name := opts.Name
	if name == "" {
		name = res.Sequence.Document
	}
	res.Document = playback.DocumentName(name, res.Sequence.Source)

	art, err := playback.Generate(res.Sequence, res.Document, opts.Config.Playback())
	if err != nil {
		return res, curated.Errorf("pipeline: %v", err)
	}
	res.TapePath = art.TapePath
	res.ScriptPath = art.ScriptPath

	return res, nil
}

// Convert runs both halves of the conversion. The intermediate file is read
// back before the playback files are generated so that a conversion always
// uses the same path through the program as a separate call to Generate().
func Convert(opts Options) (Result, error) {
	summary := opts.Summary
	opts.Summary = nil

	res, err := sequence(opts, true)
	if err != nil {
		return res, err
	}

	res.Sequence, err = ir.Load(res.IRPath)
	if err != nil {
		return res, curated.Errorf("pipeline: %v", err)
	}

	// the name has been resolved by Sequence() and is in the intermediate file
	opts.Name = res.Document
	res, err = generate(opts, res)
	if err != nil {
		return res, err
	}

	if summary != nil {
		WriteSummary(summary, res)
	}

	return res, nil
}
