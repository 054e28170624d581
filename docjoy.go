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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/docjoy/docjoy/config"
	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/ir"
	"github.com/docjoy/docjoy/logger"
	"github.com/docjoy/docjoy/luahost"
	"github.com/docjoy/docjoy/mapping"
	"github.com/docjoy/docjoy/modalflag"
	"github.com/docjoy/docjoy/paths"
	"github.com/docjoy/docjoy/pipeline"
	"github.com/docjoy/docjoy/statsview"
	"github.com/docjoy/docjoy/version"
)

// exit values
const (
	exitArguments = 10
	exitMode      = 20
)

// number of log entries shown when verification fails
const verifyTail = 10

// failures that are the fault of the command line rather than the conversion
const argumentError = "arguments: %v"

var modes = []modalflag.SubMode{
	{Name: "CONVERT", Summary: "document to intermediate file, tape and playback script"},
	{Name: "SEQUENCE", Summary: "document to intermediate file"},
	{Name: "GENERATE", Summary: "intermediate file to tape and playback script"},
	{Name: "VERIFY", Summary: "replay a playback script and compare it to the intermediate file"},
	{Name: "TABLE", Summary: "print the mapping table for a system"},
	{Name: "VERSION", Summary: "print the version"},
}

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch runs the mode selected by the arguments and returns the exit value.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes(modes...)
	md.AdditionalHelp("documents are PDF or plain text files. settings are also read from DOCJOY_* environment variables")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "CONVERT":
		err = convert(output, md, pipeline.Convert)
	case "SEQUENCE":
		err = convert(output, md, pipeline.Sequence)
	case "GENERATE":
		err = generate(output, md)
	case "VERIFY":
		err = verify(output, md)
	case "TABLE":
		err = table(output, md)
	case "VERSION":
		err = showVersion(output, md)
	}

	if err != nil {
		if curated.Has(err, argumentError) {
			fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
			return exitArguments
		}

		if kind := curated.Kind(err); kind != "" {
			fmt.Fprintf(output, "* error in %s mode: %s: %v\n", md, kind, err)
		} else {
			fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		}
		return exitMode
	}

	return 0
}

// settings common to the conversion modes
type common struct {
	cfg       config.Config
	name      string
	log       bool
	quiet     bool
	statsview bool
}

// addCommon adds the flags shared by the conversion modes. the defaults come
// from the environment
func addCommon(md *modalflag.Modes) (*common, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	c := &common{cfg: cfg}

	md.AddStringVar(&c.cfg.System, "system", "target system: ds, gb")
	md.AddStringVar(&c.cfg.Policy, "policy", "unmapped character policy: drop, substitute")
	md.AddIntVar(&c.cfg.HoldFrames, "hold", "frames each input is held for")
	md.AddIntVar(&c.cfg.FrameRate, "fps", "frame rate of the target system")
	md.AddIntVar(&c.cfg.ProgressInterval, "progress", "inputs between progress messages during playback")
	md.AddStringVar(&c.cfg.OutputDir, "out", "output directory")
	md.AddStringVar(&c.cfg.TapeFilename, "tape", "tape filename (default "+paths.DefaultTape+")")
	md.AddStringVar(&c.cfg.ScriptFilename, "script", "playback script filename (default "+paths.DefaultScript+")")
	md.AddStringVar(&c.cfg.IRFilename, "ir", "intermediate filename (default <document>_inputs.json)")
	md.AddStringVar(&c.name, "name", "document name shown during playback")

	md.AddBoolVar(&c.quiet, "quiet", "do not print a summary")
	md.AddBoolVar(&c.log, "log", "echo log to stderr")

	if statsview.Available() {
		md.AddBoolVar(&c.statsview, "statsview", fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	return c, nil
}

// echo starts echoing the log to stderr if requested
func echo(log bool) {
	if log {
		logger.SetEcho(logger.EchoWriter(os.Stderr))
	} else {
		logger.SetEcho(nil)
	}
}

// oneArg returns the single remaining argument or an argument error
func oneArg(md *modalflag.Modes, what string) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", curated.Errorf(argumentError, fmt.Sprintf("%s required", what))
	case 1:
		return md.GetArg(0), nil
	default:
		return "", curated.Errorf(argumentError, "too many arguments")
	}
}

func convert(output io.Writer, md *modalflag.Modes, run func(pipeline.Options) (pipeline.Result, error)) error {
	md.NewMode()

	c, err := addCommon(md)
	if err != nil {
		return err
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(argumentError, err)
	}

	source, err := oneArg(md, "document")
	if err != nil {
		return err
	}

	echo(c.log)
	if c.statsview {
		statsview.Launch(output)
	}

	opts := pipeline.Options{
		Config: c.cfg,
		Source: source,
		Name:   c.name,
	}
	if !c.quiet {
		opts.Summary = output
	}

	_, err = run(opts)
	return err
}

func generate(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	c, err := addCommon(md)
	if err != nil {
		return err
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(argumentError, err)
	}

	irFile, err := oneArg(md, "intermediate file")
	if err != nil {
		return err
	}

	echo(c.log)

	opts := pipeline.Options{
		Config: c.cfg,
		Source: irFile,
		Name:   c.name,
	}
	if !c.quiet {
		opts.Summary = output
	}

	_, err = pipeline.Generate(opts)
	return err
}

func verify(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stderr")
	script := md.AddString("script", "", "playback script (default is the script next to the intermediate file, named by DOCJOY_SCRIPT_FILENAME or "+paths.DefaultScript+")")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(argumentError, err)
	}

	irFile, err := oneArg(md, "intermediate file")
	if err != nil {
		return err
	}

	echo(*log)

	seq, err := ir.Load(irFile)
	if err != nil {
		return err
	}

	if *script == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fn := cfg.ScriptFilename
		if fn == "" {
			fn = paths.DefaultScript
		}
		*script = filepath.Join(filepath.Dir(irFile), fn)
	}

	logger.Clear()

	rep, err := luahost.Verify(seq, *script)
	if err != nil {
		// the script's own output is in the log
		if !*log {
			logger.Tail(output, verifyTail)
		}
		return err
	}

	fmt.Fprintf(output, "verified %d inputs in %d frames (%s)\n", len(seq.Events), rep.Frames, *script)
	for _, s := range rep.Output {
		fmt.Fprintf(output, "  %s\n", s)
	}

	return nil
}

func table(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	md.AddStringVar(&cfg.System, "system", "target system: ds, gb")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(argumentError, err)
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(argumentError, "too many arguments")
	}

	tab, err := mapping.ForSystem(cfg.System)
	if err != nil {
		return err
	}
	tab.Write(output)

	return nil
}

func showVersion(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(argumentError, err)
	}

	v, r, _ := version.Version()
	fmt.Fprintln(output, version.ApplicationName, v)
	if *revision && r != "" {
		fmt.Fprintln(output, r)
	}

	return nil
}
