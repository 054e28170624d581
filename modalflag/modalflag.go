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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
)

const pathSeparator = "/"

// SubMode is a named mode of operation with a one line summary. The summary is
// shown in the help message.
type SubMode struct {
	Name    string
	Summary string
}

// Modes handles the command line arguments for a program with one or more
// modes of operation. Set the Output field before calling Parse() or help
// messages will be lost.
type Modes struct {
	// help messages are written here
	Output io.Writer

	// flags for the current layer of arguments. replaced on every call to
	// NewArgs() and NewMode()
	flags *flag.FlagSet

	args []string
	idx  int

	// sub-modes for the current layer. the first entry is the default
	subModes []SubMode

	// every mode selected so far. the path is never reset
	path []string

	// extra help text for the current layer
	extraHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. Empty if no mode has been
// selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, pathSeparator)
}

// NewArgs sets the arguments to parse and begins the first layer.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.NewMode()
}

// NewMode begins a new layer of arguments. Flags and sub-modes added after
// this call apply to the arguments that follow the most recently selected
// mode.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.extraHelp = ""
}

// AdditionalHelp is printed after the flags and sub-modes in the help
// message for the current layer.
func (md *Modes) AdditionalHelp(help string) {
	md.extraHelp = help
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// arguments were parsed. if sub-modes were added then Mode() is the
	// selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error return value says what went wrong
	ParseError
)

// Parse the current layer of arguments.
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// If sub-modes have been added the first argument after the flags is checked
// against them. A matching argument selects that mode and is consumed.
// Otherwise the default mode is selected and the argument is left in place.
// An unrecognised flag also selects the default mode, so that the flag can be
// parsed by the default mode's own layer.
func (md *Modes) Parse() (ParseResult, error) {

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.idx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.help(md.Output, md.Path(), md.subModes, md.extraHelp)
			return ParseHelp, nil
		}

		if len(md.subModes) == 0 {
			return ParseError, err
		}

		md.path = append(md.path, md.subModes[0].Name)
		return ParseContinue, nil
	}

	// skip the arguments consumed by the flags
	md.idx = len(md.args) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0].Name
	if arg := strings.ToUpper(md.flags.Arg(0)); arg != "" {
		for _, s := range md.subModes {
			if s.Name == arg {
				mode = arg
				md.idx++
				break // for loop
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs are the arguments after the flags and after the selected mode
// if there was one.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.idx:]
}

// GetArg returns one of RemainingArgs() or the empty string if there are not
// that many arguments.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes for the next call to Parse(). The first sub-mode to be added is
// the default. Names are compared without regard to case.
func (md *Modes) AddSubModes(subModes ...SubMode) {
	for _, s := range subModes {
		s.Name = strings.ToUpper(s.Name)
		md.subModes = append(md.subModes, s)
	}
}

// AddDefaultSubMode puts a sub-mode at the front of the list.
func (md *Modes) AddDefaultSubMode(s SubMode) {
	s.Name = strings.ToUpper(s.Name)
	md.subModes = append([]SubMode{s}, md.subModes...)
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddBoolVar binds a flag to an existing variable. The current value of the
// variable is the default.
func (md *Modes) AddBoolVar(p *bool, name string, usage string) {
	md.flags.BoolVar(p, name, *p, usage)
}

// AddStringVar binds a flag to an existing variable. The current value of the
// variable is the default.
func (md *Modes) AddStringVar(p *string, name string, usage string) {
	md.flags.StringVar(p, name, *p, usage)
}

// AddIntVar binds a flag to an existing variable. The current value of the
// variable is the default.
func (md *Modes) AddIntVar(p *int, name string, usage string) {
	md.flags.IntVar(p, name, *p, usage)
}

// Visit calls fn with the name of every flag that was set on the command
// line, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
