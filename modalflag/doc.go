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

// Package modalflag wraps the flag package from the standard library and adds
// modes of operation, each with its own flags.
//
// Arguments are given once with NewArgs() and then parsed a layer at a time
// with Parse(). The first layer usually does nothing more than select a mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes(
//		modalflag.SubMode{Name: "CONVERT", Summary: "document to tape and script"},
//		modalflag.SubMode{Name: "VERIFY", Summary: "replay a generated script"},
//	)
//	p, err := md.Parse()
//
// The first sub-mode is the default and is selected when the first argument
// after the flags is not the name of a mode. Mode names are not case
// sensitive but Mode() always returns them in upper case.
//
// Once a mode has been selected, NewMode() begins the next layer. Flags for
// the mode are added and Parse() is called again:
//
//	switch md.Mode() {
//	case "CONVERT":
//		md.NewMode()
//		hold := md.AddInt("hold", 9, "frames each input is held for")
//		md.AddStringVar(&cfg.System, "system", "target system")
//		p, err := md.Parse()
//		...
//		convert(md.GetArg(0), *hold)
//	}
//
// The Var variants of the flag functions bind a flag to an existing variable
// and use its current value as the default. This is how settings that have
// already been read from the environment are overridden on the command line.
//
// Parse() returns ParseHelp when the -help flag is given. The help message has
// already been written to the Output field by then and the caller should stop
// without printing anything else.
//
// Path() returns every mode selected so far. For example, "VERIFY" or
// "CONVERT" for a program with a single level of modes.
package modalflag
