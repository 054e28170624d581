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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/docjoy/docjoy/modalflag"
	"github.com/docjoy/docjoy/test"
)

var modes = []modalflag.SubMode{
	{Name: "convert", Summary: "document to tape"},
	{Name: "verify", Summary: "replay a script"},
	{Name: "table"},
}

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "a.txt", "b.txt"})
	log := md.AddBool("log", false, "echo log")

	test.ExpectFailure(t, *log)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")

	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "a.txt")
	test.ExpectEquality(t, md.GetArg(1), "b.txt")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-hold", "nine"})
	md.AddInt("hold", 9, "hold frames")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestSelectMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"Verify", "-limit", "100", "script.lua"})
	md.AddSubModes(modes...)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "VERIFY")

	md.NewMode()
	limit := md.AddInt("limit", 0, "frame limit")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, *limit, 100)
	test.ExpectEquality(t, md.GetArg(0), "script.lua")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.Path(), "VERIFY")
}

func TestDefaultMode(t *testing.T) {
	// first argument is not a mode
	md := modalflag.Modes{}
	md.NewArgs([]string{"document.pdf"})
	md.AddSubModes(modes...)
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CONVERT")
	test.ExpectEquality(t, md.GetArg(0), "document.pdf")

	// a flag that belongs to the default mode
	md = modalflag.Modes{}
	md.NewArgs([]string{"-system", "gb", "document.pdf"})
	md.AddSubModes(modes...)
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CONVERT")

	md.NewMode()
	system := "ds"
	md.AddStringVar(&system, "system", "target system")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, system, "gb")
	test.ExpectEquality(t, md.GetArg(0), "document.pdf")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})
	md.AddSubModes(modes...)
	md.AddDefaultSubMode(modalflag.SubMode{Name: "version"})
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "VERSION")
}

func TestVarDefaults(t *testing.T) {
	hold := 6
	system := "gb"

	md := modalflag.Modes{}
	md.NewArgs([]string{"-hold", "12"})
	md.AddIntVar(&hold, "hold", "hold frames")
	md.AddStringVar(&system, "system", "target system")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hold, 12)
	test.ExpectEquality(t, system, "gb")

	var set []string
	md.Visit(func(flag string) {
		set = append(set, flag)
	})
	test.ExpectEquality(t, strings.Join(set, ","), "hold")
}

func TestNoHelpAvailable(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})
	md.AddBool("log", true, "echo log")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, out.String(), "Usage:\n"+
		"  -log\n"+
		"    \techo log (default true)\n")
}

func TestHelpModes(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})
	md.AddSubModes(modes...)

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, out.String(), "Usage:\n"+
		"  modes:\n"+
		"    CONVERT  document to tape (default)\n"+
		"    VERIFY   replay a script\n"+
		"    TABLE\n")
}

func TestHelpFlagsAndModes(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})
	md.AddBool("log", true, "echo log")
	md.AddSubModes(modes[:2]...)
	md.AdditionalHelp("documents are PDF or plain text")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, out.String(), "Usage:\n"+
		"  -log\n"+
		"    \techo log (default true)\n"+
		"\n"+
		"  modes:\n"+
		"    CONVERT  document to tape (default)\n"+
		"    VERIFY   replay a script\n"+
		"\n"+
		"documents are PDF or plain text\n")
}

func TestHelpForMode(t *testing.T) {
	var out strings.Builder

	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"table", "-help"})
	md.AddSubModes(modes...)
	_, _ = md.Parse()
	test.ExpectEquality(t, md.Mode(), "TABLE")

	md.NewMode()
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, out.String(), "No help available for TABLE\n")
}
