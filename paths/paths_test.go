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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/paths"
	"github.com/docjoy/docjoy/test"
)

func TestResolve(t *testing.T) {
	a, err := paths.Resolve("out", "docs/us_constitution.pdf", paths.Names{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Dir, "out")
	test.ExpectEquality(t, a.IR, filepath.Join("out", "us_constitution_inputs.json"))
	test.ExpectEquality(t, a.Tape, filepath.Join("out", "game_inputs.txt"))
	test.ExpectEquality(t, a.Script, filepath.Join("out", "document_player.lua"))

	a, err = paths.Resolve("", "", paths.Names{Tape: "tape.txt", Script: "play.lua"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.IR, "document_inputs.json")
	test.ExpectEquality(t, a.Tape, "tape.txt")
	test.ExpectEquality(t, a.Script, "play.lua")
}

func TestResolveErrors(t *testing.T) {
	_, err := paths.Resolve("out", "a.txt", paths.Names{Tape: "sub/tape.txt"})
	test.ExpectSuccess(t, curated.Has(err, curated.ConfigurationError))

	_, err = paths.Resolve("out", "a.txt", paths.Names{Tape: "same.txt", Script: "same.txt"})
	test.ExpectSuccess(t, curated.Has(err, curated.ConfigurationError))
}

func TestStem(t *testing.T) {
	test.ExpectEquality(t, paths.Stem("docs/my_thesis.pdf"), "my_thesis")
	test.ExpectEquality(t, paths.Stem("notes"), "notes")
	test.ExpectEquality(t, paths.Stem(""), "")
}

func TestStaged(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "tape.txt")

	stg, err := paths.Stage(dest)
	test.DemandSuccess(t, err)
	_, err = stg.Write([]byte("A\n"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, stg.Close())

	// nothing at the destination until the commit
	_, err = os.Stat(dest)
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, stg.Commit())
	b, err := os.ReadFile(dest)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "A\n")

	// only the destination file remains
	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
}

func TestDiscard(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "tape.txt")

	stg, err := paths.Stage(dest)
	test.DemandSuccess(t, err)
	_, _ = stg.Write([]byte("A\n"))
	stg.Discard()

	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 0)
}

func TestUnwritable(t *testing.T) {
	err := paths.WriteFile(filepath.Join(t.TempDir(), "missing", "tape.txt"), []byte("A\n"))
	test.ExpectSuccess(t, curated.Has(err, curated.IOError))
}
