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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/docjoy/docjoy/curated"
)

// Default filenames for the artifacts. The tape filename is also the name the
// playback script uses to find the tape, so the two files must be kept in the
// same directory.
const (
	DefaultTape   = "game_inputs.txt"
	DefaultScript = "document_player.lua"
	irSuffix      = "_inputs.json"
	fallbackStem  = "document"
)

// Names specifies the artifact filenames. Empty fields take the default
// value.
type Names struct {
	IR     string
	Tape   string
	Script string
}

// Artifacts are the resolved paths of the files produced by a conversion.
type Artifacts struct {
	Dir    string
	IR     string
	Tape   string
	Script string
}

// Stem returns the filename of the source without the directory or the
// extension.
func Stem(source string) string {
	b := filepath.Base(source)
	b = strings.TrimSuffix(b, filepath.Ext(b))
	if b == "." || b == string(filepath.Separator) {
		return ""
	}
	return b
}

// DefaultIR returns the default filename of the intermediate file for the
// source document.
func DefaultIR(source string) string {
	s := Stem(source)
	if s == "" {
		s = fallbackStem
	}
	return fmt.Sprintf("%s%s", s, irSuffix)
}

// checkName makes sure an override is a plain filename. the artifacts always
// live together in the output directory
func checkName(kind, name string) error {
	if name != filepath.Base(name) || name == "." || name == ".." {
		return curated.Errorf("paths: %v", curated.Errorf(curated.ConfigurationError,
			fmt.Sprintf("%s filename must not contain a directory (%s)", kind, name)))
	}
	return nil
}

// Resolve the artifact paths for the source document. The source is only used
// to derive the default intermediate filename.
func Resolve(outDir string, source string, names Names) (Artifacts, error) {
	if outDir == "" {
		outDir = "."
	}

	if names.IR == "" {
		names.IR = DefaultIR(source)
	}
	if names.Tape == "" {
		names.Tape = DefaultTape
	}
	if names.Script == "" {
		names.Script = DefaultScript
	}

	for _, n := range []struct{ kind, name string }{
		{"intermediate", names.IR},
		{"tape", names.Tape},
		{"script", names.Script},
	} {
		if err := checkName(n.kind, n.name); err != nil {
			return Artifacts{}, err
		}
	}

	if names.IR == names.Tape || names.IR == names.Script || names.Tape == names.Script {
		return Artifacts{}, curated.Errorf("paths: %v", curated.Errorf(curated.ConfigurationError,
			"artifact filenames must be different from one another"))
	}

	return Artifacts{
		Dir:    outDir,
		IR:     filepath.Join(outDir, names.IR),
		Tape:   filepath.Join(outDir, names.Tape),
		Script: filepath.Join(outDir, names.Script),
	}, nil
}
