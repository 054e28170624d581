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

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/docjoy/docjoy/easyterm"
	"github.com/docjoy/docjoy/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. Entries with a
// detail mentioning an error are printed with the red pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := string(p)
	if !strings.Contains(strings.ToLower(s), "error") {
		return c.out.Write(p)
	}

	_, err = io.WriteString(c.out, ansi.DimPens["red"])
	if err != nil {
		return 0, err
	}
	defer func() {
		_, _ = io.WriteString(c.out, ansi.NormalPen)
	}()

	return c.out.Write(p)
}

// EchoWriter returns the writer that should be used with SetEcho() for the
// file. Terminals get the Colorizer, anything else gets the file unchanged.
func EchoWriter(f *os.File) io.Writer {
	if easyterm.IsTerminal(f) {
		return NewColorizer(f)
	}
	return f
}
