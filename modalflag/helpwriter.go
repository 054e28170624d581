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
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// rewritten with the sub-mode information.
type helpWriter struct {
	buf strings.Builder
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buf.Write(p)
}

func (hw *helpWriter) help(output io.Writer, path string, subModes []SubMode, extra string) {
	if output == nil {
		return
	}

	// the flag package always begins with a usage line. anything after that
	// describes the flags
	flags := strings.TrimPrefix(hw.buf.String(), "Usage:\n")

	if flags == "" && len(subModes) == 0 && extra == "" {
		if path == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(output, "Usage:")
	} else {
		fmt.Fprintf(output, "Usage for %s mode:\n", path)
	}

	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}

		width := 0
		for _, s := range subModes {
			width = max(width, len(s.Name))
		}

		fmt.Fprintln(output, "  modes:")
		for i, s := range subModes {
			line := fmt.Sprintf("    %-*s  %s", width, s.Name, s.Summary)
			if i == 0 {
				line = fmt.Sprintf("%s (default)", strings.TrimRight(line, " "))
			}
			fmt.Fprintln(output, strings.TrimRight(line, " "))
		}
	}

	if extra != "" {
		fmt.Fprintf(output, "\n%s\n", extra)
	}
}
