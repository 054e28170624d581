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

package pipeline

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/docjoy/docjoy/mapping"
	"github.com/dustin/go-humanize"
)

// fileSize returns the size of the file in human readable form. a file that
// cannot be stat'd is reported as missing rather than causing an error
func fileSize(filename string) string {
	st, err := os.Stat(filename)
	if err != nil {
		return "missing"
	}
	return humanize.Bytes(uint64(st.Size()))
}

// playTime formats a duration as hours, minutes and seconds.
func playTime(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%d:%02d:%02d", h, m, d/time.Second)
}

// WriteSummary writes a short human readable account of the conversion.
func WriteSummary(output io.Writer, res Result) {
	if res.Sequence == nil {
		return
	}
	seq := res.Sequence

	if res.Document != "" {
		fmt.Fprintf(output, "document:    %s\n", res.Document)
	}
	if seq.Source != "" {
		fmt.Fprintf(output, "source:      %s\n", seq.Source)
	}
	fmt.Fprintf(output, "system:      %s\n", seq.System)
	fmt.Fprintf(output, "inputs:      %s\n", humanize.Comma(int64(seq.Stats.Inputs)))

	switch {
	case seq.Stats.Skipped > 0:
		fmt.Fprintf(output, "skipped:     %s characters (%s policy)\n",
			humanize.Comma(int64(seq.Stats.Skipped)), seq.Stats.Policy)
	case seq.Stats.Substituted > 0:
		fmt.Fprintf(output, "substituted: %s characters (%s policy)\n",
			humanize.Comma(int64(seq.Stats.Substituted)), seq.Stats.Policy)
	}

	fmt.Fprintf(output, "timing:      %d frames per input at %dfps\n", seq.HoldFrames, seq.FrameRate)
	fmt.Fprintf(output, "play time:   %s\n", playTime(seq.Duration()))

	if len(seq.Stats.Tokens) > 0 {
		tokens := make([]mapping.Token, 0, len(seq.Stats.Tokens))
		for tok := range seq.Stats.Tokens {
			tokens = append(tokens, tok)
		}

		// most used first
		sort.Slice(tokens, func(i, j int) bool {
			ci := seq.Stats.Tokens[tokens[i]]
			cj := seq.Stats.Tokens[tokens[j]]
			if ci == cj {
				return tokens[i] < tokens[j]
			}
			return ci > cj
		})

		var s strings.Builder
		for i, tok := range tokens {
			if i > 0 {
				s.WriteString(", ")
			}
			fmt.Fprintf(&s, "%s %s", tok, humanize.Comma(int64(seq.Stats.Tokens[tok])))
		}
		fmt.Fprintf(output, "tokens:      %s\n", s.String())
	}

	for _, f := range []struct {
		label string
		path  string
	}{
		{"intermediate", res.IRPath},
		{"tape", res.TapePath},
		{"script", res.ScriptPath},
	} {
		if f.path == "" {
			continue
		}
		fmt.Fprintf(output, "%-12s %s (%s)\n", f.label+":", f.path, fileSize(f.path))
	}
}
