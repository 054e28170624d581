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

package playback

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/ir"
	"github.com/docjoy/docjoy/mapping"
	"github.com/docjoy/docjoy/version"
)

//go:embed "player.lua.tmpl"
var playerTemplate string

var script = template.Must(template.New("player").Funcs(template.FuncMap{
	"lua": luaString,
}).Parse(playerTemplate))

// joypad key names used by the emulator's scripting API
var joypadKeys = map[mapping.Token]string{
	mapping.A:      "A",
	mapping.B:      "B",
	mapping.X:      "X",
	mapping.Y:      "Y",
	mapping.L:      "L",
	mapping.R:      "R",
	mapping.Start:  "start",
	mapping.Select: "select",
	mapping.Up:     "up",
	mapping.Down:   "down",
	mapping.Left:   "left",
	mapping.Right:  "right",
}

// JoypadKey returns the name the emulator's scripting API uses for the
// token. The second return value is false for NoInput.
func JoypadKey(tok mapping.Token) (string, bool) {
	k, ok := joypadKeys[tok]
	return k, ok
}

type key struct {
	Token mapping.Token
	Key   string
}

type scriptData struct {
	Banner           string
	Document         string
	System           string
	Tape             string
	Inputs           int
	Duration         time.Duration
	HoldFrames       int
	FrameRate        int
	ProgressInterval int
	NoInput          mapping.Token
	Keys             []key
}

func writeScript(output io.Writer, tab *mapping.Table, seq *ir.Sequence, docName string, tapeName string, progress int) error {
	data := scriptData{
		Banner:           version.Banner(),
		Document:         docName,
		System:           strings.ToUpper(string(seq.System)),
		Tape:             tapeName,
		Inputs:           len(seq.Events),
		Duration:         seq.Duration(),
		HoldFrames:       seq.HoldFrames,
		FrameRate:        seq.FrameRate,
		ProgressInterval: progress,
		NoInput:          mapping.NoInput,
	}

	for _, tok := range tab.Buttons() {
		k, ok := JoypadKey(tok)
		if !ok {
			return curated.Errorf(curated.TemplateError, fmt.Sprintf("no joypad key for %s", tok))
		}
		data.Keys = append(data.Keys, key{Token: tok, Key: k})
	}

	err := script.Execute(output, data)
	if err != nil {
		if curated.IsAny(err) {
			return err
		}
		return curated.Errorf(curated.TemplateError, err)
	}

	return nil
}

// luaString returns the value as a double quoted Lua string literal. Bytes
// outside of printable ASCII are written as decimal escapes.
func luaString(v any) string {
	s := fmt.Sprint(v)

	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c >= 0x7f {
				fmt.Fprintf(&b, `\%03d`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')

	return b.String()
}
