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

package mapping

import (
	"fmt"
	"io"
	"strings"

	"github.com/docjoy/docjoy/curated"
)

// System identifies a target controller mapping profile.
type System string

// List of supported systems.
const (
	DS System = "ds"
	GB System = "gb"
)

// Systems lists the supported systems in the order they should be presented
// to the user. The first entry is the default.
var Systems = []System{DS, GB}

// Token is the symbolic name of a controller action.
type Token string

// List of input tokens. Not every system supports every token.
const (
	A       Token = "A"
	B       Token = "B"
	X       Token = "X"
	Y       Token = "Y"
	L       Token = "L"
	R       Token = "R"
	Start   Token = "START"
	Select  Token = "SELECT"
	Up      Token = "UP"
	Down    Token = "DOWN"
	Left    Token = "LEFT"
	Right   Token = "RIGHT"
	NoInput Token = "NO_INPUT"
)

// NoInputChar is the normalised character that maps to NoInput in every table.
const NoInputChar = ' '

// Table is the static lookup from normalised character to input token for a
// single system. Tables are built once when the package is initialised and
// are never modified.
type Table struct {
	system   System
	alphabet []rune
	lookup   map[rune]Token
	buttons  map[Token]bool
	order    []Token
}

// System returns the system the table is for.
func (tab *Table) System() System {
	return tab.system
}

// Lookup returns the token for the normalised character. The second return
// value is false if the character is not in the table's alphabet.
func (tab *Table) Lookup(c rune) (Token, bool) {
	tok, ok := tab.lookup[c]
	return tok, ok
}

// Valid returns true if the token is a button (or NoInput) on the system.
func (tab *Table) Valid(tok Token) bool {
	return tab.buttons[tok]
}

// Buttons returns the physical buttons of the system in a fixed order. NoInput
// is not included.
func (tab *Table) Buttons() []Token {
	b := make([]Token, 0, len(tab.order))
	for _, tok := range tab.order {
		if tok != NoInput {
			b = append(b, tok)
		}
	}
	return b
}

// Alphabet returns a copy of the declared alphabet in table order.
func (tab *Table) Alphabet() []rune {
	a := make([]rune, len(tab.alphabet))
	copy(a, tab.alphabet)
	return a
}

// Write a human readable version of the table to io.Writer.
func (tab *Table) Write(output io.Writer) {
	io.WriteString(output, fmt.Sprintf("%s mapping table (%d characters)\n", strings.ToUpper(string(tab.system)), len(tab.alphabet)))
	for _, c := range tab.alphabet {
		io.WriteString(output, fmt.Sprintf("  %q -> %s\n", c, tab.lookup[c]))
	}
}

func (tab *Table) String() string {
	return string(tab.system)
}

// ForSystem returns the table for the named system. The name is not case
// sensitive.
func ForSystem(system string) (*Table, error) {
	tab, ok := tables[System(strings.ToLower(strings.TrimSpace(system)))]
	if !ok {
		return nil, curated.Errorf("mapping: %v", curated.Errorf(curated.ConfigurationError,
			fmt.Sprintf("unknown system (%s), supported systems are %s", system, supported())))
	}
	return tab, nil
}

// Lookup is a convenience function that selects the table and looks up the
// character in one call.
func Lookup(system System, c rune) (Token, bool, error) {
	tab, err := ForSystem(string(system))
	if err != nil {
		return "", false, err
	}
	tok, ok := tab.Lookup(c)
	return tok, ok, nil
}

func supported() string {
	s := make([]string, len(Systems))
	for i := range Systems {
		s[i] = string(Systems[i])
	}
	return strings.Join(s, ", ")
}
