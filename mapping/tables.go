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

import "fmt"

type entry struct {
	c   rune
	tok Token
}

// the letters cycle through the d-pad and face buttons so that ordinary
// prose produces a mix of movement and action
var dsEntries = []entry{
	{'A', Up}, {'B', Down}, {'C', Left}, {'D', Right},
	{'E', A}, {'F', B}, {'G', Start}, {'H', Select},
	{'I', L}, {'J', R}, {'K', Up}, {'L', Down},
	{'M', Left}, {'N', Right}, {'O', A}, {'P', B},
	{'Q', L}, {'R', R}, {'S', Start}, {'T', Select},
	{'U', Left}, {'V', Right}, {'W', Up}, {'X', Down},
	{'Y', A}, {'Z', B},

	{'0', Right}, {'1', A}, {'2', B}, {'3', X}, {'4', Y},
	{'5', L}, {'6', R}, {'7', Up}, {'8', Down}, {'9', Left},

	{NoInputChar, NoInput},
	{'.', A}, {',', B}, {';', Start}, {':', Select},
	{'!', X}, {'?', Y}, {'\'', L}, {'"', R},
	{'-', Down}, {'(', Left}, {')', Right},
}

var gbEntries = []entry{
	{'A', Up}, {'B', Down}, {'C', Left}, {'D', Right},
	{'E', A}, {'F', B}, {'G', Start}, {'H', Select},
	{'I', A}, {'J', B}, {'K', Up}, {'L', Down},
	{'M', Left}, {'N', Right}, {'O', A}, {'P', B},
	{'Q', Start}, {'R', Select}, {'S', Start}, {'T', Select},
	{'U', Left}, {'V', Right}, {'W', Up}, {'X', Down},
	{'Y', A}, {'Z', B},

	{'0', B}, {'1', A}, {'2', B}, {'3', Start}, {'4', Select},
	{'5', Up}, {'6', Down}, {'7', Left}, {'8', Right}, {'9', A},

	{NoInputChar, NoInput},
	{'.', A}, {',', B}, {';', Start}, {':', Select},
	{'!', A}, {'?', B}, {'\'', Up}, {'"', Down},
	{'-', Down}, {'(', Left}, {')', Right},
}

var dsButtons = []Token{A, B, X, Y, L, R, Start, Select, Up, Down, Left, Right, NoInput}
var gbButtons = []Token{A, B, Start, Select, Up, Down, Left, Right, NoInput}

var tables map[System]*Table

func init() {
	tables = map[System]*Table{
		DS: newTable(DS, dsEntries, dsButtons),
		GB: newTable(GB, gbEntries, gbButtons),
	}
}

// newTable panics if the entries break the rules for a table. the tables are
// static so this can only happen during development.
func newTable(system System, entries []entry, buttons []Token) *Table {
	tab := &Table{
		system:   system,
		alphabet: make([]rune, 0, len(entries)),
		lookup:   make(map[rune]Token, len(entries)),
		buttons:  make(map[Token]bool, len(buttons)),
		order:    buttons,
	}

	for _, b := range buttons {
		tab.buttons[b] = true
	}

	var noInput int
	for _, e := range entries {
		if _, ok := tab.lookup[e.c]; ok {
			panic(fmt.Sprintf("mapping: %s: duplicate entry for %q", system, e.c))
		}
		if !tab.buttons[e.tok] {
			panic(fmt.Sprintf("mapping: %s: %s is not a button", system, e.tok))
		}
		if e.tok == NoInput {
			noInput++
		}
		tab.alphabet = append(tab.alphabet, e.c)
		tab.lookup[e.c] = e.tok
	}

	if noInput != 1 || tab.lookup[NoInputChar] != NoInput {
		panic(fmt.Sprintf("mapping: %s: table must have exactly one no-input entry", system))
	}

	return tab
}
