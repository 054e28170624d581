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

package curated

// Sentinal patterns for the failure categories of a conversion run. Every
// failure that reaches the command line has one of these somewhere in its
// chain. All of them are fatal and none of them are retried.
const (
	// unknown system, invalid option value
	ConfigurationError = "configuration: %v"

	// the document contains nothing to sequence once normalised
	EmptyInputError = "empty input: %v"

	// the input sequence has no events to put on a tape
	EmptyTapeError = "empty tape: %v"

	// an intermediate file is corrupt or incomplete
	FormatError = "format: %v"

	// file cannot be read or written. the first value is the offending path
	IOError = "%s: %v"

	// the playback script cannot be generated from the available metadata
	TemplateError = "template: %v"

	// a playback script failed when run or did not replay its tape
	ScriptError = "script: %v"
)

// the order of the list is the order in which Kind() checks the chain
var categories = []struct {
	name    string
	pattern string
}{
	{name: "ConfigurationError", pattern: ConfigurationError},
	{name: "EmptyInputError", pattern: EmptyInputError},
	{name: "EmptyTapeError", pattern: EmptyTapeError},
	{name: "FormatError", pattern: FormatError},
	{name: "TemplateError", pattern: TemplateError},
	{name: "ScriptError", pattern: ScriptError},
	{name: "IOError", pattern: IOError},
}

// Kind returns the name of the failure category found in the error chain. An
// empty string is returned if the error is uncurated or has no category.
func Kind(err error) string {
	for _, c := range categories {
		if Has(err, c.pattern) {
			return c.name
		}
	}
	return ""
}
