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
	"strings"

	"github.com/docjoy/docjoy/paths"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DocumentName returns the name to display for the document. An explicit name
// is always preferred. Otherwise the name is made from the filename of the
// source: underscores and hyphens become spaces and each word is title cased.
// For example, "portuguese_constitution-1976.pdf" becomes "Portuguese
// Constitution 1976".
//
// The empty string is returned if there is no explicit name and no usable
// source filename.
func DocumentName(explicit string, source string) string {
	if n := tidyName(explicit); n != "" {
		return n
	}

	stem := paths.Stem(source)
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)

	return tidyName(cases.Title(language.Und).String(stem))
}

// collapse whitespace, including any line breaks, to single spaces
func tidyName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
