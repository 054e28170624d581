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

// Package normalize converts raw document text into the alphabet understood by
// a mapping table.
//
// Compatibility characters are decomposed and combining marks removed, so
// that an accented letter becomes the plain letter. The text is then folded
// to upper case and walked one grapheme cluster at a time. Runs of whitespace
// collapse to a single space and whitespace at either end of the text is
// removed.
//
// A cluster that is not in the table's alphabet is handled by the Policy once
// whitespace has been collapsed. It is either dropped or replaced by the
// no-input character. In both cases the
// cluster is counted and logged; unmapped characters are never an error.
package normalize

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/logger"
	"github.com/docjoy/docjoy/mapping"
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Policy decides what happens to characters that have no mapping.
type Policy int

// List of valid Policy values.
const (
	// the character is removed and counted as skipped
	Drop Policy = iota

	// the character is replaced with the no-input character and counted as
	// substituted
	Substitute
)

func (p Policy) String() string {
	switch p {
	case Drop:
		return "drop"
	case Substitute:
		return "substitute"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy converts the name of a policy into a Policy value.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drop":
		return Drop, nil
	case "substitute":
		return Substitute, nil
	}
	return Drop, curated.Errorf("normalize: %v", curated.Errorf(curated.ConfigurationError,
		fmt.Sprintf("unknown policy (%s), use drop or substitute", s)))
}

// Text is the result of normalisation. Every character in Chars is in the
// alphabet of the table that was used to create it.
type Text struct {
	Chars []rune

	Policy      Policy
	Skipped     int
	Substituted int
}

// Len returns the number of normalised characters.
func (txt Text) Len() int {
	return len(txt.Chars)
}

func (txt Text) String() string {
	return string(txt.Chars)
}

// Normalizer applies the normalisation rules for a specific mapping table.
type Normalizer struct {
	table  *mapping.Table
	policy Policy
}

// NewNormalizer is the preferred method of initialisation for the Normalizer
// type.
func NewNormalizer(table *mapping.Table, policy Policy) *Normalizer {
	return &Normalizer{
		table:  table,
		policy: policy,
	}
}

// fold removes accents and other combining marks. the transformer carries
// state so a new one is created for every call to Normalize()
func fold(raw string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, raw)
	if err != nil {
		// the chain cannot fail on valid or invalid UTF-8 but if it does the
		// unfolded text is still usable. accented characters will simply be
		// unmapped
		logger.Logf(logger.Allow, "normalize", "folding failed: %v", err)
		return raw
	}
	return s
}

func isSpace(cluster []rune) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return len(cluster) > 0
}

// collapse splits the text into grapheme clusters. runs of whitespace become a
// single space cluster and whitespace at either end is removed. the policy is
// applied afterwards, so dropping a character never changes the whitespace
// around it
func collapse(s string) [][]rune {
	clusters := make([][]rune, 0, len(s))
	var pendingSpace bool

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Runes()
		if isSpace(cluster) {
			pendingSpace = true
			continue
		}
		if pendingSpace && len(clusters) > 0 {
			clusters = append(clusters, []rune{mapping.NoInputChar})
		}
		pendingSpace = false
		clusters = append(clusters, cluster)
	}

	return clusters
}

// Normalize the raw text.
func (n *Normalizer) Normalize(raw string) Text {
	txt := Text{
		Chars:  make([]rune, 0, len(raw)),
		Policy: n.policy,
	}

	s := cases.Upper(language.Und).String(fold(raw))

	// unmapped clusters are logged once each, in order of first appearance,
	// after the text has been walked
	var unmappedOrder []string
	unmapped := make(map[string]int)

	for _, cluster := range collapse(s) {
		if isSpace(cluster) {
			txt.Chars = append(txt.Chars, mapping.NoInputChar)
			continue
		}

		if len(cluster) == 1 {
			if _, ok := n.table.Lookup(cluster[0]); ok {
				txt.Chars = append(txt.Chars, cluster[0])
				continue
			}
		}

		c := string(cluster)
		if _, ok := unmapped[c]; !ok {
			unmappedOrder = append(unmappedOrder, c)
		}
		unmapped[c]++

		switch n.policy {
		case Substitute:
			txt.Chars = append(txt.Chars, mapping.NoInputChar)
			txt.Substituted++
		default:
			txt.Skipped++
		}
	}

	for _, c := range unmappedOrder {
		logger.Logf(logger.Allow, "normalize", "%s: %q (%U) x%d", n.policy, c, []rune(c), unmapped[c])
	}

	return txt
}
