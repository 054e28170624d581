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

import (
	"fmt"
	"strings"
)

// separator between the parts of an error chain
const separator = ": "

type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is what Is() and Has()
// compare against so it should normally be one of the sentinal patterns or a
// simple "package: %v" prefix.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error formats the error with adjacent duplicate parts of the chain removed.
func (er curated) Error() string {
	parts := strings.Split(fmt.Sprintf(er.pattern, er.values...), separator)

	j := 0
	for i, p := range parts {
		if i > 0 && p == parts[j-1] {
			continue
		}
		parts[j] = p
		j++
	}

	return strings.Join(parts[:j], separator)
}

// Unwrap returns every error value used to build the error. The errors package
// in the standard library uses this to see through a curated error to, for
// example, an fs.ErrNotExist at the bottom of the chain.
func (er curated) Unwrap() []error {
	var errs []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}

// IsAny returns true if the error is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is returns true if the error is a curated error created with the pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has returns true if a curated error created with the pattern is anywhere in
// the error chain. Curated errors wrapped by other error types are found too.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, u := range e.Unwrap() {
			if Has(u, pattern) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Has(e.Unwrap(), pattern)
	}

	return false
}
