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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The Has() function is similar but checks if the pattern
// occurs somewhere in the error chain:
//
//	e := curated.Errorf(curated.FormatError, "missing events")
//	f := curated.Errorf("ir: %v", e)
//
//	curated.Has(f, curated.FormatError) // true
//	curated.Is(f, curated.FormatError)  // false
//
// The Error() implementation normalises the chain so that it does not contain
// duplicate adjacent parts. Chains are thought of as parts separated by the
// sub-string ": ", as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan). So the following:
//
//	curated.Errorf("ir: %v", curated.Errorf("ir: %v", "not an ir file"))
//
// prints as "ir: not an ir file" and not "ir: ir: not an ir file".
//
// The failure categories of a conversion run are sentinal patterns defined in
// this package. The Kind() function names the category of an error, which is
// how the command line reports failures.
package curated
