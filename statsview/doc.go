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

// Package statsview serves runtime statistics over HTTP while a long
// conversion is running. The server is only compiled in with the statsview
// build tag:
//
//	go build -tags statsview .
//
// Charts of memory use and goroutines are then available at
//
//	http://localhost:12610/debug/statsview
//
// and the standard pprof pages at
//
//	http://localhost:12610/debug/pprof/
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview

// Address of the stats server.
const Address = "localhost:12610"
