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

package logger

// Permission is consulted by every call to Log() and Logf(). An entry is only
// made if AllowLogging() returns true at the time of the call.
//
// The pipeline stages always pass Allow. Tests pass their own implementation
// to switch logging on and off.
type Permission interface {
	AllowLogging() bool
}

// always grants permission
type always struct{}

func (always) AllowLogging() bool {
	return true
}

// Allow is the Permission used by every docjoy package that logs, from
// extract through to luahost. Entries made with it are always recorded.
var Allow Permission = always{}
