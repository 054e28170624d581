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

// Package playback turns an input sequence into the two files needed to play
// it in an emulator: the tape and the playback script.
//
// The tape is a text file with one input token per line. The script is a Lua
// program for the emulator's scripting API. It reads the tape when it starts
// and registers a callback that is run before every frame. The callback
// works through three states:
//
//	loading   -> playing     the tape has been read successfully
//	playing   -> playing     the current input is asserted for the hold
//	                         duration and then the tape advances
//	playing   -> completed   the tape is exhausted. all buttons are released
//	                         and the callback unregisters itself
//
// Failing to read the tape stops the script with an error. The completed
// state is terminal.
//
// Progress is printed every ProgressInterval inputs with the elapsed and
// remaining time. Both times are calculated from the number of frames and so
// are independent of how fast the emulator is running.
package playback
