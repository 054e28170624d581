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

// Package luahost runs playback scripts outside of an emulator. It provides
// enough of the emulator's scripting API for a playback script to run from
// start to finish:
//
//	emu.registerbefore(fn)      register (or with nil, unregister) the frame callback
//	joypad.set([which,] keys)   assert buttons for the current frame
//	gui.text(x, y, message)     recorded as the overlay message
//	print(...)                  recorded and logged
//	io.open(name [, mode])      read-only. relative to the script's directory
//
// Each simulated frame calls the registered callback once. The buttons
// asserted in each frame are recorded in a Report, from which the tape can be
// reconstructed and compared with an input sequence by Verify().
package luahost
