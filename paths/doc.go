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

// Package paths prepares the paths of the files produced by a conversion run
// and makes sure that those files are written in their entirety or not at
// all.
//
// The Resolve() function joins the output directory with the artifact
// filenames, applying defaults for any filename that has not been
// specified. For example, with no overrides, the following:
//
//	a, _ := paths.Resolve("out", "docs/us_constitution.pdf", paths.Names{})
//
// will give these paths:
//
//	out/us_constitution_inputs.json
//	out/game_inputs.txt
//	out/document_player.lua
//
// Files are written through the Staged type. Content is written to a
// temporary file in the destination directory and only renamed to the
// destination filename by Commit(). A failed run never leaves a partial file
// under the destination name.
package paths
