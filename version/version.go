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

// Package version identifies the build. A release build sets the version
// number with the linker:
//
//	go build -ldflags "-X github.com/docjoy/docjoy/version.number=v1.0.0"
//
// Other builds are described as "unreleased" when version control
// information is available and "local" when it is not.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name used when referring to the application.
const ApplicationName = "docjoy"

// set by the linker for release builds
var number string

// length of a revision when shown in a banner
const shortRevision = 12

type build struct {
	version  string
	revision string
	release  bool
}

var current build

func init() {
	info, _ := debug.ReadBuildInfo()
	current = describe(number, info)
}

// describe the build from the linker supplied version number and the build
// information recorded by the go tool. info may be nil
func describe(number string, info *debug.BuildInfo) build {
	var b build
	var vcs bool
	var dirty bool

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				b.revision = s.Value
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}

	if b.revision != "" && dirty {
		b.revision = fmt.Sprintf("%s+dirty", b.revision)
	}

	switch {
	case number != "":
		b.version = number
		b.release = true
	case vcs:
		b.version = "unreleased"
	default:
		b.version = "local"
	}

	return b
}

// Version returns the version string, the revision string and whether this is
// a numbered release. The revision is empty if there is no version control
// information.
func Version() (string, string, bool) {
	return current.version, current.revision, current.release
}

// Banner returns a single line naming the application and its version. It is
// stamped into generated files so that a file can be traced back to the build
// that made it. The revision is only included for unnumbered builds.
func Banner() string {
	return current.banner()
}

func (b build) banner() string {
	if b.release || b.revision == "" {
		return fmt.Sprintf("%s %s", ApplicationName, b.version)
	}

	r := b.revision
	if len(r) > shortRevision {
		r = r[:shortRevision]
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, b.version, r)
}
