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

package paths

import (
	"os"
	"path/filepath"

	"github.com/docjoy/docjoy/curated"
)

// Staged is a file that is written under a temporary name and moved to its
// destination by Commit(). It implements the io.Writer interface.
type Staged struct {
	dest string
	f    *os.File
}

// Stage creates the temporary file for the destination. The temporary file is
// in the same directory as the destination so that the final rename does not
// cross filesystems.
func Stage(dest string) (*Staged, error) {
	f, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*")
	if err != nil {
		return nil, curated.Errorf(curated.IOError, dest, err)
	}
	return &Staged{dest: dest, f: f}, nil
}

// Dest returns the destination filename.
func (stg *Staged) Dest() string {
	return stg.dest
}

// Write implements the io.Writer interface.
func (stg *Staged) Write(p []byte) (int, error) {
	n, err := stg.f.Write(p)
	if err != nil {
		return n, curated.Errorf(curated.IOError, stg.dest, err)
	}
	return n, nil
}

// Close flushes the temporary file to disk and closes it. Commit() or
// Discard() should be called afterwards.
func (stg *Staged) Close() error {
	if err := stg.f.Sync(); err != nil {
		stg.f.Close()
		return curated.Errorf(curated.IOError, stg.dest, err)
	}
	if err := stg.f.Close(); err != nil {
		return curated.Errorf(curated.IOError, stg.dest, err)
	}
	return nil
}

// Commit moves the temporary file to the destination. The temporary file is
// removed if the move fails.
func (stg *Staged) Commit() error {
	if err := os.Chmod(stg.f.Name(), 0o644); err != nil {
		stg.Discard()
		return curated.Errorf(curated.IOError, stg.dest, err)
	}
	if err := os.Rename(stg.f.Name(), stg.dest); err != nil {
		stg.Discard()
		return curated.Errorf(curated.IOError, stg.dest, err)
	}
	return nil
}

// Discard removes the temporary file. Safe to call more than once and after
// Close().
func (stg *Staged) Discard() {
	_ = stg.f.Close()
	_ = os.Remove(stg.f.Name())
}

// WriteFile stages, writes and commits the data in one call.
func WriteFile(dest string, data []byte) error {
	stg, err := Stage(dest)
	if err != nil {
		return err
	}
	if _, err := stg.Write(data); err != nil {
		stg.Discard()
		return err
	}
	if err := stg.Close(); err != nil {
		stg.Discard()
		return err
	}
	return stg.Commit()
}
