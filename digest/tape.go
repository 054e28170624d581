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

// Package digest produces a cryptographic hash of an input tape. The hash can
// be used to compare the output of subsequent runs: if a new hash differs from
// a previously recorded value then something has changed. It is the basis for
// the determinism tests and for playback verification.
package digest

import (
	"crypto/sha1"
	"fmt"
)

// Tape is the running digest of a sequence of input tokens. Fingerprints are chained: each token is hashed together with the
// fingerprint of every token before it, so the hash depends on order as well
// as content.
type Tape struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewTape is the preferred method of initialisation for the Tape type.
func NewTape() *Tape {
	return &Tape{
		buffer: make([]byte, 0, sha1.Size+16),
	}
}

// Push adds the next token of the tape to the digest.
func (dig *Tape) Push(token string) {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the buffer
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, token...)
	dig.digest = sha1.Sum(dig.buffer)
}

// Hash returns the digest of every token pushed so far.
func (dig *Tape) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Tokens is a convenience function that returns the hash of a complete list
// of tokens.
func Tokens[T ~string](tokens []T) string {
	dig := NewTape()
	for _, t := range tokens {
		dig.Push(string(t))
	}
	return dig.Hash()
}
