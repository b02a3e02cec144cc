// This file is part of Duckstation.
//
// Duckstation is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Duckstation is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Duckstation.  If not, see <https://www.gnu.org/licenses/>.

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Audio fingerprints a stream of audio samples, chaining each buffer into
// the running SHA-1 value. It implements the host.AudioStream interface.
type Audio struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// WriteSamples implements the host.AudioStream interface. Samples are
// interleaved stereo.
func (dig *Audio) WriteSamples(samples []int16) error {
	dig.buffer = dig.buffer[:0]
	dig.buffer = append(dig.buffer, dig.digest[:]...)
	for _, s := range samples {
		dig.buffer = append(dig.buffer, byte(s), byte(uint16(s)>>8))
	}
	dig.digest = sha1.Sum(dig.buffer)
	return nil
}

// Close implements the host.AudioStream interface.
func (dig *Audio) Close() error {
	return nil
}
