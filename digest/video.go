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

// Video is an implementation of the gpu.PixelRenderer interface. It folds
// every presented frame into a SHA-1 value, chaining the previous frame's
// value into the new one. It does not display the image anywhere.
type Video struct {
	digest   [sha1.Size]byte
	buffer   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
// Register the returned instance with gpu.AddPixelRenderer().
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// FrameNum returns the frame number of the most recently digested frame.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// Resize implements the gpu.PixelRenderer interface.
func (dig *Video) Resize(width, height int) error {
	dig.buffer = make([]byte, sha1.Size, sha1.Size+width*height*4)
	return nil
}

// UpdateFrame implements the gpu.PixelRenderer interface. The previous
// digest value is prepended to the frame data before hashing, chaining the
// fingerprints.
func (dig *Video) UpdateFrame(frameNum int, pixels []uint8) error {
	copy(dig.buffer[:sha1.Size], dig.digest[:])
	dig.buffer = append(dig.buffer[:sha1.Size], pixels...)
	dig.digest = sha1.Sum(dig.buffer)
	dig.frameNum = frameNum
	return nil
}
