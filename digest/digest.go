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

// Package digest fingerprints the output of the emulated GPU. The digest is
// chained from frame to frame so that a single hash value summarises an
// entire rendering sequence. Useful for comparing rasterizer output across
// changes without storing the frames themselves.
//
// SHA-1 is fine for this application because this is not a cryptographic
// task.
package digest

// Digest implementations compute a running fingerprint of emulator output.
type Digest interface {
	// Hash returns the current fingerprint as a hex string.
	Hash() string

	// ResetDigest resets the fingerprint to its initial state.
	ResetDigest()
}
