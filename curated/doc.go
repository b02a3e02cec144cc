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

// Package curated is the error mechanism used throughout the emulator. A
// curated error is created with the Errorf() function, which looks and feels
// like the Errorf() function from the fmt package. The difference is that the
// formatting pattern is retained and can be tested for later with the Is()
// and Has() functions.
//
// Keeping the pattern around means that a function deep inside the GPU or the
// host layer can label an error condition and an outer layer can decide how to
// react without resorting to string matching on the formatted message.
//
// Error messages are also normalised as they pass up the call chain. Wrapping
// a curated error with another curated error that uses the same leading
// message part will not repeat that part in the final string.
package curated
