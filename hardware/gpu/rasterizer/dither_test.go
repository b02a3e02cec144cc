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

package rasterizer_test

import (
	"testing"

	"github.com/Trixarian/duckstation/hardware/gpu/rasterizer"
)

func TestDitherLUTRange(t *testing.T) {
	lut := rasterizer.BuildDitherLUT()

	for r := 0; r < rasterizer.DitherMatrixSize; r++ {
		for c := 0; c < rasterizer.DitherMatrixSize; c++ {
			for v := 0; v < rasterizer.DitherLUTSize; v++ {
				if lut[r][c][v] > 31 {
					t.Fatalf("lut[%d][%d][%d] = %d, outside [0,31]", r, c, v, lut[r][c][v])
				}
			}
		}
	}
}

func TestDitherLUTMonotonic(t *testing.T) {
	lut := rasterizer.BuildDitherLUT()

	for r := 0; r < rasterizer.DitherMatrixSize; r++ {
		for c := 0; c < rasterizer.DitherMatrixSize; c++ {
			for v := 1; v < rasterizer.DitherLUTSize; v++ {
				if lut[r][c][v] < lut[r][c][v-1] {
					t.Fatalf("lut[%d][%d] not monotonic at %d (%d < %d)", r, c, v, lut[r][c][v], lut[r][c][v-1])
				}
			}
		}
	}
}

func TestDitherLUTZeroBiasPosition(t *testing.T) {
	// position [2][3] of the dither matrix holds a bias of zero. the
	// no-dithering path relies on this: a lookup there must reduce to a
	// plain shift and clamp
	lut := rasterizer.BuildDitherLUT()

	for v := 0; v < rasterizer.DitherLUTSize; v++ {
		expected := uint8(v >> 3)
		if expected > 31 {
			expected = 31
		}
		if lut[2][3][v] != expected {
			t.Fatalf("lut[2][3][%d] = %d, wanted %d", v, lut[2][3][v], expected)
		}
	}
}

func TestDitherLUTDeterministic(t *testing.T) {
	a := rasterizer.BuildDitherLUT()
	b := rasterizer.BuildDitherLUT()
	if *a != *b {
		t.Fatalf("BuildDitherLUT() is not deterministic")
	}
}
