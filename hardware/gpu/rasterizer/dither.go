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

package rasterizer

// DitherMatrixSize is the period of the ordered dither pattern in both
// directions.
const DitherMatrixSize = 4

// DitherLUTSize is the number of representable input intensity levels. The
// input to the table is either an 8bit color channel or the result of
// texture modulation, which can reach (31*255)>>4 = 494.
const DitherLUTSize = 512

// the hardware's ordered dither pattern. note that position [2][3] holds a
// bias of zero: lookups through that position reduce to a plain shift and
// clamp, which is how the no-dithering path is implemented.
var ditherMatrix = [DitherMatrixSize][DitherMatrixSize]int32{
	{-4, +0, -3, +1},
	{+2, -2, +3, -1},
	{-3, +1, -4, +0},
	{+3, -1, +2, -2},
}

// dither matrix position used when dithering is disabled. the bias at this
// position is zero.
const (
	noDitherRow = 2
	noDitherCol = 3
)

// DitherLUT maps (row mod 4, column mod 4, input value) to the dithered and
// clamped 5bit output value.
type DitherLUT [DitherMatrixSize][DitherMatrixSize][DitherLUTSize]uint8

// BuildDitherLUT computes the dither lookup table. Pure function of static
// inputs; the package builds the table once at init and shares it between
// all implementations.
func BuildDitherLUT() *DitherLUT {
	lut := &DitherLUT{}
	for i := 0; i < DitherMatrixSize; i++ {
		for j := 0; j < DitherMatrixSize; j++ {
			for value := 0; value < DitherLUTSize; value++ {
				dithered := (int32(value) + ditherMatrix[i][j]) >> 3
				if dithered < 0 {
					dithered = 0
				} else if dithered > 31 {
					dithered = 31
				}
				lut[i][j][value] = uint8(dithered)
			}
		}
	}
	return lut
}

var ditherLUT = BuildDitherLUT()
