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

import (
	"github.com/Trixarian/duckstation/hardware/gpu/vram"
)

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// makeDrawLine builds the line routine for one combination of shading mode
// flags. Lines are never textured.
//
// The stepper walks the major axis one pixel at a time with 16.16 fixed
// point accumulators for the minor axis and the color channels. Both
// endpoints are drawn; a zero length line draws a single pixel.
func makeDrawLine(shadingEnable, transparencyEnable, ditheringEnable bool) DrawLineFunc {
	return func(mem *vram.VRAM, cmd *LineCommand, p0, p1 *Vertex) {
		dx := abs32(p1.X - p0.X)
		dy := abs32(p1.Y - p0.Y)

		// oversized primitives are not drawn
		if dx >= MaxPrimitiveWidth || dy >= MaxPrimitiveHeight {
			return
		}

		k := dx
		if dy > k {
			k = dy
		}

		// 16.16 fixed point positions and color accumulators, biased to the
		// pixel centre so that truncation lands on the Bresenham grid
		const fixedOne = int64(1) << 16
		const fixedHalf = fixedOne >> 1

		curX := int64(p0.X)<<16 + fixedHalf
		curY := int64(p0.Y)<<16 + fixedHalf
		curR := int64(p0.R)<<16 + fixedHalf
		curG := int64(p0.G)<<16 + fixedHalf
		curB := int64(p0.B)<<16 + fixedHalf

		var stepX, stepY, stepR, stepG, stepB int64
		if k > 0 {
			stepX = (int64(p1.X-p0.X) << 16) / int64(k)
			stepY = (int64(p1.Y-p0.Y) << 16) / int64(k)
			if shadingEnable {
				stepR = ((int64(p1.R) - int64(p0.R)) << 16) / int64(k)
				stepG = ((int64(p1.G) - int64(p0.G)) << 16) / int64(k)
				stepB = ((int64(p1.B) - int64(p0.B)) << 16) / int64(k)
			}
		}

		area := drawingArea

		// both endpoints are drawn: k+1 steps
		for i := int32(0); i <= k; i++ {
			x := int32(curX >> 16)
			y := int32(curY >> 16)

			curX += stepX
			curY += stepY

			r := uint8(curR >> 16)
			g := uint8(curG >> 16)
			b := uint8(curB >> 16)

			curR += stepR
			curG += stepG
			curB += stepB

			if x < int32(area.Left) || x > int32(area.Right) || y < int32(area.Top) || y > int32(area.Bottom) {
				continue
			}
			if cmd.InterlacedRendering && cmd.ActiveLineLSB == uint8(y)&1 {
				continue
			}

			shadePixel(mem, &cmd.DrawCommand, false, false, transparencyEnable, ditheringEnable,
				uint32(x), uint32(y), r, g, b, 0, 0)
		}
	}
}
