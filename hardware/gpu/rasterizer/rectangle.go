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

// makeDrawRectangle builds the rectangle routine for one combination of
// shading mode flags. Rectangles are never dithered.
//
// spanWidth is the number of pixels the inner loop handles per iteration in
// the flat fill fast path. It changes throughput only, never output.
func makeDrawRectangle(spanWidth int, textureEnable, rawTextureEnable, transparencyEnable bool) DrawRectangleFunc {
	// a flat untextured opaque rectangle writes the same value to every
	// pixel. when the mask bit doesn't need checking the fill reduces to a
	// span write, which is where the wider implementations earn their keep
	fastFill := !textureEnable && !transparencyEnable && spanWidth > 1

	return func(mem *vram.VRAM, cmd *RectangleCommand) {
		area := drawingArea

		if fastFill && !cmd.CheckMaskBeforeDraw && !cmd.InterlacedRendering {
			fillRectangleSpans(mem, cmd, area, spanWidth)
			return
		}

		for offY := uint32(0); offY < cmd.Height; offY++ {
			y := cmd.Y + int32(offY)
			if y < int32(area.Top) || y > int32(area.Bottom) {
				continue
			}
			if cmd.InterlacedRendering && cmd.ActiveLineLSB == uint8(y)&1 {
				continue
			}

			texcoordY := cmd.TexcoordY + uint8(offY)

			for offX := uint32(0); offX < cmd.Width; offX++ {
				x := cmd.X + int32(offX)
				if x < int32(area.Left) || x > int32(area.Right) {
					continue
				}

				texcoordX := cmd.TexcoordX + uint8(offX)

				shadePixel(mem, &cmd.DrawCommand, textureEnable, rawTextureEnable, transparencyEnable, false,
					uint32(x), uint32(y), cmd.R, cmd.G, cmd.B, texcoordX, texcoordY)
			}
		}
	}
}

// fillRectangleSpans writes a flat untextured opaque rectangle span by span.
// Output is bit identical to the per pixel path: the pixel value is the same
// dither table lookup, computed once instead of per pixel.
func fillRectangleSpans(mem *vram.VRAM, cmd *RectangleCommand, area DrawingArea, spanWidth int) {
	color := uint16(ditherLUT[noDitherRow][noDitherCol][cmd.R]) |
		uint16(ditherLUT[noDitherRow][noDitherCol][cmd.G])<<5 |
		uint16(ditherLUT[noDitherRow][noDitherCol][cmd.B])<<10 |
		cmd.maskOR()

	// clip to the drawing area up front
	left := cmd.X
	if left < int32(area.Left) {
		left = int32(area.Left)
	}
	right := cmd.X + int32(cmd.Width) - 1
	if right > int32(area.Right) {
		right = int32(area.Right)
	}
	top := cmd.Y
	if top < int32(area.Top) {
		top = int32(area.Top)
	}
	bottom := cmd.Y + int32(cmd.Height) - 1
	if bottom > int32(area.Bottom) {
		bottom = int32(area.Bottom)
	}
	if left > right || top > bottom {
		return
	}

	for y := top; y <= bottom; y++ {
		x := left

		// unrolled spans
		for ; x+int32(spanWidth) <= right+1; x += int32(spanWidth) {
			for i := int32(0); i < int32(spanWidth); i++ {
				mem.SetPixel(uint32(x+i), uint32(y), color)
			}
		}

		// remainder
		for ; x <= right; x++ {
			mem.SetPixel(uint32(x), uint32(y), color)
		}
	}
}
