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

// the 5bit blend functions. the average mode truncates both operands before
// adding, matching the hardware's rounding
func blendHalfBPlusHalfF(bg, fg uint16) uint16 {
	v := bg/2 + fg/2
	if v > 0x1f {
		v = 0x1f
	}
	return v
}

func blendBPlusF(bg, fg uint16) uint16 {
	v := bg + fg
	if v > 0x1f {
		v = 0x1f
	}
	return v
}

func blendBMinusF(bg, fg uint16) uint16 {
	if bg > fg {
		return bg - fg
	}
	return 0
}

func blendBPlusQuarterF(bg, fg uint16) uint16 {
	v := bg + fg/4
	if v > 0x1f {
		v = 0x1f
	}
	return v
}

// fetchTexture samples the texture page at the supplied (post texture
// window) coordinates. Palette modes read the palette entry from the CLUT.
func fetchTexture(mem *vram.VRAM, cmd *DrawCommand, texcoordX, texcoordY uint8) uint16 {
	switch cmd.TextureMode {
	case TexturePalette4:
		paletteValue := mem.Pixel(cmd.TexturePageX+uint32(texcoordX/4), cmd.TexturePageY+uint32(texcoordY))
		paletteIndex := (paletteValue >> ((uint16(texcoordX) % 4) * 4)) & 0x0f
		return mem.Pixel(cmd.PaletteX+uint32(paletteIndex), cmd.PaletteY)

	case TexturePalette8:
		paletteValue := mem.Pixel(cmd.TexturePageX+uint32(texcoordX/2), cmd.TexturePageY+uint32(texcoordY))
		paletteIndex := (paletteValue >> ((uint16(texcoordX) % 2) * 8)) & 0xff
		return mem.Pixel(cmd.PaletteX+uint32(paletteIndex), cmd.PaletteY)

	default:
		return mem.Pixel(cmd.TexturePageX+uint32(texcoordX), cmd.TexturePageY+uint32(texcoordY))
	}
}

// shadePixel is the per pixel pipeline: texture sample, color modulation,
// dithering, semi-transparency blend and mask bit handling. The flag
// arguments are constants within each specialised routine.
//
// (x,y) must be inside the drawing area; clipping has already happened by
// the time shadePixel runs.
func shadePixel(mem *vram.VRAM, cmd *DrawCommand, textureEnable, rawTextureEnable, transparencyEnable, ditheringEnable bool, x, y uint32, colorR, colorG, colorB, texcoordX, texcoordY uint8) {
	var color uint16
	var transparent bool

	if textureEnable {
		// apply texture window
		texcoordX = (texcoordX & cmd.Window.AndX) | cmd.Window.OrX
		texcoordY = (texcoordY & cmd.Window.AndY) | cmd.Window.OrY

		textureColor := fetchTexture(mem, cmd, texcoordX, texcoordY)

		// an all-zero texel is the hardware's color key. nothing is drawn,
		// not even the mask bit
		if textureColor == 0 {
			return
		}

		// the texel's mask bit doubles as the semi-transparency flag
		transparent = textureColor&vram.MaskBit != 0

		if rawTextureEnable {
			color = textureColor
		} else {
			// modulate the 5bit texel channels with the 8bit vertex color.
			// the product is taken through the dither table which also
			// performs the shift back down to 5bits
			dr := noDitherRow
			dc := noDitherCol
			if ditheringEnable {
				dr = int(y & 3)
				dc = int(x & 3)
			}

			tr := uint16(textureColor & 0x1f)
			tg := uint16((textureColor >> 5) & 0x1f)
			tb := uint16((textureColor >> 10) & 0x1f)

			color = uint16(ditherLUT[dr][dc][(tr*uint16(colorR))>>4]) |
				uint16(ditherLUT[dr][dc][(tg*uint16(colorG))>>4])<<5 |
				uint16(ditherLUT[dr][dc][(tb*uint16(colorB))>>4])<<10 |
				(textureColor & vram.MaskBit)
		}
	} else {
		// untextured pixels always blend when semi-transparency is on
		transparent = true

		dr := noDitherRow
		dc := noDitherCol
		if ditheringEnable {
			dr = int(y & 3)
			dc = int(x & 3)
		}

		color = uint16(ditherLUT[dr][dc][colorR]) |
			uint16(ditherLUT[dr][dc][colorG])<<5 |
			uint16(ditherLUT[dr][dc][colorB])<<10
	}

	bgColor := mem.Pixel(x, y)

	if transparencyEnable && transparent {
		bgR := bgColor & 0x1f
		bgG := (bgColor >> 5) & 0x1f
		bgB := (bgColor >> 10) & 0x1f
		fgR := color & 0x1f
		fgG := (color >> 5) & 0x1f
		fgB := (color >> 10) & 0x1f

		var blend func(bg, fg uint16) uint16
		switch cmd.TransparencyMode {
		case TransparencyHalfBackgroundPlusHalfForeground:
			blend = blendHalfBPlusHalfF
		case TransparencyBackgroundPlusForeground:
			blend = blendBPlusF
		case TransparencyBackgroundMinusForeground:
			blend = blendBMinusF
		case TransparencyBackgroundPlusQuarterForeground:
			blend = blendBPlusQuarterF
		}

		color = blend(bgR, fgR) | blend(bgG, fgG)<<5 | blend(bgB, fgB)<<10 | (color & vram.MaskBit)
	}

	// mask bit write protection
	if bgColor&cmd.maskAND() != 0 {
		return
	}

	mem.SetPixel(x, y, color|cmd.maskOR())
}
