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

// Package vram implements the video memory of the emulated GPU. VRAM is a
// fixed 1024x512 store of 16bit pixels. A pixel is five bits each of red,
// green and blue (least significant bits first) plus the mask bit in bit 15.
//
// Coordinates given to the access functions wrap around the edges of VRAM,
// as they do on the real hardware.
package vram

// Dimensions of VRAM in 16bit pixels.
const (
	Width  = 1024
	Height = 512
)

// MaskBit is the per-pixel flag used by the hardware for selective overwrite
// protection.
const MaskBit = uint16(0x8000)

// VRAM is the video memory the rasterizer reads from and writes to. The GPU
// owns the single instance; the rasterizer only ever receives a reference.
type VRAM struct {
	Data []uint16
}

// NewVRAM is the preferred method of initialisation for the VRAM type.
func NewVRAM() *VRAM {
	return &VRAM{
		Data: make([]uint16, Width*Height),
	}
}

// Reset VRAM to its initial all-zero state.
func (v *VRAM) Reset() {
	for i := range v.Data {
		v.Data[i] = 0
	}
}

// Pixel returns the pixel at the supplied coordinates. Coordinates wrap.
func (v *VRAM) Pixel(x, y uint32) uint16 {
	return v.Data[(y%Height)*Width+(x%Width)]
}

// SetPixel writes the pixel at the supplied coordinates. Coordinates wrap.
func (v *VRAM) SetPixel(x, y uint32, p uint16) {
	v.Data[(y%Height)*Width+(x%Width)] = p
}

// Fill the rectangle with the supplied pixel value. The fill ignores the
// mask bit of existing pixels, as the hardware fill does. Coordinates wrap.
func (v *VRAM) Fill(x, y, width, height uint32, p uint16) {
	for oy := uint32(0); oy < height; oy++ {
		row := ((y + oy) % Height) * Width
		for ox := uint32(0); ox < width; ox++ {
			v.Data[row+((x+ox)%Width)] = p
		}
	}
}

// WriteRect copies the supplied pixel data into the rectangle. Pixels whose
// existing value has a bit set in maskAND are left untouched; maskOR is OR'd
// into every written pixel. Coordinates wrap.
func (v *VRAM) WriteRect(x, y, width, height uint32, data []uint16, maskAND, maskOR uint16) {
	i := 0
	for oy := uint32(0); oy < height; oy++ {
		row := ((y + oy) % Height) * Width
		for ox := uint32(0); ox < width; ox++ {
			idx := row + ((x + ox) % Width)
			if v.Data[idx]&maskAND == 0 {
				v.Data[idx] = data[i] | maskOR
			}
			i++
		}
	}
}

// ReadRect copies the rectangle out of VRAM into the supplied slice, which
// must be at least width*height long. Coordinates wrap.
func (v *VRAM) ReadRect(x, y, width, height uint32, data []uint16) {
	i := 0
	for oy := uint32(0); oy < height; oy++ {
		row := ((y + oy) % Height) * Width
		for ox := uint32(0); ox < width; ox++ {
			data[i] = v.Data[row+((x+ox)%Width)]
			i++
		}
	}
}

// CopyRect copies a rectangle inside VRAM. Respects maskAND/maskOR in the
// same way as WriteRect. Coordinates wrap. Overlapping copies proceed in
// raster order, matching the hardware.
func (v *VRAM) CopyRect(srcX, srcY, dstX, dstY, width, height uint32, maskAND, maskOR uint16) {
	for oy := uint32(0); oy < height; oy++ {
		srcRow := ((srcY + oy) % Height) * Width
		dstRow := ((dstY + oy) % Height) * Width
		for ox := uint32(0); ox < width; ox++ {
			src := v.Data[srcRow+((srcX+ox)%Width)]
			idx := dstRow + ((dstX + ox) % Width)
			if v.Data[idx]&maskAND == 0 {
				v.Data[idx] = src | maskOR
			}
		}
	}
}

// RGBA converts the rectangle to 8bit RGBA data, appending to the supplied
// slice and returning the result. The 5bit channels are expanded to 8bits by
// bit replication. The mask bit is not represented in the output.
func (v *VRAM) RGBA(x, y, width, height uint32, pixels []uint8) []uint8 {
	for oy := uint32(0); oy < height; oy++ {
		row := ((y + oy) % Height) * Width
		for ox := uint32(0); ox < width; ox++ {
			p := v.Data[row+((x+ox)%Width)]
			r := uint8(p & 0x1f)
			g := uint8((p >> 5) & 0x1f)
			b := uint8((p >> 10) & 0x1f)
			pixels = append(pixels, r<<3|r>>2, g<<3|g>>2, b<<3|b>>2, 255)
		}
	}
	return pixels
}
