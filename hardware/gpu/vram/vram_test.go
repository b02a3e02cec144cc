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

package vram_test

import (
	"testing"

	"github.com/Trixarian/duckstation/hardware/gpu/vram"
	"github.com/Trixarian/duckstation/test"
)

func TestWrap(t *testing.T) {
	v := vram.NewVRAM()

	v.SetPixel(vram.Width, vram.Height, 0x1234)
	test.Equate(t, v.Pixel(0, 0), 0x1234)
	test.Equate(t, v.Pixel(vram.Width*2, vram.Height*2), 0x1234)
}

func TestFill(t *testing.T) {
	v := vram.NewVRAM()

	// fill ignores the mask bit of existing pixels
	v.SetPixel(10, 10, vram.MaskBit)
	v.Fill(8, 8, 8, 8, 0x03e0)

	test.Equate(t, v.Pixel(10, 10), 0x03e0)
	test.Equate(t, v.Pixel(15, 15), 0x03e0)
	test.Equate(t, v.Pixel(16, 8), 0)
}

func TestWriteRectMask(t *testing.T) {
	v := vram.NewVRAM()

	// protect one pixel with the mask bit
	v.SetPixel(1, 0, vram.MaskBit)

	data := []uint16{0x001f, 0x001f, 0x001f, 0x001f}
	v.WriteRect(0, 0, 4, 1, data, vram.MaskBit, 0)

	test.Equate(t, v.Pixel(0, 0), 0x001f)
	test.Equate(t, v.Pixel(1, 0), vram.MaskBit)
	test.Equate(t, v.Pixel(2, 0), 0x001f)

	// maskOR sets the mask bit on written pixels
	v.WriteRect(0, 1, 2, 1, data, 0, vram.MaskBit)
	test.Equate(t, v.Pixel(0, 1), 0x801f)
}

func TestCopyRect(t *testing.T) {
	v := vram.NewVRAM()

	v.SetPixel(0, 0, 0x001f)
	v.SetPixel(1, 0, 0x03e0)
	v.CopyRect(0, 0, 100, 100, 2, 1, 0, 0)

	test.Equate(t, v.Pixel(100, 100), 0x001f)
	test.Equate(t, v.Pixel(101, 100), 0x03e0)
}

func TestRGBA(t *testing.T) {
	v := vram.NewVRAM()

	// maximum red with the mask bit set. mask bit should not appear in the
	// RGBA expansion
	v.SetPixel(0, 0, 0x001f|vram.MaskBit)

	pixels := v.RGBA(0, 0, 1, 1, nil)
	test.Equate(t, int(pixels[0]), 255)
	test.Equate(t, int(pixels[1]), 0)
	test.Equate(t, int(pixels[2]), 0)
	test.Equate(t, int(pixels[3]), 255)
}
