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

package gpu_test

import (
	"testing"

	"github.com/Trixarian/duckstation/hardware/gpu"
	"github.com/Trixarian/duckstation/hardware/gpu/rasterizer"
	"github.com/Trixarian/duckstation/test"
)

func newGPU(t *testing.T) *gpu.GPU {
	t.Helper()
	g, err := gpu.NewGPU()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDrawingOffset(t *testing.T) {
	g := newGPU(t)

	g.SetDrawingOffset(100, 50)
	g.DrawRectangle(10, 10, 2, 2, 255, 0, 0, 0, 0, false, false, false)

	test.Equate(t, g.Mem.Pixel(110, 60), 0x001f)
	test.Equate(t, g.Mem.Pixel(10, 10), 0)
}

func TestDrawingOffsetSignExtension(t *testing.T) {
	g := newGPU(t)

	// the hardware register is 11bits signed. 0x7ff reads back as -1
	g.SetDrawingOffset(0x7ff, 0x7ff)
	g.DrawRectangle(11, 21, 1, 1, 0, 255, 0, 0, 0, false, false, false)

	test.Equate(t, g.Mem.Pixel(10, 20), 0x03e0)
}

func TestTextureWindow(t *testing.T) {
	g := newGPU(t)

	// mask 2, offset 2: coord = (coord & ^16) | 16. texcoord 0 remaps
	// to 16
	g.SetTextureWindow(2, 2, 2, 2)

	// upload a 8bit texture page with a recognisable texel at (16,16):
	// two texels per 16bit pixel
	g.WriteVRAM(512+8, 16, 1, 1, []uint16{0x0005})

	// palette entry 5
	g.WriteVRAM(0, 400, 6, 1, []uint16{0, 0, 0, 0, 0, 0x7fff})

	g.SetDrawMode(512, 0, rasterizer.TexturePalette8, 0, false)
	g.SetTexturePalette(0, 400)

	// texcoord (0,16) remaps to (16,16)
	g.DrawRectangle(100, 100, 1, 1, 0, 0, 0, 0, 16, true, true, false)

	test.Equate(t, g.Mem.Pixel(100, 100), 0x7fff)
}

func TestQuad(t *testing.T) {
	g := newGPU(t)

	// a screen aligned quad covers its bounding box exactly once
	v0 := rasterizer.Vertex{X: 0, Y: 0, R: 255}
	v1 := rasterizer.Vertex{X: 8, Y: 0, R: 255}
	v2 := rasterizer.Vertex{X: 0, Y: 8, R: 255}
	v3 := rasterizer.Vertex{X: 8, Y: 8, R: 255}
	g.DrawQuad(v0, v1, v2, v3, false, false, false, false, false)

	for y := uint32(0); y < 8; y++ {
		for x := uint32(0); x < 8; x++ {
			test.Equate(t, g.Mem.Pixel(x, y), 0x001f)
		}
	}
	for i := uint32(0); i < 9; i++ {
		test.Equate(t, g.Mem.Pixel(8, i), 0)
		test.Equate(t, g.Mem.Pixel(i, 8), 0)
	}
}

func TestFillVRAMIgnoresMask(t *testing.T) {
	g := newGPU(t)

	g.SetMaskBits(false, true)
	g.WriteVRAM(5, 5, 1, 1, []uint16{0x8000})

	// fill ignores the mask bit and clears it
	g.FillVRAM(0, 0, 16, 16, 0, 0, 255)
	test.Equate(t, g.Mem.Pixel(5, 5), 0x7c00)
}

func TestWriteVRAMMask(t *testing.T) {
	g := newGPU(t)

	g.SetMaskBits(true, true)
	g.WriteVRAM(0, 0, 2, 1, []uint16{0x001f, 0x03e0})

	// mask bit is set on write
	test.Equate(t, g.Mem.Pixel(0, 0), 0x801f)
	test.Equate(t, g.Mem.Pixel(1, 0), 0x83e0)

	// and protects against the second write
	g.WriteVRAM(0, 0, 2, 1, []uint16{0x7fff, 0x7fff})
	test.Equate(t, g.Mem.Pixel(0, 0), 0x801f)
	test.Equate(t, g.Mem.Pixel(1, 0), 0x83e0)
}

func TestCopyVRAM(t *testing.T) {
	g := newGPU(t)

	g.WriteVRAM(0, 0, 2, 2, []uint16{1, 2, 3, 4})
	g.CopyVRAM(0, 0, 100, 100, 2, 2)

	test.Equate(t, g.Mem.Pixel(100, 100), 1)
	test.Equate(t, g.Mem.Pixel(101, 100), 2)
	test.Equate(t, g.Mem.Pixel(100, 101), 3)
	test.Equate(t, g.Mem.Pixel(101, 101), 4)
}

type mockRenderer struct {
	width    int
	height   int
	frameNum int
	pixels   []uint8
}

func (m *mockRenderer) Resize(width, height int) error {
	m.width = width
	m.height = height
	return nil
}

func (m *mockRenderer) UpdateFrame(frameNum int, pixels []uint8) error {
	m.frameNum = frameNum
	m.pixels = append(m.pixels[:0], pixels...)
	return nil
}

func TestPresent(t *testing.T) {
	g := newGPU(t)

	m := &mockRenderer{}
	g.AddPixelRenderer(m)
	test.Equate(t, m.width, 320)
	test.Equate(t, m.height, 240)

	g.SetDisplayArea(0, 0, 4, 2)
	test.Equate(t, m.width, 4)
	test.Equate(t, m.height, 2)

	g.FillVRAM(0, 0, 4, 2, 255, 0, 0)
	if err := g.Present(); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, m.frameNum, 1)
	test.Equate(t, len(m.pixels), 4*2*4)

	// 255 quantizes to the 5bit value 31, which bit replication expands
	// back to a full 255
	test.Equate(t, m.pixels[0], 255)
	test.Equate(t, m.pixels[1], 0)
	test.Equate(t, m.pixels[3], 255)
}

func TestDitheringPreference(t *testing.T) {
	g := newGPU(t)

	if err := g.Prefs.Dithering.Set(false); err != nil {
		t.Fatal(err)
	}
	g.SetDrawMode(0, 0, rasterizer.TextureDisabled, 0, true)

	// a flat triangle with dithering requested but disabled by preference.
	// color 6 without dithering is channel value 0 on every pixel; with
	// dithering some pixels would round up to 1
	v0 := rasterizer.Vertex{X: 0, Y: 0, R: 6}
	v1 := rasterizer.Vertex{X: 16, Y: 0, R: 6}
	v2 := rasterizer.Vertex{X: 0, Y: 16, R: 6}
	g.DrawTriangle(v0, v1, v2, false, false, false, false, true)

	for y := uint32(0); y < 8; y++ {
		for x := uint32(0); x < 8-y; x++ {
			if g.Mem.Pixel(x, y) != 0 {
				t.Fatalf("pixel (%d,%d) dithered with dithering preference off", x, y)
			}
		}
	}
}
