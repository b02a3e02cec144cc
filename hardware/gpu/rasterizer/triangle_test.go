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
	"github.com/Trixarian/duckstation/hardware/gpu/vram"
	"github.com/Trixarian/duckstation/test"
)

func flatTriangle(mem *vram.VRAM, v0, v1, v2 rasterizer.Vertex) {
	cmd := &rasterizer.TriangleCommand{}
	cmd.TextureMode = rasterizer.TextureDisabled
	rasterizer.DrawTriangle(mem, cmd, &v0, &v1, &v2)
}

func TestTriangleSharedEdgeAdjacency(t *testing.T) {
	rasterizer.SetDrawingArea(fullDrawingArea())

	// a quad split into two triangles along the diagonal. every pixel
	// inside the quad must be drawn by exactly one of the two triangles
	a := vram.NewVRAM()
	b := vram.NewVRAM()

	flatTriangle(a, rasterizer.Vertex{X: 0, Y: 0, R: 255}, rasterizer.Vertex{X: 4, Y: 0, R: 255}, rasterizer.Vertex{X: 4, Y: 4, R: 255})
	flatTriangle(b, rasterizer.Vertex{X: 0, Y: 0, G: 255}, rasterizer.Vertex{X: 4, Y: 4, G: 255}, rasterizer.Vertex{X: 0, Y: 4, G: 255})

	for y := uint32(0); y < 6; y++ {
		for x := uint32(0); x < 6; x++ {
			inA := a.Pixel(x, y) != 0
			inB := b.Pixel(x, y) != 0
			inside := x < 4 && y < 4

			if inside {
				if inA == inB {
					t.Fatalf("pixel (%d,%d) drawn by %d triangles, wanted exactly one", x, y, map[bool]int{true: 2, false: 0}[inA])
				}
			} else {
				if inA || inB {
					t.Fatalf("pixel (%d,%d) drawn outside the quad", x, y)
				}
			}
		}
	}
}

func TestTriangleDegenerate(t *testing.T) {
	rasterizer.SetDrawingArea(fullDrawingArea())

	mem := vram.NewVRAM()

	// zero signed area: all three vertices on a line
	flatTriangle(mem, rasterizer.Vertex{X: 0, Y: 0, R: 255}, rasterizer.Vertex{X: 5, Y: 5, R: 255}, rasterizer.Vertex{X: 10, Y: 10, R: 255})
	test.Equate(t, countPixels(mem), 0)

	// all three vertices coincident
	flatTriangle(mem, rasterizer.Vertex{X: 3, Y: 3, R: 255}, rasterizer.Vertex{X: 3, Y: 3, R: 255}, rasterizer.Vertex{X: 3, Y: 3, R: 255})
	test.Equate(t, countPixels(mem), 0)
}

func TestTriangleOversized(t *testing.T) {
	rasterizer.SetDrawingArea(fullDrawingArea())

	mem := vram.NewVRAM()

	// wider than the maximum primitive size. not drawn at all
	flatTriangle(mem, rasterizer.Vertex{X: 0, Y: 0, R: 255}, rasterizer.Vertex{X: 1024, Y: 0, R: 255}, rasterizer.Vertex{X: 0, Y: 10, R: 255})
	test.Equate(t, countPixels(mem), 0)

	// taller than the maximum primitive size
	flatTriangle(mem, rasterizer.Vertex{X: 0, Y: 0, R: 255}, rasterizer.Vertex{X: 10, Y: 0, R: 255}, rasterizer.Vertex{X: 0, Y: 512, R: 255})
	test.Equate(t, countPixels(mem), 0)
}

func TestTriangleWindingIndependence(t *testing.T) {
	rasterizer.SetDrawingArea(fullDrawingArea())

	// the same triangle wound both ways covers the same pixels
	a := vram.NewVRAM()
	b := vram.NewVRAM()

	flatTriangle(a, rasterizer.Vertex{X: 2, Y: 1, R: 255}, rasterizer.Vertex{X: 9, Y: 3, R: 255}, rasterizer.Vertex{X: 4, Y: 8, R: 255})
	flatTriangle(b, rasterizer.Vertex{X: 2, Y: 1, R: 255}, rasterizer.Vertex{X: 4, Y: 8, R: 255}, rasterizer.Vertex{X: 9, Y: 3, R: 255})

	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("winding order changed the drawn pixel set (offset %d)", i)
		}
	}
}

func TestTriangleDeterminism(t *testing.T) {
	rasterizer.SetDrawingArea(fullDrawingArea())

	a := vram.NewVRAM()
	b := vram.NewVRAM()

	cmd := &rasterizer.TriangleCommand{}
	cmd.TextureMode = rasterizer.TextureDisabled
	cmd.Shading = true
	cmd.Dithering = true

	v0 := rasterizer.Vertex{X: 10, Y: 5, R: 255, G: 10, B: 3}
	v1 := rasterizer.Vertex{X: 100, Y: 50, R: 0, G: 200, B: 90}
	v2 := rasterizer.Vertex{X: 30, Y: 90, R: 17, G: 99, B: 255}

	rasterizer.DrawTriangle(a, cmd, &v0, &v1, &v2)
	rasterizer.DrawTriangle(b, cmd, &v0, &v1, &v2)

	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("triangle draw is not deterministic at offset %d", i)
		}
	}
}

func TestTriangleShadedCorners(t *testing.T) {
	rasterizer.SetDrawingArea(fullDrawingArea())

	mem := vram.NewVRAM()

	// a large right triangle with the right angle at the origin. the
	// pixel at the right angle takes the first vertex's color exactly
	cmd := &rasterizer.TriangleCommand{}
	cmd.TextureMode = rasterizer.TextureDisabled
	cmd.Shading = true

	v0 := rasterizer.Vertex{X: 0, Y: 0, R: 248}
	v1 := rasterizer.Vertex{X: 64, Y: 0, G: 248}
	v2 := rasterizer.Vertex{X: 0, Y: 64, B: 248}

	rasterizer.DrawTriangle(mem, cmd, &v0, &v1, &v2)

	// 248 >> 3 == 31
	test.Equate(t, mem.Pixel(0, 0), 0x001f)
}

func TestTriangleClipped(t *testing.T) {
	rasterizer.SetDrawingArea(rasterizer.DrawingArea{Left: 0, Top: 0, Right: 4, Bottom: 4})
	defer rasterizer.SetDrawingArea(fullDrawingArea())

	mem := vram.NewVRAM()

	// triangle extends beyond the drawing area. no pixel outside the
	// drawing area may be written
	flatTriangle(mem, rasterizer.Vertex{X: 0, Y: 0, R: 255}, rasterizer.Vertex{X: 20, Y: 0, R: 255}, rasterizer.Vertex{X: 0, Y: 20, R: 255})

	for y := uint32(0); y < 25; y++ {
		for x := uint32(0); x < 25; x++ {
			if (x > 4 || y > 4) && mem.Pixel(x, y) != 0 {
				t.Fatalf("pixel (%d,%d) written outside the drawing area", x, y)
			}
		}
	}

	// but pixels inside both the triangle and the drawing area are drawn
	test.Equate(t, mem.Pixel(0, 0), 0x001f)
	test.Equate(t, mem.Pixel(4, 4), 0x001f)
}
