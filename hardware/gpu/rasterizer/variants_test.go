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
	"testing"

	"github.com/Trixarian/duckstation/hardware/gpu/vram"
)

// drawScene drives every primitive kind and every flag combination through a
// single implementation's tables.
func drawScene(im *Implementation, mem *vram.VRAM) {
	// a palette and a 4bit texture page so the textured routines have
	// something to sample
	for i := uint32(0); i < 16; i++ {
		mem.SetPixel(320+i, 256, uint16(i*2)|uint16(i)<<5|0x8000)
	}
	for y := uint32(0); y < 16; y++ {
		for x := uint32(0); x < 16; x++ {
			mem.SetPixel(256+x, 128+y, uint16((x+y*3)%16)|uint16((x*5+y)%16)<<4|uint16((x+y)%16)<<8|uint16(x%16)<<12)
		}
	}

	for texture := 0; texture < 2; texture++ {
		for raw := 0; raw < 2; raw++ {
			for transparency := 0; transparency < 2; transparency++ {
				cmd := &RectangleCommand{
					X: int32(texture * 40), Y: int32(raw*30 + transparency*15),
					Width: 13, Height: 9,
					R: 200, G: 90, B: 33,
				}
				cmd.TextureMode = TextureDisabled
				if texture == 1 {
					cmd.TextureMode = TexturePalette4
					cmd.TexturePageX = 256
					cmd.TexturePageY = 128
					cmd.PaletteX = 320
					cmd.PaletteY = 256
				}
				cmd.RawTexture = raw == 1
				cmd.SemiTransparent = transparency == 1
				cmd.TransparencyMode = TransparencyMode(transparency * 2)
				im.Rectangles[texture][raw][transparency](mem, cmd)
			}
		}
	}

	for shading := 0; shading < 2; shading++ {
		for texture := 0; texture < 2; texture++ {
			for raw := 0; raw < 2; raw++ {
				for transparency := 0; transparency < 2; transparency++ {
					for dithering := 0; dithering < 2; dithering++ {
						cmd := &TriangleCommand{}
						cmd.TextureMode = TextureDisabled
						if texture == 1 {
							cmd.TextureMode = TexturePalette4
							cmd.TexturePageX = 256
							cmd.TexturePageY = 128
							cmd.PaletteX = 320
							cmd.PaletteY = 256
						}
						cmd.Shading = shading == 1
						cmd.RawTexture = raw == 1
						cmd.SemiTransparent = transparency == 1
						cmd.Dithering = dithering == 1

						ox := int32(shading*100 + dithering*50)
						oy := int32(100 + texture*60 + raw*30 + transparency*15)
						v0 := &Vertex{X: ox + 2, Y: oy, R: 250, G: 4, B: 77, U: 0, V: 0}
						v1 := &Vertex{X: ox + 40, Y: oy + 5, R: 9, G: 230, B: 12, U: 15, V: 0}
						v2 := &Vertex{X: ox + 11, Y: oy + 28, R: 60, G: 60, B: 200, U: 0, V: 15}
						im.Triangles[shading][texture][raw][transparency][dithering](mem, cmd, v0, v1, v2)
					}
				}
			}
		}
	}

	for shading := 0; shading < 2; shading++ {
		for transparency := 0; transparency < 2; transparency++ {
			for dithering := 0; dithering < 2; dithering++ {
				cmd := &LineCommand{}
				cmd.TextureMode = TextureDisabled
				cmd.Shading = shading == 1
				cmd.SemiTransparent = transparency == 1
				cmd.Dithering = dithering == 1

				ox := int32(400 + shading*60)
				oy := int32(300 + transparency*20 + dithering*10)
				p0 := &Vertex{X: ox, Y: oy, R: 255, G: 128}
				p1 := &Vertex{X: ox + 47, Y: oy + 13, B: 255, G: 30}
				im.Lines[shading][transparency][dithering](mem, cmd, p0, p1)
			}
		}
	}
}

func TestImplementationsBitIdentical(t *testing.T) {
	SetDrawingArea(DrawingArea{Left: 0, Top: 0, Right: vram.Width - 1, Bottom: vram.Height - 1})

	reference := vram.NewVRAM()
	drawScene(baselineImplementation, reference)

	for _, im := range []*Implementation{sse4Implementation, avx2Implementation} {
		mem := vram.NewVRAM()
		drawScene(im, mem)

		for i := range reference.Data {
			if reference.Data[i] != mem.Data[i] {
				t.Fatalf("%s differs from baseline at offset %d: %04x != %04x",
					im.Name, i, mem.Data[i], reference.Data[i])
			}
		}
	}
}
