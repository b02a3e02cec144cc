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

// Implementation is one complete build of the primitive routines: a routine
// for every combination of primitive kind and shading mode flags. The
// tables are built once at package init and never change.
type Implementation struct {
	Name string

	Rectangles DrawRectangleFunctionTable
	Triangles  DrawTriangleFunctionTable
	Lines      DrawLineFunctionTable
}

// newImplementation builds the full set of function tables. spanWidth tunes
// the unrolled inner loops; it has no effect on output.
func newImplementation(name string, spanWidth int) *Implementation {
	im := &Implementation{Name: name}

	for texture := 0; texture < 2; texture++ {
		for raw := 0; raw < 2; raw++ {
			for transparency := 0; transparency < 2; transparency++ {
				im.Rectangles[texture][raw][transparency] =
					makeDrawRectangle(spanWidth, texture == 1, raw == 1, transparency == 1)
			}
		}
	}

	for shading := 0; shading < 2; shading++ {
		for texture := 0; texture < 2; texture++ {
			for raw := 0; raw < 2; raw++ {
				for transparency := 0; transparency < 2; transparency++ {
					for dithering := 0; dithering < 2; dithering++ {
						im.Triangles[shading][texture][raw][transparency][dithering] =
							makeDrawTriangle(shading == 1, texture == 1, raw == 1, transparency == 1, dithering == 1)
					}
				}
			}
		}
	}

	for shading := 0; shading < 2; shading++ {
		for transparency := 0; transparency < 2; transparency++ {
			for dithering := 0; dithering < 2; dithering++ {
				im.Lines[shading][transparency][dithering] =
					makeDrawLine(shading == 1, transparency == 1, dithering == 1)
			}
		}
	}

	return im
}

// the available implementations. the baseline implementation works on any
// CPU; the others assume progressively wider vector units and are only
// selectable when the CPU probe reports support.
var (
	baselineImplementation = newImplementation("baseline", 1)
	sse4Implementation     = newImplementation("sse4", 4)
	avx2Implementation     = newImplementation("avx2", 8)
)
