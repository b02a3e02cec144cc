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

// orient2D is the edge function: twice the signed area of the triangle
// (a,b,c). With y increasing downwards, a positive value means the vertices
// wind clockwise on screen.
func orient2D(ax, ay, bx, by, cx, cy int32) int32 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// isTopLeft reports whether the directed edge a->b of a clockwise wound
// triangle is a top or left edge. Pixels lying exactly on a top or left edge
// belong to the triangle; pixels on a right or bottom edge do not. Two
// triangles sharing an edge therefore draw every shared pixel exactly once.
func isTopLeft(ax, ay, bx, by int32) bool {
	return (ay == by && bx > ax) || by < ay
}

func edgeBias(ax, ay, bx, by int32) int32 {
	if isTopLeft(ax, ay, bx, by) {
		return 0
	}
	return -1
}

func min3(a, b, c int32) int32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int32) int32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

// makeDrawTriangle builds the triangle routine for one combination of
// shading mode flags.
//
// Scan conversion is by edge function over the bounding box intersected with
// the drawing area. Color and texture coordinates are interpolated with
// barycentric weights using truncating integer division; the same arithmetic
// in every implementation keeps the output bit identical.
func makeDrawTriangle(shadingEnable, textureEnable, rawTextureEnable, transparencyEnable, ditheringEnable bool) DrawTriangleFunc {
	return func(mem *vram.VRAM, cmd *TriangleCommand, v0, v1, v2 *Vertex) {
		// wind the triangle clockwise. the vertex attributes travel with
		// their vertex so the output is unaffected
		area2 := orient2D(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
		if area2 == 0 {
			// degenerate
			return
		}
		if area2 < 0 {
			v1, v2 = v2, v1
			area2 = -area2
		}

		minX := min3(v0.X, v1.X, v2.X)
		maxX := max3(v0.X, v1.X, v2.X)
		minY := min3(v0.Y, v1.Y, v2.Y)
		maxY := max3(v0.Y, v1.Y, v2.Y)

		// oversized primitives are not drawn
		if maxX-minX >= MaxPrimitiveWidth || maxY-minY >= MaxPrimitiveHeight {
			return
		}

		// intersect bounding box with the drawing area
		area := drawingArea
		if minX < int32(area.Left) {
			minX = int32(area.Left)
		}
		if maxX > int32(area.Right) {
			maxX = int32(area.Right)
		}
		if minY < int32(area.Top) {
			minY = int32(area.Top)
		}
		if maxY > int32(area.Bottom) {
			maxY = int32(area.Bottom)
		}
		if minX > maxX || minY > maxY {
			// fully clipped
			return
		}

		// fill rule biases. edge N is the edge opposite vertex N
		bias0 := edgeBias(v1.X, v1.Y, v2.X, v2.Y)
		bias1 := edgeBias(v2.X, v2.Y, v0.X, v0.Y)
		bias2 := edgeBias(v0.X, v0.Y, v1.X, v1.Y)

		// edge function steps
		a0 := v1.Y - v2.Y
		b0 := v2.X - v1.X
		a1 := v2.Y - v0.Y
		b1 := v0.X - v2.X
		a2 := v0.Y - v1.Y
		b2 := v1.X - v0.X

		// edge function values at the top-left corner of the clipped box
		w0row := orient2D(v1.X, v1.Y, v2.X, v2.Y, minX, minY)
		w1row := orient2D(v2.X, v2.Y, v0.X, v0.Y, minX, minY)
		w2row := orient2D(v0.X, v0.Y, v1.X, v1.Y, minX, minY)

		for y := minY; y <= maxY; y++ {
			w0 := w0row
			w1 := w1row
			w2 := w2row
			w0row += b0
			w1row += b1
			w2row += b2

			if cmd.InterlacedRendering && cmd.ActiveLineLSB == uint8(y)&1 {
				continue
			}

			for x := minX; x <= maxX; x++ {
				c0, c1, c2 := w0, w1, w2
				w0 += a0
				w1 += a1
				w2 += a2

				if c0+bias0 < 0 || c1+bias1 < 0 || c2+bias2 < 0 {
					continue
				}

				var r, g, b uint8
				if shadingEnable {
					r = interpolate(c0, c1, c2, area2, v0.R, v1.R, v2.R)
					g = interpolate(c0, c1, c2, area2, v0.G, v1.G, v2.G)
					b = interpolate(c0, c1, c2, area2, v0.B, v1.B, v2.B)
				} else {
					r = v0.R
					g = v0.G
					b = v0.B
				}

				var u, v uint8
				if textureEnable {
					u = interpolate(c0, c1, c2, area2, v0.U, v1.U, v2.U)
					v = interpolate(c0, c1, c2, area2, v0.V, v1.V, v2.V)
				}

				shadePixel(mem, &cmd.DrawCommand, textureEnable, rawTextureEnable, transparencyEnable, ditheringEnable,
					uint32(x), uint32(y), r, g, b, u, v)
			}
		}
	}
}

// interpolate computes a vertex attribute at a pixel from the barycentric
// weights. The weights are non-negative and sum to area2, so the division
// truncates towards zero for every attribute.
func interpolate(w0, w1, w2, area2 int32, a0, a1, a2 uint8) uint8 {
	return uint8((int64(w0)*int64(a0) + int64(w1)*int64(a1) + int64(w2)*int64(a2)) / int64(area2))
}
