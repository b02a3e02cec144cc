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

// Primitives with a bounding box this wide or wider (or this tall or taller)
// are not drawn at all.
const (
	MaxPrimitiveWidth  = 1024
	MaxPrimitiveHeight = 512
)

// TextureMode describes how texels are fetched from VRAM.
type TextureMode uint8

// List of valid TextureMode values.
const (
	TexturePalette4 TextureMode = iota
	TexturePalette8
	TextureDirect16
	TextureDisabled
)

// TransparencyMode selects the blend arithmetic used for semi-transparent
// pixels. The arithmetic operates on the 5bit channel values.
type TransparencyMode uint8

// List of valid TransparencyMode values. The blend arithmetic, including the
// rounding direction of the average mode, follows the hardware:
//
//	HalfBackgroundPlusHalfForeground    b/2 + f/2  (both operands truncated)
//	BackgroundPlusForeground            b + f      (saturating at 31)
//	BackgroundMinusForeground           b - f      (flooring at 0)
//	BackgroundPlusQuarterForeground     b + f/4    (saturating at 31)
const (
	TransparencyHalfBackgroundPlusHalfForeground TransparencyMode = iota
	TransparencyBackgroundPlusForeground
	TransparencyBackgroundMinusForeground
	TransparencyBackgroundPlusQuarterForeground
)

// TextureWindow is the texture coordinate remapping applied before every
// texel fetch: coord = (coord & And) | Or. The GPU computes the And/Or pairs
// from the hardware's mask/offset register.
type TextureWindow struct {
	AndX uint8
	AndY uint8
	OrX  uint8
	OrY  uint8
}

// DrawCommand collects the draw state shared by all three primitive types.
// The flag fields select which specialised routine the function tables hand
// back; the remaining fields parameterise that routine.
type DrawCommand struct {
	TextureMode      TextureMode
	TransparencyMode TransparencyMode

	// flags. not every flag is meaningful for every primitive: rectangles
	// are never dithered and lines are never textured
	Shading         bool
	RawTexture      bool
	SemiTransparent bool
	Dithering       bool

	// texture page base in VRAM coordinates
	TexturePageX uint32
	TexturePageY uint32

	// palette (CLUT) base in VRAM coordinates
	PaletteX uint32
	PaletteY uint32

	Window TextureWindow

	// mask bit handling
	CheckMaskBeforeDraw bool
	SetMaskWhileDrawing bool

	// when interlaced rendering is enabled, lines whose LSB equals
	// ActiveLineLSB belong to the field being displayed and are skipped
	InterlacedRendering bool
	ActiveLineLSB       uint8
}

func (cmd *DrawCommand) maskAND() uint16 {
	if cmd.CheckMaskBeforeDraw {
		return vram.MaskBit
	}
	return 0
}

func (cmd *DrawCommand) maskOR() uint16 {
	if cmd.SetMaskWhileDrawing {
		return vram.MaskBit
	}
	return 0
}

// Vertex is a single corner of a primitive. Coordinates are in framebuffer
// space, after the drawing offset has been applied. Color is 8bits per
// channel, pre-dither. U/V are texture coordinates within the texture page.
type Vertex struct {
	X, Y    int32
	R, G, B uint8
	U, V    uint8
}

// RectangleCommand parameterises a rectangle draw.
type RectangleCommand struct {
	DrawCommand

	X, Y          int32
	Width, Height uint32

	// flat color
	R, G, B uint8

	// texture coordinate of the top-left pixel
	TexcoordX, TexcoordY uint8
}

// TriangleCommand parameterises a triangle draw. The vertices are passed
// alongside the command.
type TriangleCommand struct {
	DrawCommand
}

// LineCommand parameterises a line draw. The endpoints are passed alongside
// the command.
type LineCommand struct {
	DrawCommand
}

// DrawRectangleFunc is a specialised rectangle routine.
type DrawRectangleFunc func(mem *vram.VRAM, cmd *RectangleCommand)

// DrawTriangleFunc is a specialised triangle routine.
type DrawTriangleFunc func(mem *vram.VRAM, cmd *TriangleCommand, v0, v1, v2 *Vertex)

// DrawLineFunc is a specialised line routine.
type DrawLineFunc func(mem *vram.VRAM, cmd *LineCommand, p0, p1 *Vertex)

// DrawRectangleFunctionTable is indexed by [texture][rawTexture][transparency].
type DrawRectangleFunctionTable [2][2][2]DrawRectangleFunc

// DrawTriangleFunctionTable is indexed by
// [shading][texture][rawTexture][transparency][dithering].
type DrawTriangleFunctionTable [2][2][2][2][2]DrawTriangleFunc

// DrawLineFunctionTable is indexed by [shading][transparency][dithering].
type DrawLineFunctionTable [2][2][2]DrawLineFunc

// DrawingArea is the hardware clip rectangle. All coordinates are inclusive.
// No rasterization routine writes a pixel outside of it.
type DrawingArea struct {
	Left   uint32
	Top    uint32
	Right  uint32
	Bottom uint32
}

// the shared drawing area. read by every draw routine. the GPU core mutates
// it between draw calls, never during one.
var drawingArea = DrawingArea{
	Left:   0,
	Top:    0,
	Right:  vram.Width - 1,
	Bottom: vram.Height - 1,
}

// SetDrawingArea changes the shared clip rectangle. Must not be called while
// a draw call is in flight.
func SetDrawingArea(area DrawingArea) {
	drawingArea = area
}

// CurrentDrawingArea returns the shared clip rectangle.
func CurrentDrawingArea() DrawingArea {
	return drawingArea
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// DrawRectangle draws a rectangle through the selected implementation's
// function table.
func DrawRectangle(mem *vram.VRAM, cmd *RectangleCommand) {
	im := Selected()
	im.Rectangles[b2i(cmd.TextureMode != TextureDisabled)][b2i(cmd.RawTexture)][b2i(cmd.SemiTransparent)](mem, cmd)
}

// DrawTriangle draws a triangle through the selected implementation's
// function table.
func DrawTriangle(mem *vram.VRAM, cmd *TriangleCommand, v0, v1, v2 *Vertex) {
	im := Selected()
	im.Triangles[b2i(cmd.Shading)][b2i(cmd.TextureMode != TextureDisabled)][b2i(cmd.RawTexture)][b2i(cmd.SemiTransparent)][b2i(cmd.Dithering)](mem, cmd, v0, v1, v2)
}

// DrawLine draws a line through the selected implementation's function
// table.
func DrawLine(mem *vram.VRAM, cmd *LineCommand, p0, p1 *Vertex) {
	im := Selected()
	im.Lines[b2i(cmd.Shading)][b2i(cmd.SemiTransparent)][b2i(cmd.Dithering)](mem, cmd, p0, p1)
}
