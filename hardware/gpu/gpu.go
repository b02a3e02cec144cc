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

// Package gpu is the emulation core of the PSX GPU. It owns the VRAM and the
// drawing registers, translates draw requests into rasterizer commands, and
// hands finished frames to any registered PixelRenderer.
package gpu

import (
	"os"

	"github.com/Trixarian/duckstation/hardware/gpu/rasterizer"
	"github.com/Trixarian/duckstation/hardware/gpu/vram"
	"github.com/Trixarian/duckstation/logger"
)

// PixelRenderer implementations displays, or otherwise deals with, a
// finished frame. For example, a GUI window or a digest of the frame's
// contents.
type PixelRenderer interface {
	// Resize is called when the display area changes size, and once when
	// the renderer is first registered.
	Resize(width, height int) error

	// UpdateFrame is called on every Present() with the display area as
	// RGBA bytes, four per pixel in raster order.
	UpdateFrame(frameNum int, pixels []uint8) error
}

// GPU is the emulated graphics processor. It is not safe for concurrent use;
// the emulation loop owns it.
type GPU struct {
	Mem   *vram.VRAM
	Prefs *Preferences

	// sticky draw state applied to every primitive. individual draw calls
	// override the per-primitive flags
	cmd rasterizer.DrawCommand

	// the dithering enable bit of the draw mode register. folded into
	// cmd.Dithering together with the dithering preference
	ditherEnable bool

	drawOffsetX int32
	drawOffsetY int32

	// display area presented to the pixel renderers
	displayX      uint32
	displayY      uint32
	displayWidth  uint32
	displayHeight uint32

	renderers []PixelRenderer
	frame     []uint8
	frameNum  int
}

// NewGPU is the preferred method of initialisation for the GPU type. The
// rasterizer implementation is selected on first call.
func NewGPU() (*GPU, error) {
	g := &GPU{
		Mem:           vram.NewVRAM(),
		displayWidth:  320,
		displayHeight: 240,
	}

	var err error
	g.Prefs, err = NewPreferences()
	if err != nil {
		return nil, err
	}

	// the environment variable wins over the preference value
	if os.Getenv(rasterizer.EnvOverride) == "" {
		if p := g.Prefs.Rasterizer.String(); p != "" {
			logger.Logf("gpu", "rasterizer preference: %s", p)
			_ = os.Setenv(rasterizer.EnvOverride, p)
		}
	}
	rasterizer.SelectImplementation()

	g.Reset()

	return g, nil
}

// Reset the GPU to its power-on state. Registered pixel renderers are kept.
func (g *GPU) Reset() {
	g.Mem.Reset()
	g.cmd = rasterizer.DrawCommand{
		TextureMode: rasterizer.TextureDisabled,
	}
	g.ditherEnable = false
	g.drawOffsetX = 0
	g.drawOffsetY = 0
	rasterizer.SetDrawingArea(rasterizer.DrawingArea{
		Left: 0, Top: 0,
		Right:  vram.Width - 1,
		Bottom: vram.Height - 1,
	})
}

// SetDrawingArea sets the clip rectangle. Coordinates are inclusive and are
// masked to the register widths of the hardware.
func (g *GPU) SetDrawingArea(left, top, right, bottom uint32) {
	rasterizer.SetDrawingArea(rasterizer.DrawingArea{
		Left:   left & 0x3ff,
		Top:    top & 0x1ff,
		Right:  right & 0x3ff,
		Bottom: bottom & 0x1ff,
	})
}

// SetDrawingOffset sets the offset added to every vertex coordinate. The
// hardware register is 11bits signed; out of range values wrap accordingly.
func (g *GPU) SetDrawingOffset(x, y int32) {
	g.drawOffsetX = (x << 21) >> 21
	g.drawOffsetY = (y << 21) >> 21
}

// SetTextureWindow sets the texture coordinate window. Mask and offset are in
// units of 8 pixels, five bits each, as in the hardware register.
func (g *GPU) SetTextureWindow(maskX, maskY, offsetX, offsetY uint8) {
	maskX &= 0x1f
	maskY &= 0x1f
	offsetX &= 0x1f
	offsetY &= 0x1f
	g.cmd.Window = rasterizer.TextureWindow{
		AndX: ^(maskX * 8),
		AndY: ^(maskY * 8),
		OrX:  (offsetX & maskX) * 8,
		OrY:  (offsetY & maskY) * 8,
	}
}

// SetDrawMode sets the texture page base, the texture mode, the default
// transparency mode and the dithering enable bit.
func (g *GPU) SetDrawMode(pageX, pageY uint32, mode rasterizer.TextureMode,
	transparency rasterizer.TransparencyMode, dithering bool) {
	g.cmd.TexturePageX = pageX % vram.Width
	g.cmd.TexturePageY = pageY % vram.Height
	g.cmd.TextureMode = mode
	g.cmd.TransparencyMode = transparency
	g.ditherEnable = dithering
}

// SetTexturePalette sets the palette (CLUT) base in VRAM coordinates.
func (g *GPU) SetTexturePalette(x, y uint32) {
	g.cmd.PaletteX = x % vram.Width
	g.cmd.PaletteY = y % vram.Height
}

// SetMaskBits controls the mask bit behaviour of subsequent draws and VRAM
// writes.
func (g *GPU) SetMaskBits(setWhileDrawing, checkBeforeDraw bool) {
	g.cmd.SetMaskWhileDrawing = setWhileDrawing
	g.cmd.CheckMaskBeforeDraw = checkBeforeDraw
}

// SetInterlace controls interlaced rendering. When enabled, lines whose LSB
// equals activeLineLSB are skipped by the draw routines.
func (g *GPU) SetInterlace(enabled bool, activeLineLSB uint8) {
	g.cmd.InterlacedRendering = enabled
	g.cmd.ActiveLineLSB = activeLineLSB & 1
}

// SetDisplayArea sets the VRAM region handed to the pixel renderers on
// Present().
func (g *GPU) SetDisplayArea(x, y, width, height uint32) {
	resize := width != g.displayWidth || height != g.displayHeight
	g.displayX = x % vram.Width
	g.displayY = y % vram.Height
	g.displayWidth = width
	g.displayHeight = height

	if resize {
		for _, r := range g.renderers {
			if err := r.Resize(int(width), int(height)); err != nil {
				logger.Logf("gpu", "renderer resize: %v", err)
			}
		}
	}
}

func (g *GPU) dithering(requested bool) bool {
	return requested && g.ditherEnable && g.Prefs.Dithering.Get().(bool)
}

// DrawRectangle draws an axis aligned rectangle. X/Y are pre-offset
// coordinates. When textured is false the rectangle is drawn in the flat
// color; raw is only meaningful for textured draws. Rectangles are never
// dithered.
func (g *GPU) DrawRectangle(x, y int32, width, height uint32, red, green, blue uint8,
	texX, texY uint8, textured, raw, semiTransparent bool) {
	cmd := rasterizer.RectangleCommand{
		DrawCommand: g.cmd,
		X:           x + g.drawOffsetX,
		Y:           y + g.drawOffsetY,
		Width:       width,
		Height:      height,
		R:           red,
		G:           green,
		B:           blue,
		TexcoordX:   texX,
		TexcoordY:   texY,
	}
	if !textured {
		cmd.TextureMode = rasterizer.TextureDisabled
	}
	cmd.RawTexture = raw
	cmd.SemiTransparent = semiTransparent
	cmd.Dithering = false

	rasterizer.DrawRectangle(g.Mem, &cmd)
}

// DrawTriangle draws a single triangle. Vertex coordinates are pre-offset.
func (g *GPU) DrawTriangle(v0, v1, v2 rasterizer.Vertex, shaded, textured, raw, semiTransparent, dithered bool) {
	cmd := rasterizer.TriangleCommand{DrawCommand: g.cmd}
	if !textured {
		cmd.TextureMode = rasterizer.TextureDisabled
	}
	cmd.Shading = shaded
	cmd.RawTexture = raw
	cmd.SemiTransparent = semiTransparent
	cmd.Dithering = g.dithering(dithered)

	g.offsetVertex(&v0)
	g.offsetVertex(&v1)
	g.offsetVertex(&v2)

	rasterizer.DrawTriangle(g.Mem, &cmd, &v0, &v1, &v2)
}

// DrawQuad draws a quadrilateral as two triangles sharing the v1-v2 edge,
// matching the hardware's vertex order.
func (g *GPU) DrawQuad(v0, v1, v2, v3 rasterizer.Vertex, shaded, textured, raw, semiTransparent, dithered bool) {
	g.DrawTriangle(v0, v1, v2, shaded, textured, raw, semiTransparent, dithered)
	g.DrawTriangle(v2, v1, v3, shaded, textured, raw, semiTransparent, dithered)
}

// DrawLine draws a line between two endpoints, both inclusive. Lines are
// never textured.
func (g *GPU) DrawLine(p0, p1 rasterizer.Vertex, shaded, semiTransparent, dithered bool) {
	cmd := rasterizer.LineCommand{DrawCommand: g.cmd}
	cmd.TextureMode = rasterizer.TextureDisabled
	cmd.Shading = shaded
	cmd.SemiTransparent = semiTransparent
	cmd.Dithering = g.dithering(dithered)

	g.offsetVertex(&p0)
	g.offsetVertex(&p1)

	rasterizer.DrawLine(g.Mem, &cmd, &p0, &p1)
}

// DrawPolyLine draws a connected series of line segments.
func (g *GPU) DrawPolyLine(points []rasterizer.Vertex, shaded, semiTransparent, dithered bool) {
	for i := 1; i < len(points); i++ {
		g.DrawLine(points[i-1], points[i], shaded, semiTransparent, dithered)
	}
}

func (g *GPU) offsetVertex(v *rasterizer.Vertex) {
	v.X += g.drawOffsetX
	v.Y += g.drawOffsetY
}

// FillVRAM fills a rectangle with a flat color. The fill ignores the mask
// bit, as the hardware fill does, and clears the mask bit of every filled
// pixel.
func (g *GPU) FillVRAM(x, y, width, height uint32, red, green, blue uint8) {
	p := uint16(red>>3) | uint16(green>>3)<<5 | uint16(blue>>3)<<10
	g.Mem.Fill(x%vram.Width, y%vram.Height, width, height, p)
}

// WriteVRAM uploads pixel data to a VRAM rectangle, honoring the mask
// registers.
func (g *GPU) WriteVRAM(x, y, width, height uint32, data []uint16) {
	g.Mem.WriteRect(x%vram.Width, y%vram.Height, width, height, data, g.maskAND(), g.maskOR())
}

// ReadVRAM copies a VRAM rectangle into the supplied slice, which must be at
// least width*height long.
func (g *GPU) ReadVRAM(x, y, width, height uint32, data []uint16) {
	g.Mem.ReadRect(x%vram.Width, y%vram.Height, width, height, data)
}

// CopyVRAM copies a rectangle within VRAM, honoring the mask registers.
func (g *GPU) CopyVRAM(srcX, srcY, dstX, dstY, width, height uint32) {
	g.Mem.CopyRect(srcX%vram.Width, srcY%vram.Height, dstX%vram.Width, dstY%vram.Height,
		width, height, g.maskAND(), g.maskOR())
}

func (g *GPU) maskAND() uint16 {
	if g.cmd.CheckMaskBeforeDraw {
		return vram.MaskBit
	}
	return 0
}

func (g *GPU) maskOR() uint16 {
	if g.cmd.SetMaskWhileDrawing {
		return vram.MaskBit
	}
	return 0
}

// AddPixelRenderer registers a renderer to receive frames on Present().
func (g *GPU) AddPixelRenderer(r PixelRenderer) {
	if err := r.Resize(int(g.displayWidth), int(g.displayHeight)); err != nil {
		logger.Logf("gpu", "renderer resize: %v", err)
	}
	g.renderers = append(g.renderers, r)
}

// Present converts the display area to RGBA and hands it to every registered
// pixel renderer.
func (g *GPU) Present() error {
	g.frame = g.Mem.RGBA(g.displayX, g.displayY, g.displayWidth, g.displayHeight, g.frame[:0])
	g.frameNum++

	for _, r := range g.renderers {
		if err := r.UpdateFrame(g.frameNum, g.frame); err != nil {
			return err
		}
	}

	return nil
}
