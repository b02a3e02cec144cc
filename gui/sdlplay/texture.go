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

package sdlplay

import (
	"github.com/go-gl/gl/v3.2-core/gl"
)

// texture is the GL texture the frame is uploaded to, together with the
// framebuffer object used to blit it to the window. All functions must be
// called from the main thread with the GL context current.
type texture struct {
	id     uint32
	fbo    uint32
	width  int32
	height int32
}

func (tex *texture) isValid() bool {
	return tex.id != 0
}

// create the texture at the supplied size. An existing texture is destroyed
// first.
func (tex *texture) create(width, height int) {
	tex.destroy()

	tex.width = int32(width)
	tex.height = int32(height)

	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, tex.width, tex.height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		nil)

	gl.GenFramebuffers(1, &tex.fbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, tex.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex.id, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

// update the whole texture with the supplied RGBA data, which must be
// width*height*4 bytes.
func (tex *texture) update(pixels []uint8) {
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		0, 0, tex.width, tex.height,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pixels))
}

// render blits the texture to the window's default framebuffer. The source
// is flipped vertically: the frame is in raster order but GL framebuffer
// coordinates start at the bottom.
func (tex *texture) render(winWidth, winHeight int32) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, tex.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, tex.height, tex.width, 0,
		0, 0, winWidth, winHeight,
		gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

func (tex *texture) destroy() {
	if tex.fbo != 0 {
		gl.DeleteFramebuffers(1, &tex.fbo)
		tex.fbo = 0
	}
	if tex.id != 0 {
		gl.DeleteTextures(1, &tex.id)
		tex.id = 0
	}
}
