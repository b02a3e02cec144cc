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

// Package sdlplay presents GPU frames in an SDL window with an OpenGL
// backend. It implements the gpu.PixelRenderer interface.
//
// SDL restricts window and GL operations to the main thread. The emulation
// loop is expected to run on the main goroutine, with runtime.LockOSThread()
// in effect, when an SdlPlay window is in use.
package sdlplay

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Trixarian/duckstation/curated"
	"github.com/Trixarian/duckstation/logger"
	"github.com/Trixarian/duckstation/version"
)

// SdlPlay is a simple SDL implementation of the gpu.PixelRenderer interface.
type SdlPlay struct {
	window    *sdl.Window
	glContext sdl.GLContext
	tex       texture

	// the amount of scaling applied to each pixel
	scale int32

	// the window is not shown until the first frame arrives
	shown bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
func NewSdlPlay(scale int) (*SdlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &SdlPlay{scale: int32(scale)}

	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	var err error
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		320*scr.scale, 240*scr.scale,
		uint32(sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.glContext, err = scr.window.GLCreateContext()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	if err := gl.Init(); err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	logger.Logf("sdlplay", "opengl: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return scr, nil
}

// Resize implements the gpu.PixelRenderer interface.
func (scr *SdlPlay) Resize(width, height int) error {
	scr.tex.create(width, height)
	scr.window.SetSize(int32(width)*scr.scale, int32(height)*scr.scale)
	return nil
}

// UpdateFrame implements the gpu.PixelRenderer interface.
func (scr *SdlPlay) UpdateFrame(_ int, pixels []uint8) error {
	if !scr.tex.isValid() {
		return curated.Errorf("sdlplay: no texture to update")
	}
	if len(pixels) != int(scr.tex.width*scr.tex.height*4) {
		return curated.Errorf("sdlplay: frame size does not match texture size")
	}

	if !scr.shown {
		scr.window.Show()
		scr.shown = true
	}

	scr.tex.update(pixels)

	w, h := scr.window.GLGetDrawableSize()
	scr.tex.render(w, h)
	scr.window.GLSwap()

	return nil
}

// Service one pass of the SDL event queue. Returns false when the user has
// asked to quit.
func (scr *SdlPlay) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
		}
	}
	return true
}

// Destroy the window and its GL resources.
func (scr *SdlPlay) Destroy() {
	scr.tex.destroy()
	sdl.GLDeleteContext(scr.glContext)
	if err := scr.window.Destroy(); err != nil {
		logger.Logf("sdlplay", "%v", err)
	}
}
