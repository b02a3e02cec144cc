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

// Package rasterizer reimplements the fixed function drawing pipeline of the
// emulated GPU in CPU code. The three primitive types, rectangles, triangles
// and lines, are scan converted directly into VRAM with the same per pixel
// arithmetic as the hardware: texture sampling through the texture window,
// palette lookup, color modulation, 4x4 ordered dithering, the four semi
// transparency blend modes and the mask bit write protection.
//
// For every combination of shading mode flags there is a specialised routine
// rather than a single branching loop. The routines are collected into
// function tables indexed by the flag combination; DrawRectangle(),
// DrawTriangle() and DrawLine() look up the routine and call it.
//
// Several implementations of the routine tables are built, each tuned to a
// different CPU capability level. SelectImplementation() probes the CPU once
// per process and binds the best available implementation (or the one named
// by the SW_USE_ISA environment variable). All implementations produce bit
// identical output; selection only ever changes throughput.
//
// Rasterization itself is not goroutine safe. The caller must serialize draw
// calls and must not change the drawing area while a draw call is in flight.
// Once selected, the routine tables and the dither table are immutable and
// can be read from any goroutine.
package rasterizer
