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

// Package performance measures the throughput of the software rasterizer.
//
// Check() renders a synthetic scene repeatedly for a fixed duration of time
// and reports frames and primitives per second. It will optionally generate
// CPU and memory profiling information. The scene is deterministic so that
// results, and the frame digest, are comparable between runs and between
// rasterizer implementations.
package performance
