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

package performance

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/Trixarian/duckstation/curated"
	"github.com/Trixarian/duckstation/digest"
	"github.com/Trixarian/duckstation/hardware/gpu"
	"github.com/Trixarian/duckstation/hardware/gpu/rasterizer"
)

// the number of triangles, rectangles and lines in one frame of the
// synthetic scene
const (
	sceneTriangles  = 600
	sceneRectangles = 200
	sceneLines      = 100
)

const sceneSeed = 1

// drawFrame renders one frame of the synthetic scene. The rand source
// carries all the state; the sequence of primitives is identical every
// frame.
func drawFrame(g *gpu.GPU, rnd *rand.Rand) int {
	primitives := 0

	vertex := func() rasterizer.Vertex {
		return rasterizer.Vertex{
			X: int32(rnd.Intn(320)), Y: int32(rnd.Intn(240)),
			R: uint8(rnd.Intn(256)), G: uint8(rnd.Intn(256)), B: uint8(rnd.Intn(256)),
			U: uint8(rnd.Intn(256)), V: uint8(rnd.Intn(256)),
		}
	}

	for i := 0; i < sceneTriangles; i++ {
		shaded := i%2 == 0
		semiTransparent := i%3 == 0
		g.DrawTriangle(vertex(), vertex(), vertex(), shaded, false, false, semiTransparent, true)
		primitives++
	}

	for i := 0; i < sceneRectangles; i++ {
		v := vertex()
		g.DrawRectangle(v.X, v.Y, uint32(rnd.Intn(64)+1), uint32(rnd.Intn(64)+1),
			v.R, v.G, v.B, 0, 0, false, false, i%3 == 0)
		primitives++
	}

	for i := 0; i < sceneLines; i++ {
		g.DrawLine(vertex(), vertex(), i%2 == 0, false, true)
		primitives++
	}

	return primitives
}

// Check the performance of the software rasterizer. The synthetic scene is
// rendered for the specified duration; the result summary, including the
// frame digest, is written to output.
//
// If profile is true a CPU profile and a memory profile are written to the
// working directory.
func Check(output io.Writer, profile bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	g, err := gpu.NewGPU()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// enable dithering in the draw mode so the dithered routines are part
	// of the measurement
	g.SetDrawMode(0, 0, rasterizer.TextureDisabled, 0, true)

	dig := digest.NewVideo()
	g.AddPixelRenderer(dig)

	frames := 0
	primitives := 0

	runner := func() error {
		rnd := rand.New(rand.NewSource(sceneSeed))
		end := time.Now().Add(dur)
		for time.Now().Before(end) {
			primitives += drawFrame(g, rnd)
			if err := g.Present(); err != nil {
				return curated.Errorf("performance: %v", err)
			}
			frames++
		}
		return nil
	}

	err = cpuProfile(profile, "cpu.profile", runner)
	if err != nil {
		return err
	}

	sec := dur.Seconds()
	fmt.Fprintf(output, "%s rasterizer\n", rasterizer.Selected().Name)
	fmt.Fprintf(output, "%d frames in %.2fs (%.1f fps)\n", frames, sec, float64(frames)/sec)
	fmt.Fprintf(output, "%.0f primitives/sec\n", float64(primitives)/sec)
	fmt.Fprintf(output, "frame digest: %s\n", dig.Hash())

	return memProfile(profile, "mem.profile")
}
