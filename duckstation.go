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

package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/Trixarian/duckstation/digest"
	"github.com/Trixarian/duckstation/gui/sdlaudio"
	"github.com/Trixarian/duckstation/gui/sdlplay"
	"github.com/Trixarian/duckstation/hardware/gpu"
	"github.com/Trixarian/duckstation/hardware/gpu/rasterizer"
	"github.com/Trixarian/duckstation/host"
	"github.com/Trixarian/duckstation/logger"
	"github.com/Trixarian/duckstation/modalflag"
	"github.com/Trixarian/duckstation/performance"
	"github.com/Trixarian/duckstation/statsview"
	"github.com/Trixarian/duckstation/version"
	"github.com/Trixarian/duckstation/wavwriter"
)

func init() {
	// SDL requires window and GL handling to happen on the main thread
	runtime.LockOSThread()

	// the host package only knows about the audio backends registered here
	host.RegisterAudioBackend(host.AudioBackendSDL,
		func(sampleRate, channels, bufferMS int, _ string) (host.AudioStream, error) {
			return sdlaudio.NewAudio(sampleRate, channels, bufferMS)
		})
	host.RegisterAudioBackend(host.AudioBackendWAV,
		func(sampleRate, channels, _ int, filename string) (host.AudioStream, error) {
			return wavwriter.New(filename, sampleRate, channels)
		})
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddInt("scale", 2, "window scale")
	audio := md.AddString("audio", "null", "audio backend: null, sdl, wav")
	audioFile := md.AddString("audiofile", "audio.wav", "output file for the wav audio backend")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, "launch the stats server (requires the statsview build)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "* stats server not available in this build")
		}
	}

	g, err := gpu.NewGPU()
	if err != nil {
		return err
	}
	g.SetDisplayArea(0, 0, 320, 240)

	scr, err := sdlplay.NewSdlPlay(*scale)
	if err != nil {
		return err
	}
	defer scr.Destroy()
	g.AddPixelRenderer(scr)

	dig := digest.NewVideo()
	g.AddPixelRenderer(dig)

	backend, err := host.ParseAudioBackend(*audio)
	if err != nil {
		return err
	}
	stream, err := host.CreateAudioStream(backend, 44100, 2, 50, *audioFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := stream.Close(); err != nil {
			logger.Logf("main", "%v", err)
		}
	}()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// reported however the loop ends, window close or interrupt
	defer func() {
		logger.Logf("main", "final frame digest: %s", dig.Hash())
	}()

	// a 60Hz demonstration loop. the scene exercises every primitive kind;
	// the audio stream carries a quiet test tone
	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()

	samples := make([]int16, 0, 44100/60*2)
	var phase float64

	frame := 0
	for scr.Service() {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil
		case <-tick.C:
		}

		drawDemoFrame(g, frame)
		if err := g.Present(); err != nil {
			return err
		}

		samples = samples[:0]
		for i := 0; i < 44100/60; i++ {
			v := int16(math.Sin(phase) * 2000)
			phase += 2 * math.Pi * 440 / 44100
			samples = append(samples, v, v)
		}
		if err := stream.WriteSamples(samples); err != nil {
			return err
		}

		frame++
	}

	return nil
}

// drawDemoFrame renders one frame of the demonstration scene: a dithered
// background, a rotating shaded triangle, a semi-transparent rectangle sweep
// and a fan of lines.
func drawDemoFrame(g *gpu.GPU, frame int) {
	g.FillVRAM(0, 0, 320, 240, 16, 16, 48)
	g.SetDrawMode(0, 0, rasterizer.TextureDisabled, rasterizer.TransparencyHalfBackgroundPlusHalfForeground, true)

	a := float64(frame) * math.Pi / 180

	vtx := func(angle float64, cr, cg, cb uint8) rasterizer.Vertex {
		return rasterizer.Vertex{
			X: int32(160 + 80*math.Cos(angle)),
			Y: int32(120 + 80*math.Sin(angle)),
			R: cr, G: cg, B: cb,
		}
	}
	g.DrawTriangle(
		vtx(a, 255, 0, 0),
		vtx(a+2*math.Pi/3, 0, 255, 0),
		vtx(a+4*math.Pi/3, 0, 0, 255),
		true, false, false, false, true)

	x := int32(frame % 280)
	g.DrawRectangle(x, 180, 40, 40, 255, 255, 255, 0, 0, false, false, true)

	for i := 0; i < 8; i++ {
		b := a + float64(i)*math.Pi/4
		g.DrawLine(
			rasterizer.Vertex{X: 160, Y: 120, R: 255, G: 255},
			rasterizer.Vertex{
				X: int32(160 + 40*math.Cos(b)),
				Y: int32(120 + 40*math.Sin(b)),
				B: 255,
			},
			true, false, false)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "how long to run the measurement for")
	profile := md.AddBool("profile", false, "write CPU and memory profiles")
	stats := md.AddBool("stats", false, "launch the stats server (requires the statsview build)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "* stats server not available in this build")
		}
	}

	return performance.Check(md.Output, *profile, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintf(md.Output, "%s (%s)\n", version.Version, version.ApplicationName)
	fmt.Fprintf(md.Output, "rasterizer implementations: baseline, sse4, avx2\n")

	return nil
}
