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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// on Close(). It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/Trixarian/duckstation/curated"
	"github.com/Trixarian/duckstation/logger"
)

// WavWriter implements the host.AudioStream interface.
type WavWriter struct {
	filename   string
	sampleRate int
	channels   int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
// Samples are interleaved when channels is greater than one.
func New(filename string, sampleRate, channels int) (*WavWriter, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, curated.Errorf("wavwriter: bad parameters for wav encoding")
	}

	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// WriteSamples implements the host.AudioStream interface.
func (aw *WavWriter) WriteSamples(samples []int16) error {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// Close implements the host.AudioStream interface. The buffered audio is
// encoded and written to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, 16, aw.channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: aw.channels,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "audio written to %s", aw.filename)

	return nil
}
