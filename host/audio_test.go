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

package host_test

import (
	"testing"

	"github.com/Trixarian/duckstation/host"
	"github.com/Trixarian/duckstation/test"
)

func TestParseAudioBackend(t *testing.T) {
	b, err := host.ParseAudioBackend("")
	test.Equate(t, err, nil)
	test.Equate(t, int(b), int(host.AudioBackendNull))

	b, err = host.ParseAudioBackend("SDL")
	test.Equate(t, err, nil)
	test.Equate(t, int(b), int(host.AudioBackendSDL))

	b, err = host.ParseAudioBackend("wav")
	test.Equate(t, err, nil)
	test.Equate(t, int(b), int(host.AudioBackendWAV))

	_, err = host.ParseAudioBackend("pulse")
	test.ExpectedFailure(t, err)
}

func TestNullAudioStream(t *testing.T) {
	// the null backend needs no registration
	stream, err := host.CreateAudioStream(host.AudioBackendNull, 44100, 2, 50, "")
	test.Equate(t, err, nil)

	test.Equate(t, stream.WriteSamples([]int16{0, 0}), nil)
	test.Equate(t, stream.Close(), nil)
}

type recordedStream struct {
	sampleRate int
	channels   int
	bufferMS   int
	filename   string
}

func (s *recordedStream) WriteSamples(_ []int16) error {
	return nil
}

func (s *recordedStream) Close() error {
	return nil
}

func TestAudioBackendRegistration(t *testing.T) {
	// backends other than null are only available once an opener has been
	// registered. this keeps the package free of any dependency on the
	// packages that implement the backends
	_, err := host.CreateAudioStream(host.AudioBackendSDL, 44100, 2, 50, "")
	test.ExpectedFailure(t, err)

	host.RegisterAudioBackend(host.AudioBackendSDL,
		func(sampleRate, channels, bufferMS int, filename string) (host.AudioStream, error) {
			return &recordedStream{
				sampleRate: sampleRate,
				channels:   channels,
				bufferMS:   bufferMS,
				filename:   filename,
			}, nil
		})

	stream, err := host.CreateAudioStream(host.AudioBackendSDL, 44100, 2, 50, "capture.wav")
	test.Equate(t, err, nil)

	rec, ok := stream.(*recordedStream)
	if !ok {
		t.Fatalf("stream is not the registered opener's stream")
	}
	test.Equate(t, rec.sampleRate, 44100)
	test.Equate(t, rec.channels, 2)
	test.Equate(t, rec.bufferMS, 50)
	test.Equate(t, rec.filename, "capture.wav")
}
