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

// Package sdlaudio plays audio through SDL's queueing audio API.
package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Trixarian/duckstation/curated"
	"github.com/Trixarian/duckstation/logger"
)

// if the queue grows beyond this many bytes the stream has fallen behind the
// device and is dropped back to the latency target
const maxQueuedBytes = 65536

// Audio outputs sound using SDL. It implements the host.AudioStream
// interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// scratch buffer for the int16 to byte conversion
	scratch []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Samples are interleaved when channels is greater than one.
func NewAudio(sampleRate, channels, bufferMS int) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud := &Audio{}

	samples := nextPow2(sampleRate * bufferMS / 1000)

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: uint8(channels),
		Samples:  uint16(samples),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	logger.Logf("sdlaudio", "%dHz, %d channels, %d sample buffer",
		aud.spec.Freq, aud.spec.Channels, aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

func nextPow2(v int) int {
	p := 1
	for p < v {
		p *= 2
	}
	return p
}

// WriteSamples implements the host.AudioStream interface.
func (aud *Audio) WriteSamples(samples []int16) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueuedBytes {
		sdl.ClearQueuedAudio(aud.id)
	}

	aud.scratch = aud.scratch[:0]
	for _, s := range samples {
		aud.scratch = append(aud.scratch, byte(s), byte(uint16(s)>>8))
	}

	if err := sdl.QueueAudio(aud.id, aud.scratch); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// Close implements the host.AudioStream interface.
func (aud *Audio) Close() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
