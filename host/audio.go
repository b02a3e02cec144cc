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

package host

import (
	"strings"
	"sync"

	"github.com/Trixarian/duckstation/curated"
)

// AudioStream implementations receive interleaved stereo samples from the
// emulation.
type AudioStream interface {
	WriteSamples(samples []int16) error
	Close() error
}

// AudioBackend selects how audio samples are output.
type AudioBackend int

// List of valid AudioBackend values.
const (
	AudioBackendNull AudioBackend = iota
	AudioBackendSDL
	AudioBackendWAV
)

// ParseAudioBackend converts a backend name to an AudioBackend value. The
// name is matched case insensitively.
func ParseAudioBackend(s string) (AudioBackend, error) {
	switch strings.ToLower(s) {
	case "", "null":
		return AudioBackendNull, nil
	case "sdl":
		return AudioBackendSDL, nil
	case "wav":
		return AudioBackendWAV, nil
	}
	return AudioBackendNull, curated.Errorf("host: unknown audio backend (%s)", s)
}

// AudioStreamOpener opens an audio stream for a registered backend. The
// filename argument is only meaningful to file-writing backends.
type AudioStreamOpener func(sampleRate, channels, bufferMS int, filename string) (AudioStream, error)

// the host package does not depend on the packages that implement the
// backends. the program's outermost layer registers the openers it has
// linked in
var audioBackends = struct {
	mutex   sync.Mutex
	openers map[AudioBackend]AudioStreamOpener
}{
	openers: make(map[AudioBackend]AudioStreamOpener),
}

// RegisterAudioBackend attaches an opener to a backend, replacing any
// previous registration. The null backend is built in and cannot be
// replaced.
func RegisterAudioBackend(backend AudioBackend, open AudioStreamOpener) {
	audioBackends.mutex.Lock()
	defer audioBackends.mutex.Unlock()
	audioBackends.openers[backend] = open
}

// CreateAudioStream opens an audio stream on the named backend. The filename
// argument is only used by file-writing backends. Requesting a backend that
// has not been registered is an error.
func CreateAudioStream(backend AudioBackend, sampleRate, channels, bufferMS int, filename string) (AudioStream, error) {
	if backend == AudioBackendNull {
		return nullStream{}, nil
	}

	audioBackends.mutex.Lock()
	open := audioBackends.openers[backend]
	audioBackends.mutex.Unlock()

	if open == nil {
		return nil, curated.Errorf("host: audio backend not registered (%d)", int(backend))
	}
	return open(sampleRate, channels, bufferMS, filename)
}

// nullStream discards the samples written to it.
type nullStream struct{}

func (nullStream) WriteSamples(_ []int16) error {
	return nil
}

func (nullStream) Close() error {
	return nil
}
