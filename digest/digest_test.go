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

package digest_test

import (
	"testing"

	"github.com/Trixarian/duckstation/digest"
	"github.com/Trixarian/duckstation/test"
)

func TestVideoChaining(t *testing.T) {
	dig := digest.NewVideo()
	if err := dig.Resize(2, 2); err != nil {
		t.Fatal(err)
	}

	empty := dig.Hash()

	frame := make([]uint8, 2*2*4)
	if err := dig.UpdateFrame(1, frame); err != nil {
		t.Fatal(err)
	}
	first := dig.Hash()
	if first == empty {
		t.Fatal("digest unchanged after frame")
	}

	// the same frame data again produces a different hash. the digest is
	// chained
	if err := dig.UpdateFrame(2, frame); err != nil {
		t.Fatal(err)
	}
	if dig.Hash() == first {
		t.Fatal("digest not chained from frame to frame")
	}
	test.Equate(t, dig.FrameNum(), 2)

	// reset and replay gives the first hash again
	dig.ResetDigest()
	if err := dig.UpdateFrame(3, frame); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, dig.Hash(), first)
}

func TestAudioChaining(t *testing.T) {
	dig := digest.NewAudio()

	samples := []int16{0, 100, -100, 32767}
	if err := dig.WriteSamples(samples); err != nil {
		t.Fatal(err)
	}
	first := dig.Hash()

	if err := dig.WriteSamples(samples); err != nil {
		t.Fatal(err)
	}
	if dig.Hash() == first {
		t.Fatal("digest not chained from buffer to buffer")
	}

	dig.ResetDigest()
	if err := dig.WriteSamples(samples); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, dig.Hash(), first)
}
