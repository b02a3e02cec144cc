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

//go:build amd64

package rasterizer

import (
	"golang.org/x/sys/cpu"
)

// probeCPU returns the supported implementations above the baseline,
// highest capability tier first.
func probeCPU() ([]*Implementation, error) {
	var supported []*Implementation

	if cpu.X86.HasAVX2 {
		supported = append(supported, avx2Implementation)
	}
	if cpu.X86.HasSSE41 {
		supported = append(supported, sse4Implementation)
	}

	return supported, nil
}
