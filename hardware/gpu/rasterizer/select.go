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

package rasterizer

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Trixarian/duckstation/logger"
)

// EnvOverride is the environment variable naming the implementation to use
// instead of the automatically selected one. Recognised values are the
// implementation names, matched case insensitively. An override is only
// honored if the CPU supports the named implementation.
const EnvOverride = "SW_USE_ISA"

// the active implementation. a single pointer so that a selection binds all
// three function tables at once; callers can never observe a partially
// updated set.
var selected atomic.Pointer[Implementation]

var selectOnce sync.Once

func init() {
	selected.Store(baselineImplementation)
}

// Selected returns the active implementation. Before SelectImplementation()
// has been called this is the baseline implementation.
func Selected() *Implementation {
	return selected.Load()
}

// SelectImplementation probes the CPU and binds the best available
// implementation, honoring the EnvOverride environment variable when it
// names a supported one. The selection happens exactly once per process; a
// second call, from any goroutine, is a no-op.
//
// A failed CPU probe is not fatal: the baseline implementation remains
// active and the failure is logged.
func SelectImplementation() {
	selectOnce.Do(selectImplementation)
}

func selectImplementation() {
	override := strings.ToLower(os.Getenv(EnvOverride))

	supported, err := probeCPU()
	if err != nil {
		logger.Logf("rasterizer", "cpu probe failed, using %s implementation: %v", baselineImplementation.Name, err)
		return
	}

	chosen := chooseImplementation(override, supported)
	selected.Store(chosen)

	logger.Logf("rasterizer", "using %s software rasterizer implementation", chosen.Name)
}

// chooseImplementation picks from the supported implementations, which are
// ordered from the highest capability tier downwards and never include the
// baseline. An override naming an unsupported implementation is ignored in
// favour of the best supported one.
func chooseImplementation(override string, supported []*Implementation) *Implementation {
	chosen := baselineImplementation
	if len(supported) > 0 {
		chosen = supported[0]
	}

	if override == "" {
		return chosen
	}

	if override == baselineImplementation.Name {
		return baselineImplementation
	}

	for _, im := range supported {
		if im.Name == override {
			return im
		}
	}

	logger.Logf("rasterizer", "%s=%s not supported, using %s implementation", EnvOverride, override, chosen.Name)
	return chosen
}
