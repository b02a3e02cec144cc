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

package gpu

import (
	"github.com/Trixarian/duckstation/prefs"
	"github.com/Trixarian/duckstation/resources"
)

// Preferences defines and collates the preference values used by the GPU.
type Preferences struct {
	dsk *prefs.Disk

	// honor the dithering enable bit in the draw mode register. when false
	// the rasterizer never dithers, whatever the emulated program asks for
	Dithering prefs.Bool

	// name of the preferred rasterizer implementation. the empty string
	// means automatic selection. the SW_USE_ISA environment variable takes
	// precedence over this value
	Rasterizer prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("gpu.dithering", &p.Dithering)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gpu.rasterizer", &p.Rasterizer)
	if err != nil {
		return nil, err
	}

	err = p.Dithering.Set(true)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Load current preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
