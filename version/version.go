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

// Package version records the version number of the project.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Duckstation"

// Version contains the version string for the current build. If the source
// has been modified but not committed then the string is suffixed with
// "+dirty". A value of "local" means there is no vcs information at all,
// which can happen when compiling/running with "go run .".
var Version = "local"

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision string
	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision == "" {
		return
	}

	Version = revision
	if modified {
		Version += "+dirty"
	}
}
