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

// Package resources locates files that the application needs to persist
// between sessions. Currently, the only such file is the preferences file.
package resources

import (
	"os"
	"path/filepath"
	"strings"
)

const baseDir = "duckstation"

// JoinPath prepends the supplied path with an OS specific base path. The
// function creates all folders necessary to reach the end of the sub-path.
// It does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	b, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	b = filepath.Join(b, baseDir)

	p := filepath.Join(path...)

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	// check if path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	// create path if necessary
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
