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

// Package prefs provides a simple mechanism for storing preference values to
// disk. Preference values are registered with a Disk instance against a
// unique key. The on-disk format is a plain text file of key/value pairs.
package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Trixarian/duckstation/curated"
)

// the string that separates the key from the value in the prefs file.
const keySep = " :: "

// WarningBoilerPlate is the first line in the preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// DefaultPrefsFile is the name of the preferences file used unless the caller
// asks for something else.
const DefaultPrefsFile = "duckstation.prefs"

// Disk represents preference values as stored to (and loaded from) disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to the Disk instance. The key must be unique within
// the instance.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return curated.Errorf("prefs: invalid key (%s)", key)
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key (%s)", key)
	}

	dsk.entries[key] = p

	return nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, dsk.entries[key].String()))
	}
	return s.String()
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	// sort keys for a stable file layout
	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintln(f, WarningBoilerPlate)
	for _, key := range keys {
		fmt.Fprintf(f, "%s%s%s\n", key, keySep, dsk.entries[key].String())
	}

	return nil
}

// Load preference values from disk. Keys in the file that have not been
// registered with Add() are ignored, as are registered keys that are absent
// from the file. If saveOnError is true then a failed load because of a
// malformed file will cause the current values to be saved, overwriting the
// file.
func (dsk *Disk) Load(saveOnError bool) error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			// a missing prefs file is not an error. current values stand.
			return nil
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		if saveOnError {
			return dsk.Save()
		}
		return curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			if saveOnError {
				return dsk.Save()
			}
			return curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
		}

		if p, ok := dsk.entries[kv[0]]; ok {
			if err := p.Set(kv[1]); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Reset all preference values registered with the Disk instance to their
// zero state.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}
