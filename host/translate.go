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

// Package host collects the services the emulation core asks of the program
// embedding it: user visible strings, error reporting and audio output.
package host

import (
	"sync"
)

// TranslateFunc translates msg within the named context. Context is the name
// of the subsystem the string appears in, so that the same English text can
// translate differently in different places.
type TranslateFunc func(context, msg string) string

var translation struct {
	mutex sync.RWMutex

	// translated strings by context and then by untranslated message
	cache map[string]map[string]string

	translator TranslateFunc
}

// SetTranslator installs the function used to translate strings on a cache
// miss. The nil translator returns the message unchanged. Installing a
// translator clears the cache.
func SetTranslator(f TranslateFunc) {
	translation.mutex.Lock()
	defer translation.mutex.Unlock()
	translation.translator = f
	translation.cache = nil
}

// Translate msg within the named context. Results are cached; the translator
// runs once per context/message pair.
func Translate(context, msg string) string {
	if msg == "" {
		return ""
	}

	translation.mutex.RLock()
	if m, ok := translation.cache[context]; ok {
		if s, ok := m[msg]; ok {
			translation.mutex.RUnlock()
			return s
		}
	}
	translation.mutex.RUnlock()

	translation.mutex.Lock()
	defer translation.mutex.Unlock()

	// another goroutine may have added the string while we waited for the
	// write lock
	if m, ok := translation.cache[context]; ok {
		if s, ok := m[msg]; ok {
			return s
		}
	}

	s := msg
	if translation.translator != nil {
		s = translation.translator(context, msg)
	}

	if translation.cache == nil {
		translation.cache = make(map[string]map[string]string)
	}
	if translation.cache[context] == nil {
		translation.cache[context] = make(map[string]string)
	}
	translation.cache[context][msg] = s

	return s
}

// ClearTranslationCache empties the cache. Subsequent Translate calls run
// the translator again.
func ClearTranslationCache() {
	translation.mutex.Lock()
	defer translation.mutex.Unlock()
	translation.cache = nil
}
