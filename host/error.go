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
	"fmt"
	"sync/atomic"

	"github.com/Trixarian/duckstation/logger"
)

// ErrorHandler receives errors reported through ReportErrorAsync. Handlers
// must be safe for concurrent use.
type ErrorHandler func(title, message string)

var errorHandler atomic.Pointer[ErrorHandler]

// SetErrorHandler installs the handler called by ReportErrorAsync. A nil
// handler restores the default, which writes to the application log.
func SetErrorHandler(f ErrorHandler) {
	if f == nil {
		errorHandler.Store(nil)
		return
	}
	errorHandler.Store(&f)
}

// ReportErrorAsync reports an error to the user without blocking emulation.
// Safe to call from any goroutine.
func ReportErrorAsync(title, message string) {
	if f := errorHandler.Load(); f != nil {
		(*f)(title, message)
		return
	}
	logger.Logf("host", "%s: %s", title, message)
}

// ReportErrorAsyncf is the formatted version of ReportErrorAsync.
func ReportErrorAsyncf(title, format string, args ...interface{}) {
	ReportErrorAsync(title, fmt.Sprintf(format, args...))
}
