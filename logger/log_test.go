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

package logger_test

import (
	"strings"
	"testing"

	"github.com/Trixarian/duckstation/logger"
	"github.com/Trixarian/duckstation/test"
)

func TestLog(t *testing.T) {
	logger.Clear()
	logger.Log("test", "this is a test")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test\n")
}

func TestRepeatCoalescing(t *testing.T) {
	logger.Clear()
	logger.Log("test", "same entry")
	logger.Log("test", "same entry")
	logger.Log("test", "same entry")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: same entry (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()
	logger.Log("test", "one")
	logger.Log("test", "two")
	logger.Log("test", "three")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.Equate(t, s.String(), "test: two\ntest: three\n")
}
