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

// Package modalflag layers sub-modes on top of the standard flag package. A
// program using it parses its arguments in rounds: each round selects a
// sub-mode (RUN, PERFORMANCE, etc.) and the flags defined for that sub-mode.
//
// The idiomatic usage is:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")
//
//	p, err := md.Parse()
//	// handle ParseHelp and ParseError
//
//	switch md.Mode() {
//	...
//	}
//
// and then, inside a mode's handler, a further NewMode() / flag definitions /
// Parse() round for the mode's own flags.
package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes parses command line arguments in rounds, each round optionally
// selecting a sub-mode. The Output field should be set before calling
// Parse() or help messages will be lost.
type Modes struct {
	Output io.Writer

	// a fresh flagset is created by NewArgs() and NewMode(). flags are
	// defined on it with the Add* functions
	flags *flag.FlagSet

	// the full argument list and how far into it previous parsing rounds
	// have consumed sub-mode names
	args    []string
	argsIdx int

	// sub-modes available in the current round. the first entry is the
	// default
	subModes []string

	// sub-modes selected by previous rounds. never reset
	path []string

	// extra text appended to the flag package's help output
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected sub-mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every sub-mode selected so far, separated by slashes.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs begins parsing of the supplied argument list.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode begins a new parsing round. Flags defined before the call are
// forgotten.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AddSubModes makes the named sub-modes available to the next Parse(). The
// first is the default when the user names none. Matching is case
// insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp text is printed after the flag summary when the user asks
// for help.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// carry on: check Mode() if sub-modes were defined for this round.
	ParseContinue ParseResult = iota

	// help was requested and has been printed.
	ParseHelp

	// an error occurred and is returned alongside this value.
	ParseError
)

// Parse the current round of arguments. Help messages are written to the
// Output field.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		// assume the default sub-mode until the first argument says
		// otherwise
		mode := md.subModes[0]

		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx++
				break
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments left over after Parse(): everything
// that is not a flag or a recognised sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the indexed remaining argument, or the empty string.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}
