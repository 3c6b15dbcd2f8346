// This file is part of romdis.
//
// romdis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// romdis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with romdis.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/romdis/attributes"
)

const modeSeparator = "/"

// Modes is a layered command line. Help is only visible if Output is set.
type Modes struct {
	Output io.Writer

	// flags for the current mode. replaced on every call to NewMode()
	flags *flag.FlagSet

	// args is the full command line. arguments before argsIdx belong to modes
	// that have already been parsed
	args    []string
	argsIdx int

	// sub-modes of the current mode. the first entry is the default
	subModes []string

	// every mode selected so far, outermost first
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs resets the Modes with a new command line.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode starts a new layer of the command line. Flags and sub-modes added
// after this call apply to the next call to Parse().
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AdditionalHelp is printed after the flag and sub-mode help of the current
// mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// the caller should continue. if sub-modes were added then Mode() is the
	// selected sub-mode
	ParseContinue ParseResult = iota

	// help has been printed to Output
	ParseHelp

	// the error returned alongside describes the problem
	ParseError
)

// Parse the current layer of the command line. Flags are parsed first and
// then, if sub-modes have been added, the next argument is compared against
// them. An argument that is not a sub-mode selects the default sub-mode and
// remains available through RemainingArgs().
//
// If the flags can not be parsed and there are sub-modes then the default
// sub-mode is selected. Otherwise ParseError is returned.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			hw.Clear()
			return ParseHelp, nil
		}

		if len(md.subModes) > 0 {
			md.path = append(md.path, md.subModes[0])
		} else {
			return ParseError, err
		}
	} else if len(md.subModes) > 0 {
		// skip past the flags that have been consumed
		md.argsIdx = len(md.args) - md.flags.NArg()

		arg := strings.ToUpper(md.flags.Arg(0))

		mode := md.subModes[0]
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// GetAddressArg returns the numbered argument as an address. The argument may
// be hexadecimal, with a "0x" prefix, or decimal.
func (md *Modes) GetAddressArg(i int) (uint32, error) {
	arg := md.flags.Arg(i)
	if arg == "" {
		return 0, fmt.Errorf("missing address argument")
	}
	v, err := attributes.ParseU32(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s': %w", arg, err)
	}
	return v, nil
}

// AddSubModes to list of submodes for next parse. The first sub-mode in the
// list is considered to be the default sub-mode.
//
// Note that sub-mode comparisons are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	md.subModes = append(md.subModes, submodes...)
	for i := range md.subModes {
		md.subModes[i] = strings.ToUpper(md.subModes[i])
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddAddress flag for next call to Parse(). See GetAddressArg() for the
// format of addresses.
func (md *Modes) AddAddress(name string, value uint32, usage string) *uint32 {
	a := &address{value: value}
	md.flags.Var(a, name, usage)
	return &a.value
}

// Visit visits the flags in lexicographical order, calling fn for each. It
// visits only those flags that have been set.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
