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

// Package modalflag wraps the flag package so that a command line can select
// a mode of operation, and each mode can have its own flags and arguments.
//
// The arguments are given once with NewArgs(). Each layer of the command line
// is then handled with NewMode(), some calls to the Add*() functions and a
// call to Parse():
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("CHECK", "LOOKUP")
//	verbose := md.AddBool("log", false, "echo log")
//
//	p, err := md.Parse()
//	if err != nil || p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "LOOKUP":
//		md.NewMode()
//		module := md.AddString("module", "", "lookup in named module only")
//		if p, err := md.Parse(); err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//		address, err := md.GetAddressArg(0)
//		...
//	}
//
// Sub-mode names are compared without regard to case and the first sub-mode
// is the default if the next argument is not a sub-mode. Flags for a mode must
// come before the sub-mode that follows it.
//
// Help (the -help flag) is printed to the Output writer and Parse() returns
// ParseHelp. The help text lists the flags, the sub-modes and any text given
// with AdditionalHelp().
//
// Addresses, either as a flag with AddAddress() or as an argument with
// GetAddressArg(), are hexadecimal with a 0x prefix or decimal.
package modalflag
