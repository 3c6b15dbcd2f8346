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

// Package curated provides error values identified by the pattern they were
// created with. They are used by the outer layers of romdis (the project
// configuration and the command line) where a caller wants to know what kind
// of failure occurred without a dedicated error type for every case.
//
// Patterns are declared as named constants by the package that returns them:
//
//	const ModuleFileError = "module %s: %v"
//
//	err := curated.Errorf(ModuleFileError, name, err)
//
//	if curated.Is(err, ModuleFileError) {
//		...
//	}
//
// Is() matches the outermost pattern only. Has() matches the pattern anywhere
// in the chain, including curated errors wrapped by other error types.
//
// Error chains are made of parts separated by ": ". When an error is wrapped
// with the same leading part as the error it wraps, the repeated part is only
// printed once:
//
//	curated.Errorf("config: %v", curated.Errorf("config: no modules"))
//
// prints "config: no modules".
//
// The first error value given to Errorf() is returned by Unwrap(), so the
// typed errors of the romdis packages remain reachable with errors.As():
//
//	var le *attributes.LineError
//	if errors.As(err, &le) {
//		fmt.Println(le.Context)
//	}
package curated
