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

package symbols

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/romdis/attributes"
)

// AmbiguousAddressError is returned when a single symbol is requested for an
// address that has more than one symbol.
type AmbiguousAddressError struct {
	Address uint32
	Names   []string
}

func (e *AmbiguousAddressError) Error() string {
	return fmt.Sprintf("multiple symbols at %#010x: %s", e.Address, strings.Join(e.Names, ", "))
}

// AmbiguousNameError is returned when a single symbol is requested for a name
// that is used by more than one symbol.
type AmbiguousNameError struct {
	Name      string
	Addresses []uint32
}

func (e *AmbiguousNameError) Error() string {
	s := make([]string, len(e.Addresses))
	for i, a := range e.Addresses {
		s[i] = fmt.Sprintf("%#010x", a)
	}
	return fmt.Sprintf("multiple symbols with name '%s': %s", e.Name, strings.Join(s, ", "))
}

// DataOptionError is returned when an option to the data kind is neither a
// data type nor a count.
type DataOptionError struct {
	Context attributes.Context
	Option  string
}

func (e *DataOptionError) Error() string {
	return fmt.Sprintf("%s: expected data type or 'count=...' but got '%s'", e.Context, e.Option)
}
