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
	"fmt"

	"github.com/jetsetilly/romdis/attributes"
)

// address implements the flag.Value interface for 32-bit addresses.
type address struct {
	value uint32
}

func (a *address) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%#08x", a.value)
}

func (a *address) Set(s string) error {
	v, err := attributes.ParseU32(s)
	if err != nil {
		return err
	}
	a.value = v
	return nil
}
