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

package sections

import "github.com/jetsetilly/romdis/attributes"

// Kind is the type of content in a section.
type Kind int

// List of valid Kind values.
const (
	Code Kind = iota
	Data
	Bss
)

var kindNames = []string{"code", "data", "bss"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsInitialized returns true if the section has content in the module image.
// Bss sections are zero filled when the module is loaded and have no content.
func (k Kind) IsInitialized() bool {
	return k != Bss
}

func parseKind(ctx attributes.Context, value string) (Kind, error) {
	for i, n := range kindNames {
		if n == value {
			return Kind(i), nil
		}
	}
	return 0, &attributes.UnknownValueError{
		Context:   ctx,
		Attribute: "section kind",
		Value:     value,
		Expected:  kindNames,
	}
}
