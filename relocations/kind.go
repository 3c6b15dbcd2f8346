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

package relocations

import (
	"github.com/jetsetilly/romdis/attributes"
)

// Kind is the type of reference made by a relocation.
type Kind int

// List of valid Kind values.
const (
	ArmCall Kind = iota
	ThumbCall
	ArmCallThumb
	ThumbCallArm
	ArmBranch
	Load
)

var kindNames = []string{"arm_call", "thumb_call", "arm_call_thumb", "thumb_call_arm", "arm_branch", "load"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// CallKind returns the Kind of a call between two functions, given the
// instruction mode of the caller and of the callee.
func CallKind(fromThumb bool, toThumb bool) Kind {
	switch {
	case fromThumb && toThumb:
		return ThumbCall
	case fromThumb:
		return ThumbCallArm
	case toThumb:
		return ArmCallThumb
	}
	return ArmCall
}

// Addend returns the pc-relative bias implied by the kind of relocation. When
// the reference is resolved the program counter is ahead of the referencing
// instruction by two instructions: eight bytes in ARM mode and four bytes in
// Thumb mode.
func (k Kind) Addend() int64 {
	switch k {
	case ArmCall, ArmCallThumb, ArmBranch:
		return -8
	case ThumbCall, ThumbCallArm:
		return -4
	}
	return 0
}

func parseKind(ctx attributes.Context, value string) (Kind, error) {
	for i, n := range kindNames {
		if n == value {
			return Kind(i), nil
		}
	}
	return 0, &attributes.UnknownValueError{
		Context:   ctx,
		Attribute: "relocation kind",
		Value:     value,
		Expected:  kindNames,
	}
}
