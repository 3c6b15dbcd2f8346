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

// Kind is implemented by every kind of symbol: Function, Label, PoolConstant,
// JumpTable, Data and Bss. Values of these types are comparable.
type Kind interface {
	fmt.Stringer

	// whether symbols of this kind are written to a symbols file
	persisted() bool
}

// InstructionMode of a function.
type InstructionMode int

// List of valid InstructionMode values.
const (
	Auto InstructionMode = iota
	Arm
	Thumb
)

// ModeFromThumb returns Thumb if thumb is true and Arm otherwise.
func ModeFromThumb(thumb bool) InstructionMode {
	if thumb {
		return Thumb
	}
	return Arm
}

func (m InstructionMode) String() string {
	switch m {
	case Arm:
		return "arm"
	case Thumb:
		return "thumb"
	}
	return "auto"
}

func parseInstructionMode(ctx attributes.Context, text string) (InstructionMode, error) {
	switch text {
	case "", "auto":
		return Auto, nil
	case "arm":
		return Arm, nil
	case "thumb":
		return Thumb, nil
	}
	return Auto, &attributes.UnknownValueError{
		Context:   ctx,
		Attribute: "instruction mode",
		Value:     text,
		Expected:  []string{"auto", "arm", "thumb"},
	}
}

// DataType is the size of each element in a block of data.
type DataType int

// List of valid DataType values.
const (
	Byte DataType = iota
	Word
)

func (t DataType) String() string {
	if t == Byte {
		return "byte"
	}
	return "word"
}

// Size returns the number of bytes in an element of the data type.
func (t DataType) Size() uint32 {
	if t == Byte {
		return 1
	}
	return 4
}

// Directive returns the assembler directive for the data type.
func (t DataType) Directive() string {
	if t == Byte {
		return ".byte"
	}
	return ".word"
}

// FormatRaw returns the first element in the data as a hexadecimal literal.
// The data is little-endian.
func (t DataType) FormatRaw(data []byte) (string, error) {
	if uint32(len(data)) < t.Size() {
		return "", fmt.Errorf("not enough bytes for %s: %d", t, len(data))
	}
	if t == Byte {
		return fmt.Sprintf("0x%02x", data[0]), nil
	}
	return fmt.Sprintf("0x%02x%02x%02x%02x", data[3], data[2], data[1], data[0]), nil
}

func parseDataType(ctx attributes.Context, text string) (DataType, error) {
	switch text {
	case "byte":
		return Byte, nil
	case "word":
		return Word, nil
	}
	return Word, &attributes.UnknownValueError{
		Context:   ctx,
		Attribute: "data type",
		Value:     text,
		Expected:  []string{"byte", "word"},
	}
}

// Function is the Kind of a symbol at the entry point of a function.
type Function struct {
	Mode InstructionMode
}

func (k Function) String() string {
	return fmt.Sprintf("function(%s)", k.Mode)
}

func (k Function) persisted() bool { return true }

// Label is the Kind of a symbol that is the target of a branch.
type Label struct{}

func (k Label) String() string { return "label" }

func (k Label) persisted() bool { return false }

// PoolConstant is the Kind of a symbol for a constant loaded from a literal
// pool.
type PoolConstant struct{}

func (k PoolConstant) String() string { return "pool_constant" }

func (k PoolConstant) persisted() bool { return false }

// JumpTable is the Kind of a symbol at the start of a jump table.
type JumpTable struct {
	// size of the table in bytes
	Size uint32

	// whether the table entries are instructions
	Code bool
}

func (k JumpTable) String() string { return "jump_table" }

func (k JumpTable) persisted() bool { return false }

// Data is the Kind of a symbol for a block of initialised data.
type Data struct {
	Type  DataType
	Count uint32
}

func (k Data) String() string {
	if k.Count != 1 {
		return fmt.Sprintf("data(%s,count=%d)", k.Type, k.Count)
	}
	return fmt.Sprintf("data(%s)", k.Type)
}

func (k Data) persisted() bool { return true }

// Size returns the number of bytes in the block of data.
func (k Data) Size() uint32 {
	return k.Type.Size() * k.Count
}

// Bss is the Kind of a symbol for a block of uninitialised data.
type Bss struct{}

func (k Bss) String() string { return "bss" }

func (k Bss) persisted() bool { return true }

var kindNames = []string{"function", "data", "bss"}

func parseKind(ctx attributes.Context, text string) (Kind, error) {
	value, options := attributes.SplitOptions(text)

	switch value {
	case "function":
		mode, err := parseInstructionMode(ctx, options)
		if err != nil {
			return nil, err
		}
		return Function{Mode: mode}, nil
	case "data":
		return parseData(ctx, options)
	case "bss":
		if err := attributes.NoOptions(ctx, value, options); err != nil {
			return nil, err
		}
		return Bss{}, nil
	}

	return nil, &attributes.UnknownValueError{
		Context:   ctx,
		Attribute: "symbol kind",
		Value:     value,
		Expected:  kindNames,
	}
}

// data options are a comma separated list. each option is either a data type
// or the element count in the form count=N
func parseData(ctx attributes.Context, options string) (Data, error) {
	data := Data{Type: Word, Count: 1}
	if options == "" {
		return data, nil
	}

	for _, o := range strings.Split(options, ",") {
		key, value, ok := strings.Cut(o, "=")
		if !ok {
			t, err := parseDataType(ctx, o)
			if err != nil {
				return Data{}, err
			}
			data.Type = t
			continue // for loop
		}

		if key != "count" {
			return Data{}, &DataOptionError{Context: ctx, Option: o}
		}
		count, err := attributes.U32(ctx, "data count", value)
		if err != nil {
			return Data{}, err
		}
		data.Count = count
	}

	return data, nil
}
