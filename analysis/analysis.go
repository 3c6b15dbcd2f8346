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

// Package analysis contains the records produced by the code analyses and
// consumed by the sections and symbols packages. The analyses themselves
// (function boundary detection, jump table detection) live elsewhere.
package analysis

import "fmt"

// Function is a function found in a code section.
type Function struct {
	Name         string
	StartAddress uint32

	// address immediately following the last byte of the function
	EndAddress uint32

	// whether the function is compiled for Thumb mode
	Thumb bool
}

// FirstInstructionAddress returns the address of the first instruction. This
// is the same as the start address; pool constants are never placed ahead of
// the first instruction.
func (f *Function) FirstInstructionAddress() uint32 {
	return f.StartAddress
}

// Size returns the number of bytes covered by the function.
func (f *Function) Size() uint32 {
	return f.EndAddress - f.StartAddress
}

func (f *Function) String() string {
	mode := "arm"
	if f.Thumb {
		mode = "thumb"
	}
	return fmt.Sprintf("%s %#010x to %#010x (%s)", f.Name, f.StartAddress, f.EndAddress, mode)
}

// JumpTable is a table of branch targets found in a function.
type JumpTable struct {
	Address uint32

	// size of the table in bytes
	Size uint32

	// whether the table entries are branch instructions rather than
	// addresses
	Code bool
}
