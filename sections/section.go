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

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/google/btree"

	"github.com/jetsetilly/romdis/analysis"
	"github.com/jetsetilly/romdis/module"
)

// Range is a half-open range of addresses.
type Range struct {
	Start uint32
	End   uint32
}

// Contains returns true if the address is in the range.
func (r Range) Contains(address uint32) bool {
	return address >= r.Start && address < r.End
}

// Word is a 32-bit value read from the content of a section.
type Word struct {
	Address uint32
	Value   uint32
}

// degree of the b-tree used for the functions in a section
const functionsDegree = 16

func lessFunction(a, b *analysis.Function) bool {
	return a.StartAddress < b.StartAddress
}

// Section is a named range of addresses in a module.
type Section struct {
	name      string
	kind      Kind
	start     uint32
	end       uint32
	alignment uint32

	functions *btree.BTreeG[*analysis.Function]
}

// NewSection creates a new section with no functions. See WithFunctions().
func NewSection(name string, kind Kind, start uint32, end uint32, alignment uint32) (*Section, error) {
	return WithFunctions(name, kind, start, end, alignment, nil)
}

// WithFunctions creates a new section with the list of functions attached. An
// error is returned if the section ends before it starts, if the alignment is
// not a power of two or if the start address is not aligned. The checks are
// made in that order.
func WithFunctions(name string, kind Kind, start uint32, end uint32, alignment uint32, functions []*analysis.Function) (*Section, error) {
	if end < start {
		return nil, &EndBeforeStartError{Name: name, Start: start, End: end}
	}
	if alignment == 0 || alignment&(alignment-1) != 0 {
		return nil, &AlignmentError{Name: name, Alignment: alignment}
	}
	if start&(alignment-1) != 0 {
		return nil, &MisalignedStartError{Name: name, Start: start, Alignment: alignment}
	}

	sec := &Section{
		name:      name,
		kind:      kind,
		start:     start,
		end:       end,
		alignment: alignment,
		functions: btree.NewG(functionsDegree, lessFunction),
	}
	for _, f := range functions {
		sec.AddFunction(f)
	}

	return sec, nil
}

// Inherit creates a new section with the name, kind and alignment of another
// section but with a different address range. The start address is not
// checked against the alignment.
func Inherit(other *Section, start uint32, end uint32) (*Section, error) {
	if end < start {
		return nil, &EndBeforeStartError{Name: other.name, Start: start, End: end}
	}
	return &Section{
		name:      other.name,
		kind:      other.kind,
		start:     start,
		end:       end,
		alignment: other.alignment,
		functions: btree.NewG(functionsDegree, lessFunction),
	}, nil
}

// Name of section.
func (sec *Section) Name() string {
	return sec.name
}

// Kind of section.
func (sec *Section) Kind() Kind {
	return sec.kind
}

// StartAddress returns the address of the first byte in the section.
func (sec *Section) StartAddress() uint32 {
	return sec.start
}

// EndAddress returns the address immediately following the last byte in the
// section.
func (sec *Section) EndAddress() uint32 {
	return sec.end
}

// Alignment of the section's start address.
func (sec *Section) Alignment() uint32 {
	return sec.alignment
}

// AddressRange returns the half-open range of addresses covered by the
// section.
func (sec *Section) AddressRange() Range {
	return Range{Start: sec.start, End: sec.end}
}

// Size returns the number of bytes in the section.
func (sec *Section) Size() uint32 {
	return sec.end - sec.start
}

// Contains returns true if the address is in the section.
func (sec *Section) Contains(address uint32) bool {
	return sec.AddressRange().Contains(address)
}

// OverlapsWith returns true if the address ranges of the two sections
// intersect. Sections that only touch do not overlap.
func (sec *Section) OverlapsWith(other *Section) bool {
	return sec.start < other.end && other.start < sec.end
}

// Code returns the content of the section from the code of a module loaded at
// the base address. Bss sections have no content and nil is returned with no
// error.
func (sec *Section) Code(code []byte, base uint32) ([]byte, error) {
	if !sec.kind.IsInitialized() {
		return nil, nil
	}
	if sec.start < base {
		return nil, &StartsBeforeBaseError{Name: sec.name, Start: sec.start, Base: base}
	}

	start := uint64(sec.start - base)
	end := uint64(sec.end - base)
	if end > uint64(len(code)) {
		return nil, &EndsOutsideModuleError{Name: sec.name, End: sec.end, ModuleEnd: base + uint32(len(code))}
	}

	return code[start:end], nil
}

// CodeFromModule returns the content of the section from a module. See Code().
func (sec *Section) CodeFromModule(m *module.Module) ([]byte, error) {
	return sec.Code(m.Code, m.BaseAddress)
}

// IterWords iterates over every aligned 32-bit word in the section. The code
// argument must be the content of the section as returned by Code().
func (sec *Section) IterWords(code []byte) iter.Seq[Word] {
	return sec.IterWordsIn(code, sec.AddressRange())
}

// IterWordsIn iterates over every aligned 32-bit word in the address range.
// The start of the range is rounded up and the end of the range is rounded
// down to a multiple of four. Words are little-endian.
//
// The code argument must be the content of the section as returned by Code().
// Words outside of the section or beyond the end of the code are not yielded.
func (sec *Section) IterWordsIn(code []byte, r Range) iter.Seq[Word] {
	return func(yield func(Word) bool) {
		start := (uint64(r.Start) + 3) &^ 3
		end := uint64(r.End) &^ 3

		for address := start; address+4 <= end; address += 4 {
			if address < uint64(sec.start) {
				continue // for loop
			}
			offset := address - uint64(sec.start)
			if offset+4 > uint64(len(code)) {
				return
			}
			w := Word{
				Address: uint32(address),
				Value:   binary.LittleEndian.Uint32(code[offset:]),
			}
			if !yield(w) {
				return
			}
		}
	}
}

// AddFunction attaches a function to the section. Any function already
// attached at the same address is replaced.
func (sec *Section) AddFunction(f *analysis.Function) {
	sec.functions.ReplaceOrInsert(f)
}

// Function returns the function attached at the address.
func (sec *Section) Function(address uint32) (*analysis.Function, bool) {
	return sec.functions.Get(&analysis.Function{StartAddress: address})
}

// Functions iterates over the attached functions in address order.
func (sec *Section) Functions() iter.Seq[*analysis.Function] {
	return func(yield func(*analysis.Function) bool) {
		sec.functions.Ascend(yield)
	}
}

// NumFunctions returns the number of attached functions.
func (sec *Section) NumFunctions() int {
	return sec.functions.Len()
}

// String returns the section in the form of a header line.
func (sec *Section) String() string {
	return fmt.Sprintf("%-11s start:%#010x end:%#010x kind:%s align:%d",
		sec.name, sec.start, sec.end, sec.kind, sec.alignment)
}
