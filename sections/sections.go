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
	"cmp"
	"iter"
	"slices"

	"github.com/samber/lo"

	"github.com/jetsetilly/romdis/analysis"
)

// Index refers to a section in a Sections instance.
type Index int

// Sections is the collection of sections in a module. Sections are stored in
// the order they were added. No two sections share a name and no two sections
// overlap.
type Sections struct {
	sections []*Section
	byName   map[string]Index
}

// NewSections is the preferred method of initialisation for the Sections
// type.
func NewSections() *Sections {
	return &Sections{
		byName: make(map[string]Index),
	}
}

// Add a section to the collection. An error is returned if the name is
// already in use or if the section overlaps with an existing section. The
// collection is unchanged in the event of an error.
func (secs *Sections) Add(sec *Section) (Index, error) {
	if _, ok := secs.byName[sec.name]; ok {
		return 0, &DuplicateNameError{Name: sec.name}
	}
	for _, other := range secs.sections {
		if sec.OverlapsWith(other) {
			return 0, &OverlapError{Name: sec.name, Other: other.name}
		}
	}

	idx := Index(len(secs.sections))
	secs.byName[sec.name] = idx
	secs.sections = append(secs.sections, sec)

	return idx, nil
}

// Get returns the section at the index. The index must have been returned by
// this collection.
func (secs *Sections) Get(idx Index) *Section {
	return secs.sections[idx]
}

// ByName returns the section with the name.
func (secs *Sections) ByName(name string) (Index, *Section, bool) {
	idx, ok := secs.byName[name]
	if !ok {
		return 0, nil, false
	}
	return idx, secs.sections[idx], true
}

// ByContainedAddress returns the section that contains the address. The end
// address of a section is not contained by that section.
func (secs *Sections) ByContainedAddress(address uint32) (Index, *Section, bool) {
	for i, sec := range secs.sections {
		if sec.Contains(address) {
			return Index(i), sec, true
		}
	}
	return 0, nil, false
}

// All iterates over the sections in the order they were added.
func (secs *Sections) All() iter.Seq2[Index, *Section] {
	return func(yield func(Index, *Section) bool) {
		for i, sec := range secs.sections {
			if !yield(Index(i), sec) {
				return
			}
		}
	}
}

// Len returns the number of sections in the collection.
func (secs *Sections) Len() int {
	return len(secs.sections)
}

// SortedByAddress returns the sections ordered by start address. The order
// of the collection itself is not changed.
func (secs *Sections) SortedByAddress() []*Section {
	sorted := slices.Clone(secs.sections)
	slices.SortStableFunc(sorted, func(a, b *Section) int {
		return cmp.Compare(a.start, b.start)
	})
	return sorted
}

// AddFunction attaches the function to the section that contains the
// function's first instruction.
func (secs *Sections) AddFunction(f *analysis.Function) (Index, error) {
	address := f.FirstInstructionAddress()
	idx, sec, ok := secs.ByContainedAddress(address)
	if !ok {
		return 0, &NoContainingSectionError{Name: f.Name, Address: address}
	}
	sec.AddFunction(f)
	return idx, nil
}

// Functions iterates over the functions of every section. Sections are
// visited in the order they were added and functions in address order.
func (secs *Sections) Functions() iter.Seq[*analysis.Function] {
	return func(yield func(*analysis.Function) bool) {
		for _, sec := range secs.sections {
			for f := range sec.Functions() {
				if !yield(f) {
					return
				}
			}
		}
	}
}

// BaseAddress returns the lowest start address of all sections. The boolean
// is false if the collection is empty.
func (secs *Sections) BaseAddress() (uint32, bool) {
	if len(secs.sections) == 0 {
		return 0, false
	}
	return lo.Min(lo.Map(secs.sections, func(sec *Section, _ int) uint32 {
		return sec.start
	})), true
}

// EndAddress returns the highest end address of all sections. The boolean is
// false if the collection is empty.
func (secs *Sections) EndAddress() (uint32, bool) {
	if len(secs.sections) == 0 {
		return 0, false
	}
	return lo.Max(lo.Map(secs.sections, func(sec *Section, _ int) uint32 {
		return sec.end
	})), true
}

func (secs *Sections) bss() []*Section {
	return lo.Filter(secs.sections, func(sec *Section, _ int) bool {
		return sec.kind == Bss
	})
}

// BssSize returns the total size of the bss sections.
func (secs *Sections) BssSize() uint32 {
	return lo.SumBy(secs.bss(), func(sec *Section) uint32 {
		return sec.Size()
	})
}

// BssRange returns the smallest range containing every bss section. The
// boolean is false if there are no bss sections.
func (secs *Sections) BssRange() (Range, bool) {
	bss := secs.bss()
	if len(bss) == 0 {
		return Range{}, false
	}
	return lo.Reduce(bss[1:], func(r Range, sec *Section, _ int) Range {
		return Range{Start: min(r.Start, sec.start), End: max(r.End, sec.end)}
	}, bss[0].AddressRange()), true
}
