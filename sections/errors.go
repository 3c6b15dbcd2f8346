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
	"fmt"

	"github.com/jetsetilly/romdis/attributes"
)

// EndBeforeStartError is returned when a section ends before it starts.
type EndBeforeStartError struct {
	Name  string
	Start uint32
	End   uint32
}

func (e *EndBeforeStartError) Error() string {
	return fmt.Sprintf("section %s must not end (%#010x) before it starts (%#010x)", e.Name, e.End, e.Start)
}

// AlignmentError is returned when the alignment of a section is not a power
// of two.
type AlignmentError struct {
	Name      string
	Alignment uint32
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("section %s alignment (%d) must be a power of two", e.Name, e.Alignment)
}

// MisalignedStartError is returned when the start address of a section is not
// a multiple of its alignment.
type MisalignedStartError struct {
	Name      string
	Start     uint32
	Alignment uint32
}

func (e *MisalignedStartError) Error() string {
	return fmt.Sprintf("section %s starts at a misaligned address %#010x; the provided alignment was %d",
		e.Name, e.Start, e.Alignment)
}

// StartsBeforeBaseError is returned when the content of a section is requested
// from a module that is loaded after the start of the section.
type StartsBeforeBaseError struct {
	Name  string
	Start uint32
	Base  uint32
}

func (e *StartsBeforeBaseError) Error() string {
	return fmt.Sprintf("section %s starts (%#010x) before base address (%#010x)", e.Name, e.Start, e.Base)
}

// EndsOutsideModuleError is returned when the content of a section is
// requested from a module that ends before the end of the section.
type EndsOutsideModuleError struct {
	Name      string
	End       uint32
	ModuleEnd uint32
}

func (e *EndsOutsideModuleError) Error() string {
	return fmt.Sprintf("section %s ends (%#010x) after code ends (%#010x)", e.Name, e.End, e.ModuleEnd)
}

// DuplicateNameError is returned when a section is added to a collection that
// already has a section of the same name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("section '%s' already exists", e.Name)
}

// OverlapError is returned when a section is added to a collection that has a
// section with an intersecting address range.
type OverlapError struct {
	Name  string
	Other string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("section '%s' overlaps with '%s'", e.Name, e.Other)
}

// NoContainingSectionError is returned when a function is added to a
// collection that has no section containing the function's address.
type NoContainingSectionError struct {
	Name    string
	Address uint32
}

func (e *NoContainingSectionError) Error() string {
	return fmt.Sprintf("no section contains function %s at %#010x", e.Name, e.Address)
}

// NotInHeaderError is returned when an inherit line names a section that
// does not exist in the header.
type NotInHeaderError struct {
	Context attributes.Context
	Name    string
}

func (e *NotInHeaderError) Error() string {
	return fmt.Sprintf("%s: section %s does not exist in this file's header", e.Context, e.Name)
}

// InheritedAttributeError is returned when an inherit line specifies an
// attribute that is inherited from the header.
type InheritedAttributeError struct {
	Context   attributes.Context
	Attribute string
}

func (e *InheritedAttributeError) Error() string {
	return fmt.Sprintf("%s: attribute '%s' should be omitted as it is inherited from this file's header",
		e.Context, e.Attribute)
}
