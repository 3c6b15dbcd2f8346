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

// Package sections models the address ranges of a code module. Each Section
// is a named half-open range of addresses tagged as code, initialised data or
// uninitialised (bss) data.
//
// Sections are collected in a Sections instance, which preserves insertion
// order and guarantees that no two sections share a name or overlap. Sections
// are referred to by their Index in the collection.
//
// Sections are read from a header file, in which every line fully describes a
// section:
//
//	.text       start:0x02000000 end:0x02010000 kind:code align:32
//
// Per translation unit files contain the same sections but with different
// address ranges. The kind and alignment of these sections is inherited from
// the header file and must be omitted:
//
//	.text start:0x02000000 end:0x02000400
package sections
