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

// Package relocations records where a machine word in one module refers to an
// address that may live in another module. Each Relocation is keyed by the
// address of the referencing word (the "from" address) and there is at most
// one relocation per address.
//
// Adding a relocation at an address that is already occupied is accepted if
// the two relocations are identical, in which case a warning is logged. A
// relocation that differs from the existing one is rejected with a
// CollisionError.
//
// The textual form of a relocation is a single line:
//
//	from:0x02000804 kind:arm_call to:0x02001000 module:overlay(3) add:4
//
// The "add" attribute is optional and defaults to zero. A trailing comment is
// kept as the Source of the relocation but has no other meaning.
//
// The destination of a relocation is described by the Module type: none,
// main, itcm, dtcm, a single overlay or a set of two or more overlays.
package relocations
