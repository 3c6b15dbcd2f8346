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
	"fmt"

	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/module"
)

// CollisionError is returned when a relocation is added at an address that is
// already occupied by a different relocation.
type CollisionError struct {
	From       uint32
	CurrTo     uint32
	CurrModule Module
	PrevTo     uint32
	PrevModule Module
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("relocation from %#010x to %#010x in %s collides with existing one to %#010x in %s",
		e.From, e.CurrTo, e.CurrModule, e.PrevTo, e.PrevModule)
}

// ExpectedMultipleOverlaysError is returned when a set of overlays has fewer
// than two IDs. The Context is empty if the error was not produced while
// parsing.
type ExpectedMultipleOverlaysError struct {
	Context attributes.Context
	IDs     []uint16
}

func (e *ExpectedMultipleOverlaysError) Error() string {
	msg := fmt.Sprintf("relocation to 'overlays' must have two or more overlay IDs, but got %v", e.IDs)
	if e.Context.File == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Context, msg)
}

// UnsupportedAutoloadError is returned when a module classification has no
// equivalent relocation destination.
type UnsupportedAutoloadError struct {
	Kind module.AutoloadKind
}

func (e *UnsupportedAutoloadError) Error() string {
	return fmt.Sprintf("unsupported autoload kind '%s'", e.Kind)
}
