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

	"github.com/jetsetilly/romdis/analysis"
	"github.com/jetsetilly/romdis/attributes"
)

// Symbol is a named address.
type Symbol struct {
	Name string
	Kind Kind
	Addr uint32
}

// FromFunction creates a function symbol for an analysed function.
func FromFunction(f *analysis.Function) *Symbol {
	return &Symbol{
		Name: f.Name,
		Kind: Function{Mode: ModeFromThumb(f.Thumb)},
		Addr: f.StartAddress,
	}
}

// synthesised name for symbols created without one
func addressName(addr uint32) string {
	return fmt.Sprintf("_%08x", addr)
}

func (sym *Symbol) String() string {
	return fmt.Sprintf("%s kind:%s addr:%#x", sym.Name, sym.Kind, sym.Addr)
}

var symbolAttributes = []string{"kind", "addr"}

// Parse a single symbol line. Returns nil and no error if the line is empty
// once the comment has been removed.
func Parse(ctx attributes.Context, line string) (*Symbol, error) {
	words := attributes.Fields(line)
	if len(words) == 0 {
		return nil, nil
	}
	name := words[0]

	pairs, err := attributes.Split(ctx, words[1:])
	if err != nil {
		return nil, err
	}

	var kind Kind
	var addr *uint32

	for _, p := range pairs {
		switch p.Key {
		case "kind":
			kind, err = parseKind(ctx, p.Value)
			if err != nil {
				return nil, err
			}
		case "addr":
			v, err := attributes.U32(ctx, "address", p.Value)
			if err != nil {
				return nil, err
			}
			addr = &v
		default:
			return nil, &attributes.UnknownAttributeError{
				Context:  ctx,
				Record:   "symbol",
				Key:      p.Key,
				Expected: symbolAttributes,
			}
		}
	}

	if kind == nil {
		return nil, &attributes.MissingAttributeError{Context: ctx, Record: "symbol", Attribute: "kind"}
	}
	if addr == nil {
		return nil, &attributes.MissingAttributeError{Context: ctx, Record: "symbol", Attribute: "addr"}
	}

	return &Symbol{Name: name, Kind: kind, Addr: *addr}, nil
}
