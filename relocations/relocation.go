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
	"strings"

	"github.com/jetsetilly/romdis/attributes"
)

// Relocation is a reference from the word at the From() address to the To()
// address.
type Relocation struct {
	from   uint32
	to     uint32
	addend int32
	kind   Kind
	module Module

	// Source is free text describing where the relocation came from. It is
	// written as a comment and has no effect on the relocation.
	Source string
}

// NewRelocation is the preferred method of initialisation for the Relocation
// type.
func NewRelocation(from uint32, to uint32, addend int32, kind Kind, module Module) *Relocation {
	return &Relocation{
		from:   from,
		to:     to,
		addend: addend,
		kind:   kind,
		module: module,
	}
}

// NewCall creates a call relocation. The kind is derived from the instruction
// modes of the caller and callee.
func NewCall(from uint32, to uint32, module Module, fromThumb bool, toThumb bool) *Relocation {
	return NewRelocation(from, to, 0, CallKind(fromThumb, toThumb), module)
}

// NewBranch creates an ARM branch relocation.
func NewBranch(from uint32, to uint32, module Module) *Relocation {
	return NewRelocation(from, to, 0, ArmBranch, module)
}

// NewLoad creates a relocation for a pointer loaded from the word at the from
// address.
func NewLoad(from uint32, to uint32, addend int32, module Module) *Relocation {
	return NewRelocation(from, to, addend, Load, module)
}

// From returns the address of the referencing word.
func (r *Relocation) From() uint32 {
	return r.from
}

// To returns the address being referred to.
func (r *Relocation) To() uint32 {
	return r.to
}

// Kind returns the type of reference.
func (r *Relocation) Kind() Kind {
	return r.kind
}

// Module returns the destination of the reference.
func (r *Relocation) Module() Module {
	return r.module
}

// Addend returns the effective addend: the stored addend plus the pc-relative
// bias of the relocation kind.
func (r *Relocation) Addend() int64 {
	return int64(r.addend) + r.kind.Addend()
}

// AddendValue returns the stored addend without the pc-relative bias.
func (r *Relocation) AddendValue() int32 {
	return r.addend
}

// Equal returns true if both relocations have the same from and to addresses,
// addend, kind and module. The Source field is not compared.
func (r *Relocation) Equal(other *Relocation) bool {
	return r.from == other.from &&
		r.to == other.to &&
		r.addend == other.addend &&
		r.kind == other.kind &&
		r.module.Equal(other.module)
}

func (r *Relocation) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("from:%#010x kind:%s to:%#010x module:%s", r.from, r.kind, r.to, r.module))
	if r.addend != 0 {
		s.WriteString(fmt.Sprintf(" add:%d", r.addend))
	}
	if r.Source != "" {
		s.WriteString(fmt.Sprintf(" // %s", r.Source))
	}
	return s.String()
}

var relocationAttributes = []string{"from", "to", "add", "kind", "module"}

// Parse a single relocation line. Returns nil and no error if the line is
// empty once the comment has been removed.
func Parse(ctx attributes.Context, line string) (*Relocation, error) {
	words := attributes.Fields(line)
	if len(words) == 0 {
		return nil, nil
	}

	pairs, err := attributes.Split(ctx, words)
	if err != nil {
		return nil, err
	}

	var from, to *uint32
	var kind *Kind
	var module *Module
	var addend int32

	for _, p := range pairs {
		switch p.Key {
		case "from":
			v, err := attributes.U32(ctx, "from", p.Value)
			if err != nil {
				return nil, err
			}
			from = &v
		case "to":
			v, err := attributes.U32(ctx, "to", p.Value)
			if err != nil {
				return nil, err
			}
			to = &v
		case "add":
			addend, err = attributes.I32(ctx, "add", p.Value)
			if err != nil {
				return nil, err
			}
		case "kind":
			k, err := parseKind(ctx, p.Value)
			if err != nil {
				return nil, err
			}
			kind = &k
		case "module":
			m, err := parseModule(ctx, p.Value)
			if err != nil {
				return nil, err
			}
			module = &m
		default:
			return nil, &attributes.UnknownAttributeError{
				Context:  ctx,
				Record:   "relocation",
				Key:      p.Key,
				Expected: relocationAttributes,
			}
		}
	}

	missing := func(attribute string) error {
		return &attributes.MissingAttributeError{Context: ctx, Record: "relocation", Attribute: attribute}
	}
	if from == nil {
		return nil, missing("from")
	}
	if to == nil {
		return nil, missing("to")
	}
	if kind == nil {
		return nil, missing("kind")
	}
	if module == nil {
		return nil, missing("module")
	}

	r := NewRelocation(*from, *to, addend, *kind, *module)
	r.Source, _ = attributes.Comment(line)

	return r, nil
}
