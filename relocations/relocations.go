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
	"io"
	"iter"

	"github.com/google/btree"
	"github.com/spf13/afero"

	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/logger"
)

// degree of the b-tree used to order relocations
const treeDegree = 32

// Relocations is the table of relocations, ordered by from address.
type Relocations struct {
	tree *btree.BTreeG[*Relocation]
}

func lessFrom(a, b *Relocation) bool {
	return a.from < b.from
}

// NewRelocations is the preferred method of initialisation for the Relocations
// type.
func NewRelocations() *Relocations {
	return &Relocations{
		tree: btree.NewG(treeDegree, lessFrom),
	}
}

// FromFile reads a relocations file. Loading stops at the first error.
func FromFile(fs afero.Fs, path string) (*Relocations, error) {
	rels := NewRelocations()

	err := attributes.ReadFile(fs, path, func(ctx attributes.Context, line string) error {
		r, err := Parse(ctx, line)
		if err != nil {
			return err
		}
		if r == nil {
			return nil
		}
		_, err = rels.Add(r)
		if err != nil {
			return &attributes.LineError{Context: ctx, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "relocations", "%d relocations read from %s", rels.Len(), path)

	return rels, nil
}

// ToFile writes every relocation to the named file in address order.
func (rels *Relocations) ToFile(fs afero.Fs, path string) error {
	return attributes.WriteFile(fs, path, rels.WriteLines)
}

// WriteLines writes every relocation, one per line, in address order.
func (rels *Relocations) WriteLines(w io.Writer) error {
	var err error
	rels.tree.Ascend(func(r *Relocation) bool {
		_, err = fmt.Fprintln(w, r.String())
		return err == nil
	})
	return err
}

// Add a relocation to the table. If a relocation already exists at the same
// from address and it is identical then the existing relocation is returned
// and a warning is logged. If it is not identical a CollisionError is
// returned.
func (rels *Relocations) Add(r *Relocation) (*Relocation, error) {
	prev, ok := rels.tree.Get(r)
	if !ok {
		rels.tree.ReplaceOrInsert(r)
		return r, nil
	}

	if prev.Equal(r) {
		logger.Logf(logger.Allow, "relocations", "relocation from %#010x to %#010x in %s is identical to existing one",
			r.from, r.to, r.module)
		return prev, nil
	}

	err := &CollisionError{
		From:       r.from,
		CurrTo:     r.to,
		CurrModule: r.module,
		PrevTo:     prev.to,
		PrevModule: prev.module,
	}
	logger.Log(logger.Allow, "relocations", err)

	return nil, err
}

// AddCall adds a call relocation. See NewCall().
func (rels *Relocations) AddCall(from uint32, to uint32, module Module, fromThumb bool, toThumb bool) (*Relocation, error) {
	return rels.Add(NewCall(from, to, module, fromThumb, toThumb))
}

// AddBranch adds an ARM branch relocation.
func (rels *Relocations) AddBranch(from uint32, to uint32, module Module) (*Relocation, error) {
	return rels.Add(NewBranch(from, to, module))
}

// AddLoad adds a load relocation.
func (rels *Relocations) AddLoad(from uint32, to uint32, addend int32, module Module) (*Relocation, error) {
	return rels.Add(NewLoad(from, to, addend, module))
}

// Get returns the relocation at the from address.
func (rels *Relocations) Get(from uint32) (*Relocation, bool) {
	return rels.tree.Get(&Relocation{from: from})
}

// Len returns the number of relocations in the table.
func (rels *Relocations) Len() int {
	return rels.tree.Len()
}

// All iterates over every relocation in address order.
func (rels *Relocations) All() iter.Seq[*Relocation] {
	return func(yield func(*Relocation) bool) {
		rels.tree.Ascend(yield)
	}
}

// Range iterates in address order over the relocations with a from address
// in the half-open range [start, end).
func (rels *Relocations) Range(start uint32, end uint32) iter.Seq[*Relocation] {
	return func(yield func(*Relocation) bool) {
		if start >= end {
			return
		}
		rels.tree.AscendRange(&Relocation{from: start}, &Relocation{from: end}, yield)
	}
}
