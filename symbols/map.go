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
	"iter"

	"github.com/google/btree"
	"github.com/samber/lo"

	"github.com/jetsetilly/romdis/analysis"
)

// Index refers to a symbol in a Map.
type Index int

// the symbols at a single address, in the order they were added
type addressEntry struct {
	addr    uint32
	indices []Index
}

// degree of the b-tree used for the address index
const addressDegree = 32

func lessAddress(a, b *addressEntry) bool {
	return a.addr < b.addr
}

// Map is the collection of symbols in a module. Symbols are indexed by address
// and by name. Neither index requires uniqueness.
type Map struct {
	symbols   []*Symbol
	byAddress *btree.BTreeG[*addressEntry]
	byName    map[string][]Index
}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap() *Map {
	return &Map{
		byAddress: btree.NewG(addressDegree, lessAddress),
		byName:    make(map[string][]Index),
	}
}

// FromSymbols creates a Map containing the symbols, in order.
func FromSymbols(symbols []*Symbol) *Map {
	m := NewMap()
	for _, sym := range symbols {
		m.Add(sym)
	}
	return m
}

// Len returns the number of symbols in the map.
func (m *Map) Len() int {
	return len(m.symbols)
}

// Get returns the symbol at the index. The index must have been returned by
// this Map.
func (m *Map) Get(idx Index) *Symbol {
	return m.symbols[idx]
}

// All iterates over every symbol in the order they were added.
func (m *Map) All() iter.Seq2[Index, *Symbol] {
	return func(yield func(Index, *Symbol) bool) {
		for i, sym := range m.symbols {
			if !yield(Index(i), sym) {
				return
			}
		}
	}
}

// Sorted iterates over every symbol in address order. Symbols at the same
// address are in the order they were added.
func (m *Map) Sorted() iter.Seq2[Index, *Symbol] {
	return func(yield func(Index, *Symbol) bool) {
		m.byAddress.Ascend(func(e *addressEntry) bool {
			for _, i := range e.indices {
				if !yield(i, m.symbols[i]) {
					return false
				}
			}
			return true
		})
	}
}

// Add the symbol to the map. The symbol is added even if another symbol
// already has the same address or name.
func (m *Map) Add(sym *Symbol) Index {
	idx := Index(len(m.symbols))
	m.symbols = append(m.symbols, sym)

	e, ok := m.byAddress.Get(&addressEntry{addr: sym.Addr})
	if !ok {
		e = &addressEntry{addr: sym.Addr}
		m.byAddress.ReplaceOrInsert(e)
	}
	e.indices = append(e.indices, idx)

	m.byName[sym.Name] = append(m.byName[sym.Name], idx)

	return idx
}

// AddIfNewAddress adds the symbol only if there is no symbol at the same
// address. Returns the index of the new symbol and true if the symbol was
// added.
func (m *Map) AddIfNewAddress(sym *Symbol) (Index, bool) {
	if m.HasAddress(sym.Addr) {
		return 0, false
	}
	return m.Add(sym), true
}

// HasAddress returns true if there is at least one symbol at the address.
func (m *Map) HasAddress(addr uint32) bool {
	return m.byAddress.Has(&addressEntry{addr: addr})
}

// AddFunction adds a function symbol for the analysed function.
func (m *Map) AddFunction(f *analysis.Function) Index {
	return m.Add(FromFunction(f))
}

// AddLabel adds a label at the address if there is no symbol already there.
// The label is named after the address.
func (m *Map) AddLabel(addr uint32) (Index, bool) {
	return m.AddIfNewAddress(&Symbol{Name: addressName(addr), Kind: Label{}, Addr: addr})
}

// AddPoolConstant adds a pool constant at the address if there is no symbol
// already there. The pool constant is named after the address.
func (m *Map) AddPoolConstant(addr uint32) (Index, bool) {
	return m.AddIfNewAddress(&Symbol{Name: addressName(addr), Kind: PoolConstant{}, Addr: addr})
}

// AddJumpTable adds a symbol for the jump table. The symbol is named after the
// address of the table.
func (m *Map) AddJumpTable(table analysis.JumpTable) Index {
	return m.Add(&Symbol{
		Name: addressName(table.Address),
		Kind: JumpTable{Size: table.Size, Code: table.Code},
		Addr: table.Address,
	})
}

// AddData adds a data symbol. If name is empty the symbol is named after the
// address.
func (m *Map) AddData(name string, addr uint32, data Data) Index {
	if name == "" {
		name = addressName(addr)
	}
	return m.Add(&Symbol{Name: name, Kind: data, Addr: addr})
}

// AddBss adds a bss symbol. If name is empty the symbol is named after the
// address.
func (m *Map) AddBss(name string, addr uint32) Index {
	if name == "" {
		name = addressName(addr)
	}
	return m.Add(&Symbol{Name: name, Kind: Bss{}, Addr: addr})
}

func (m *Map) indexed(indices []Index) iter.Seq2[Index, *Symbol] {
	return func(yield func(Index, *Symbol) bool) {
		for _, i := range indices {
			if !yield(i, m.symbols[i]) {
				return
			}
		}
	}
}

func (m *Map) atAddress(addr uint32) []Index {
	e, ok := m.byAddress.Get(&addressEntry{addr: addr})
	if !ok {
		return nil
	}
	return e.indices
}

// ForAddress iterates over every symbol at the address, in the order they
// were added.
func (m *Map) ForAddress(addr uint32) iter.Seq2[Index, *Symbol] {
	return m.indexed(m.atAddress(addr))
}

// ForName iterates over every symbol with the name, in the order they were
// added.
func (m *Map) ForName(name string) iter.Seq2[Index, *Symbol] {
	return m.indexed(m.byName[name])
}

// ByAddress returns the only symbol at the address. Returns nil if there is
// no symbol at the address and an AmbiguousAddressError if there is more than
// one.
func (m *Map) ByAddress(addr uint32) (*Symbol, error) {
	indices := m.atAddress(addr)
	switch len(indices) {
	case 0:
		return nil, nil
	case 1:
		return m.symbols[indices[0]], nil
	}
	return nil, &AmbiguousAddressError{
		Address: addr,
		Names: lo.Map(indices, func(i Index, _ int) string {
			return m.symbols[i].Name
		}),
	}
}

// ByName returns the only symbol with the name. Returns nil if there is no
// symbol with the name and an AmbiguousNameError if there is more than one.
func (m *Map) ByName(name string) (*Symbol, error) {
	indices := m.byName[name]
	switch len(indices) {
	case 0:
		return nil, nil
	case 1:
		return m.symbols[indices[0]], nil
	}
	return nil, &AmbiguousNameError{
		Name: name,
		Addresses: lo.Map(indices, func(i Index, _ int) uint32 {
			return m.symbols[i].Addr
		}),
	}
}

// GetLabel returns the symbol at the address if it is a label.
func (m *Map) GetLabel(addr uint32) (*Symbol, error) {
	sym, err := m.ByAddress(addr)
	if err != nil || sym == nil {
		return nil, err
	}
	if _, ok := sym.Kind.(Label); !ok {
		return nil, nil
	}
	return sym, nil
}

// GetPoolConstant returns the symbol at the address if it is a pool constant.
func (m *Map) GetPoolConstant(addr uint32) (*Symbol, error) {
	sym, err := m.ByAddress(addr)
	if err != nil || sym == nil {
		return nil, err
	}
	if _, ok := sym.Kind.(PoolConstant); !ok {
		return nil, nil
	}
	return sym, nil
}

// GetJumpTable returns the symbol at the address if it is a jump table.
func (m *Map) GetJumpTable(addr uint32) (JumpTable, *Symbol, error) {
	sym, err := m.ByAddress(addr)
	if err != nil || sym == nil {
		return JumpTable{}, nil, err
	}
	table, ok := sym.Kind.(JumpTable)
	if !ok {
		return JumpTable{}, nil, nil
	}
	return table, sym, nil
}

// GetData returns the symbol at the address if it is data.
func (m *Map) GetData(addr uint32) (Data, *Symbol, error) {
	sym, err := m.ByAddress(addr)
	if err != nil || sym == nil {
		return Data{}, nil, err
	}
	data, ok := sym.Kind.(Data)
	if !ok {
		return Data{}, nil, nil
	}
	return data, sym, nil
}

// LookupSymbolName returns the name of the symbol at the destination address
// of a reference made from the source address. Nothing is returned if there
// is no symbol at the destination or if there is more than one.
func (m *Map) LookupSymbolName(source uint32, destination uint32) (string, bool) {
	sym, err := m.ByAddress(destination)
	if err != nil || sym == nil {
		return "", false
	}
	return sym.Name, true
}
