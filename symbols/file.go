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
	"io"

	"github.com/spf13/afero"

	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/logger"
)

// FromFile reads a symbols file.
func FromFile(fs afero.Fs, path string) (*Map, error) {
	m := NewMap()

	err := attributes.ReadFile(fs, path, func(ctx attributes.Context, line string) error {
		sym, err := Parse(ctx, line)
		if err != nil {
			return err
		}
		if sym != nil {
			m.Add(sym)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "symbols", "%d symbols read from %s", m.Len(), path)

	return m, nil
}

// ToFile writes the function, data and bss symbols to the named file in
// address order.
func (m *Map) ToFile(fs afero.Fs, path string) error {
	return attributes.WriteFile(fs, path, m.WriteLines)
}

// WriteLines writes the function, data and bss symbols in address order. Symbols
// at the same address are written in the order they were added.
func (m *Map) WriteLines(w io.Writer) error {
	for _, sym := range m.Sorted() {
		if !sym.Kind.persisted() {
			continue // for loop
		}
		if _, err := fmt.Fprintln(w, sym.String()); err != nil {
			return err
		}
	}
	return nil
}
