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
	"strings"
)

// SearchResults contains the symbols found by Search().
type SearchResults struct {
	// the search was not case-sensitive and Symbols contains every symbol
	// with a name that differs only in case
	Folded bool

	Symbols []*Symbol
}

// Search returns the symbols with the name. If there are no symbols with
// exactly that name then the search is repeated without regard to case.
// Returns nil if nothing is found.
func (m *Map) Search(name string) *SearchResults {
	if indices, ok := m.byName[name]; ok {
		res := &SearchResults{}
		for _, i := range indices {
			res.Symbols = append(res.Symbols, m.symbols[i])
		}
		return res
	}

	nameUpper := strings.ToUpper(name)

	var res *SearchResults
	for _, sym := range m.Sorted() {
		if strings.ToUpper(sym.Name) == nameUpper {
			if res == nil {
				res = &SearchResults{Folded: true}
			}
			res.Symbols = append(res.Symbols, sym)
		}
	}

	return res
}
