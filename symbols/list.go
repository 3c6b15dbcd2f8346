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
)

// List outputs every symbol in address order, including the symbols that are
// never written to a symbols file.
func (m *Map) List(output io.Writer) {
	width := 0
	for _, sym := range m.symbols {
		width = max(width, len(sym.Name))
	}

	output.Write([]byte(fmt.Sprintf("Symbols\n-------\n")))
	for _, sym := range m.Sorted() {
		output.Write([]byte(fmt.Sprintf("%#010x -> %-*s %s\n", sym.Addr, width, sym.Name, sym.Kind)))
	}
}
