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

// Package symbols maps addresses to names. A symbol annotates an address in a
// module as a function, a label, a pool constant, a jump table, a block of
// typed data or a block of bss.
//
// Neither the address nor the name of a symbol need be unique in a Map. The
// ForAddress() and ForName() functions return every matching symbol. The
// ByAddress() and ByName() functions return an error if there is more than
// one match.
//
// Only functions, data and bss symbols are written to a symbols file. The
// other kinds of symbol are the result of analysis and are recreated every
// time the analysis is performed. A symbols file line has the form:
//
//	main kind:function(arm) addr:0x2000800
//	table kind:data(word,count=16) addr:0x2010000
package symbols
