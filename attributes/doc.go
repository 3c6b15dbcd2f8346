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

// Package attributes implements the line grammar shared by the symbols,
// relocations and sections text files.
//
// A line is a sequence of whitespace separated words. Everything following
// the first "//" is a comment and is removed before the line is split. For
// named records the first word is an identifier and the remaining words are
// attributes of the form key:value. For example:
//
//	main kind:function(arm) addr:0x02000800
//	from:0x02000804 kind:arm_call to:0x02001000 module:overlay(3)
//
// A value may carry options in parenthesis, as in "function(arm)" or
// "overlays(1,2)". The SplitOptions() function separates the value from its
// options.
//
// Integer values are parsed with ParseU32(), ParseU16() and ParseI32(). All
// three accept a hexadecimal value with a "0x" prefix or a decimal value.
//
// Every error produced while parsing a line carries a Context, which names the
// file and the 1-based row of the offending line.
package attributes
