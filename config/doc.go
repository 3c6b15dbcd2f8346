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

// Package config reads the romdis project file. The project file is YAML and
// lists the modules extracted from a ROM. For every module it names the
// classification of the module, the address it is loaded to and the files
// that describe it:
//
//	modules:
//	  - name: arm9
//	    kind: main
//	    base: 0x02000000
//	    code: arm9.bin
//	    sections: arm9/sections.txt
//	    symbols: arm9/symbols.txt
//	    relocations: arm9/relocs.txt
//	  - name: ov000
//	    kind: overlay(0)
//	    base: 0x02100000
//	    sections: ov000/sections.txt
//
// Paths are relative to the directory containing the project file. Every file
// is optional. A file that is not named results in an empty collection but a
// named file that cannot be read is an error.
//
// The contents of a module are loaded into a Bundle with the LoadModule()
// function.
package config
