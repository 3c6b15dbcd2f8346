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

package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"
	"github.com/spf13/afero"

	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/config"
	"github.com/jetsetilly/romdis/modalflag"
	"github.com/jetsetilly/romdis/paths"
	"github.com/jetsetilly/romdis/symbols"
)

func dump(md *modalflag.Modes, fs afero.Fs, prj *config.Project, output io.Writer) error {
	md.NewMode()
	md.AddSubModes("LIST", "GRAPH")

	module := md.AddString("module", "", "dump named module only")
	out := md.AddString("out", "", "file to write graph to (GRAPH mode only, default in resource directory)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	bundles, err := loadBundles(fs, prj, *module)
	if err != nil {
		return err
	}

	switch md.Mode() {
	case "LIST":
		for _, b := range bundles {
			fmt.Fprintf(output, "%s\n", b.Module)
			b.Symbols.List(output)
		}

	case "GRAPH":
		filename := *out
		if filename == "" {
			filename = paths.ResourcePath(fs, "dumps", fmt.Sprintf("%s.dot", paths.UniqueFilename("dump", *module)))
			if err := fs.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
				return err
			}
		}

		err = attributes.WriteFile(fs, filename, func(w io.Writer) error {
			memviz.Map(w, graph(bundles))
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(output, "graph written to %s\n", filename)
	}

	return nil
}

// graphModule is the summary of a bundle rendered by the GRAPH mode. the
// relocation table and the symbol indexes are too large to be usefully drawn
// so only the sections and the persistent symbols are included.
type graphModule struct {
	Name     string
	Kind     string
	Base     uint32
	End      uint32
	Sections []graphSection
}

type graphSection struct {
	Name        string
	Kind        string
	Start       uint32
	End         uint32
	Symbols     []string
	Relocations int
}

func graph(bundles []*config.Bundle) []graphModule {
	modules := make([]graphModule, 0, len(bundles))

	for _, b := range bundles {
		m := graphModule{
			Name: b.Module.Name,
			Kind: b.Module.Kind.String(),
			Base: b.Module.BaseAddress,
			End:  b.Module.EndAddress(),
		}

		for _, sec := range b.Sections.SortedByAddress() {
			gs := graphSection{
				Name:  sec.Name(),
				Kind:  sec.Kind().String(),
				Start: sec.StartAddress(),
				End:   sec.EndAddress(),
			}

			for _, sym := range b.Symbols.Sorted() {
				if !sec.Contains(sym.Addr) {
					continue // for loop
				}
				switch sym.Kind.(type) {
				case symbols.Function, symbols.Data, symbols.Bss:
					gs.Symbols = append(gs.Symbols, sym.Name)
				}
			}

			for range b.Relocations.Range(sec.StartAddress(), sec.EndAddress()) {
				gs.Relocations++
			}

			m.Sections = append(m.Sections, gs)
		}

		modules = append(modules, m)
	}

	return modules
}
