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

	"github.com/spf13/afero"

	"github.com/jetsetilly/romdis/config"
	"github.com/jetsetilly/romdis/curated"
	"github.com/jetsetilly/romdis/modalflag"
	"github.com/jetsetilly/romdis/relocations"
)

func lookup(md *modalflag.Modes, fs afero.Fs, prj *config.Project, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("The argument is an address or the name of a symbol. Addresses are\nhexadecimal with a 0x prefix or decimal.")

	module := md.AddString("module", "", "lookup in named module only")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("address or symbol required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	bundles, err := loadBundles(fs, prj, *module)
	if err != nil {
		return err
	}

	address, err := md.GetAddressArg(0)
	if err != nil {
		return lookupSymbol(bundles, md.GetArg(0), output)
	}

	lookupAddress(bundles, address, output)

	return nil
}

// lookupSymbol outputs every symbol with the name, in every bundle.
func lookupSymbol(bundles []*config.Bundle, name string, output io.Writer) error {
	found := false
	for _, b := range bundles {
		res := b.Symbols.Search(name)
		if res == nil {
			continue // for loop
		}
		for _, sym := range res.Symbols {
			found = true
			fmt.Fprintf(output, "%s: %s\n", b.Module.Name, sym)
			lookupAddress([]*config.Bundle{b}, sym.Addr, output)
		}
	}

	if !found {
		return curated.Errorf("no symbol named %s", name)
	}

	return nil
}

// lookupAddress outputs the section, symbols and relocation at the address,
// for every bundle that has the address in one of its sections.
func lookupAddress(bundles []*config.Bundle, address uint32, output io.Writer) {
	for _, b := range bundles {
		_, sec, ok := b.Sections.ByContainedAddress(address)
		if !ok {
			continue // for loop
		}

		fmt.Fprintf(output, "%s: %#010x in %s (%s)\n", b.Module.Name, address, sec.Name(), sec.Kind())

		for _, sym := range b.Symbols.ForAddress(address) {
			fmt.Fprintf(output, "  symbol: %s\n", sym)
		}

		if r, ok := b.Relocations.Get(address); ok {
			fmt.Fprintf(output, "  relocation: %s\n", r)
			for _, name := range relocationTargets(bundles, r) {
				fmt.Fprintf(output, "    target: %s\n", name)
			}
		}
	}
}

// relocationTargets returns the name of the symbol at the destination of the
// relocation in each of the modules it refers to.
func relocationTargets(bundles []*config.Bundle, r *relocations.Relocation) []string {
	var names []string
	for _, b := range bundles {
		if !b.Targets(r.Module()) {
			continue // for loop
		}
		if name, ok := b.Symbols.LookupSymbolName(r.From(), r.To()); ok {
			names = append(names, fmt.Sprintf("%s in %s", name, b.Module.Name))
		}
	}
	return names
}
