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

package config

import (
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/curated"
	"github.com/jetsetilly/romdis/module"
	"github.com/jetsetilly/romdis/relocations"
	"github.com/jetsetilly/romdis/sections"
	"github.com/jetsetilly/romdis/symbols"
)

// Bundle is a module and its sections, symbols and relocations.
type Bundle struct {
	Config      *Module
	Module      *module.Module
	Sections    *sections.Sections
	Symbols     *symbols.Map
	Relocations *relocations.Relocations
}

// LoadModule loads the files named by the module entry.
func (p *Project) LoadModule(fs afero.Fs, m *Module) (*Bundle, error) {
	b := &Bundle{
		Config:      m,
		Module:      module.NewModule(m.Name, m.kind, m.base, nil),
		Sections:    sections.NewSections(),
		Symbols:     symbols.NewMap(),
		Relocations: relocations.NewRelocations(),
	}

	var err error

	if m.Code != "" {
		b.Module.Code, err = afero.ReadFile(fs, p.Resolve(m.Code))
		if err != nil {
			return nil, curated.Errorf(ModuleFileError, m.Name, &attributes.FileError{Op: "read", Path: p.Resolve(m.Code), Err: err})
		}
	}

	if m.Sections != "" {
		b.Sections, err = sections.FromFile(fs, p.Resolve(m.Sections))
		if err != nil {
			return nil, curated.Errorf(ModuleFileError, m.Name, err)
		}
	}

	if m.Symbols != "" {
		b.Symbols, err = symbols.FromFile(fs, p.Resolve(m.Symbols))
		if err != nil {
			return nil, curated.Errorf(ModuleFileError, m.Name, err)
		}
	}

	if m.Relocations != "" {
		b.Relocations, err = relocations.FromFile(fs, p.Resolve(m.Relocations))
		if err != nil {
			return nil, curated.Errorf(ModuleFileError, m.Name, err)
		}
	}

	return b, nil
}

// LoadAll loads every module in the project. Loading stops at the first error.
func (p *Project) LoadAll(fs afero.Fs) ([]*Bundle, error) {
	bundles := make([]*Bundle, 0, len(p.Modules))
	for _, m := range p.Modules {
		b, err := p.LoadModule(fs, m)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

// RelocationModule returns the relocation destination that refers to the
// module.
func (b *Bundle) RelocationModule() (relocations.Module, error) {
	return relocations.ModuleFromKind(b.Module.Kind)
}

// Targets returns true if the relocation destination includes the module.
func (b *Bundle) Targets(dest relocations.Module) bool {
	m, err := b.RelocationModule()
	if err != nil {
		return false
	}
	if dest.Type == relocations.ModuleOverlays && m.Type == relocations.ModuleOverlay {
		return slices.Contains(dest.IDs, m.IDs[0])
	}
	return m.Equal(dest)
}

// Check the consistency of the bundle. The content of every initialised
// section is checked against the code of the module, if it has been loaded.
// Persistent symbols and relocations must lie within a section.
func (b *Bundle) Check() []error {
	var errs []error

	if b.Module.Code != nil {
		for _, sec := range b.Sections.All() {
			if _, err := sec.CodeFromModule(b.Module); err != nil {
				errs = append(errs, curated.Errorf(ModuleFileError, b.Module.Name, err))
			}
		}
	}

	if b.Sections.Len() == 0 {
		return errs
	}

	for _, sym := range b.Symbols.All() {
		if _, _, ok := b.Sections.ByContainedAddress(sym.Addr); !ok {
			errs = append(errs, curated.Errorf("module %s: symbol %s at %#010x is not in any section",
				b.Module.Name, sym.Name, sym.Addr))
		}
	}

	for r := range b.Relocations.All() {
		if _, _, ok := b.Sections.ByContainedAddress(r.From()); !ok {
			errs = append(errs, curated.Errorf("module %s: relocation from %#010x is not in any section",
				b.Module.Name, r.From()))
		}
	}

	return errs
}

// Save writes the sections, symbols and relocations of the bundle. If outDir
// is empty the files named in the project are overwritten. Otherwise the files
// are written to the same relative paths under outDir.
func (b *Bundle) Save(fs afero.Fs, p *Project, outDir string) error {
	target := func(path string) (string, error) {
		if outDir == "" {
			return p.Resolve(path), nil
		}
		if filepath.IsAbs(path) {
			path = filepath.Base(path)
		}
		path = filepath.Join(outDir, path)
		if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", &attributes.FileError{Op: "create", Path: filepath.Dir(path), Err: err}
		}
		return path, nil
	}

	write := func(path string, to func(afero.Fs, string) error) error {
		if path == "" {
			return nil
		}
		t, err := target(path)
		if err != nil {
			return curated.Errorf(ModuleFileError, b.Module.Name, err)
		}
		if err := to(fs, t); err != nil {
			return curated.Errorf(ModuleFileError, b.Module.Name, err)
		}
		return nil
	}

	if err := write(b.Config.Sections, b.Sections.ToFile); err != nil {
		return err
	}
	if err := write(b.Config.Symbols, b.Symbols.ToFile); err != nil {
		return err
	}
	return write(b.Config.Relocations, b.Relocations.ToFile)
}
