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
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/curated"
	"github.com/jetsetilly/romdis/logger"
	"github.com/jetsetilly/romdis/module"
)

// Sentinal error patterns.
const (
	// the project file could not be read or is not valid YAML
	ProjectFileError = "project: %v"

	// a module entry in the project file is not valid
	ModuleEntryError = "project: module %s: %v"

	// a file named by a module could not be loaded
	ModuleFileError = "module %s: %v"
)

// Module is the description of a module in the project file.
type Module struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Base        string `yaml:"base"`
	Code        string `yaml:"code,omitempty"`
	Sections    string `yaml:"sections,omitempty"`
	Symbols     string `yaml:"symbols,omitempty"`
	Relocations string `yaml:"relocations,omitempty"`

	// parsed versions of Kind and Base
	kind module.Kind
	base uint32
}

// ModuleKind returns the parsed Kind field.
func (m *Module) ModuleKind() module.Kind {
	return m.kind
}

// BaseAddress returns the parsed Base field.
func (m *Module) BaseAddress() uint32 {
	return m.base
}

// Project is the contents of a project file.
type Project struct {
	Modules []*Module `yaml:"modules"`

	// the directory containing the project file. relative paths are resolved
	// against this directory
	dir string
}

// Load the project file at path.
func Load(fs afero.Fs, path string) (*Project, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, curated.Errorf(ProjectFileError, &attributes.FileError{Op: "open", Path: path, Err: err})
	}

	p := &Project{
		dir: filepath.Dir(path),
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		return nil, curated.Errorf(ProjectFileError, err)
	}

	if err := p.normalise(); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "config", "%d modules in %s", len(p.Modules), path)

	return p, nil
}

// normalise checks every module entry and parses the kind and base fields.
func (p *Project) normalise() error {
	names := make(map[string]bool)

	for i, m := range p.Modules {
		if m.Name == "" {
			return curated.Errorf(ModuleEntryError, fmt.Sprintf("#%d", i), "missing name")
		}
		if names[m.Name] {
			return curated.Errorf(ModuleEntryError, m.Name, "name already in use")
		}
		names[m.Name] = true

		var err error

		m.kind, err = module.ParseKind(m.Kind)
		if err != nil {
			return curated.Errorf(ModuleEntryError, m.Name, err)
		}

		m.base, err = attributes.ParseU32(m.Base)
		if err != nil {
			return curated.Errorf(ModuleEntryError, m.Name, &attributes.IntegerError{
				Context:   attributes.Context{File: "project"},
				Attribute: "base",
				Value:     m.Base,
				Err:       err,
			})
		}
	}

	return nil
}

// Dir returns the directory against which relative paths are resolved.
func (p *Project) Dir() string {
	return p.dir
}

// Resolve returns the path relative to the project file directory. Absolute
// paths and empty paths are returned unchanged.
func (p *Project) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.dir, path)
}

// Find returns the module with the name.
func (p *Project) Find(name string) (*Module, bool) {
	for _, m := range p.Modules {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Write the project file to path. The directory of the project is changed to
// the directory of the new path. Relative code paths are rewritten so that
// they refer to the same file from the new directory. Other paths are not
// changed.
func (p *Project) Write(fs afero.Fs, path string) error {
	dir := filepath.Dir(path)

	for _, m := range p.Modules {
		if m.Code == "" || filepath.IsAbs(m.Code) {
			continue // for loop
		}
		if rel, err := filepath.Rel(dir, p.Resolve(m.Code)); err == nil {
			m.Code = rel
		}
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return curated.Errorf(ProjectFileError, err)
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return curated.Errorf(ProjectFileError, &attributes.FileError{Op: "write", Path: path, Err: err})
	}

	p.dir = dir

	return nil
}
