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

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/config"
	"github.com/jetsetilly/romdis/curated"
	"github.com/jetsetilly/romdis/module"
	"github.com/jetsetilly/romdis/relocations"
	"github.com/jetsetilly/romdis/test"
)

const project = `modules:
  - name: arm9
    kind: main
    base: 0x02000000
    code: arm9.bin
    sections: arm9/sections.txt
    symbols: arm9/symbols.txt
    relocations: arm9/relocs.txt
  - name: ov001
    kind: overlay(1)
    base: 0x02100000
  - name: itcm
    kind: itcm
    base: 0x01ff8000
`

func writeFile(t *testing.T, fs afero.Fs, path string, data string) {
	t.Helper()
	test.DemandSuccess(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	test.DemandSuccess(t, afero.WriteFile(fs, path, []byte(data), 0o644))
}

func newProject(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "rom/romdis.yaml", project)
	writeFile(t, fs, "rom/arm9.bin", string(make([]byte, 0x100)))
	writeFile(t, fs, "rom/arm9/sections.txt",
		".text kind:code start:0x02000000 end:0x02000080 align:32\n"+
			".data kind:data start:0x02000080 end:0x02000100 align:32\n")
	writeFile(t, fs, "rom/arm9/symbols.txt",
		"main kind:function(arm) addr:0x02000000\n"+
			"table kind:data(word,count=4) addr:0x02000080\n")
	writeFile(t, fs, "rom/arm9/relocs.txt",
		"from:0x02000010 kind:arm_call to:0x02100000 module:overlay(1)\n")
	return fs
}

func TestLoad(t *testing.T) {
	fs := newProject(t)

	p, err := config.Load(fs, "rom/romdis.yaml")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(p.Modules), 3)
	test.ExpectEquality(t, p.Dir(), "rom")

	m, ok := p.Find("ov001")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, m.ModuleKind(), module.OverlayKind(1))
	test.ExpectEquality(t, m.BaseAddress(), 0x02100000)

	m, ok = p.Find("itcm")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, m.ModuleKind(), module.AutoloadKindOf(module.AutoloadItcm))

	_, ok = p.Find("ov002")
	test.ExpectFailure(t, ok)
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := config.Load(fs, "missing.yaml")
	test.ExpectSuccess(t, curated.Is(err, config.ProjectFileError))
	test.ExpectErrorAs[*attributes.FileError](t, err)

	writeFile(t, fs, "unknown.yaml", "modules:\n  - name: arm9\n    kind: main\n    base: 0\n    colour: red\n")
	_, err = config.Load(fs, "unknown.yaml")
	test.ExpectSuccess(t, curated.Is(err, config.ProjectFileError))

	writeFile(t, fs, "kind.yaml", "modules:\n  - name: arm9\n    kind: arm7\n    base: 0\n")
	_, err = config.Load(fs, "kind.yaml")
	test.ExpectSuccess(t, curated.Is(err, config.ModuleEntryError))

	writeFile(t, fs, "base.yaml", "modules:\n  - name: arm9\n    kind: main\n    base: 0x2000000g\n")
	_, err = config.Load(fs, "base.yaml")
	test.ExpectSuccess(t, curated.Is(err, config.ModuleEntryError))
	test.ExpectErrorAs[*attributes.IntegerError](t, err)

	writeFile(t, fs, "dup.yaml", "modules:\n  - name: arm9\n    kind: main\n    base: 0\n  - name: arm9\n    kind: itcm\n    base: 0\n")
	_, err = config.Load(fs, "dup.yaml")
	test.ExpectSuccess(t, curated.Is(err, config.ModuleEntryError))
}

func TestLoadModules(t *testing.T) {
	fs := newProject(t)

	p, err := config.Load(fs, "rom/romdis.yaml")
	test.DemandSuccess(t, err)

	bundles, err := p.LoadAll(fs)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(bundles), 3)

	arm9 := bundles[0]
	test.ExpectEquality(t, len(arm9.Module.Code), 0x100)
	test.ExpectEquality(t, arm9.Sections.Len(), 2)
	test.ExpectEquality(t, arm9.Symbols.Len(), 2)
	test.ExpectEquality(t, arm9.Relocations.Len(), 1)
	test.ExpectEquality(t, len(arm9.Check()), 0)

	// the overlay has no files
	ov := bundles[1]
	test.ExpectEquality(t, ov.Sections.Len(), 0)
	test.ExpectEquality(t, ov.Symbols.Len(), 0)

	r, ok := arm9.Relocations.Get(0x02000010)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, ov.Targets(r.Module()))
	test.ExpectFailure(t, arm9.Targets(r.Module()))

	overlays, err := relocations.OverlaysModule(0, 1)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ov.Targets(overlays))

	m, err := bundles[2].RelocationModule()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Type, relocations.ModuleItcm)
}

func TestCheck(t *testing.T) {
	fs := newProject(t)

	// the data section extends beyond the end of the code
	writeFile(t, fs, "rom/arm9/sections.txt",
		".text kind:code start:0x02000000 end:0x02000080 align:32\n"+
			".data kind:data start:0x02000080 end:0x02000200 align:32\n")

	p, err := config.Load(fs, "rom/romdis.yaml")
	test.DemandSuccess(t, err)
	m, _ := p.Find("arm9")
	b, err := p.LoadModule(fs, m)
	test.DemandSuccess(t, err)

	errs := b.Check()
	test.DemandEquality(t, len(errs), 1)
	test.ExpectSuccess(t, curated.Is(errs[0], config.ModuleFileError))
}

func TestLoadModuleError(t *testing.T) {
	fs := newProject(t)
	writeFile(t, fs, "rom/arm9/relocs.txt",
		"from:0x02000010 kind:arm_call to:0x02100000 module:overlay(1)\n"+
			"from:0x02000010 kind:arm_call to:0x02100004 module:overlay(1)\n")

	p, err := config.Load(fs, "rom/romdis.yaml")
	test.DemandSuccess(t, err)
	_, err = p.LoadAll(fs)
	test.ExpectSuccess(t, curated.Is(err, config.ModuleFileError))

	line := test.ExpectErrorAs[*attributes.LineError](t, err)
	if line != nil {
		test.ExpectEquality(t, line.Context.File, filepath.Join("rom", "arm9", "relocs.txt"))
		test.ExpectEquality(t, line.Context.Row, 2)
	}
	test.ExpectErrorAs[*relocations.CollisionError](t, err)
}

func TestSave(t *testing.T) {
	fs := newProject(t)

	p, err := config.Load(fs, "rom/romdis.yaml")
	test.DemandSuccess(t, err)
	bundles, err := p.LoadAll(fs)
	test.DemandSuccess(t, err)

	for _, b := range bundles {
		test.DemandSuccess(t, b.Save(fs, p, "out"))
	}

	out, err := afero.ReadFile(fs, filepath.Join("out", "arm9", "symbols.txt"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(out), "main kind:function(arm) addr:0x2000000\ntable kind:data(word,count=4) addr:0x2000080\n")

	ok, err := afero.Exists(fs, filepath.Join("out", "arm9", "relocs.txt"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)

	test.DemandSuccess(t, p.Write(fs, "out/romdis.yaml"))
	again, err := config.Load(fs, "out/romdis.yaml")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(again.Modules), 3)
	test.ExpectEquality(t, again.Modules[0].BaseAddress(), 0x02000000)
}

func TestWriteRelocatesCode(t *testing.T) {
	fs := newProject(t)

	p, err := config.Load(fs, "rom/romdis.yaml")
	test.DemandSuccess(t, err)
	bundles, err := p.LoadAll(fs)
	test.DemandSuccess(t, err)
	for _, b := range bundles {
		test.DemandSuccess(t, b.Save(fs, p, "out"))
	}
	test.DemandSuccess(t, p.Write(fs, "out/romdis.yaml"))

	again, err := config.Load(fs, "out/romdis.yaml")
	test.DemandSuccess(t, err)
	b, err := again.LoadModule(fs, again.Modules[0])
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(b.Module.Code), 0x100)
}
