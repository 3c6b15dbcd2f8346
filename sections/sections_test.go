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

package sections_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/jetsetilly/romdis/analysis"
	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/module"
	"github.com/jetsetilly/romdis/sections"
	"github.com/jetsetilly/romdis/test"
)

func newSection(t *testing.T, name string, kind sections.Kind, start uint32, end uint32) *sections.Section {
	t.Helper()
	sec, err := sections.NewSection(name, kind, start, end, 4)
	test.DemandSuccess(t, err)
	return sec
}

func TestConstruction(t *testing.T) {
	_, err := sections.NewSection(".text", sections.Code, 0x2000, 0x1000, 3)
	test.ExpectErrorAs[*sections.EndBeforeStartError](t, err)

	_, err = sections.NewSection(".text", sections.Code, 0x1001, 0x2000, 3)
	test.ExpectErrorAs[*sections.AlignmentError](t, err)

	_, err = sections.NewSection(".text", sections.Code, 0x1000, 0x2000, 0)
	test.ExpectErrorAs[*sections.AlignmentError](t, err)

	_, err = sections.NewSection(".text", sections.Code, 0x1004, 0x2000, 32)
	mis := test.ExpectErrorAs[*sections.MisalignedStartError](t, err)
	if mis != nil {
		test.ExpectEquality(t, mis.Start, 0x1004)
		test.ExpectEquality(t, mis.Alignment, 32)
	}

	sec, err := sections.NewSection(".text", sections.Code, 0x1000, 0x1000, 32)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sec.Size(), 0)
}

func TestInherit(t *testing.T) {
	header, err := sections.NewSection(".data", sections.Data, 0x2000, 0x3000, 32)
	test.DemandSuccess(t, err)

	sec, err := sections.Inherit(header, 0x2010, 0x2020)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sec.Name(), ".data")
	test.ExpectEquality(t, sec.Kind(), sections.Data)
	test.ExpectEquality(t, sec.Alignment(), 32)
	test.ExpectEquality(t, sec.AddressRange(), sections.Range{Start: 0x2010, End: 0x2020})

	_, err = sections.Inherit(header, 0x2020, 0x2010)
	test.ExpectErrorAs[*sections.EndBeforeStartError](t, err)
}

func TestCode(t *testing.T) {
	code := make([]byte, 0x100)
	for i := range code {
		code[i] = byte(i)
	}
	m := module.NewModule("arm9", module.MainKind(), 0x1000, code)

	sec := newSection(t, ".text", sections.Code, 0x1010, 0x1020)
	b, err := sec.CodeFromModule(m)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(b), 0x10)
	test.ExpectEquality(t, b[0], 0x10)

	sec = newSection(t, ".text", sections.Code, 0x0ff0, 0x1020)
	_, err = sec.CodeFromModule(m)
	test.ExpectErrorAs[*sections.StartsBeforeBaseError](t, err)

	sec = newSection(t, ".text", sections.Code, 0x10f0, 0x1104)
	_, err = sec.CodeFromModule(m)
	test.ExpectErrorAs[*sections.EndsOutsideModuleError](t, err)

	// bss sections have no content even if they lie outside the module
	sec = newSection(t, ".bss", sections.Bss, 0x8000, 0x9000)
	b, err = sec.CodeFromModule(m)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, b == nil)
}

func TestIterWords(t *testing.T) {
	sec := newSection(t, ".data", sections.Data, 0x1000, 0x100a)
	code := []byte{0x01, 0x00, 0x00, 0x00, 0x78, 0x56, 0x34, 0x12, 0xff, 0xff}

	var words []sections.Word
	for w := range sec.IterWords(code) {
		words = append(words, w)
	}

	expected := []sections.Word{
		{Address: 0x1000, Value: 0x00000001},
		{Address: 0x1004, Value: 0x12345678},
	}
	if d := cmp.Diff(expected, words); d != "" {
		t.Errorf("unexpected words (-want +got):\n%s", d)
	}

	// unaligned start is rounded up
	words = words[:0]
	for w := range sec.IterWordsIn(code, sections.Range{Start: 0x1001, End: 0x100a}) {
		words = append(words, w)
	}
	if d := cmp.Diff(expected[1:], words); d != "" {
		t.Errorf("unexpected words (-want +got):\n%s", d)
	}

	// range too small for a whole word
	words = words[:0]
	for w := range sec.IterWordsIn(code, sections.Range{Start: 0x1001, End: 0x1007}) {
		words = append(words, w)
	}
	test.ExpectEquality(t, len(words), 0)
}

func TestOverlap(t *testing.T) {
	secs := sections.NewSections()

	_, err := secs.Add(newSection(t, ".text", sections.Code, 0x1000, 0x2000))
	test.DemandSuccess(t, err)

	// touching but not overlapping
	idx, err := secs.Add(newSection(t, ".rodata", sections.Data, 0x2000, 0x2800))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, idx, sections.Index(1))

	_, err = secs.Add(newSection(t, ".data", sections.Data, 0x1ffc, 0x2004))
	ov := test.ExpectErrorAs[*sections.OverlapError](t, err)
	if ov != nil {
		test.ExpectEquality(t, ov.Other, ".text")
	}
	test.ExpectEquality(t, secs.Len(), 2)

	_, err = secs.Add(newSection(t, ".text", sections.Code, 0x4000, 0x5000))
	test.ExpectErrorAs[*sections.DuplicateNameError](t, err)
	test.ExpectEquality(t, secs.Len(), 2)

	_, _, ok := secs.ByName(".data")
	test.ExpectFailure(t, ok)

	// no pair of sections may overlap
	for _, a := range secs.SortedByAddress() {
		for _, b := range secs.SortedByAddress() {
			if a != b {
				test.ExpectFailure(t, a.OverlapsWith(b), a.Name(), b.Name())
			}
		}
	}
}

func TestContainment(t *testing.T) {
	secs := sections.NewSections()
	_, err := secs.Add(newSection(t, ".text", sections.Code, 0x1000, 0x2000))
	test.DemandSuccess(t, err)

	_, _, ok := secs.ByContainedAddress(0x2000)
	test.ExpectFailure(t, ok)

	_, sec, ok := secs.ByContainedAddress(0x1ffc)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, sec.Name(), ".text")

	_, err = secs.Add(newSection(t, ".data", sections.Data, 0x2000, 0x3000))
	test.DemandSuccess(t, err)

	idx, sec, ok := secs.ByContainedAddress(0x2000)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, sec.Name(), ".data")
	test.ExpectEquality(t, secs.Get(idx), sec)
}

func TestOrdering(t *testing.T) {
	secs := sections.NewSections()
	for _, s := range []struct {
		name  string
		kind  sections.Kind
		start uint32
		end   uint32
	}{
		{".bss", sections.Bss, 0x3000, 0x3400},
		{".text", sections.Code, 0x1000, 0x2000},
		{".sbss", sections.Bss, 0x3800, 0x3900},
		{".data", sections.Data, 0x2000, 0x3000},
	} {
		_, err := secs.Add(newSection(t, s.name, s.kind, s.start, s.end))
		test.DemandSuccess(t, err, s.name)
	}

	var added []string
	for _, sec := range secs.All() {
		added = append(added, sec.Name())
	}
	if d := cmp.Diff([]string{".bss", ".text", ".sbss", ".data"}, added); d != "" {
		t.Errorf("unexpected insertion order (-want +got):\n%s", d)
	}

	var sorted []string
	for _, sec := range secs.SortedByAddress() {
		sorted = append(sorted, sec.Name())
	}
	if d := cmp.Diff([]string{".text", ".data", ".bss", ".sbss"}, sorted); d != "" {
		t.Errorf("unexpected address order (-want +got):\n%s", d)
	}

	base, ok := secs.BaseAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, base, 0x1000)

	end, ok := secs.EndAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, end, 0x3900)

	test.ExpectEquality(t, secs.BssSize(), 0x500)

	bss, ok := secs.BssRange()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, bss, sections.Range{Start: 0x3000, End: 0x3900})

	empty := sections.NewSections()
	_, ok = empty.BaseAddress()
	test.ExpectFailure(t, ok)
	_, ok = empty.BssRange()
	test.ExpectFailure(t, ok)
}

func TestFunctions(t *testing.T) {
	secs := sections.NewSections()
	_, err := secs.Add(newSection(t, ".text", sections.Code, 0x1000, 0x2000))
	test.DemandSuccess(t, err)
	_, err = secs.Add(newSection(t, ".init", sections.Code, 0x4000, 0x5000))
	test.DemandSuccess(t, err)

	for _, f := range []*analysis.Function{
		{Name: "main", StartAddress: 0x1100, EndAddress: 0x1200},
		{Name: "init", StartAddress: 0x4000, EndAddress: 0x4010, Thumb: true},
		{Name: "start", StartAddress: 0x1000, EndAddress: 0x1100},
	} {
		_, err := secs.AddFunction(f)
		test.DemandSuccess(t, err, f.Name)
	}

	_, err = secs.AddFunction(&analysis.Function{Name: "lost", StartAddress: 0x3000})
	test.ExpectErrorAs[*sections.NoContainingSectionError](t, err)

	var names []string
	for f := range secs.Functions() {
		names = append(names, f.Name)
	}
	if d := cmp.Diff([]string{"start", "main", "init"}, names); d != "" {
		t.Errorf("unexpected functions (-want +got):\n%s", d)
	}

	_, sec, ok := secs.ByName(".text")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, sec.NumFunctions(), 2)
	f, ok := sec.Function(0x1100)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, f.Name, "main")

	sec, err = sections.WithFunctions(".text", sections.Code, 0x1000, 0x2000, 4, slices.Collect(secs.Functions()))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sec.NumFunctions(), 3)
}

func TestString(t *testing.T) {
	sec := newSection(t, ".text", sections.Code, 0x02000000, 0x02000100)
	test.ExpectEquality(t, sec.String(), ".text       start:0x02000000 end:0x02000100 kind:code align:4")

	ctx := attributes.Context{File: "sections.txt", Row: 1}
	again, err := sections.Parse(ctx, sec.String())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, again.String(), sec.String())
}

func TestParse(t *testing.T) {
	ctx := attributes.Context{File: "sections.txt", Row: 3}

	_, err := sections.Parse(ctx, ".text kind:code start:0x1000 end:0x2000")
	missing := test.ExpectErrorAs[*attributes.MissingAttributeError](t, err)
	if missing != nil {
		test.ExpectEquality(t, missing.Attribute, "align")
	}

	_, err = sections.Parse(ctx, ".text kind:text start:0x1000 end:0x2000 align:4")
	test.ExpectErrorAs[*attributes.UnknownValueError](t, err)

	_, err = sections.Parse(ctx, ".text kind:code start:0x1000 end:0x2000 align:4 size:3")
	test.ExpectErrorAs[*attributes.UnknownAttributeError](t, err)

	_, err = sections.Parse(ctx, ".text kind:code start:0x1002 end:0x2000 align:4")
	line := test.ExpectErrorAs[*attributes.LineError](t, err)
	if line != nil {
		test.ExpectEquality(t, line.Context, ctx)
	}
	test.ExpectErrorAs[*sections.MisalignedStartError](t, err)

	header := sections.NewSections()
	sec, err := sections.Parse(ctx, ".text kind:code start:0x1000 end:0x2000 align:32")
	test.DemandSuccess(t, err)
	_, err = header.Add(sec)
	test.DemandSuccess(t, err)

	sec, err = sections.ParseInherit(ctx, ".text start:0x1010 end:0x1020 // unit.o", header)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sec.Alignment(), 32)
	test.ExpectEquality(t, sec.StartAddress(), 0x1010)

	_, err = sections.ParseInherit(ctx, ".text start:0x1010 end:0x1020 align:4", header)
	inherited := test.ExpectErrorAs[*sections.InheritedAttributeError](t, err)
	if inherited != nil {
		test.ExpectEquality(t, inherited.Attribute, "align")
	}

	_, err = sections.ParseInherit(ctx, ".text kind:code start:0x1010 end:0x1020", header)
	test.ExpectErrorAs[*sections.InheritedAttributeError](t, err)

	_, err = sections.ParseInherit(ctx, ".data start:0x1010 end:0x1020", header)
	test.ExpectErrorAs[*sections.NotInHeaderError](t, err)
}

func TestFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	header := strings.Join([]string{
		"// arm9 sections",
		".data kind:data start:0x02002000 end:0x02003000 align:32",
		".text kind:code start:0x02000000 end:0x02002000 align:32",
		".bss  kind:bss  start:0x02003000 end:0x02004000 align:32",
	}, "\n")
	test.DemandSuccess(t, afero.WriteFile(fs, "sections.txt", []byte(header), 0o644))

	secs, err := sections.FromFile(fs, "sections.txt")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, secs.Len(), 3)

	unit := strings.Join([]string{
		".text start:0x02000100 end:0x02000200",
		".data start:0x02002000 end:0x02002010",
	}, "\n")
	test.DemandSuccess(t, afero.WriteFile(fs, "unit.txt", []byte(unit), 0o644))

	inherited, err := sections.InheritFromFile(fs, "unit.txt", secs)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, inherited.Len(), 2)

	test.DemandSuccess(t, secs.ToFile(fs, "out.txt"))
	out, err := afero.ReadFile(fs, "out.txt")
	test.DemandSuccess(t, err)
	expected := ".text       start:0x02000000 end:0x02002000 kind:code align:32\n" +
		".data       start:0x02002000 end:0x02003000 kind:data align:32\n" +
		".bss        start:0x02003000 end:0x02004000 kind:bss align:32\n"
	test.ExpectEquality(t, string(out), expected)

	overlap := strings.Join([]string{
		".text kind:code start:0x02000000 end:0x02002000 align:32",
		".data kind:data start:0x02001000 end:0x02003000 align:32",
	}, "\n")
	test.DemandSuccess(t, afero.WriteFile(fs, "overlap.txt", []byte(overlap), 0o644))

	_, err = sections.FromFile(fs, "overlap.txt")
	line := test.ExpectErrorAs[*attributes.LineError](t, err)
	if line != nil {
		test.ExpectEquality(t, line.Context.Row, 2)
	}
	test.ExpectErrorAs[*sections.OverlapError](t, err)
}
