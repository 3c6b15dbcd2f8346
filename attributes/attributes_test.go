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

package attributes_test

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/test"
)

func TestFields(t *testing.T) {
	w := attributes.Fields("  main kind:function(arm)   addr:0x100 // entry point")
	test.DemandEquality(t, len(w), 3)
	test.ExpectEquality(t, w[0], "main")
	test.ExpectEquality(t, w[1], "kind:function(arm)")
	test.ExpectEquality(t, w[2], "addr:0x100")

	test.ExpectEquality(t, len(attributes.Fields("// only a comment")), 0)

	c, ok := attributes.Comment("from:0x10 // called from init")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, "called from init")
}

func TestSplit(t *testing.T) {
	ctx := attributes.Context{File: "symbols.txt", Row: 4}

	pairs, err := attributes.Split(ctx, []string{"kind:bss", "addr:0x20"})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(pairs), 2)
	test.ExpectEquality(t, pairs[0], attributes.Pair{Key: "kind", Value: "bss"})
	test.ExpectEquality(t, pairs[1], attributes.Pair{Key: "addr", Value: "0x20"})

	_, err = attributes.Split(ctx, []string{"kind:bss", "addr"})
	m := test.ExpectErrorAs[*attributes.MalformedAttributeError](t, err)
	if m != nil {
		test.ExpectEquality(t, m.Word, "addr")
		test.ExpectEquality(t, m.Context, ctx)
	}
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "symbols.txt:4: "))
}

func TestSplitOptions(t *testing.T) {
	v, o := attributes.SplitOptions("overlays(1,2)")
	test.ExpectEquality(t, v, "overlays")
	test.ExpectEquality(t, o, "1,2")

	v, o = attributes.SplitOptions("main")
	test.ExpectEquality(t, v, "main")
	test.ExpectEquality(t, o, "")

	v, o = attributes.SplitOptions("function()")
	test.ExpectEquality(t, v, "function")
	test.ExpectEquality(t, o, "")

	ctx := attributes.Context{File: "f", Row: 1}
	test.ExpectSuccess(t, attributes.NoOptions(ctx, "none", ""))
	err := attributes.NoOptions(ctx, "none", "x")
	u := test.ExpectErrorAs[*attributes.UnexpectedOptionsError](t, err)
	if u != nil {
		test.ExpectEquality(t, u.Options, "x")
	}
}

func TestIntegers(t *testing.T) {
	u, err := attributes.ParseU32("0x02000000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, u, uint32(0x02000000))

	u, err = attributes.ParseU32("4096")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, u, uint32(4096))

	_, err = attributes.ParseU32("0x100000000")
	test.ExpectSuccess(t, errors.Is(err, strconv.ErrRange))

	_, err = attributes.ParseU32("0xzz")
	test.ExpectSuccess(t, errors.Is(err, strconv.ErrSyntax))

	h, err := attributes.ParseU16("65535")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h, uint16(65535))
	_, err = attributes.ParseU16("65536")
	test.ExpectFailure(t, err)

	i, err := attributes.ParseI32("-0x10")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, i, int32(-16))

	i, err = attributes.ParseI32("-2147483648")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, i, int32(-2147483648))

	_, err = attributes.ParseI32("2147483648")
	test.ExpectFailure(t, err)

	_, err = attributes.ParseI32("--1")
	test.ExpectFailure(t, err)
}

func TestIntegerError(t *testing.T) {
	ctx := attributes.Context{File: "relocs.txt", Row: 12}
	_, err := attributes.U32(ctx, "from", "0xg")
	ie := test.ExpectErrorAs[*attributes.IntegerError](t, err)
	if ie != nil {
		test.ExpectEquality(t, ie.Value, "0xg")
		test.ExpectEquality(t, ie.Attribute, "from")
		test.ExpectEquality(t, ie.Context.Row, 12)
	}
}

func TestUnknownAttributeMessage(t *testing.T) {
	err := &attributes.UnknownAttributeError{
		Context:  attributes.Context{File: "a.txt", Row: 2},
		Record:   "symbol",
		Key:      "size",
		Expected: []string{"kind", "addr"},
	}
	test.ExpectEquality(t, err.Error(), "a.txt:2: expected symbol attribute 'kind' or 'addr' but got 'size'")
}

func TestReadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "lines.txt", []byte("first\n\n// comment\n   \nsecond // trailing\nthird"), 0644)
	test.DemandSuccess(t, err)

	var rows []int
	var lines []string
	err = attributes.ReadFile(fs, "lines.txt", func(ctx attributes.Context, line string) error {
		rows = append(rows, ctx.Row)
		lines = append(lines, attributes.Fields(line)[0])
		return nil
	})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(rows), 3)
	test.ExpectEquality(t, rows[0], 1)
	test.ExpectEquality(t, rows[1], 5)
	test.ExpectEquality(t, rows[2], 6)
	test.ExpectEquality(t, lines[1], "second")

	// parsing stops at the first error
	stop := errors.New("stop")
	count := 0
	err = attributes.ReadFile(fs, "lines.txt", func(ctx attributes.Context, line string) error {
		count++
		return stop
	})
	test.ExpectSuccess(t, errors.Is(err, stop))
	test.ExpectEquality(t, count, 1)

	err = attributes.ReadFile(fs, "missing.txt", func(ctx attributes.Context, line string) error {
		return nil
	})
	fe := test.ExpectErrorAs[*attributes.FileError](t, err)
	if fe != nil {
		test.ExpectEquality(t, fe.Op, "open")
		test.ExpectEquality(t, fe.Path, "missing.txt")
	}
}

func TestWriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := attributes.WriteFile(fs, "out.txt", func(w io.Writer) error {
		_, err := fmt.Fprintln(w, "a kind:bss addr:0x10")
		return err
	})
	test.DemandSuccess(t, err)

	b, err := afero.ReadFile(fs, "out.txt")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "a kind:bss addr:0x10\n")
}
