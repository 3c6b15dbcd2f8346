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

package sections

import (
	"github.com/jetsetilly/romdis/attributes"
)

var headerAttributes = []string{"kind", "start", "end", "align"}

// Parse a section header line. Returns nil and no error if the line is empty
// once the comment has been removed.
func Parse(ctx attributes.Context, line string) (*Section, error) {
	words := attributes.Fields(line)
	if len(words) == 0 {
		return nil, nil
	}
	name := words[0]

	pairs, err := attributes.Split(ctx, words[1:])
	if err != nil {
		return nil, err
	}

	var kind *Kind
	var start, end, align *uint32

	for _, p := range pairs {
		switch p.Key {
		case "kind":
			k, err := parseKind(ctx, p.Value)
			if err != nil {
				return nil, err
			}
			kind = &k
		case "start":
			v, err := attributes.U32(ctx, "start address", p.Value)
			if err != nil {
				return nil, err
			}
			start = &v
		case "end":
			v, err := attributes.U32(ctx, "end address", p.Value)
			if err != nil {
				return nil, err
			}
			end = &v
		case "align":
			v, err := attributes.U32(ctx, "alignment", p.Value)
			if err != nil {
				return nil, err
			}
			align = &v
		default:
			return nil, &attributes.UnknownAttributeError{
				Context:  ctx,
				Record:   "section",
				Key:      p.Key,
				Expected: headerAttributes,
			}
		}
	}

	missing := func(attribute string) error {
		return &attributes.MissingAttributeError{Context: ctx, Record: "section", Attribute: attribute}
	}
	if kind == nil {
		return nil, missing("kind")
	}
	if start == nil {
		return nil, missing("start")
	}
	if end == nil {
		return nil, missing("end")
	}
	if align == nil {
		return nil, missing("align")
	}

	sec, err := NewSection(name, *kind, *start, *end, *align)
	if err != nil {
		return nil, &attributes.LineError{Context: ctx, Err: err}
	}

	return sec, nil
}

var inheritAttributes = []string{"start", "end"}

// ParseInherit parses a line naming a section in the header. The kind and
// alignment are taken from the header section and must not be specified.
// Returns nil and no error if the line is empty once the comment has been
// removed.
func ParseInherit(ctx attributes.Context, line string, header *Sections) (*Section, error) {
	words := attributes.Fields(line)
	if len(words) == 0 {
		return nil, nil
	}
	name := words[0]

	_, inherit, ok := header.ByName(name)
	if !ok {
		return nil, &NotInHeaderError{Context: ctx, Name: name}
	}

	pairs, err := attributes.Split(ctx, words[1:])
	if err != nil {
		return nil, err
	}

	var start, end *uint32

	for _, p := range pairs {
		switch p.Key {
		case "kind", "align":
			return nil, &InheritedAttributeError{Context: ctx, Attribute: p.Key}
		case "start":
			v, err := attributes.U32(ctx, "start address", p.Value)
			if err != nil {
				return nil, err
			}
			start = &v
		case "end":
			v, err := attributes.U32(ctx, "end address", p.Value)
			if err != nil {
				return nil, err
			}
			end = &v
		default:
			return nil, &attributes.UnknownAttributeError{
				Context:  ctx,
				Record:   "section",
				Key:      p.Key,
				Expected: inheritAttributes,
			}
		}
	}

	if start == nil {
		return nil, &attributes.MissingAttributeError{Context: ctx, Record: "section", Attribute: "start"}
	}
	if end == nil {
		return nil, &attributes.MissingAttributeError{Context: ctx, Record: "section", Attribute: "end"}
	}

	sec, err := Inherit(inherit, *start, *end)
	if err != nil {
		return nil, &attributes.LineError{Context: ctx, Err: err}
	}

	return sec, nil
}
