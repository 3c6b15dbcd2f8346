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
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/logger"
)

// FromFile reads a section header file.
func FromFile(fs afero.Fs, path string) (*Sections, error) {
	return readFile(fs, path, Parse)
}

// InheritFromFile reads a file of sections that inherit their kind and
// alignment from the sections in the header.
func InheritFromFile(fs afero.Fs, path string, header *Sections) (*Sections, error) {
	return readFile(fs, path, func(ctx attributes.Context, line string) (*Section, error) {
		return ParseInherit(ctx, line, header)
	})
}

func readFile(fs afero.Fs, path string, parse func(attributes.Context, string) (*Section, error)) (*Sections, error) {
	secs := NewSections()

	err := attributes.ReadFile(fs, path, func(ctx attributes.Context, line string) error {
		sec, err := parse(ctx, line)
		if err != nil {
			return err
		}
		if sec == nil {
			return nil
		}
		_, err = secs.Add(sec)
		if err != nil {
			return &attributes.LineError{Context: ctx, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "sections", "%d sections read from %s", secs.Len(), path)

	return secs, nil
}

// ToFile writes every section as a header line, in address order.
func (secs *Sections) ToFile(fs afero.Fs, path string) error {
	return attributes.WriteFile(fs, path, secs.WriteLines)
}

// WriteLines writes every section as a header line, in address order.
func (secs *Sections) WriteLines(w io.Writer) error {
	for _, sec := range secs.SortedByAddress() {
		if _, err := fmt.Fprintln(w, sec.String()); err != nil {
			return err
		}
	}
	return nil
}
