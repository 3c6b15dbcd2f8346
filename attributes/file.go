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

package attributes

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// maximum length of a single line in an attributes file
const maxLineLength = 1 << 20

// ReadFile reads the named file one line at a time and calls parse for every
// line that is not blank once its comment has been removed. The unstripped
// line is passed to parse so that comment text remains available.
//
// Reading stops at the first error returned by parse and that error is
// returned unchanged.
func ReadFile(fs afero.Fs, path string, parse func(ctx Context, line string) error) error {
	f, err := fs.Open(path)
	if err != nil {
		return &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	ctx := Context{File: path}
	for scanner.Scan() {
		ctx.Row++

		line := scanner.Text()
		if strings.TrimSpace(StripComment(line)) == "" {
			continue // for loop
		}

		err := parse(ctx, line)
		if err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return &FileError{Op: "read", Path: path, Err: err}
	}

	return nil
}

// WriteFile creates (or truncates) the named file and passes a buffered writer
// to the write function.
func WriteFile(fs afero.Fs, path string, write func(w io.Writer) error) error {
	f, err := fs.Create(path)
	if err != nil {
		return &FileError{Op: "create", Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	err = write(w)
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		_ = f.Close()
		return &FileError{Op: "write", Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &FileError{Op: "close", Path: path, Err: err}
	}

	return nil
}
