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
	"fmt"
	"strings"
)

// MalformedAttributeError is returned when a word is not of the form key:value.
type MalformedAttributeError struct {
	Context Context
	Word    string
}

func (e *MalformedAttributeError) Error() string {
	return fmt.Sprintf("%s: expected attribute of the form 'key:value' but got '%s'", e.Context, e.Word)
}

// UnknownAttributeError is returned when a key is not recognised for the type
// of record being parsed.
type UnknownAttributeError struct {
	Context  Context
	Record   string
	Key      string
	Expected []string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("%s: expected %s attribute %s but got '%s'", e.Context, e.Record, quoteList(e.Expected), e.Key)
}

// MissingAttributeError is returned when a required attribute is absent.
type MissingAttributeError struct {
	Context   Context
	Record    string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s: %s is missing '%s' attribute", e.Context, e.Record, e.Attribute)
}

// IntegerError is returned when an integer token cannot be parsed. The raw
// token is preserved in the Value field.
type IntegerError struct {
	Context   Context
	Attribute string
	Value     string
	Err       error
}

func (e *IntegerError) Error() string {
	return fmt.Sprintf("%s: failed to parse '%s' value '%s': %v", e.Context, e.Attribute, e.Value, e.Err)
}

func (e *IntegerError) Unwrap() error {
	return e.Err
}

// UnknownValueError is returned when an enumerated value is not recognised.
type UnknownValueError struct {
	Context   Context
	Attribute string
	Value     string
	Expected  []string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%s: unknown %s '%s', must be one of: %s", e.Context, e.Attribute, e.Value, strings.Join(e.Expected, ", "))
}

// UnexpectedOptionsError is returned when options are given to a value that
// takes none.
type UnexpectedOptionsError struct {
	Context Context
	Value   string
	Options string
}

func (e *UnexpectedOptionsError) Error() string {
	return fmt.Sprintf("%s: '%s' has no options, but got '(%s)'", e.Context, e.Value, e.Options)
}

// FileError is returned when a file cannot be opened, created, read or
// written.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// LineError attaches a Context to an error that was not produced by the
// attribute grammar itself, such as a construction or collision fault
// detected while loading a line.
type LineError struct {
	Context Context
	Err     error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
