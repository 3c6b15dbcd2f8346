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

// Context identifies the line being parsed.
type Context struct {
	File string
	Row  int
}

func (ctx Context) String() string {
	return fmt.Sprintf("%s:%d", ctx.File, ctx.Row)
}

const commentMarker = "//"

// StripComment removes the trailing comment from a line.
func StripComment(line string) string {
	if i := strings.Index(line, commentMarker); i >= 0 {
		return line[:i]
	}
	return line
}

// Comment returns the text of the trailing comment in a line, trimmed of
// surrounding white space. The boolean is false if there is no comment.
func Comment(line string) (string, bool) {
	i := strings.Index(line, commentMarker)
	if i < 0 {
		return "", false
	}
	return strings.TrimSpace(line[i+len(commentMarker):]), true
}

// Fields strips the comment from a line and splits the remainder into words.
func Fields(line string) []string {
	return strings.Fields(StripComment(line))
}

// Pair is a single key:value attribute.
type Pair struct {
	Key   string
	Value string
}

// Split each word into a key:value Pair. A word without a colon is an error.
func Split(ctx Context, words []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(words))
	for _, w := range words {
		key, value, ok := strings.Cut(w, ":")
		if !ok {
			return nil, &MalformedAttributeError{Context: ctx, Word: w}
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}

// SplitOptions separates a value of the form "name(options)" into its name and
// options. The options string is empty if there are none. A missing closing
// parenthesis is tolerated.
func SplitOptions(text string) (string, string) {
	value, options, ok := strings.Cut(text, "(")
	if !ok {
		return text, ""
	}
	return value, strings.TrimSuffix(options, ")")
}

// NoOptions returns an UnexpectedOptionsError if options is not empty.
func NoOptions(ctx Context, value string, options string) error {
	if options != "" {
		return &UnexpectedOptionsError{Context: ctx, Value: value, Options: options}
	}
	return nil
}

// quoteList formats a list of expected values as: 'a', 'b' or 'c'
func quoteList(values []string) string {
	if len(values) == 0 {
		return ""
	}
	q := make([]string, len(values))
	for i, v := range values {
		q[i] = fmt.Sprintf("'%s'", v)
	}
	if len(q) == 1 {
		return q[0]
	}
	return fmt.Sprintf("%s or %s", strings.Join(q[:len(q)-1], ", "), q[len(q)-1])
}
