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
	"math"
	"strconv"
	"strings"
)

func parseUnsigned(text string, bits int) (uint64, error) {
	if hex, ok := strings.CutPrefix(text, "0x"); ok {
		return strconv.ParseUint(hex, 16, bits)
	}
	return strconv.ParseUint(text, 10, bits)
}

// numError returns the inner error of a strconv.NumError. the outer error
// repeats the function name and the value, which we report ourselves.
func numError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}

// ParseU32 parses a hexadecimal ("0x" prefix) or decimal unsigned 32-bit value.
func ParseU32(text string) (uint32, error) {
	v, err := parseUnsigned(text, 32)
	if err != nil {
		return 0, numError(err)
	}
	return uint32(v), nil
}

// ParseU16 parses a hexadecimal ("0x" prefix) or decimal unsigned 16-bit value.
func ParseU16(text string) (uint16, error) {
	v, err := parseUnsigned(text, 16)
	if err != nil {
		return 0, numError(err)
	}
	return uint16(v), nil
}

// ParseI32 parses a signed 32-bit value. The magnitude may be hexadecimal or
// decimal and may be preceded by a minus sign.
func ParseI32(text string) (int32, error) {
	magnitude, negative := strings.CutPrefix(text, "-")
	if negative && strings.HasPrefix(magnitude, "-") {
		return 0, strconv.ErrSyntax
	}

	v, err := parseUnsigned(magnitude, 32)
	if err != nil {
		return 0, numError(err)
	}

	if negative {
		if v > -math.MinInt32 {
			return 0, strconv.ErrRange
		}
		return int32(-int64(v)), nil
	}
	if v > math.MaxInt32 {
		return 0, strconv.ErrRange
	}
	return int32(v), nil
}

// U32 parses the value of an attribute with ParseU32(). Errors are returned as
// an IntegerError.
func U32(ctx Context, attribute string, value string) (uint32, error) {
	v, err := ParseU32(value)
	if err != nil {
		return 0, &IntegerError{Context: ctx, Attribute: attribute, Value: value, Err: err}
	}
	return v, nil
}

// U16 parses the value of an attribute with ParseU16(). Errors are returned as
// an IntegerError.
func U16(ctx Context, attribute string, value string) (uint16, error) {
	v, err := ParseU16(value)
	if err != nil {
		return 0, &IntegerError{Context: ctx, Attribute: attribute, Value: value, Err: err}
	}
	return v, nil
}

// I32 parses the value of an attribute with ParseI32(). Errors are returned as
// an IntegerError.
func I32(ctx Context, attribute string, value string) (int32, error) {
	v, err := ParseI32(value)
	if err != nil {
		return 0, &IntegerError{Context: ctx, Attribute: attribute, Value: value, Err: err}
	}
	return v, nil
}
