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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/curated"
	"github.com/jetsetilly/romdis/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectSuccess(t, curated.IsAny(e))

	// Has() should fail because we haven't included testErrorB anywhere in the error
	test.ExpectFailure(t, curated.Has(e, testErrorB))

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, testErrorB))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))

	// IsAny should return false for plain Go errors
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	fe := &attributes.FileError{Op: "open", Path: "romdis.yaml", Err: errors.New("missing")}
	e := curated.Errorf("config: %v", fe)

	found := test.ExpectErrorAs[*attributes.FileError](t, e)
	test.ExpectEquality(t, found, fe)

	test.ExpectSuccess(t, errors.Unwrap(curated.Errorf(testError, "foo")) == nil)
}

func TestHasThroughWrapper(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	le := &attributes.LineError{Context: attributes.Context{File: "relocs.txt", Row: 3}, Err: e}
	f := curated.Errorf(testErrorB, le)

	test.ExpectFailure(t, curated.Is(le, testError))
	test.ExpectSuccess(t, curated.Has(le, testError))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectFailure(t, curated.Has(errors.New("plain"), testError))
	test.ExpectFailure(t, curated.Has(nil, testError))
}
