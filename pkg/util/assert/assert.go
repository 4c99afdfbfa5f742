// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal fails the test if actual is not equal to expected.  Integers of
// differing types are compared by value, so that (for example) uint(3) and 3
// are considered equal.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || uintEqual(expected, actual) {
		return
	}
	//
	t.Errorf("expected: %v, actual: %v", expected, actual)
	fail(t, msg...)
}

// True fails the test if the given condition does not hold.
func True(t *testing.T, cond bool, msg ...any) {
	t.Helper()
	//
	if !cond {
		t.Errorf("condition does not hold")
		fail(t, msg...)
	}
}

// NoError fails the test if the given error is not nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		fail(t, msg...)
	}
}

// ErrorIs fails the test unless the given error wraps the target error.
func ErrorIs(t *testing.T, err error, target error, msg ...any) {
	t.Helper()
	//
	if !errors.Is(err, target) {
		t.Errorf("expected error %q, actual: %v", target, err)
		fail(t, msg...)
	}
}

func fail(t *testing.T, msg ...any) {
	t.Helper()
	//
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
	//
	t.FailNow()
}

// uintEqual returns whether expected and actual are both non-negative
// integers with the same value.
func uintEqual(expected, actual any) bool {
	a, aok := asUint64(expected)
	b, bok := asUint64(actual)
	//
	return aok && bok && a == b
}

// asUint64 tries to convert x to a uint64, which fails for negative integers
// and non-integer values.
func asUint64(x any) (uint64, bool) {
	switch x := x.(type) {
	case int:
		return uint64(x), x >= 0
	case int8:
		return uint64(x), x >= 0
	case int16:
		return uint64(x), x >= 0
	case int32:
		return uint64(x), x >= 0
	case int64:
		return uint64(x), x >= 0
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	}
	//
	return 0, false
}
