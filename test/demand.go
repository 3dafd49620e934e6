// This file is part of Sixtyfive.
//
// Sixtyfive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Sixtyfive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Sixtyfive.  If not, see <https://www.gnu.org/licenses/>.

package test

import "testing"

// DemandEquality is the same as ExpectEquality() except that a failure stops
// the test immediately.
//
// Use it when later checks in the test only make sense if the value is
// correct. For example, the number of cycles consumed by an instruction
// before checking the state of memory.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%sequality demand of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
	}
}

// DemandSuccess is the same as ExpectSuccess() except that a failure stops the
// test immediately.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Fatalf("%sa success value is demanded for type %T (%v)", id(tags...), v, v)
	}
}

// DemandFailure is the same as ExpectFailure() except that a failure stops the
// test immediately.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if expect(t, v, tags...) {
		t.Fatalf("%sa failure value is demanded for type %T", id(tags...), v)
	}
}

// DemandImplements stops the test if instance does not implement the
// interface type T. Pass a nil pointer of the interface type as implements:
//
//	test.DemandImplements(t, mem, (*cpubus.Memory)(nil))
func DemandImplements[T any](t *testing.T, instance any, implements *T, tags ...any) {
	t.Helper()
	if _, ok := instance.(T); !ok {
		t.Fatalf("%stype %T does not implement %T", id(tags...), instance, implements)
	}
}
