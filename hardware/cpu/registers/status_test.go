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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/sixtyfive/hardware/cpu/registers"
	"github.com/jetsetilly/sixtyfive/test"
)

var namedFlags = []registers.Flag{
	registers.Carry,
	registers.Zero,
	registers.InterruptDisable,
	registers.Decimal,
	registers.Overflow,
	registers.Negative,
}

func TestStatusInitialisation(t *testing.T) {
	sr := registers.NewStatus()
	test.ExpectEquality(t, sr.Value(), uint8(0))
	test.ExpectEquality(t, sr.String(), "nv--dizc")
	for _, f := range namedFlags {
		test.ExpectEquality(t, sr.Contains(f), false, f)
	}
}

func TestStatusFlagsAreIndependent(t *testing.T) {
	for _, f := range namedFlags {
		sr := registers.NewStatus()
		sr.Set(f, true)
		test.ExpectEquality(t, sr.Value(), uint8(f), f)
		for _, g := range namedFlags {
			test.ExpectEquality(t, sr.Contains(g), f == g, f, g)
		}
		sr.Set(f, false)
		test.ExpectEquality(t, sr.Value(), uint8(0), f)
	}
}

func TestStatusString(t *testing.T) {
	sr := registers.NewStatus()
	sr.Set(registers.Negative, true)
	test.ExpectEquality(t, sr.String(), "Nv--dizc")
	sr.Set(registers.Zero, true)
	sr.Set(registers.Carry, true)
	test.ExpectEquality(t, sr.String(), "Nv--diZC")
	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "NV--DIZC")
}

func TestStatusReservedBits(t *testing.T) {
	sr := registers.NewStatus()

	// loading raw bits drops the reserved bits
	sr.Load(0xff)
	test.ExpectEquality(t, sr.Value(), uint8(0b11001111))

	// the reserved bits can not be set directly
	sr.Reset()
	sr.Set(registers.Flag(0x30), true)
	test.ExpectEquality(t, sr.Value(), uint8(0))
	test.ExpectEquality(t, sr.Contains(registers.Flag(0x10)), false)

	// setting a mixed value only sets the named part
	sr.Set(registers.Flag(0x31), true)
	test.ExpectEquality(t, sr.Value(), uint8(registers.Carry))
}

func TestStatusEquals(t *testing.T) {
	a := registers.NewStatus()
	b := registers.NewStatus()
	test.ExpectEquality(t, a.Equals(b), true)

	a.Set(registers.Overflow, true)
	test.ExpectEquality(t, a.Equals(b), false)

	b.Load(0x40)
	test.ExpectEquality(t, a.Equals(b), true)

	a.Reset()
	test.ExpectEquality(t, a.Equals(registers.NewStatus()), true)
}
