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

package registers

import (
	"fmt"
	"strings"
)

// Flag is a single bit in the status register.
type Flag uint8

// List of named flags.
const (
	Carry            Flag = 1 << 0
	Zero             Flag = 1 << 1
	InterruptDisable Flag = 1 << 2
	Decimal          Flag = 1 << 3
	Overflow         Flag = 1 << 6
	Negative         Flag = 1 << 7
)

// the bits of the status register that can be changed. bits 4 and 5 are
// reserved and always read as zero
const usableBits = uint8(Carry | Zero | InterruptDisable | Decimal | Overflow | Negative)

func (f Flag) String() string {
	switch f {
	case Carry:
		return "Carry"
	case Zero:
		return "Zero"
	case InterruptDisable:
		return "InterruptDisable"
	case Decimal:
		return "Decimal"
	case Overflow:
		return "Overflow"
	case Negative:
		return "Negative"
	}
	return fmt.Sprintf("unnamed flag (%#010b)", uint8(f))
}

// Status is the special purpose register that stores the flags of the CPU.
type Status struct {
	value uint8
}

// NewStatus is the preferred method of initialisation for the status
// register. All flags are clear.
func NewStatus() Status {
	return Status{}
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "SR"
}

// String returns the flags as a pattern of letters, most significant bit
// first. An upper case letter means the flag is set. Reserved bits are shown
// as a dash.
func (sr Status) String() string {
	s := strings.Builder{}
	for _, p := range []struct {
		flag Flag
		on   rune
		off  rune
	}{
		{Negative, 'N', 'n'},
		{Overflow, 'V', 'v'},
		{0, '-', '-'},
		{0, '-', '-'},
		{Decimal, 'D', 'd'},
		{InterruptDisable, 'I', 'i'},
		{Zero, 'Z', 'z'},
		{Carry, 'C', 'c'},
	} {
		if p.flag != 0 && sr.Contains(p.flag) {
			s.WriteRune(p.on)
		} else {
			s.WriteRune(p.off)
		}
	}
	return s.String()
}

// check the reserved bits have not been set
func (sr Status) check() {
	if sr.value&^usableBits != 0 {
		panic(fmt.Sprintf("registers: status register has reserved bits set (%#010b)", sr.value))
	}
}

// Set or clear the flag. Bits in the flag value that are not one of the named
// flags are ignored.
func (sr *Status) Set(flag Flag, on bool) {
	f := uint8(flag) & usableBits
	if on {
		sr.value |= f
	} else {
		sr.value &^= f
	}
	sr.check()
}

// Contains returns true if every bit of the flag is set. Always false for a
// flag with no named bits.
func (sr Status) Contains(flag Flag) bool {
	f := uint8(flag) & usableBits
	return f != 0 && sr.value&f == f
}

// Equals returns true if both status registers have the same flags set.
func (sr Status) Equals(o Status) bool {
	return sr.value == o.value
}

// Value returns the raw bits of the status register.
func (sr Status) Value() uint8 {
	return sr.value
}

// Load the status register from raw bits. Reserved bits are dropped.
func (sr *Status) Load(v uint8) {
	sr.value = v & usableBits
	sr.check()
}

// Reset clears all flags.
func (sr *Status) Reset() {
	sr.Load(0)
}
