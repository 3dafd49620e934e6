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

package cpubus

import "github.com/jetsetilly/sixtyfive/hardware/cycles"

// Reset is the address where the reset vector is stored.
const Reset = uint16(0xfffc)

// StackOrigin is the base of the stack page. The stack pointer is set to this
// address on reset.
const StackOrigin = uint16(0x0100)

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are 16 bit values so there is no address that the CPU can
// generate that is outside of the address space.
//
// Write16 stores a 16 bit value in little-endian order and charges one cycle
// to the Debiter. The bytes are not written if the cycle can not be charged.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	Write16(cycles cycles.Debiter, value uint16, address uint16) error
}

// Peeker is implemented by memory that can be read without side-effects. The
// CPU uses it to look ahead at the next opcode without charging a cycle.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}
