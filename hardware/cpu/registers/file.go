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

import "fmt"

// Tag identifies one of the registers in the File.
type Tag int

// List of valid Tag values. Each tag indexes exactly one slot in the File.
const (
	A Tag = iota
	X
	Y
	numRegisters
)

// Tags lists every valid Tag in slot order.
var Tags = [...]Tag{A, X, Y}

func (t Tag) String() string {
	switch t {
	case A:
		return "A"
	case X:
		return "X"
	case Y:
		return "Y"
	}
	return "unknown register"
}

// File is the collection of general purpose 8 bit registers.
type File struct {
	regs [numRegisters]uint8
}

// NewFile is the preferred method of initialisation for the File type. All
// registers are zero.
func NewFile() File {
	return File{}
}

func (f File) String() string {
	return fmt.Sprintf("A=%#04x X=%#04x Y=%#04x", f.regs[A], f.regs[X], f.regs[Y])
}

// Get returns the value of the tagged register.
func (f File) Get(t Tag) uint8 {
	return f.regs[t]
}

// Set the value of the tagged register.
func (f *File) Set(t Tag, v uint8) {
	f.regs[t] = v
}

// Reset sets all registers to zero.
func (f *File) Reset() {
	f.regs = [numRegisters]uint8{}
}
