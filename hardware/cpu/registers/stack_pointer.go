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

// StackPointer is the address of the next free slot in the stack page.
//
// The stack in this CPU grows upwards from the stack origin. Each byte pushed
// advances the stack pointer by one.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint16) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#06x", sp.value)
}

// Address returns the current value of the SP.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Advance moves the SP past n bytes that have been pushed.
func (sp *StackPointer) Advance(n int) {
	sp.value += uint16(n)
}
