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

package instructions

import "fmt"

// AddressingMode describes how the data for the instruction is found.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Immediate
	Absolute         // abs
	ZeroPage         // zpg
	ZeroPageIndexedX // zpg,X
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	}
	return "unknown addressing mode"
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota

	// subroutine instructions change the program counter and use the stack
	Subroutine

	// the instruction has no effect other than to consume the opcode
	None
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Subroutine:
		return "Subroutine"
	case None:
		return "None"
	}
	return "unknown effect"
}

// Operator is the operation performed by the instruction.
type Operator int

// List of operators.
const (
	Unsupported Operator = iota
	Lda
	Jsr
)

func (o Operator) String() string {
	switch o {
	case Unsupported:
		return "???"
	case Lda:
		return "LDA"
	case Jsr:
		return "JSR"
	}
	return "unknown operator"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsSupported returns false if the definition is for an opcode that the CPU
// does not implement.
func (defn Definition) IsSupported() bool {
	return defn.Operator != Unsupported
}
