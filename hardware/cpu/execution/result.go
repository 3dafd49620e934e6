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

package execution

import (
	"fmt"

	"github.com/jetsetilly/sixtyfive/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// address of the opcode
	Address uint16

	// definition of the instruction. the definition is only valid once the
	// opcode has been read
	Defn    instructions.Definition
	Decoded bool

	// the number of bytes read from the program counter, including the opcode
	ByteCount int

	// operand of the instruction. for 8 bit operands only the low byte is used
	InstructionData uint16

	// number of cycles charged so far
	Cycles int

	// whether the instruction has completed
	Final bool
}

// Reset the result ready for a new instruction.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if !r.Decoded {
		return fmt.Sprintf("%#06x undecoded instruction", r.Address)
	}

	var operand string
	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		operand = fmt.Sprintf(" #$%02x", r.InstructionData)
	case instructions.ZeroPage:
		operand = fmt.Sprintf(" $%02x", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf(" $%02x,X", r.InstructionData)
	case instructions.Absolute:
		operand = fmt.Sprintf(" $%04x", r.InstructionData)
	}

	if !r.Defn.IsSupported() {
		operand = fmt.Sprintf(" (%#02x)", r.Defn.OpCode)
	}

	s := fmt.Sprintf("%#06x %s%s [%d cycles]", r.Address, r.Defn.Operator, operand, r.Cycles)
	if !r.Final {
		s = fmt.Sprintf("%s *", s)
	}
	return s
}
