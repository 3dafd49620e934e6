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

// Opcodes of the supported instructions.
const (
	LdaImmediate uint8 = 0xa9
	LdaZeroPage  uint8 = 0xa5
	LdaZeroPageX uint8 = 0xb5
	JsrAbsolute  uint8 = 0x20
)

// cycle counts are the number of bus operations charged by the CPU for each
// instruction. JSR is one cycle shorter than on the real chip because the two
// byte push to the stack is charged as a single cycle.
var definitions = [256]*Definition{
	LdaImmediate: {OpCode: LdaImmediate, Operator: Lda, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	LdaZeroPage:  {OpCode: LdaZeroPage, Operator: Lda, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	LdaZeroPageX: {OpCode: LdaZeroPageX, Operator: Lda, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	JsrAbsolute:  {OpCode: JsrAbsolute, Operator: Jsr, Bytes: 3, Cycles: 5, AddressingMode: Absolute, Effect: Subroutine},
}

// Lookup returns the definition for the opcode. Opcodes that are not
// supported return a definition with the Unsupported operator.
func Lookup(opcode uint8) Definition {
	if d := definitions[opcode]; d != nil {
		return *d
	}
	return Definition{
		OpCode:         opcode,
		Operator:       Unsupported,
		Bytes:          1,
		Cycles:         1,
		AddressingMode: Implied,
		Effect:         None,
	}
}

// Definitions returns the definitions of every supported opcode, in opcode
// order.
func Definitions() []Definition {
	defns := make([]Definition, 0, 4)
	for _, d := range definitions {
		if d != nil {
			defns = append(defns, *d)
		}
	}
	return defns
}
