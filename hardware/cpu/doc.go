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

// Package cpu emulates a 6502 class microprocessor. Like all 8-bit processors
// of the era, the CPU executes instructions according to the single byte value
// read from the address pointed to by the program counter. This single byte is
// the opcode and is looked up in the instruction table. The instruction
// definition for that opcode is then used to move execution of the program
// forward.
//
// Only a small part of the instruction set is implemented: LDA in its
// immediate, zero page and zero page indexed forms, and JSR. See the
// instructions package for the definitions.
//
// The CPU requires an implementation of the cpubus.Memory interface. The
// memory package provides a flat 64KiB implementation.
//
//	mem := memory.NewMemory()
//	mem.Load(0xfffc, 0x20, 0x42, 0x42)
//	mem.Load(0x4242, 0xa9, 0x84)
//
//	mc := cpu.NewCPU(mem)
//	remaining, err := mc.Execute(7)
//
// Execute() runs whole instructions until the cycle budget is spent. It will
// not begin an instruction that the budget can not pay for in full. In that
// case the remaining budget is returned along with an error that wraps
// ErrInsufficientBudget.
//
// ExecuteInstruction() executes a single instruction. Its sole argument is a
// callback function that is called at every cycle boundary of the
// instruction. Execute() uses this to charge each cycle to the budget.
//
// Opcodes that are not supported are reported in the log and are otherwise
// treated as a one byte, one cycle instruction that does nothing; execution
// continues with the following byte. The OnUnsupported field can be used to
// change this. For example, HaltOnUnsupported stops execution with an error
// that wraps ErrUnsupportedOpcode.
//
// The LastResult field can be probed for information about the last
// instruction executed, or about the current instruction being executed if
// accessed from ExecuteInstruction()'s callback function.
package cpu
