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

// Package registers implements the registers of the CPU: the register file
// holding the A, X and Y registers, the program counter, the stack pointer and
// the status register.
//
// The register file is indexed by a Tag rather than by field. This keeps
// instruction handling in the CPU uniform across registers:
//
//	regs.Set(registers.A, v)
//	status.Set(registers.Zero, regs.Get(registers.A) == 0)
//
// The status register is a set of flags. Only the named flags can be set.
// Bits 4 and 5 of the status register are reserved and are always zero; this
// is checked every time the status register changes.
package registers
