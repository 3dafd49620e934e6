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

// Package memory implements the flat 64KiB address space seen by the CPU.
// Every address from 0x0000 to 0xffff is readable and writable; there is no
// notion of unmapped memory.
//
//	CPU ---- cpu bus ---- MEMORY
//	                        |
//	                        |
//	                   debugger bus
//
// The cpu bus is the cpubus.Memory interface: Read(), Write() and Write16().
// The debugger bus is Peek() and Poke(), which access memory in the same way
// but which are never used by the CPU to execute an instruction.
//
// Write16() is the only memory operation that charges a cycle. Byte accesses
// are charged by the CPU itself.
package memory
