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

// Package instructions defines the instructions understood by the CPU. Each
// opcode that the CPU supports has a Definition describing how many bytes the
// instruction occupies, how many cycles it takes and how its operand is
// addressed.
//
// Lookup() never fails. An opcode with no definition decodes to the
// Unsupported operator, which the CPU treats as a single byte, single cycle
// instruction.
package instructions
