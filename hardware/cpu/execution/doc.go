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

// Package execution tracks the result of instruction execution on the CPU.
// The Result type records the address, definition, operand and cycle count of
// the most recent instruction. The CPU keeps the Result up to date during
// execution so it can also be inspected from the cycle callback, part way
// through an instruction.
//
// The Result.IsValid() function can be used to check whether a result is
// consistent with the instruction definition. The CPU doesn't call this
// function itself but it is useful in tests.
package execution
