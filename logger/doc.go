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

// Package logger is the central log for the emulation. Log entries are
// tagged with the component making the entry and are kept in a bounded list;
// when the list is full the oldest entries are dropped.
//
// Entries that repeat the previous entry exactly are not added again. Instead
// the previous entry is marked as repeated and this is shown when the log is
// written:
//
//	CPU: unsupported opcode (0xff) at (0x0200) (repeat x3)
//
// Every logging request carries a Permission. Use logger.Allow if the entry
// should always be made.
//
// The package level functions operate on a central logger instance. Separate
// instances can be created with NewLogger(), which is useful for testing.
package logger
