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

package logger

import "io"

// the maximum number of entries in the central logger
const maxCentral = 256

var central = NewLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, format string, args ...any) {
	central.Logf(perm, tag, format, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.Clear()
}

// Write the contents of the central logger to the io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// WriteRecent writes the entries added to the central logger since the
// previous call to WriteRecent().
func WriteRecent(output io.Writer) {
	central.WriteRecent(output)
}

// Tail writes the last number of entries in the central logger.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new entries in the central logger to the io.Writer.
func SetEcho(output io.Writer, writeRecent bool) {
	central.SetEcho(output, writeRecent)
}

// BorrowLog gives the function access to the central list of entries.
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
