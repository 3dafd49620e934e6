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

// Package test contains helper functions to remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test immediately and should be used when later
// parts of the test depend on the value being correct. For example, testing
// that a CPU has executed without error before checking register values.
//
// It is worth describing how the success/failure functions handle the nil
// type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure() to fail and ExpectSuccess() to
// succeed. This is because of how errors usually work (nil to indicate no
// error).
package test
