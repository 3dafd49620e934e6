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

package cycles

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned by Debit() when there are no cycles remaining.
var ErrExhausted = errors.New("cycles: budget exhausted")

// Debiter is implemented by anything that can be charged one cycle.
type Debiter interface {
	Debit() error
}

// DebitFunc allows an ordinary function to be used as a Debiter.
type DebitFunc func() error

// Debit implements the Debiter interface.
func (f DebitFunc) Debit() error {
	return f()
}

// Budget is the number of cycles remaining before execution must stop.
type Budget struct {
	remaining uint32
	spent     uint32
}

// NewBudget is the preferred method of initialisation for the Budget type.
func NewBudget(n uint32) *Budget {
	return &Budget{remaining: n}
}

func (b *Budget) String() string {
	return fmt.Sprintf("%d remaining (%d spent)", b.remaining, b.spent)
}

// Remaining returns the number of cycles that have not yet been spent.
func (b *Budget) Remaining() uint32 {
	return b.remaining
}

// Spent returns the number of cycles successfully debited.
func (b *Budget) Spent() uint32 {
	return b.spent
}

// Exhausted is true when no cycles remain.
func (b *Budget) Exhausted() bool {
	return b.remaining == 0
}

// Covers returns true if the budget has at least n cycles remaining.
func (b *Budget) Covers(n int) bool {
	if n <= 0 {
		return true
	}
	return uint64(b.remaining) >= uint64(n)
}

// Debit takes one cycle from the budget. Implements the Debiter interface.
func (b *Budget) Debit() error {
	if b.remaining == 0 {
		return ErrExhausted
	}
	b.remaining--
	b.spent++
	return nil
}
