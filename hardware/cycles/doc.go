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

// Package cycles implements the cycle budget consumed by the CPU. Every bus
// access made by the CPU costs one cycle and the cost is taken from a Budget
// by calling Debit().
//
// The remaining count is an unsigned value but it is never allowed to wrap.
// Debiting an exhausted budget is an error and the budget stays at zero:
//
//	b := cycles.NewBudget(1)
//	_ = b.Debit()   // nil
//	err := b.Debit() // errors.Is(err, cycles.ErrExhausted)
//
// Types that need to charge a cycle without knowing anything else about the
// budget, such as the memory package's Write16() function, accept the Debiter
// interface.
package cycles
