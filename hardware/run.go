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

package hardware

// Step the machine one CPU instruction. The cycleCallback is called after
// every cycle and can be nil.
func (m *Machine) Step(cycleCallback func() error) error {
	return m.CPU.ExecuteInstruction(func() error {
		m.Cycles++
		if cycleCallback == nil {
			return nil
		}
		return cycleCallback()
	})
}

// Run the machine for the number of cycles in the budget. Returns the unspent
// cycles, which will be zero unless there is also an error.
func (m *Machine) Run(budget uint32) (uint32, error) {
	remaining, err := m.CPU.Execute(budget)
	m.Cycles += uint64(budget - remaining)
	return remaining, err
}

// RunWhile steps the machine until continueCheck returns false or an error.
// The continueCheck function is called at the end of every instruction.
func (m *Machine) RunWhile(continueCheck func() (bool, error)) error {
	for {
		if err := m.Step(nil); err != nil {
			return err
		}

		ok, err := continueCheck()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
