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

import (
	"fmt"

	"github.com/jetsetilly/sixtyfive/hardware/cpu"
	"github.com/jetsetilly/sixtyfive/hardware/memory"
	"github.com/jetsetilly/sixtyfive/hardware/memory/cpubus"
)

// Machine is the CPU and 64KiB of memory.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// number of CPU cycles executed since the last reset
	Cycles uint64
}

// NewMachine creates a new Machine. Memory is clear and the CPU is in its
// reset state.
func NewMachine() *Machine {
	m := &Machine{
		Mem: memory.NewMemory(),
	}
	m.CPU = cpu.NewCPU(m.Mem)
	return m
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s [%d cycles]", m.CPU, m.Cycles)
}

// Reset the CPU and the cycle count. Memory is not changed.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.Cycles = 0
}

// Boot resets the machine and loads the PC from the reset vector.
func (m *Machine) Boot() error {
	m.Reset()
	if err := m.CPU.LoadPCIndirect(cpubus.Reset); err != nil {
		return fmt.Errorf("hardware: %w", err)
	}
	return nil
}
