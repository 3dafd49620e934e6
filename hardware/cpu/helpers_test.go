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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/sixtyfive/hardware/cpu"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/registers"
	"github.com/jetsetilly/sixtyfive/hardware/cycles"
)

var errUnreachable = errors.New("unreachable address")

// mockMem fails any access to the top page of memory and counts the accesses
// that reach it. it does not implement cpubus.Peeker
type mockMem struct {
	internal []uint8
	reads    int
	writes   int
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %#04x)", mem.internal[address], value, address)
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if address&0xff00 == 0xff00 {
		return 0, errUnreachable
	}
	mem.reads++
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if address&0xff00 == 0xff00 {
		return errUnreachable
	}
	mem.writes++
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) Write16(d cycles.Debiter, value uint16, address uint16) error {
	if err := d.Debit(); err != nil {
		return err
	}
	if err := mem.Write(address, uint8(value)); err != nil {
		return err
	}
	return mem.Write(address+1, uint8(value>>8))
}

// step executes one instruction and checks that the result is valid. the
// number of cycle callbacks is returned
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	var n int
	err := mc.ExecuteInstruction(func() error {
		n++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// registerState is the part of the CPU that Reset() defines
type registerState struct {
	PC     uint16
	SP     uint16
	A      uint8
	X      uint8
	Y      uint8
	Status uint8
}

func stateOf(mc *cpu.CPU) registerState {
	return registerState{
		PC:     mc.PC.Address(),
		SP:     mc.SP.Address(),
		A:      mc.Regs.Get(registers.A),
		X:      mc.Regs.Get(registers.X),
		Y:      mc.Regs.Get(registers.Y),
		Status: mc.Status.Value(),
	}
}
