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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jetsetilly/sixtyfive/hardware/cpu"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/instructions"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/registers"
)

func FuzzImmediateLoad(f *testing.F) {
	f.Add(uint8(0x00), uint8(0x00))
	f.Add(uint8(0x80), uint8(0xcf))
	f.Add(uint8(0x7f), uint8(0x82))

	f.Fuzz(func(t *testing.T, value uint8, sr uint8) {
		assert := assert.New(t)

		mem := newMockMem()
		mc := cpu.NewCPU(mem)
		mc.Status.Load(sr)
		before := mc.Status

		mc.LoadPC(0x0200)
		mem.putInstructions(0x0200, instructions.LdaImmediate, value)

		assert.NoError(mc.ExecuteInstruction(nil))
		assert.NoError(mc.LastResult.IsValid())

		assert.Equal(value, mc.Regs.Get(registers.A))
		assert.Equal(value == 0, mc.Status.Contains(registers.Zero))
		assert.Equal(value&0x80 == 0x80, mc.Status.Contains(registers.Negative))
		assert.Equal(uint8(0), mc.Status.Value()&0x30)

		for _, flag := range []registers.Flag{registers.Carry, registers.InterruptDisable,
			registers.Decimal, registers.Overflow} {
			assert.Equal(before.Contains(flag), mc.Status.Contains(flag), flag.String())
		}
	})
}

func FuzzExecuteInstruction(f *testing.F) {
	for _, defn := range instructions.Definitions() {
		f.Add(defn.OpCode, uint8(0x80), uint8(0x00))
	}
	f.Add(uint8(0xff), uint8(0x00), uint8(0x00))

	f.Fuzz(func(t *testing.T, opcode uint8, operand uint8, x uint8) {
		assert := assert.New(t)

		mem := newMockMem()
		mc := cpu.NewCPU(mem)
		mc.Regs.Set(registers.X, x)
		mc.LoadPC(0x0200)
		mem.putInstructions(0x0200, opcode, operand, 0x03)

		var n int
		err := mc.ExecuteInstruction(func() error {
			n++
			return nil
		})
		assert.NoError(err)

		defn := instructions.Lookup(opcode)
		assert.Equal(defn.Cycles, n)
		assert.Equal(defn.Cycles, mc.LastResult.Cycles)
		assert.NoError(mc.LastResult.IsValid())
		assert.Equal(uint16(0x0100), mc.SP.Address()-uint16(mem.writes))
	})
}
