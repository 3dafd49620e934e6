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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/sixtyfive/hardware/cycles"
)

// Size of the address space in bytes.
const Size = 0x10000

// Memory is the 64KiB address space.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// All memory is zeroed.
func NewMemory() *Memory {
	return &Memory{}
}

// String returns a hex dump of the zero page.
func (mem *Memory) String() string {
	return mem.Dump(0x00)
}

// Dump returns a hex dump of the 256 bytes in the specified page.
func (mem *Memory) Dump(page uint8) string {
	origin := uint16(page) << 8

	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := uint16(0); y < 16; y++ {
		s.WriteString(fmt.Sprintf("%03X- | ", (origin>>4)+y))
		for x := uint16(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[origin+y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	return mem.data[address], nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	mem.data[address] = data
	return nil
}

// Write16 implements the cpubus.Memory interface. The low byte is stored at
// address and the high byte at address+1. The high byte of a write to 0xffff
// wraps around to 0x0000.
func (mem *Memory) Write16(cycles cycles.Debiter, value uint16, address uint16) error {
	if err := cycles.Debit(); err != nil {
		return fmt.Errorf("memory: write16: %w", err)
	}
	mem.data[address] = uint8(value)
	mem.data[address+1] = uint8(value >> 8)
	return nil
}

// Peek implements the cpubus.Peeker interface.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.data[address], nil
}

// Poke writes a value to memory without any side-effects.
func (mem *Memory) Poke(address uint16, value uint8) error {
	mem.data[address] = value
	return nil
}

// Load places data in memory starting at origin. Returns the address
// following the last byte written, which is useful for placing consecutive
// instructions.
func (mem *Memory) Load(origin uint16, data ...uint8) uint16 {
	for _, d := range data {
		mem.data[origin] = d
		origin++
	}
	return origin
}

// Clear sets every byte in memory to zero.
func (mem *Memory) Clear() {
	clear(mem.data[:])
}
