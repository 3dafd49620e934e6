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

package cpu

import (
	"errors"
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/sixtyfive/hardware/cpu/execution"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/instructions"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/registers"
	"github.com/jetsetilly/sixtyfive/hardware/cycles"
	"github.com/jetsetilly/sixtyfive/hardware/memory/cpubus"
	"github.com/jetsetilly/sixtyfive/logger"
)

// log tag used by the CPU
const logTag = "CPU"

// Sentinel errors returned by Execute().
var (
	ErrInsufficientBudget = errors.New("cpu: cycle budget does not cover next instruction")
	ErrUnsupportedOpcode  = errors.New("cpu: unsupported opcode")
)

// CPU implements a 6502 class processor.
type CPU struct {
	PC     registers.ProgramCounter
	SP     registers.StackPointer
	Regs   registers.File
	Status registers.Status

	mem cpubus.Memory

	// cycleCallback is called at the end of every cycle
	cycleCallback func() error

	// last result. the result is reset at the start of every instruction and
	// is updated as the instruction progresses
	LastResult execution.Result

	// OnUnsupported is called after an unsupported opcode has been consumed.
	// LastResult is final at this point. Returning an error stops execution
	// and the error is returned by ExecuteInstruction() and Execute(). If
	// OnUnsupported is nil execution continues with the next byte.
	OnUnsupported func(execution.Result) error
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is reset before being returned.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{mem: mem}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.Regs,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Visualise writes a graphviz description of the CPU state to the io.Writer.
// The memory bus and callbacks are not included.
func (mc *CPU) Visualise(output io.Writer) {
	n := mc.Snapshot()
	n.mem = nil
	n.cycleCallback = nil
	n.OnUnsupported = nil
	memviz.Map(output, n)
}

// Reset reinitialises all registers to their power-on values. Does not load
// the PC with the reset vector. Use LoadPCIndirect(cpubus.Reset) when
// appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(cpubus.Reset)
	mc.SP.Load(cpubus.StackOrigin)
	mc.Regs.Reset()
	mc.Status.Reset()
	mc.cycleCallback = nil

	// not touching OnUnsupported
}

// HasReset checks whether the CPU has been reset and has not yet started an
// instruction.
func (mc *CPU) HasReset() bool {
	return !mc.LastResult.Decoded
}

// LoadPCIndirect loads the PC with the little-endian address stored at
// indirectAddress. No cycles are charged.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	lo, err := mc.mem.Read(indirectAddress)
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}

	hi, err := mc.mem.Read(indirectAddress + 1)
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}

	mc.PC.Load(uint16(lo) | uint16(hi)<<8)

	return nil
}

// LoadPC loads the PC with directAddress.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// cycle ends the current cycle
func (mc *CPU) cycle() error {
	mc.LastResult.Cycles++
	if mc.cycleCallback == nil {
		return nil
	}
	return mc.cycleCallback()
}

// read 8bits from the PC location has additional side-effects depending on
// context.
type read8BitPCeffect int

const (
	newOpcode read8BitPCeffect = iota
	loByte
	hiByte
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
//   - ends the cycle
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}

	// ignoring if program counter cycling
	mc.PC.Add(1)

	mc.LastResult.ByteCount++

	switch effect {
	case newOpcode:
		mc.LastResult.Defn = instructions.Lookup(v)
		mc.LastResult.Decoded = true
	case loByte:
		mc.LastResult.InstructionData = uint16(v)
	case hiByte:
		mc.LastResult.InstructionData |= uint16(v) << 8
	}

	// +1 cycle
	return mc.cycle()
}

// read16BitPC reads 16 bits from the memory location pointed to by PC. The
// value is composed from the two bytes in little-endian order regardless of
// the byte order of the host.
//
// side-effects:
//   - as for two calls to read8BitPC()
//   - LastResult.InstructionData contains the 16 bit value
func (mc *CPU) read16BitPC() error {
	// +1 cycle
	if err := mc.read8BitPC(loByte); err != nil {
		return err
	}

	// +1 cycle
	return mc.read8BitPC(hiByte)
}

// read8BitZeroPage returns the 8bit value from the specified zero-page address
//
// side-effects:
//   - ends the cycle
func (mc *CPU) read8BitZeroPage(address uint8) (uint8, error) {
	v, err := mc.mem.Read(uint16(address))
	if err != nil {
		return 0, fmt.Errorf("cpu: %w", err)
	}

	// +1 cycle
	if err := mc.cycle(); err != nil {
		return 0, err
	}

	return v, nil
}

// flags affected by a load instruction
func (mc *CPU) loadFlags(v uint8) {
	mc.Status.Set(registers.Zero, v == 0)
	mc.Status.Set(registers.Negative, v&0x80 == 0x80)
}

// HaltOnUnsupported can be assigned to the OnUnsupported field of the CPU. It
// stops execution with an error wrapping ErrUnsupportedOpcode.
func HaltOnUnsupported(r execution.Result) error {
	return fmt.Errorf("%w (%#02x) at (%#06x)", ErrUnsupportedOpcode, r.Defn.OpCode, r.Address)
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// After each cycle the cycleCallback() function is run. An error returned by
// the callback stops the instruction immediately and is returned. A nil
// callback is allowed.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// +1 cycle
	err := mc.read8BitPC(newOpcode)
	if err != nil {
		return err
	}

	defn := mc.LastResult.Defn

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// value is read from the program for immediate mode and from memory for
	// other read instructions
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		// no operand

	case instructions.Immediate:
		// +1 cycle
		err = mc.read8BitPC(loByte)
		if err != nil {
			return err
		}
		value = uint8(mc.LastResult.InstructionData)

	case instructions.ZeroPage:
		// +1 cycle
		err = mc.read8BitPC(loByte)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.ZeroPageIndexedX:
		// +1 cycle
		err = mc.read8BitPC(loByte)
		if err != nil {
			return err
		}

		// adding the index takes a cycle of its own
		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}

		// 8 bit addition. the indexed address never leaves the zero page
		address = uint16(uint8(mc.LastResult.InstructionData) + mc.Regs.Get(registers.X))

	case instructions.Absolute:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	default:
		return fmt.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// read value from memory for read instructions that have an address
	if defn.Effect == instructions.Read && defn.AddressingMode != instructions.Immediate {
		// +1 cycle
		value, err = mc.read8BitZeroPage(uint8(address))
		if err != nil {
			return err
		}
	}

	switch defn.Operator {
	case instructions.Lda:
		mc.Regs.Set(registers.A, value)
		mc.loadFlags(value)

	case instructions.Jsr:
		// the return address pushed to the stack is the address of the last
		// byte of the JSR instruction
		// +1 cycle
		err = mc.mem.Write16(cycles.DebitFunc(mc.cycle), mc.PC.Address()-1, mc.SP.Address())
		if err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
		mc.SP.Advance(2)

		mc.PC.Load(address)

		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}

	case instructions.Unsupported:
		logger.Logf(logger.Allow, logTag, "unsupported opcode (%#02x) at (%#06x)", defn.OpCode, mc.LastResult.Address)

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// finalise result
	mc.LastResult.Final = true

	if !defn.IsSupported() && mc.OnUnsupported != nil {
		return mc.OnUnsupported(mc.LastResult)
	}

	return nil
}

// cost of the instruction at the PC
func (mc *CPU) nextCost() (int, error) {
	var opcode uint8
	var err error

	if p, ok := mc.mem.(cpubus.Peeker); ok {
		opcode, err = p.Peek(mc.PC.Address())
	} else {
		opcode, err = mc.mem.Read(mc.PC.Address())
	}
	if err != nil {
		return 0, fmt.Errorf("cpu: %w", err)
	}

	return instructions.Lookup(opcode).Cycles, nil
}

// Execute runs instructions until the budget of cycles has been spent. An
// instruction is only started if the remaining budget covers all of its
// cycles. The number of unspent cycles is returned; this will be zero unless
// an error is also returned.
func (mc *CPU) Execute(budget uint32) (uint32, error) {
	b := cycles.NewBudget(budget)

	for !b.Exhausted() {
		cost, err := mc.nextCost()
		if err != nil {
			return b.Remaining(), err
		}

		if !b.Covers(cost) {
			return b.Remaining(), fmt.Errorf("%w: %d remaining, instruction at %#06x requires %d",
				ErrInsufficientBudget, b.Remaining(), mc.PC.Address(), cost)
		}

		err = mc.ExecuteInstruction(b.Debit)
		if err != nil {
			return b.Remaining(), err
		}
	}

	return 0, nil
}
