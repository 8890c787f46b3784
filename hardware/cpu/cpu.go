// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/hardware/preferences"
	"github.com/famicore/famicore/logger"
)

// Sentinal error patterns.
const (
	CPUError = "cpu: %v"
)

// Initial value of the stack pointer after a reset.
const resetStackPointer = 0xfd

// CPU implements the 6502 found in the console.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.Status

	// preferences for the CPU. the preferences can be changed at any time
	Prefs *preferences.Preferences

	// borrowed reference to the memory system
	mem cpubus.Memory

	// the instruction table. shared between all CPU instances
	instructions []*instructions.Definition

	// pending interrupts. both are latched on request and cleared when they
	// are serviced
	nmi bool
	irq bool

	// LastResult describes the most recent call to Step()
	LastResult execution.Result

	// the CPU has halted on an undocumented opcode. requires a Reset()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is created with default preferences, which can be replaced by setting
// the Prefs field.
//
// Returns an error if the instruction table is invalid.
func NewCPU(mem cpubus.Memory) (*CPU, error) {
	defs, err := instructions.GetDefinitions()
	if err != nil {
		return nil, curated.Errorf(CPUError, err)
	}

	prefs, err := preferences.NewPreferences("")
	if err != nil {
		return nil, curated.Errorf(CPUError, err)
	}

	return &CPU{
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(resetStackPointer, "SP"),
		Status:       registers.NewStatus(),
		Prefs:        prefs,
		mem:          mem,
		instructions: defs,
	}, nil
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory reference of the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory system into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset the CPU. The registers are set to their power-on values and the PC is
// loaded from the reset vector. Pending interrupt requests are forgotten.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.nmi = false
	mc.irq = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(resetStackPointer)
	mc.Status = registers.NewStatus()
	mc.PC.Load(mc.Read16(cpubus.Reset))
}

// NMI requests a non-maskable interrupt. The interrupt is serviced at the
// start of the next Step(). Multiple requests before the interrupt is
// serviced result in one interrupt.
func (mc *CPU) NMI() {
	mc.nmi = true
}

// IRQ requests (or withdraws a request for) a maskable interrupt. The request
// stays pending until it is serviced at the start of a Step() for which the
// interrupt disable flag is clear. Servicing the interrupt clears the request.
func (mc *CPU) IRQ(asserted bool) {
	mc.irq = asserted
}

// Pending returns the state of the interrupt requests.
func (mc *CPU) Pending() (nmi bool, irq bool) {
	return mc.nmi, mc.irq
}

// Read16 reads a little-endian 16bit value from memory.
func (mc *CPU) Read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// ReadBugged reads a little-endian 16bit value from memory in the same way as
// the JMP (indirect) instruction. The high byte never crosses a page boundary.
// It is taken from the start of the same page instead.
func (mc *CPU) ReadBugged(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read((address & 0xff00) | uint16(uint8(address)+1))
	return uint16(hi)<<8 | uint16(lo)
}

// Push a value onto the stack. The stack pointer is decremented after the
// write and wraps within page one.
func (mc *CPU) Push(v uint8) {
	mc.mem.Write(cpubus.Stack|mc.SP.Address(), v)
	mc.SP.Decrement()
}

// Pop a value from the stack. The stack pointer is incremented before the read
// and wraps within page one.
func (mc *CPU) Pop() uint8 {
	mc.SP.Increment()
	return mc.mem.Read(cpubus.Stack | mc.SP.Address())
}

func (mc *CPU) push16(v uint16) {
	mc.Push(uint8(v >> 8))
	mc.Push(uint8(v))
}

func (mc *CPU) pop16() uint16 {
	lo := mc.Pop()
	hi := mc.Pop()
	return uint16(hi)<<8 | uint16(lo)
}

// pull the status register from the stack. the treatment of the break and
// unused flags depends on the PLPMask preference
func (mc *CPU) pullStatus() {
	v := mc.Pop()
	if mc.Prefs.PLPMask.Get().(bool) {
		v &^= uint8(registers.Break)
	}
	v |= uint8(registers.Unused)
	mc.Status.Load(v)
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. Returns false if the memory system cannot be read without
// side effects.
func (mc *CPU) PredictRTS() (uint16, bool) {
	peek, ok := mc.mem.(cpubus.Peeker)
	if !ok {
		return 0, false
	}

	sp := mc.SP
	sp.Increment()
	lo := peek.Peek(cpubus.Stack | sp.Address())
	sp.Increment()
	hi := peek.Peek(cpubus.Stack | sp.Address())

	return (uint16(hi)<<8 | uint16(lo)) + 1, true
}

// Step executes the next instruction, or services a pending interrupt, and
// returns the number of cycles consumed.
func (mc *CPU) Step() int {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if mc.Killed {
		mc.LastResult.Defn = mc.instructions[cpubus.Peek(mc.mem, mc.PC.Address())]
		mc.LastResult.Halted = true
		mc.LastResult.Cycles = 1
		mc.LastResult.Final = true
		return mc.LastResult.Cycles
	}

	if mc.nmi {
		mc.nmi = false
		return mc.interrupt(execution.NMI, cpubus.NMI)
	}

	if mc.irq && !mc.Status.InterruptDisable() {
		mc.irq = false
		return mc.interrupt(execution.IRQ, cpubus.IRQ)
	}

	address := mc.PC.Address()
	defn := mc.instructions[mc.mem.Read(address)]
	mc.LastResult.Defn = defn

	if defn.IsIllegal() {
		return mc.illegal(defn)
	}

	op := mc.resolve(defn, address)
	mc.LastResult.InstructionData = op.data
	mc.LastResult.ByteCount = defn.Bytes
	mc.LastResult.CPUBug = op.bug

	mc.PC.Add(uint16(defn.Bytes))

	cycles := defn.Cycles
	if op.pageCrossed {
		mc.LastResult.PageCrossed = true
		cycles += defn.PageCycles
	}
	cycles += mc.execute(defn, op)

	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true

	return cycles
}

// service an interrupt. the return address is the address of the instruction
// that would otherwise have been executed
func (mc *CPU) interrupt(interrupt execution.Interrupt, vector uint16) int {
	mc.push16(mc.PC.Address())
	mc.Push((mc.Status.Value() &^ uint8(registers.Break)) | uint8(registers.Unused))
	mc.Status.SetFlag(registers.InterruptDisable, true)
	mc.PC.Load(mc.Read16(vector))

	mc.LastResult.Interrupt = interrupt
	mc.LastResult.Cycles = execution.InterruptCycles
	mc.LastResult.Final = true

	return mc.LastResult.Cycles
}

// handle an undocumented opcode according to the preferences
func (mc *CPU) illegal(defn *instructions.Definition) int {
	switch mc.Prefs.Illegal() {
	case preferences.IllegalHalt:
		logger.Logf(logger.Allow, "cpu", "halted on illegal opcode %#02x at %#04x", defn.OpCode, mc.LastResult.Address)
		mc.Killed = true
		mc.LastResult.Halted = true
	case preferences.IllegalLog:
		logger.Logf(logger.Allow, "cpu", "illegal opcode %#02x at %#04x", defn.OpCode, mc.LastResult.Address)
		fallthrough
	default:
		mc.PC.Add(uint16(defn.Bytes))
		mc.LastResult.ByteCount = defn.Bytes
	}

	mc.LastResult.Cycles = defn.Cycles
	mc.LastResult.Final = true

	return mc.LastResult.Cycles
}
