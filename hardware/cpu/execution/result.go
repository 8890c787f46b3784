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

package execution

import (
	"fmt"

	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// Interrupt identifies the interrupt serviced by a step of the CPU, if any.
type Interrupt int

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = iota
	NMI
	IRQ
)

func (i Interrupt) String() string {
	switch i {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return ""
}

// InterruptCycles is the number of cycles taken to service an interrupt.
const InterruptCycles = 7

// Result records the execution of a single step of the CPU.
type Result struct {
	// address of the opcode
	Address uint16

	// nil if the step serviced an interrupt
	Defn *instructions.Definition

	// the operand as read from memory. one byte operands are stored in the
	// low byte
	InstructionData uint16

	// number of bytes read during decode, including the opcode
	ByteCount int

	// total number of cycles consumed by the step
	Cycles int

	// the effective address crossed a page boundary
	PageCrossed bool

	// a branch instruction was taken
	BranchTaken bool

	// a known 6502 quirk was triggered
	CPUBug Bug

	// the interrupt serviced in place of an instruction
	Interrupt Interrupt

	// the CPU is halted on an illegal opcode. the PC does not advance
	Halted bool

	// the result is complete. the other fields should not be trusted
	// unless Final is true
	Final bool
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("%04x %s (%d cycles)", r.Address, r.Interrupt, r.Cycles)
	}
	if r.Defn == nil {
		return "no instruction"
	}

	s := fmt.Sprintf("%04x %s", r.Address, r.Defn.Operator)
	switch r.ByteCount {
	case 2:
		s = fmt.Sprintf("%s %02x", s, r.InstructionData)
	case 3:
		s = fmt.Sprintf("%s %04x", s, r.InstructionData)
	}
	s = fmt.Sprintf("%s (%d cycles)", s, r.Cycles)
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s [%s]", s, r.CPUBug)
	}
	if r.Halted {
		s = fmt.Sprintf("%s [halted]", s)
	}
	return s
}
