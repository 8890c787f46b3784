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

// Package cpu emulates the 6502 family microprocessor found at the heart of
// the console. Like all 8-bit processors of the era, the 6502 executes
// instructions according to the single byte value read from the address
// pointed to by the program counter. This single byte is the opcode and is
// looked up in the instruction table. The instruction definition for that
// opcode is then used to move execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface. The
// CPU does not own the memory and never accesses memory except through the
// interface.
//
//	mc, err := cpu.NewCPU(mem)
//	if err != nil {
//		return err
//	}
//	mc.Reset()
//
//	for {
//		cycles := mc.Step()
//		...
//	}
//
// Each call to Step() executes exactly one instruction, or services one
// pending interrupt, and returns the number of cycles consumed. The
// instruction is atomic. There is no notion of time inside an instruction.
// How the cycle count is used to synchronise other parts of the console is
// for the caller to decide.
//
// The CPU registers are public fields and can be inspected and changed
// between calls to Step(). The LastResult field describes the most recent
// step and is very useful for debuggers.
//
// Interrupt requests are made with NMI() and IRQ(). Requests are serviced at
// the start of the next call to Step(), before an opcode is fetched. An IRQ
// request is held while the interrupt disable flag is set. A request is
// cleared when it is serviced.
//
// The behaviour of the CPU when it encounters an undocumented opcode is
// decided by the preferences. By default an undocumented opcode is treated
// as a single byte, single cycle NOP.
package cpu
