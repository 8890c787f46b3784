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

package execution_test

import (
	"testing"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/test"
)

func TestIsValid(t *testing.T) {
	defs, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)

	var r execution.Result
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.InvalidResult))

	// LDA abs,X without and with a page crossing
	r = execution.Result{Defn: defs[0xbd], ByteCount: 3, Cycles: 4, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.PageCrossed = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())

	// STA abs,X never pays the extra cycle
	r = execution.Result{Defn: defs[0x9d], ByteCount: 3, Cycles: 5, PageCrossed: true, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	// page crossing for zero page instruction
	r = execution.Result{Defn: defs[0xa5], ByteCount: 2, Cycles: 3, PageCrossed: true, Final: true}
	test.ExpectFailure(t, r.IsValid())

	// branches
	r = execution.Result{Defn: defs[0xd0], ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.BranchTaken = true
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())
	r.PageCrossed = true
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())

	// wrong byte count
	r = execution.Result{Defn: defs[0xea], ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectFailure(t, r.IsValid())

	// interrupts
	r = execution.Result{Interrupt: execution.NMI, Cycles: 7, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 2
	test.ExpectFailure(t, r.IsValid())

	// halted
	r = execution.Result{Defn: defs[0x02], Cycles: 1, Halted: true, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.Defn = defs[0xea]
	test.ExpectFailure(t, r.IsValid())
}

func TestResultString(t *testing.T) {
	defs, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)

	r := execution.Result{Address: 0x1000, Defn: defs[0x6c], InstructionData: 0x01ff, ByteCount: 3, Cycles: 5,
		CPUBug: execution.JmpIndirectAddressingBug, Final: true}
	test.ExpectEquality(t, r.String(), "1000 JMP 01ff (5 cycles) [indirect addressing bug (JMP bug)]")

	r = execution.Result{Address: 0x2000, Interrupt: execution.IRQ, Cycles: 7, Final: true}
	test.ExpectEquality(t, r.String(), "2000 IRQ (7 cycles)")
}
