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

package cpu_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/hardware/memory/ram"
	"github.com/famicore/famicore/test"
)

// the address at which test programs are placed
const origin = uint16(0x1000)

// create a CPU over flat RAM with the reset vector pointing to origin
func newCPU(t *testing.T) (*cpu.CPU, *ram.RAM) {
	t.Helper()

	mem := ram.NewRAM()
	mem.SetVector(cpubus.Reset, origin)

	mc, err := cpu.NewCPU(mem)
	test.DemandSuccess(t, err)
	mc.Reset()

	return mc, mem
}

// step the CPU once and check the consistency of the result
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles := mc.Step()
	test.DemandSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, cycles, mc.LastResult.Cycles, "returned cycles")
	return cycles
}

func expectStatus(t *testing.T, mc *cpu.CPU, expected string) {
	t.Helper()
	test.ExpectEquality(t, mc.Status.String(), expected, "status")
}

func expectPC(t *testing.T, mc *cpu.CPU, expected uint16) {
	t.Helper()
	test.ExpectEquality(t, mc.PC.Address(), expected, "PC")
}
