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
	"strings"
	"testing"

	"github.com/famicore/famicore/hardware/preferences"
	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/test"
)

func TestIllegalNOP(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Put(origin, 0x02, 0xea)

	before := mc.Snapshot()
	test.ExpectEquality(t, step(t, mc), 1)
	expectPC(t, mc, origin+1)
	test.ExpectEquality(t, mc.Status, before.Status)
	test.ExpectEquality(t, mc.LastResult.Defn.IsIllegal(), true)
	test.ExpectEquality(t, mc.Killed, false)
}

func TestIllegalLog(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Put(origin, 0x03)
	test.DemandSuccess(t, mc.Prefs.IllegalOpcodes.Set(string(preferences.IllegalLog)))

	logger.Clear()
	test.ExpectEquality(t, step(t, mc), 1)
	expectPC(t, mc, origin+1)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: illegal opcode 0x03 at 0x1000\n")
}

func TestIllegalHalt(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Put(origin, 0x12)
	test.DemandSuccess(t, mc.Prefs.IllegalOpcodes.Set(string(preferences.IllegalHalt)))

	for i := 0; i < 3; i++ {
		test.ExpectEquality(t, step(t, mc), 1)
		expectPC(t, mc, origin)
		test.ExpectEquality(t, mc.Killed, true)
		test.ExpectEquality(t, mc.LastResult.Halted, true)
	}

	// interrupts are not serviced by a halted CPU
	mc.NMI()
	step(t, mc)
	expectPC(t, mc, origin)

	mc.Reset()
	test.ExpectEquality(t, mc.Killed, false)
}

func TestIllegalPolicyValidation(t *testing.T) {
	mc, _ := newCPU(t)
	test.ExpectFailure(t, mc.Prefs.IllegalOpcodes.Set("explode"))
	test.ExpectEquality(t, mc.Prefs.Illegal(), preferences.IllegalNOP)
}

func TestPLPMask(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Put(origin, 0x28, 0x28) // PLP; PLP

	mc.Push(0x00)
	mc.Push(0xff)

	step(t, mc)
	test.ExpectEquality(t, mc.Status.Value(), 0xef)

	test.DemandSuccess(t, mc.Prefs.PLPMask.Set(false))
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Value(), 0x20)

	mc.Push(0x10)
	mc.PC.Load(origin)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Value(), 0x30)
	test.ExpectEquality(t, mc.Status.Break(), true)
}

func TestDecimalMode(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Put(origin,
		0xf8,       // SED
		0x18,       // CLC
		0xa9, 0x19, // LDA #$19
		0x69, 0x28, // ADC #$28
		0x38,       // SEC
		0xe9, 0x09, // SBC #$09
	)

	// decimal flag is inert by default
	for i := 0; i < 4; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), 0x41)
	test.ExpectEquality(t, mc.Status.DecimalMode(), true)

	test.DemandSuccess(t, mc.Prefs.DecimalMode.Set(true))
	mc.PC.Load(origin)
	for i := 0; i < 4; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), 0x47)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x38)
	test.ExpectEquality(t, mc.Status.Carry(), true)
}
