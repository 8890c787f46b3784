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

	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/test"
)

func TestReset(t *testing.T) {
	mc, mem := newCPU(t)

	mc.A.Load(0x12)
	mc.X.Load(0x34)
	mc.Y.Load(0x56)
	mc.SP.Load(0x00)
	mc.Status.Load(0xff)

	mem.Put(cpubus.Reset, 0x00, 0x10)
	mc.Reset()

	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.X.Value(), 0)
	test.ExpectEquality(t, mc.Y.Value(), 0)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.Value(), 0x20)
	expectPC(t, mc, 0x1000)
}

func TestNOP(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Put(origin, 0xea)

	mc.A.Load(0x01)
	mc.X.Load(0x02)
	mc.Y.Load(0x03)
	mc.SP.Load(0x04)
	mc.Status.Load(0xe5)
	before := mc.Snapshot()

	test.ExpectEquality(t, step(t, mc), 2)
	expectPC(t, mc, before.PC.Address()+1)
	test.ExpectEquality(t, mc.A, before.A)
	test.ExpectEquality(t, mc.X, before.X)
	test.ExpectEquality(t, mc.Y, before.Y)
	test.ExpectEquality(t, mc.SP, before.SP)
	test.ExpectEquality(t, mc.Status, before.Status)
}

func TestAddition(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Put(origin,
		0xa9, 0xd0, // LDA #$D0
		0x69, 0x50, // ADC #$50
		0x85, 0x10, // STA $10
		0xa9, 0x50, // LDA #$50
		0x69, 0x50, // ADC #$50
		0x85, 0x11, // STA $11
	)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x20)
	expectStatus(t, mc, "sv-bdizC")

	step(t, mc)
	step(t, mc)

	// the carry from the first addition is consumed by the second
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xa1)
	expectStatus(t, mc, "SV-bdizc")

	step(t, mc)
	word := uint16(mem.Read(0x11))<<8 | uint16(mem.Read(0x10))
	test.ExpectEquality(t, word, 41248)
	expectPC(t, mc, origin+12)
}

func TestADCExhaustive(t *testing.T) {
	mc, mem := newCPU(t)

	for a := 0; a <= 0xff; a++ {
		for m := 0; m <= 0xff; m++ {
			for c := 0; c <= 1; c++ {
				mem.Put(origin, 0x69, uint8(m))
				mc.PC.Load(origin)
				mc.A.Load(uint8(a))
				mc.Status.SetFlag(registers.Carry, c == 1)

				mc.Step()

				sum := a + m + c
				r := uint8(sum)
				overflow := ^(uint8(a)^uint8(m))&(uint8(a)^r)&0x80 != 0

				if mc.A.Value() != r || mc.Status.Carry() != (sum > 0xff) || mc.Status.Overflow() != overflow {
					t.Fatalf("ADC %02x + %02x + %d: A=%02x status=%s", a, m, c, mc.A.Value(), mc.Status)
				}
				if mc.Status.Zero() != (r == 0) || mc.Status.Sign() != (r&0x80 == 0x80) {
					t.Fatalf("ADC %02x + %02x + %d: wrong Z/N flags (%s)", a, m, c, mc.Status)
				}
			}
		}
	}
}

func TestSBCInverse(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Put(origin,
		0x18,       // CLC
		0x69, 0x00, // ADC #$00
		0x38,       // SEC
		0xe9, 0x00, // SBC #$00
	)

	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			mem.Poke(origin+2, uint8(b))
			mem.Poke(origin+5, uint8(b))
			mc.PC.Load(origin)
			mc.A.Load(uint8(a))
			for i := 0; i < 4; i++ {
				mc.Step()
			}
			if mc.A.Value() != uint8(a) {
				t.Fatalf("SBC(ADC(%02x, %02x), %02x) = %02x", a, b, b, mc.A.Value())
			}
		}
	}
}

func TestStack(t *testing.T) {
	mc, mem := newCPU(t)

	sp := mc.SP.Value()
	mc.Push(0x42)
	test.ExpectEquality(t, mem.Read(cpubus.Stack|uint16(sp)), 0x42)
	test.ExpectEquality(t, mc.Pop(), 0x42)
	test.ExpectEquality(t, mc.SP.Value(), sp)

	for i := 0; i < 300; i++ {
		mc.Push(uint8(i))
	}
	for i := 299; i >= 300-256; i-- {
		test.ExpectEquality(t, mc.Pop(), uint8(i))
	}
	for i := 0; i < 300-256; i++ {
		mc.Pop()
	}
	test.ExpectEquality(t, mc.SP.Value(), sp)

	// stack pointer wraps within page one
	mc.SP.Load(0x00)
	mc.Push(0x99)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mem.Read(0x0100), 0x99)
	test.ExpectEquality(t, mc.Pop(), 0x99)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
}

func TestJMPIndirectBug(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Put(origin, 0x6c, 0xff, 0x01)
	mem.Put(0x01ff, 0x00)
	mem.Put(0x0100, 0x20)
	mem.Put(0x0200, 0x30)

	test.ExpectEquality(t, step(t, mc), 5)
	expectPC(t, mc, 0x2000)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)

	mc.PC.Load(origin)
	mem.Put(origin, 0x6c, 0x00, 0x02)
	mem.Put(0x0200, 0x34, 0x12)
	step(t, mc)
	expectPC(t, mc, 0x1234)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)
}

func TestZeroPageWrapping(t *testing.T) {
	// LDA $F0,X wraps to $0010 and not $0110
	mc, mem := newCPU(t)
	mem.Put(origin, 0xb5, 0xf0)
	mem.Put(0x0010, 0x11)
	mem.Put(0x0110, 0x99)
	mc.X.Load(0x20)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), 0x11)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)

	// LDX $F0,Y wraps in the same way
	mc, mem = newCPU(t)
	mem.Put(origin, 0xb6, 0xf0)
	mem.Put(0x0010, 0x22)
	mem.Put(0x0110, 0x99)
	mc.Y.Load(0x20)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.X.Value(), 0x22)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)

	// STA $FF,X writes to $0000
	mc, mem = newCPU(t)
	mem.Put(origin, 0x95, 0xff)
	mc.A.Load(0x33)
	mc.X.Load(0x01)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mem.Read(0x0000), 0x33)
	test.ExpectEquality(t, mem.Read(0x0100), 0x00)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)

	// no wrap and no bug
	mc, mem = newCPU(t)
	mem.Put(origin, 0xb5, 0x10)
	mem.Put(0x0011, 0x44)
	mc.X.Load(0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x44)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)

	// LDA ($FF,X) with X=0 reads the pointer low byte from $00FF and the
	// high byte from $0000
	mc, mem = newCPU(t)
	mem.Put(origin, 0xa1, 0xff)
	mem.Put(0x00ff, 0x34)
	mem.Put(0x0000, 0x12)
	mem.Put(0x0100, 0x56)
	mem.Put(0x1234, 0x55)
	mem.Put(0x5634, 0x99)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.A.Value(), 0x55)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.IndexedIndirectAddressingBug)

	// LDA ($80,X) with X=0x90 takes the pointer from $0010
	mc, mem = newCPU(t)
	mem.Put(origin, 0xa1, 0x80)
	mem.Put(0x0010, 0x78, 0x20)
	mem.Put(0x0110, 0x00, 0x30)
	mem.Put(0x2078, 0x66)
	mc.X.Load(0x90)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x66)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.IndexedIndirectAddressingBug)

	// LDA ($FF),Y takes the pointer high byte from $0000
	mc, mem = newCPU(t)
	mem.Put(origin, 0xb1, 0xff)
	mem.Put(0x00ff, 0x34)
	mem.Put(0x0000, 0x12)
	mem.Put(0x0100, 0x56)
	mem.Put(0x1235, 0x77)
	mem.Put(0x5635, 0x99)
	mc.Y.Load(0x01)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.A.Value(), 0x77)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.IndirectIndexedAddressingBug)

	// LDA ($20),Y reads an ordinary pointer
	mc, mem = newCPU(t)
	mem.Put(origin, 0xb1, 0x20)
	mem.Put(0x0020, 0x00, 0x30)
	mem.Put(0x3001, 0x88)
	mc.Y.Load(0x01)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.A.Value(), 0x88)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)
}

func TestRead16(t *testing.T) {
	mc, mem := newCPU(t)
	mem.Put(0x12ff, 0xcd, 0xab)
	mem.Put(0x1200, 0xef)

	test.ExpectEquality(t, mc.Read16(0x12ff), 0xabcd)
	test.ExpectEquality(t, mc.ReadBugged(0x12ff), 0xefcd)
	test.ExpectEquality(t, mc.ReadBugged(0x1200), mc.Read16(0x1200))
}

func TestPageCrossing(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA $00FF,X with X=1 crosses into page one
	mem.Put(origin, 0xbd, 0xff, 0x00)
	mem.Put(0x0100, 0x77)
	mc.X.Load(1)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.A.Value(), 0x77)
	test.ExpectEquality(t, mc.LastResult.PageCrossed, true)

	// LDA $2000,Y with Y=0x89 stays in page 0x20
	mc.PC.Load(origin)
	mem.Put(origin, 0xb9, 0x00, 0x20)
	mem.Put(0x2089, 0x88)
	mc.Y.Load(0x89)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), 0x88)
	test.ExpectEquality(t, mc.LastResult.PageCrossed, false)

	// STA abs,X never pays for the page crossing
	mc.PC.Load(origin)
	mem.Put(origin, 0x9d, 0xff, 0x00)
	mc.X.Load(1)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mem.Read(0x0100), 0x88)

	// LDA (zp),Y crossing a page
	mc.PC.Load(origin)
	mem.Put(origin, 0xb1, 0x40)
	mem.Put(0x0040, 0xf0, 0x30)
	mem.Put(0x3100, 0x55)
	mc.Y.Load(0x10)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.A.Value(), 0x55)
}
