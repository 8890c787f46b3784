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
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// operand is the result of resolving the addressing mode of an instruction.
type operand struct {
	// the effective address. not used by the Implied, Accumulator and
	// Relative modes
	address uint16

	// the raw operand bytes following the opcode. for the Relative mode this
	// is the signed displacement
	data uint16

	// the indexed address is on a different page to the base address
	pageCrossed bool

	bug execution.Bug
}

// read a pointer from page zero. the high byte wraps to the start of page
// zero
func (mc *CPU) readZeroPagePointer(zp uint8) uint16 {
	lo := mc.mem.Read(uint16(zp))
	hi := mc.mem.Read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func pageCrossed(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// resolve the operand for the instruction at address. the PC is not changed
func (mc *CPU) resolve(defn *instructions.Definition, address uint16) operand {
	var op operand

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:

	case instructions.Immediate:
		op.address = address + 1
		op.data = uint16(mc.mem.Read(op.address))

	case instructions.Relative:
		op.data = uint16(mc.mem.Read(address + 1))

	case instructions.ZeroPage:
		op.data = uint16(mc.mem.Read(address + 1))
		op.address = op.data

	case instructions.ZeroPageX, instructions.ZeroPageY:
		zp := mc.mem.Read(address + 1)
		op.data = uint16(zp)

		idx := mc.X.Value()
		if defn.AddressingMode == instructions.ZeroPageY {
			idx = mc.Y.Value()
		}
		if uint16(zp)+uint16(idx) > 0xff {
			op.bug = execution.ZeroPageIndexBug
		}
		op.address = uint16(zp + idx)

	case instructions.Absolute:
		op.data = mc.Read16(address + 1)
		op.address = op.data

	case instructions.AbsoluteX, instructions.AbsoluteY:
		op.data = mc.Read16(address + 1)

		idx := mc.X.Address()
		if defn.AddressingMode == instructions.AbsoluteY {
			idx = mc.Y.Address()
		}
		op.address = op.data + idx
		op.pageCrossed = pageCrossed(op.data, op.address)

	case instructions.Indirect:
		op.data = mc.Read16(address + 1)
		if op.data&0x00ff == 0x00ff {
			op.bug = execution.JmpIndirectAddressingBug
		}
		op.address = mc.ReadBugged(op.data)

	case instructions.IndexedIndirect:
		zp := mc.mem.Read(address + 1)
		op.data = uint16(zp)

		ptr := zp + mc.X.Value()
		if uint16(zp)+mc.X.Address() > 0xff || ptr == 0xff {
			op.bug = execution.IndexedIndirectAddressingBug
		}
		op.address = mc.readZeroPagePointer(ptr)

	case instructions.IndirectIndexed:
		zp := mc.mem.Read(address + 1)
		op.data = uint16(zp)

		if zp == 0xff {
			op.bug = execution.IndirectIndexedAddressingBug
		}
		base := mc.readZeroPagePointer(zp)
		op.address = base + mc.Y.Address()
		op.pageCrossed = pageCrossed(base, op.address)
	}

	return op
}
