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
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

func (mc *CPU) decimalArithmetic() bool {
	return mc.Status.DecimalMode() && mc.Prefs.DecimalMode.Get().(bool)
}

// read-modify-write instructions write the unmodified value back to memory
// before writing the modified value
func (mc *CPU) readModifyWrite(address uint16, f func(r *registers.Register)) uint8 {
	v := mc.mem.Read(address)
	mc.mem.Write(address, v)
	r := registers.NewRegister(v, "")
	f(&r)
	mc.mem.Write(address, r.Value())
	return r.Value()
}

// shift or rotate either the accumulator or memory. f returns the new carry
func (mc *CPU) shift(defn *instructions.Definition, op operand, f func(r *registers.Register) bool) {
	var carry bool
	if defn.AddressingMode == instructions.Accumulator {
		carry = f(&mc.A)
		mc.Status.SetZN(mc.A.Value())
	} else {
		v := mc.readModifyWrite(op.address, func(r *registers.Register) {
			carry = f(r)
		})
		mc.Status.SetZN(v)
	}
	mc.Status.SetFlag(registers.Carry, carry)
}

func (mc *CPU) compare(r registers.Register, v uint8) {
	carry, result := r.Compare(v)
	mc.Status.SetFlag(registers.Carry, carry)
	mc.Status.SetZN(result)
}

// take the branch if cond is true. returns the number of additional cycles
func (mc *CPU) branch(cond bool, op operand) int {
	if !cond {
		return 0
	}

	mc.LastResult.BranchTaken = true

	from := mc.PC.Address()
	mc.PC.Branch(int8(op.data))
	if pageCrossed(from, mc.PC.Address()) {
		mc.LastResult.PageCrossed = true
		return 2
	}

	return 1
}

// execute the operator for a documented instruction. the PC has already been
// advanced past the instruction. returns the number of cycles in addition to
// the base and page cycles of the definition
func (mc *CPU) execute(defn *instructions.Definition, op operand) int {
	// the value to be used by read instructions
	var value uint8
	if defn.Effect == instructions.Read && defn.AddressingMode != instructions.Implied {
		value = mc.mem.Read(op.address)
	}

	switch defn.Operator {
	case instructions.Nop:

	case instructions.Clc:
		mc.Status.SetFlag(registers.Carry, false)
	case instructions.Cld:
		mc.Status.SetFlag(registers.DecimalMode, false)
	case instructions.Cli:
		mc.Status.SetFlag(registers.InterruptDisable, false)
	case instructions.Clv:
		mc.Status.SetFlag(registers.Overflow, false)
	case instructions.Sec:
		mc.Status.SetFlag(registers.Carry, true)
	case instructions.Sed:
		mc.Status.SetFlag(registers.DecimalMode, true)
	case instructions.Sei:
		mc.Status.SetFlag(registers.InterruptDisable, true)

	case instructions.Pha:
		mc.Push(mc.A.Value())
	case instructions.Pla:
		mc.A.Load(mc.Pop())
		mc.Status.SetZN(mc.A.Value())
	case instructions.Php:
		mc.Push(mc.Status.Value() | uint8(registers.Break) | uint8(registers.Unused))
	case instructions.Plp:
		mc.pullStatus()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZN(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZN(mc.Y.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZN(mc.X.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.SetZN(value)
	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.SetZN(value)
	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.SetZN(value)

	case instructions.Sta:
		mc.mem.Write(op.address, mc.A.Value())
	case instructions.Stx:
		mc.mem.Write(op.address, mc.X.Value())
	case instructions.Sty:
		mc.mem.Write(op.address, mc.Y.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.SetZN(mc.A.Value())
	case instructions.And:
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())
	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Adc:
		if mc.decimalArithmetic() {
			carry, zero, overflow, sign := mc.A.AddDecimal(value, mc.Status.Carry())
			mc.Status.SetFlag(registers.Carry, carry)
			mc.Status.SetFlag(registers.Zero, zero)
			mc.Status.SetFlag(registers.Overflow, overflow)
			mc.Status.SetFlag(registers.Sign, sign)
		} else {
			carry, overflow := mc.A.Add(value, mc.Status.Carry())
			mc.Status.SetFlag(registers.Carry, carry)
			mc.Status.SetFlag(registers.Overflow, overflow)
			mc.Status.SetZN(mc.A.Value())
		}

	case instructions.Sbc:
		if mc.decimalArithmetic() {
			carry, zero, overflow, sign := mc.A.SubtractDecimal(value, mc.Status.Carry())
			mc.Status.SetFlag(registers.Carry, carry)
			mc.Status.SetFlag(registers.Zero, zero)
			mc.Status.SetFlag(registers.Overflow, overflow)
			mc.Status.SetFlag(registers.Sign, sign)
		} else {
			carry, overflow := mc.A.Subtract(value, mc.Status.Carry())
			mc.Status.SetFlag(registers.Carry, carry)
			mc.Status.SetFlag(registers.Overflow, overflow)
			mc.Status.SetZN(mc.A.Value())
		}

	case instructions.Cmp:
		mc.compare(mc.A, value)
	case instructions.Cpx:
		mc.compare(mc.X, value)
	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.Status.SetFlag(registers.Zero, mc.A.Value()&value == 0)
		mc.Status.SetFlag(registers.Sign, value&0x80 == 0x80)
		mc.Status.SetFlag(registers.Overflow, value&0x40 == 0x40)

	case instructions.Inc:
		v := mc.readModifyWrite(op.address, func(r *registers.Register) { r.Increment() })
		mc.Status.SetZN(v)
	case instructions.Dec:
		v := mc.readModifyWrite(op.address, func(r *registers.Register) { r.Decrement() })
		mc.Status.SetZN(v)
	case instructions.Inx:
		mc.X.Increment()
		mc.Status.SetZN(mc.X.Value())
	case instructions.Iny:
		mc.Y.Increment()
		mc.Status.SetZN(mc.Y.Value())
	case instructions.Dex:
		mc.X.Decrement()
		mc.Status.SetZN(mc.X.Value())
	case instructions.Dey:
		mc.Y.Decrement()
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Asl:
		mc.shift(defn, op, func(r *registers.Register) bool { return r.ASL() })
	case instructions.Lsr:
		mc.shift(defn, op, func(r *registers.Register) bool { return r.LSR() })
	case instructions.Rol:
		carry := mc.Status.Carry()
		mc.shift(defn, op, func(r *registers.Register) bool { return r.ROL(carry) })
	case instructions.Ror:
		carry := mc.Status.Carry()
		mc.shift(defn, op, func(r *registers.Register) bool { return r.ROR(carry) })

	case instructions.Bcc:
		return mc.branch(!mc.Status.Carry(), op)
	case instructions.Bcs:
		return mc.branch(mc.Status.Carry(), op)
	case instructions.Beq:
		return mc.branch(mc.Status.Zero(), op)
	case instructions.Bne:
		return mc.branch(!mc.Status.Zero(), op)
	case instructions.Bmi:
		return mc.branch(mc.Status.Sign(), op)
	case instructions.Bpl:
		return mc.branch(!mc.Status.Sign(), op)
	case instructions.Bvs:
		return mc.branch(mc.Status.Overflow(), op)
	case instructions.Bvc:
		return mc.branch(!mc.Status.Overflow(), op)

	case instructions.Jmp:
		mc.PC.Load(op.address)

	case instructions.Jsr:
		// the address pushed is the address of the last byte of the JSR
		mc.push16(mc.PC.Address() - 1)
		mc.PC.Load(op.address)

	case instructions.Rts:
		mc.PC.Load(mc.pop16() + 1)

	case instructions.Brk:
		// the byte following the BRK opcode is skipped on return
		mc.push16(mc.PC.Address() + 1)
		mc.Push(mc.Status.Value() | uint8(registers.Break) | uint8(registers.Unused))
		mc.Status.SetFlag(registers.InterruptDisable, true)
		mc.PC.Load(mc.Read16(cpubus.BRK))

	case instructions.Rti:
		mc.pullStatus()
		mc.PC.Load(mc.pop16())
	}

	return 0
}
