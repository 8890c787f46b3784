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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// Entry is a disassembled instruction. The fields are the string
// representation of the information in the Result field.
type Entry struct {
	Result execution.Result

	Address  string
	Bytecode string
	Operator string
	Operand  string
}

// the width of the bytecode column. three bytes with separating spaces
const bytecodeWidth = 8

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s  %-*s  %s", e.Address, bytecodeWidth, e.Bytecode, e.Operator))
	if e.Operand != "" {
		s.WriteString(" ")
		s.WriteString(e.Operand)
	}
	return strings.TrimRight(s.String(), " ")
}

// FormatResult creates an Entry for an execution result. Results that are
// not yet complete are formatted with question marks in place of the missing
// bytes.
func FormatResult(result execution.Result) Entry {
	e := Entry{
		Result:  result,
		Address: fmt.Sprintf("$%04X", result.Address),
	}

	if result.Interrupt != execution.NoInterrupt {
		e.Operator = result.Interrupt.String()
		return e
	}

	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	e.Operator = result.Defn.Operator.String()

	data := result.InstructionData
	switch result.Defn.Bytes {
	case 3:
		switch result.ByteCount {
		case 3:
			e.Bytecode = fmt.Sprintf("%02X %02X %02X", result.Defn.OpCode, data&0x00ff, data>>8)
			e.Operand = fmt.Sprintf("$%04X", data)
		case 2:
			e.Bytecode = fmt.Sprintf("%02X %02X ??", result.Defn.OpCode, data&0x00ff)
			e.Operand = fmt.Sprintf("$??%02X", data&0x00ff)
		default:
			e.Bytecode = fmt.Sprintf("%02X ?? ??", result.Defn.OpCode)
			e.Operand = "$????"
		}
	case 2:
		switch result.ByteCount {
		case 2:
			e.Bytecode = fmt.Sprintf("%02X %02X", result.Defn.OpCode, data&0x00ff)
			if result.Defn.AddressingMode == instructions.Relative {
				e.Operand = fmt.Sprintf("$%04X", branchTarget(result.Address, uint8(data)))
			} else {
				e.Operand = fmt.Sprintf("$%02X", data&0x00ff)
			}
		default:
			e.Bytecode = fmt.Sprintf("%02X ??", result.Defn.OpCode)
			e.Operand = "$??"
		}
	default:
		e.Bytecode = fmt.Sprintf("%02X", result.Defn.OpCode)
	}

	e.Operand = addrModeDecoration(e.Operand, result.Defn.AddressingMode)

	return e
}

// the address reached by a branch instruction at address if the branch is
// taken. the displacement is relative to the address following the branch
func branchTarget(address uint16, displacement uint8) uint16 {
	return uint16(int32(address) + 2 + int32(int8(displacement)))
}

// decorate the operand according to the addressing mode
func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	switch mode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return "#" + operand
	case instructions.Indirect:
		return fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteX, instructions.ZeroPageX:
		return operand + ",X"
	case instructions.AbsoluteY, instructions.ZeroPageY:
		return operand + ",Y"
	}
	return operand
}
