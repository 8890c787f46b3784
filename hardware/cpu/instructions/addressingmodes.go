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

package instructions

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // branch instructions only

	Absolute
	ZeroPage
	Indirect // JMP only

	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y

	AbsoluteX
	AbsoluteY

	ZeroPageX
	ZeroPageY
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes an instruction with the addressing mode
// occupies, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, Indirect, AbsoluteX, AbsoluteY:
		return 3
	}
	return 2
}

// PageSensitive returns true if an effective address for the addressing mode
// can cross a page boundary.
func (m AddressingMode) PageSensitive() bool {
	return m == AbsoluteX || m == AbsoluteY || m == IndirectIndexed
}

// names used in instructions.csv
var addressingModeNames = map[string]AddressingMode{
	"IMPLIED":          Implied,
	"ACCUMULATOR":      Accumulator,
	"IMMEDIATE":        Immediate,
	"RELATIVE":         Relative,
	"ABSOLUTE":         Absolute,
	"ZERO_PAGE":        ZeroPage,
	"INDIRECT":         Indirect,
	"INDEXED_INDIRECT": IndexedIndirect,
	"INDIRECT_INDEXED": IndirectIndexed,
	"ABSOLUTE_X":       AbsoluteX,
	"ABSOLUTE_Y":       AbsoluteY,
	"ZERO_PAGE_X":      ZeroPageX,
	"ZERO_PAGE_Y":      ZeroPageY,
}
