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

package instructions_test

import (
	"fmt"
	"strconv"

	"github.com/famicore/famicore/hardware/cpu/instructions"
)

func hex(v uint8) string {
	return fmt.Sprintf("0x%02x", v)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func modeName(m instructions.AddressingMode) string {
	switch m {
	case instructions.Implied:
		return "IMPLIED"
	case instructions.Accumulator:
		return "ACCUMULATOR"
	case instructions.Immediate:
		return "IMMEDIATE"
	case instructions.Relative:
		return "RELATIVE"
	case instructions.Absolute:
		return "ABSOLUTE"
	case instructions.ZeroPage:
		return "ZERO_PAGE"
	case instructions.Indirect:
		return "INDIRECT"
	case instructions.IndexedIndirect:
		return "INDEXED_INDIRECT"
	case instructions.IndirectIndexed:
		return "INDIRECT_INDEXED"
	case instructions.AbsoluteX:
		return "ABSOLUTE_X"
	case instructions.AbsoluteY:
		return "ABSOLUTE_Y"
	case instructions.ZeroPageX:
		return "ZERO_PAGE_X"
	case instructions.ZeroPageY:
		return "ZERO_PAGE_Y"
	}
	return ""
}

func effectName(e instructions.EffectCategory) string {
	switch e {
	case instructions.Read:
		return "READ"
	case instructions.Write:
		return "WRITE"
	case instructions.RMW:
		return "RMW"
	case instructions.Flow:
		return "FLOW"
	case instructions.Subroutine:
		return "SUBROUTINE"
	case instructions.Interrupt:
		return "INTERRUPT"
	case instructions.Undefined:
		return "UNDEFINED"
	}
	return ""
}
