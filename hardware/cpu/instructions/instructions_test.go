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
	"strings"
	"testing"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/test"
)

func TestGetDefinitions(t *testing.T) {
	defs, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(defs), 256)

	operators := make(map[instructions.Operator]bool)
	var documented int

	for i, defn := range defs {
		if defn == nil {
			t.Fatalf("missing definition for opcode %#02x", i)
		}
		test.ExpectEquality(t, int(defn.OpCode), i)
		if !defn.IsIllegal() {
			documented++
			operators[defn.Operator] = true
		}
	}

	test.ExpectEquality(t, documented, 151)
	test.ExpectEquality(t, len(operators), instructions.NumDocumented)
	test.ExpectEquality(t, instructions.NumDocumented, 56)

	// same table on every call
	again, err := instructions.GetDefinitions()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, again[0xa9], defs[0xa9])
}

func TestSpotDefinitions(t *testing.T) {
	defs, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)

	lda := defs[0xbd]
	test.ExpectEquality(t, lda.Operator, instructions.Lda)
	test.ExpectEquality(t, lda.AddressingMode, instructions.AbsoluteX)
	test.ExpectEquality(t, lda.Bytes, 3)
	test.ExpectEquality(t, lda.Cycles, 4)
	test.ExpectEquality(t, lda.PageCycles, 1)

	// write instructions never have page cycles
	sta := defs[0x9d]
	test.ExpectEquality(t, sta.Cycles, 5)
	test.ExpectEquality(t, sta.PageCycles, 0)
	test.ExpectEquality(t, sta.Effect, instructions.Write)

	sta = defs[0x91]
	test.ExpectEquality(t, sta.Cycles, 6)
	test.ExpectEquality(t, sta.PageCycles, 0)

	jmp := defs[0x6c]
	test.ExpectEquality(t, jmp.Operator, instructions.Jmp)
	test.ExpectEquality(t, jmp.AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, jmp.Cycles, 5)

	asl := defs[0x0a]
	test.ExpectEquality(t, asl.AddressingMode, instructions.Accumulator)
	test.ExpectEquality(t, asl.Bytes, 1)

	bne := defs[0xd0]
	test.ExpectSuccess(t, bne.IsBranch())
	test.ExpectEquality(t, bne.Bytes, 2)

	brk := defs[0x00]
	test.ExpectEquality(t, brk.Operator, instructions.Brk)
	test.ExpectEquality(t, brk.Bytes, 1)
	test.ExpectEquality(t, brk.Cycles, 7)

	illegal := defs[0x02]
	test.ExpectSuccess(t, illegal.IsIllegal())
	test.ExpectEquality(t, illegal.Bytes, 1)
	test.ExpectEquality(t, illegal.Cycles, 1)
	test.ExpectEquality(t, illegal.Operator.String(), "???")
}

// builds a complete table with one line replaced
func tableWith(t *testing.T, opcode uint8, line string) string {
	t.Helper()

	defs, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)

	s := strings.Builder{}
	s.WriteString("# test table\n")
	for _, defn := range defs {
		if defn.OpCode == opcode {
			if line != "" {
				s.WriteString(line + "\n")
			}
			continue
		}
		s.WriteString(strings.Join([]string{
			hex(defn.OpCode),
			defn.Operator.String(),
			itoa(defn.Cycles),
			modeName(defn.AddressingMode),
			itoa(defn.PageCycles),
			effectName(defn.Effect),
		}, ", "))
		s.WriteString("\n")
	}
	return s.String()
}

func TestParseRoundTrip(t *testing.T) {
	defs, err := instructions.ParseDefinitions(strings.NewReader(tableWith(t, 0xea, "0xea, NOP, 2, IMPLIED, 0, READ")))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, defs[0xea].Operator, instructions.Nop)
}

func TestValidation(t *testing.T) {
	var err error

	// missing opcode
	_, err = instructions.ParseDefinitions(strings.NewReader(tableWith(t, 0xea, "")))
	test.ExpectSuccess(t, curated.Is(err, instructions.InvalidDefinition), err)

	// duplicate opcode
	_, err = instructions.ParseDefinitions(strings.NewReader(tableWith(t, 0xea, "0xea, NOP, 2, IMPLIED, 0, READ\n0xea, NOP, 2, IMPLIED, 0, READ")))
	test.ExpectSuccess(t, curated.Is(err, instructions.InvalidDefinition), err)

	// relative addressing on a non-branch
	_, err = instructions.ParseDefinitions(strings.NewReader(tableWith(t, 0xea, "0xea, NOP, 2, RELATIVE, 0, READ")))
	test.ExpectSuccess(t, curated.Is(err, instructions.InvalidDefinition), err)

	// branch without relative addressing
	_, err = instructions.ParseDefinitions(strings.NewReader(tableWith(t, 0xd0, "0xd0, BNE, 2, ABSOLUTE, 0, FLOW")))
	test.ExpectSuccess(t, curated.Is(err, instructions.InvalidDefinition), err)

	// accumulator addressing on a non-shift
	_, err = instructions.ParseDefinitions(strings.NewReader(tableWith(t, 0xea, "0xea, NOP, 2, ACCUMULATOR, 0, READ")))
	test.ExpectSuccess(t, curated.Is(err, instructions.InvalidDefinition), err)

	// page cycles on a write
	_, err = instructions.ParseDefinitions(strings.NewReader(tableWith(t, 0x9d, "0x9d, STA, 5, ABSOLUTE_X, 1, WRITE")))
	test.ExpectSuccess(t, curated.Is(err, instructions.InvalidDefinition), err)

	// page cycles on a mode that cannot cross a page
	_, err = instructions.ParseDefinitions(strings.NewReader(tableWith(t, 0xad, "0xad, LDA, 4, ABSOLUTE, 1, READ")))
	test.ExpectSuccess(t, curated.Is(err, instructions.InvalidDefinition), err)

	// unknown mnemonic
	_, err = instructions.ParseDefinitions(strings.NewReader(tableWith(t, 0xea, "0xea, XYZ, 2, IMPLIED, 0, READ")))
	test.ExpectSuccess(t, curated.Is(err, instructions.InvalidTable), err)

	// wrong number of fields
	_, err = instructions.ParseDefinitions(strings.NewReader(tableWith(t, 0xea, "0xea, NOP, 2, IMPLIED")))
	test.ExpectSuccess(t, curated.Is(err, instructions.InvalidTable), err)

	// documented instruction with too few cycles
	_, err = instructions.ParseDefinitions(strings.NewReader(tableWith(t, 0xea, "0xea, NOP, 1, IMPLIED, 0, READ")))
	test.ExpectSuccess(t, curated.Is(err, instructions.InvalidDefinition), err)
}
