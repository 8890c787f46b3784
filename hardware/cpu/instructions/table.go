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

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/famicore/famicore/curated"
)

//go:embed instructions.csv
var instructionsCSV []byte

// Sentinal error patterns.
const (
	InvalidTable      = "instructions: %v"
	InvalidDefinition = "instructions: invalid definition for opcode %#02x: %v"
)

// the table is built once and shared by every CPU instance. it is never
// modified after it has been built
var table struct {
	once sync.Once
	defs []*Definition
	err  error
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. The table is built and validated on the first call.
//
// The returned slice must not be modified.
func GetDefinitions() ([]*Definition, error) {
	table.once.Do(func() {
		table.defs, table.err = ParseDefinitions(bytes.NewReader(instructionsCSV))
	})
	return table.defs, table.err
}

// ParseDefinitions reads a definitions table in CSV format. Each record
// consists of six fields:
//
//	opcode, mnemonic, cycles, addressing mode, page cycles, effect
//
// Lines beginning with # are comments. The returned table is validated and
// will contain exactly 256 entries if there is no error.
func ParseDefinitions(r io.Reader) ([]*Definition, error) {
	csvr := csv.NewReader(r)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	defs := make([]*Definition, 256)

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf(InvalidTable, err)
		}

		defn, err := parseRecord(rec)
		if err != nil {
			return nil, curated.Errorf(InvalidTable, err)
		}

		if defs[defn.OpCode] != nil {
			return nil, curated.Errorf(InvalidDefinition, defn.OpCode, "duplicate opcode")
		}
		defs[defn.OpCode] = defn
	}

	if err := validate(defs); err != nil {
		return nil, err
	}

	return defs, nil
}

func parseRecord(rec []string) (*Definition, error) {
	if len(rec) != 6 {
		return nil, fmt.Errorf("wrong number of fields in definition (%s)", strings.Join(rec, ", "))
	}

	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}

	defn := &Definition{}

	n, err := strconv.ParseUint(rec[0], 0, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid opcode (%s)", rec[0])
	}
	defn.OpCode = uint8(n)

	var ok bool

	defn.Operator, ok = mnemonics[strings.ToUpper(rec[1])]
	if !ok {
		return nil, fmt.Errorf("unknown mnemonic for %#02x (%s)", defn.OpCode, rec[1])
	}

	defn.Cycles, err = strconv.Atoi(rec[2])
	if err != nil {
		return nil, fmt.Errorf("invalid cycle count for %#02x (%s)", defn.OpCode, rec[2])
	}

	defn.AddressingMode, ok = addressingModeNames[strings.ToUpper(rec[3])]
	if !ok {
		return nil, fmt.Errorf("invalid addressing mode for %#02x (%s)", defn.OpCode, rec[3])
	}
	defn.Bytes = defn.AddressingMode.Bytes()

	defn.PageCycles, err = strconv.Atoi(rec[4])
	if err != nil {
		return nil, fmt.Errorf("invalid page cycles for %#02x (%s)", defn.OpCode, rec[4])
	}

	defn.Effect, ok = effectNames[strings.ToUpper(rec[5])]
	if !ok {
		return nil, fmt.Errorf("unknown effect for %#02x (%s)", defn.OpCode, rec[5])
	}

	return defn, nil
}

// validate checks the table for completeness and for consistency between
// operators, addressing modes and effects.
func validate(defs []*Definition) error {
	if len(defs) != 256 {
		return curated.Errorf(InvalidTable, fmt.Sprintf("table has %d entries", len(defs)))
	}

	for i, defn := range defs {
		opcode := uint8(i)

		if defn == nil {
			return curated.Errorf(InvalidDefinition, opcode, "missing definition")
		}

		if defn.OpCode != opcode {
			return curated.Errorf(InvalidDefinition, opcode, "opcode field does not match position in table")
		}

		if defn.Bytes != defn.AddressingMode.Bytes() {
			return curated.Errorf(InvalidDefinition, opcode, "byte count does not match addressing mode")
		}

		if defn.Operator.IsBranch() != (defn.AddressingMode == Relative) {
			return curated.Errorf(InvalidDefinition, opcode, "relative addressing is for branch instructions only")
		}

		if defn.AddressingMode == Accumulator && !defn.Operator.IsShift() {
			return curated.Errorf(InvalidDefinition, opcode, "accumulator addressing is for shift instructions only")
		}

		if (defn.Operator == Illegal) != (defn.Effect == Undefined) {
			return curated.Errorf(InvalidDefinition, opcode, "undefined effect does not match operator")
		}

		if defn.PageCycles < 0 {
			return curated.Errorf(InvalidDefinition, opcode, "negative page cycles")
		}
		if defn.PageCycles > 0 && (defn.Effect != Read || !defn.AddressingMode.PageSensitive()) {
			return curated.Errorf(InvalidDefinition, opcode, "page cycles on an instruction that cannot pay them")
		}

		if defn.Operator == Illegal {
			if defn.Cycles < 1 {
				return curated.Errorf(InvalidDefinition, opcode, "illegal opcode must consume at least one cycle")
			}
		} else if defn.Cycles < 2 {
			return curated.Errorf(InvalidDefinition, opcode, "instruction must consume at least two cycles")
		}
	}

	return nil
}
