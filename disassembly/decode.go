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
	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// Sentinal error patterns.
const (
	DisasmError = "disassembly: %v"
)

// Decode the instruction at address. Memory is read with Peek() if it is
// available.
func Decode(mem cpubus.Memory, address uint16) (Entry, error) {
	defs, err := instructions.GetDefinitions()
	if err != nil {
		return Entry{}, curated.Errorf(DisasmError, err)
	}
	return FormatResult(decode(defs, mem, address)), nil
}

// Range decodes count instructions starting at address. Each instruction is
// assumed to follow on from the previous one. Decoding wraps at the end of
// the address space.
func Range(mem cpubus.Memory, address uint16, count int) ([]Entry, error) {
	defs, err := instructions.GetDefinitions()
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		r := decode(defs, mem, address)
		entries = append(entries, FormatResult(r))
		address += uint16(r.ByteCount)
	}

	return entries, nil
}

func decode(defs []*instructions.Definition, mem cpubus.Memory, address uint16) execution.Result {
	defn := defs[cpubus.Peek(mem, address)]

	r := execution.Result{
		Address:   address,
		Defn:      defn,
		ByteCount: defn.Bytes,
		Cycles:    defn.Cycles,
		Final:     true,
	}

	switch defn.Bytes {
	case 2:
		r.InstructionData = uint16(cpubus.Peek(mem, address+1))
	case 3:
		r.InstructionData = uint16(cpubus.Peek(mem, address+1)) | uint16(cpubus.Peek(mem, address+2))<<8
	}

	return r
}
