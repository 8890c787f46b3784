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

package singlestep

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/ram"
)

// Sentinal error patterns.
const (
	LoadError = "singlestep: %s: %v"
)

// State is the state of the CPU and memory before or after a test case.
type State struct {
	PC  uint16     `json:"pc"`
	S   uint8      `json:"s"`
	A   uint8      `json:"a"`
	X   uint8      `json:"x"`
	Y   uint8      `json:"y"`
	P   uint8      `json:"p"`
	RAM [][]uint32 `json:"ram"` // [[address, value], ...]
}

// Case is a single test case.
type Case struct {
	Name    string `json:"name"`
	Initial State  `json:"initial"`
	Final   State  `json:"final"`

	// each entry is [address, value, "read"|"write"]. only the number of
	// entries is used
	Cycles []json.RawMessage `json:"cycles"`
}

// the bits of the status register that are not compared
const ignoredFlags = uint8(registers.Break) | uint8(registers.Unused)

// LoadFile reads the test cases in the named file.
func LoadFile(filename string) ([]Case, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, filename, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, curated.Errorf(LoadError, filename, err)
		}
		defer gz.Close()
		r = gz
	}

	var cases []Case
	if err := json.NewDecoder(r).Decode(&cases); err != nil {
		return nil, curated.Errorf(LoadError, filename, err)
	}

	return cases, nil
}

// apply the state to the CPU and memory
func (s State) apply(mc *cpu.CPU, mem *ram.RAM) {
	mc.PC.Load(s.PC)
	mc.SP.Load(s.S)
	mc.A.Load(s.A)
	mc.X.Load(s.X)
	mc.Y.Load(s.Y)
	mc.Status.Load(s.P)
	for _, m := range s.RAM {
		if len(m) == 2 {
			mem.Poke(uint16(m[0]), uint8(m[1]))
		}
	}
}

// clear the memory touched by the state
func (s State) clear(mem *ram.RAM) {
	for _, m := range s.RAM {
		if len(m) == 2 {
			mem.Poke(uint16(m[0]), 0)
		}
	}
}

// compare the CPU and memory with the state. returns a description of every
// difference
func (s State) compare(mc *cpu.CPU, mem *ram.RAM) []string {
	var diff []string

	reg := func(label string, got, expected uint16) {
		if got != expected {
			diff = append(diff, fmt.Sprintf("%s is %#02x, expected %#02x", label, got, expected))
		}
	}

	reg("PC", mc.PC.Address(), s.PC)
	reg("SP", uint16(mc.SP.Value()), uint16(s.S))
	reg("A", uint16(mc.A.Value()), uint16(s.A))
	reg("X", uint16(mc.X.Value()), uint16(s.X))
	reg("Y", uint16(mc.Y.Value()), uint16(s.Y))

	if (mc.Status.Value()^s.P)&^ignoredFlags != 0 {
		expected := registers.NewStatus()
		expected.Load(s.P)
		diff = append(diff, fmt.Sprintf("SR is %s, expected %s", mc.Status, expected))
	}

	for _, m := range s.RAM {
		if len(m) != 2 {
			continue
		}
		if v := mem.Peek(uint16(m[0])); v != uint8(m[1]) {
			diff = append(diff, fmt.Sprintf("RAM at %#04x is %#02x, expected %#02x", m[0], v, m[1]))
		}
	}

	return diff
}

// Run the test case using the CPU and memory. The memory is assumed to be
// clear and is cleared again before returning. Returns a description of
// every difference between the expected and actual outcome.
func (c Case) Run(mc *cpu.CPU, mem *ram.RAM) []string {
	defer c.Initial.clear(mem)
	defer c.Final.clear(mem)

	c.Initial.apply(mc, mem)
	cycles := mc.Step()

	diff := c.Final.compare(mc, mem)
	if cycles != len(c.Cycles) {
		diff = append(diff, fmt.Sprintf("took %d cycles, expected %d", cycles, len(c.Cycles)))
	}

	return diff
}

// Opcode returns the opcode of the instruction under test.
func (c Case) Opcode() (uint8, bool) {
	for _, m := range c.Initial.RAM {
		if len(m) == 2 && uint16(m[0]) == c.Initial.PC {
			return uint8(m[1]), true
		}
	}
	return 0, false
}
