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

// Package ram implements a flat 64KiB memory for the CPU. There is no
// mirroring and no memory mapped registers. It is useful for testing the CPU
// and for running stand-alone 6502 programs.
package ram

import (
	"fmt"
	"io"
	"strings"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// Size of the address space.
const Size = 0x10000

// Sentinal error patterns.
const (
	LoadError = "ram: load: %v"
)

// RAM is a flat 64KiB memory. The zero value is ready to use.
type RAM struct {
	data [Size]uint8

	// the address and kind of the most recent bus access. useful for
	// watching the bus from the debugger
	LastAddress uint16
	LastWrite   bool
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Read implements the cpubus.Memory interface.
func (mem *RAM) Read(address uint16) uint8 {
	mem.LastAddress = address
	mem.LastWrite = false
	return mem.data[address]
}

// Write implements the cpubus.Memory interface.
func (mem *RAM) Write(address uint16, data uint8) {
	mem.LastAddress = address
	mem.LastWrite = true
	mem.data[address] = data
}

// Peek implements the cpubus.Peeker interface.
func (mem *RAM) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke implements the cpubus.Poker interface.
func (mem *RAM) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

// Put copies data into memory starting at origin. Returns the address
// following the last byte written. Data wraps at the end of memory.
func (mem *RAM) Put(origin uint16, data ...uint8) uint16 {
	for _, d := range data {
		mem.data[origin] = d
		origin++
	}
	return origin
}

// Load reads data from r into memory starting at origin. Returns the number
// of bytes loaded. It is an error for the data to extend beyond the end of
// memory.
func (mem *RAM) Load(r io.Reader, origin uint16) (int, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return 0, curated.Errorf(LoadError, err)
	}
	if int(origin)+len(d) > Size {
		return 0, curated.Errorf(LoadError, fmt.Errorf("%d bytes at %#04x exceeds memory", len(d), origin))
	}
	copy(mem.data[origin:], d)
	return len(d), nil
}

// SetVector writes a little-endian address to one of the vectors defined in
// the cpubus package.
func (mem *RAM) SetVector(vector uint16, address uint16) {
	mem.data[vector] = uint8(address)
	mem.data[vector+1] = uint8(address >> 8)
}

// Clear sets every byte of memory to zero.
func (mem *RAM) Clear() {
	mem.data = [Size]uint8{}
}

// Dump writes a hex dump of memory from origin, for length bytes. Each line
// contains 16 bytes.
func (mem *RAM) Dump(w io.Writer, origin uint16, length int) {
	s := strings.Builder{}
	for i := 0; i < length; i++ {
		a := origin + uint16(i)
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04x:", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", mem.data[a]))
	}
	if length > 0 {
		s.WriteString("\n")
	}
	io.WriteString(w, s.String())
}

// make sure RAM satisfies the CPU bus interfaces
var _ cpubus.Memory = (*RAM)(nil)
var _ cpubus.Peeker = (*RAM)(nil)
var _ cpubus.Poker = (*RAM)(nil)
