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

// Package cpubus defines the contract between the CPU and the memory system
// of the console. The CPU only ever sees memory through the Memory interface.
// Mirroring, memory mapped registers and cartridge banking are the concern of
// the Memory implementation.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses cover the entire 16bit address space. There is no failure
// mode. An implementation that has nothing mapped at an address should
// return an open bus value for a read and ignore a write.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Peeker is implemented by memory systems that can return the value at an
// address without any side effects. Reading a register on a real bus can
// change state, so tools like the disassembler use Peek() when it is
// available.
type Peeker interface {
	Peek(address uint16) uint8
}

// Poker is the side effect free counterpart to Write().
type Poker interface {
	Poke(address uint16, data uint8)
}

// Peek reads from mem with Peek() if it is available, falling back to Read().
func Peek(mem Memory, address uint16) uint8 {
	if p, ok := mem.(Peeker); ok {
		return p.Peek(address)
	}
	return mem.Read(address)
}

// Vectors. Each vector is a little-endian address occupying two bytes.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK shares the IRQ vector.
	BRK = IRQ
)

// Stack is the page in which the stack resides.
const Stack = uint16(0x0100)
