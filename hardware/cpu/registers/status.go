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

package registers

import (
	"strings"
)

// Flag is a single bit in the Status register.
type Flag uint8

// List of valid Flag values.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	DecimalMode      Flag = 0x08
	Break            Flag = 0x10
	Unused           Flag = 0x20
	Overflow         Flag = 0x40
	Sign             Flag = 0x80
)

// Status is the special purpose register that stores the flags of the CPU.
// The zero value has every flag cleared, including the Unused flag.
type Status struct {
	value uint8
}

// NewStatus is the preferred method of initialisation for the Status
// register. Only the Unused flag is set.
func NewStatus() Status {
	return Status{value: uint8(Unused)}
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "SR"
}

// the order in which flags are shown by String()
var flagOrder = []struct {
	flag Flag
	r    rune
}{
	{Sign, 's'},
	{Overflow, 'v'},
	{Unused, '-'},
	{Break, 'b'},
	{DecimalMode, 'd'},
	{InterruptDisable, 'i'},
	{Zero, 'z'},
	{Carry, 'c'},
}

// String returns the flags in the order they appear in the register. An
// uppercase letter means the flag is set. The Unused flag is always shown as
// a dash.
func (sr Status) String() string {
	s := strings.Builder{}
	for _, f := range flagOrder {
		if f.flag != Unused && sr.Is(f.flag) {
			s.WriteRune(f.r - 'a' + 'A')
		} else {
			s.WriteRune(f.r)
		}
	}
	return s.String()
}

// Value returns the raw byte value of the register.
func (sr Status) Value() uint8 {
	return sr.value
}

// Load a raw byte value into the register.
func (sr *Status) Load(v uint8) {
	sr.value = v
}

// Is returns true if the flag is set.
func (sr Status) Is(f Flag) bool {
	return sr.value&uint8(f) == uint8(f)
}

// SetFlag sets or clears the flag according to cond.
func (sr *Status) SetFlag(f Flag, cond bool) {
	if cond {
		sr.value |= uint8(f)
	} else {
		sr.value &^= uint8(f)
	}
}

// SetZN sets the Zero and Sign flags according to the value.
func (sr *Status) SetZN(v uint8) {
	sr.SetFlag(Zero, v == 0)
	sr.SetFlag(Sign, v&0x80 == 0x80)
}

// Carry returns the state of the carry flag.
func (sr Status) Carry() bool { return sr.Is(Carry) }

// Zero returns the state of the zero flag.
func (sr Status) Zero() bool { return sr.Is(Zero) }

// InterruptDisable returns the state of the interrupt disable flag.
func (sr Status) InterruptDisable() bool { return sr.Is(InterruptDisable) }

// DecimalMode returns the state of the decimal mode flag.
func (sr Status) DecimalMode() bool { return sr.Is(DecimalMode) }

// Break returns the state of the break flag.
func (sr Status) Break() bool { return sr.Is(Break) }

// Overflow returns the state of the overflow flag.
func (sr Status) Overflow() bool { return sr.Is(Overflow) }

// Sign returns the state of the sign (negative) flag.
func (sr Status) Sign() bool { return sr.Is(Sign) }
