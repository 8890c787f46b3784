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

// AddDecimal adds value to register as though both are binary coded
// decimal. Returns new carry state, zero, overflow and sign information.
//
// The flags follow the NMOS 6502. The zero flag is taken from the binary sum.
// The sign and overflow flags are computed after the units have been adjusted
// but before the tens have been adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry bool, zero bool, overflow bool, sign bool) {
	var c int
	if carry {
		c = 1
	}

	zero = uint8(int(r.value)+int(val)+c) == 0

	units := int(r.value&0x0f) + int(val&0x0f) + c
	if units >= 0x0a {
		units = ((units + 0x06) & 0x0f) + 0x10
	}

	sum := int(r.value&0xf0) + int(val&0xf0) + units

	// intermediate result before the tens adjustment
	signed := int(int8(r.value&0xf0)) + int(int8(val&0xf0)) + units
	sign = sum&0x80 == 0x80
	overflow = signed < -128 || signed > 127

	if sum >= 0xa0 {
		sum += 0x60
	}

	r.value = uint8(sum)
	return sum >= 0x100, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal. Returns new carry state, zero, overflow and sign
// information.
//
// On the NMOS 6502 the flags for a decimal subtraction are the same as for a
// binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry bool, zero bool, overflow bool, sign bool) {
	bin := *r
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	var c int
	if carry {
		c = 1
	}

	units := int(r.value&0x0f) - int(val&0x0f) + c - 1
	if units < 0 {
		units = ((units - 0x06) & 0x0f) - 0x10
	}

	diff := int(r.value&0xf0) - int(val&0xf0) + units
	if diff < 0 {
		diff -= 0x60
	}

	r.value = uint8(diff)
	return rcarry, zero, overflow, sign
}
