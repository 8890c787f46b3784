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

package registers_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/test"
)

func TestDecimalModeCarry(t *testing.T) {
	var rcarry bool

	r8 := registers.NewRegister(0, "test")

	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	test.ExpectFailure(t, rcarry)

	rcarry, _, _, _ = r8.AddDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x03))
	test.ExpectFailure(t, rcarry)

	// subtraction with carry (subtract value)
	r8.Load(0x09)
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x08))

	// subtraction without carry (subtract value and another 1)
	r8.SubtractDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x06))

	// tens boundary
	r8.Load(0x09)
	r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x10))
	r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x09))

	// hundreds boundary
	r8.Load(0x99)
	rcarry, _, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x00))
	test.ExpectSuccess(t, rcarry)

	rcarry, _, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x99))
	test.ExpectFailure(t, rcarry)

	r8.Load(0x58)
	r8.AddDecimal(0x46, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x05))
}

func TestDecimalModeZero(t *testing.T) {
	var zero bool

	r8 := registers.NewRegister(0x02, "test")
	_, zero, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectFailure(t, zero)
	_, zero, _, _ = r8.SubtractDecimal(1, true)
	test.ExpectSuccess(t, zero)

	// zero flag is taken from the binary result
	r8.Load(0x99)
	_, zero, _, _ = r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x00))
	test.ExpectFailure(t, zero)
}
