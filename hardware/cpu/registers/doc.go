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

// Package registers implements the three types of register found in the
// 6502 family: the 8bit general purpose Register (used for A, X, Y and the
// stack pointer), the 16bit ProgramCounter and the Status register.
//
// The Register type implements the arithmetic and logical operations of the
// CPU. The operations return the carry and overflow states rather than
// setting the flags in the Status register directly. It is the
// responsibility of the CPU to update the Status register with the results.
//
// The Status register is an 8bit value with named accessors for each flag.
// It can be loaded from and converted to a raw byte at any time, which is how
// it is pushed to and pulled from the stack.
package registers
