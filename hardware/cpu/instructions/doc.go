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

// Package instructions defines the instruction set of the 6502. Each of the
// 256 possible opcodes has a Definition, including the opcodes that are not
// part of the documented instruction set. Those are given the Illegal
// operator and it is up to the CPU to decide what to do with them.
//
// The table is built from instructions.csv, which is embedded in the
// package. The table is validated when it is built. A table that fails
// validation will be reported by GetDefinitions() and the CPU will refuse to
// be created. There is no need for the CPU to check the consistency of a
// definition while executing.
package instructions
