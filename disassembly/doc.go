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

// Package disassembly decodes 6502 machine code into a human readable
// form.
//
// Decode() and Range() read memory without side effects when the memory
// implements cpubus.Peeker. FormatResult() creates an Entry for an
// execution.Result that has already been produced by the CPU. This is how the
// monitor shows the instruction that has just been executed.
//
//	entries, err := disassembly.Range(mem, 0x1000, 10)
//	if err != nil {
//		return err
//	}
//	for _, e := range entries {
//		fmt.Println(e)
//	}
package disassembly
