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

package execution

// Bug describes a known quirk of the 6502 that was triggered by an
// instruction. The quirks are faithfully emulated and the Bug value is only
// for information.
type Bug string

// List of known bugs.
const (
	NoBug Bug = ""

	// JMP (indirect) with a pointer at the end of a page takes the high byte
	// of the target from the start of the same page.
	JmpIndirectAddressingBug Bug = "indirect addressing bug (JMP bug)"

	// (zp,X) pointer that wraps within page zero.
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"

	// (zp),Y pointer read from address 0xff. the high byte comes from 0x00.
	IndirectIndexedAddressingBug Bug = "indirect indexed addressing bug"

	// zp,X or zp,Y effective address that wraps within page zero.
	ZeroPageIndexBug Bug = "zero page index bug"
)
