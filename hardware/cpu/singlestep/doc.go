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

// Package singlestep runs single instruction test cases against the CPU. The
// test cases are in the JSON format used by the SingleStepTests project. Each
// file holds an array of cases and each case describes the state of the CPU
// and memory before and after the execution of one instruction, along with
// the bus activity of every cycle.
//
// Only the number of cycles is compared, not the bus activity itself. The
// break and unused bits of the status register are not compared.
//
// Files are run concurrently. Files with the extension .gz are decompressed
// on the fly.
package singlestep
