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

// Package debugger implements an interactive monitor for the CPU. Features
// include:
//
//	- instruction stepping
//	- running to a trap, a breakpoint or an instruction limit
//	- memory peek, poke and dump
//	- disassembly
//	- interrupt requests
//	- Lua scripting
//
// Initialisation of the monitor is done with the NewMonitor() function
//
//	mon := debugger.NewMonitor(mc, mem, term)
//
// Interaction with the monitor is through a terminal. The Terminal interface
// is defined in the terminal package. The plainterm and easyterm
// sub-packages provide implementations.
//
// Once initialised, the monitor can be started with the Run() function. It
// returns when the QUIT command is given or when the terminal has no more
// input. Individual commands can also be executed with Execute().
package debugger
