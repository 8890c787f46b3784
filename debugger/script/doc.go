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

// Package script runs Lua scripts against a running CPU. Scripts can step
// the CPU, inspect and change registers and memory, and raise interrupts.
//
// The following functions are available to a script:
//
//	step([n])            execute n instructions (default 1). returns cycles
//	peek(addr)           read memory without side effects
//	poke(addr, v)        write memory
//	reg(name)            value of register A, X, Y, SP, PC or SR
//	setreg(name, v)      load register
//	nmi()                request a non-maskable interrupt
//	irq(requested)       request or withdraw a maskable interrupt
//	reset()              reset the CPU
//	log(msg)             add an entry to the central log
//	print(...)           write to the script output
//
// A script that defines the global function onstep(pc) will have that
// function called by Engine.Hook() before every step of a RUN, with the
// address of the next instruction. Returning true stops the run before that
// instruction is executed.
package script
