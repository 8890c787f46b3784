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

package debugger

import "sort"

// list of commands understood by the monitor
const (
	cmdStep   = "STEP"
	cmdRun    = "RUN"
	cmdRegs   = "REGS"
	cmdMem    = "MEM"
	cmdPoke   = "POKE"
	cmdPC     = "PC"
	cmdDisasm = "DISASM"
	cmdReset  = "RESET"
	cmdNMI    = "NMI"
	cmdIRQ    = "IRQ"
	cmdBreak  = "BREAK"
	cmdDrop   = "DROP"
	cmdLog    = "LOG"
	cmdScript = "SCRIPT"
	cmdMemviz = "MEMVIZ"
	cmdPrefs  = "PREFS"
	cmdKeys   = "KEYS"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

var help = map[string]string{
	cmdStep:   "STEP [n]. Execute the next n instructions (default 1)",
	cmdRun:    "RUN [n]. Run until a trap, a breakpoint, a halt or n instructions",
	cmdRegs:   "REGS. Display the current state of the CPU",
	cmdMem:    "MEM addr [len]. Display memory",
	cmdPoke:   "POKE addr val [val...]. Modify memory starting at addr",
	cmdPC:     "PC addr. Set the program counter",
	cmdDisasm: "DISASM [addr] [n]. Disassemble n instructions (default 10) from addr (default PC)",
	cmdReset:  "RESET. Reset the CPU",
	cmdNMI:    "NMI. Request a non-maskable interrupt",
	cmdIRQ:    "IRQ ON|OFF. Request or withdraw a maskable interrupt",
	cmdBreak:  "BREAK [addr]. Halt RUN when the PC reaches addr. Lists breakpoints if addr is missing",
	cmdDrop:   "DROP addr. Remove breakpoint",
	cmdLog:    "LOG [n]. Display the last n log entries (default 10)",
	cmdScript: "SCRIPT file. Run a Lua script",
	cmdMemviz: "MEMVIZ file. Write a graphviz diagram of the CPU structure",
	cmdPrefs:  "PREFS [key value]. Display or change CPU preferences",
	cmdKeys:   "KEYS. Single key stepping (SPACE step, R registers, Q quit)",
	cmdHelp:   "HELP [command]. Display help",
	cmdQuit:   "QUIT. Leave the monitor",
}

// sorted list of command names
func commandList() []string {
	l := make([]string, 0, len(help))
	for k := range help {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}
