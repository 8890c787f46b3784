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

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/debugger/script"
	"github.com/famicore/famicore/debugger/terminal"
	"github.com/famicore/famicore/disassembly"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/logger"
)

// Sentinal error patterns.
const (
	MonitorError   = "monitor: %v"
	UnknownCommand = "monitor: unknown command (%s)"
	BadArgument    = "monitor: %s: %v"
)

// DefaultRunLimit is the number of instructions executed by RUN when no
// limit is given.
const DefaultRunLimit = 1000000

// Memory defines the operations required of the memory being monitored.
type Memory interface {
	cpubus.Memory
	cpubus.Peeker
	cpubus.Poker
	Dump(w io.Writer, origin uint16, length int)
}

// Monitor is an interactive command line interface to the CPU.
type Monitor struct {
	cpu  *cpu.CPU
	mem  Memory
	term terminal.Terminal

	// created on first use of the SCRIPT command
	scr *script.Engine

	breakpoints map[uint16]bool

	// running totals
	Instructions int
	Cycles       int

	// the number of instructions executed by RUN when no limit is given
	RunLimit int
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mc *cpu.CPU, mem Memory, term terminal.Terminal) *Monitor {
	return &Monitor{
		cpu:         mc,
		mem:         mem,
		term:        term,
		breakpoints: make(map[uint16]bool),
		RunLimit:    DefaultRunLimit,
	}
}

// Run the monitor until the QUIT command or the end of input.
func (mon *Monitor) Run() error {
	if err := mon.term.Initialise(); err != nil {
		return curated.Errorf(MonitorError, err)
	}
	defer mon.term.CleanUp()
	defer mon.closeScript()

	mon.printRegs()

	for {
		input, err := mon.term.TermRead(terminal.Prompt{Content: fmt.Sprintf("$%04X", mon.cpu.PC.Address())})
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf(MonitorError, err)
		}

		quit, err := mon.Execute(input)
		if err != nil {
			mon.term.TermPrintLine(terminal.StyleError, err.Error())
		}
		if quit {
			return nil
		}
	}
}

func (mon *Monitor) closeScript() {
	if mon.scr != nil {
		mon.scr.Close()
		mon.scr = nil
	}
}

// termWriter adapts terminal output to the io.Writer interface. Each complete
// line is sent to the terminal.
type termWriter struct {
	term  terminal.Output
	style terminal.Style
	buf   []byte
}

func (w *termWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := strings.IndexByte(string(w.buf), '\n')
		if i < 0 {
			break
		}
		w.term.TermPrintLine(w.style, string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (mon *Monitor) writer(style terminal.Style) io.Writer {
	return &termWriter{term: mon.term, style: style}
}

// parse an address or value. a leading $ indicates hexadecimal. otherwise
// the usual Go prefixes are understood
func parseNumber(s string, bits int) (uint64, error) {
	if strings.HasPrefix(s, "$") {
		return strconv.ParseUint(s[1:], 16, bits)
	}
	return strconv.ParseUint(s, 0, bits)
}

func parseAddress(s string) (uint16, error) {
	v, err := parseNumber(s, 16)
	return uint16(v), err
}

func parseCount(cmd string, args []string, idx int, def int) (int, error) {
	if len(args) <= idx {
		return def, nil
	}
	n, err := strconv.Atoi(args[idx])
	if err != nil || n < 1 {
		return 0, curated.Errorf(BadArgument, cmd, fmt.Sprintf("invalid count (%s)", args[idx]))
	}
	return n, nil
}

// Execute a single monitor command. Returns true if the monitor should quit.
func (mon *Monitor) Execute(input string) (bool, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return false, nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	mon.term.TermPrintLine(terminal.StyleEcho, strings.Join(append([]string{cmd}, args...), " "))

	switch cmd {
	case cmdQuit:
		return true, nil

	case cmdHelp:
		if len(args) > 0 {
			h, ok := help[strings.ToUpper(args[0])]
			if !ok {
				return false, curated.Errorf(UnknownCommand, args[0])
			}
			mon.term.TermPrintLine(terminal.StyleHelp, h)
			return false, nil
		}
		mon.term.TermPrintLine(terminal.StyleHelp, strings.Join(commandList(), " "))

	case cmdStep:
		n, err := parseCount(cmd, args, 0, 1)
		if err != nil {
			return false, err
		}
		for i := 0; i < n; i++ {
			mon.step()
			mon.printResult()
		}

	case cmdRun:
		n, err := parseCount(cmd, args, 0, mon.RunLimit)
		if err != nil {
			return false, err
		}
		reason, err := mon.run(n)
		mon.term.TermPrintLine(terminal.StyleFeedback, reason)
		mon.printRegs()
		if err != nil {
			return false, err
		}

	case cmdRegs:
		mon.printRegs()

	case cmdMem:
		if len(args) == 0 {
			return false, curated.Errorf(BadArgument, cmd, "address required")
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return false, curated.Errorf(BadArgument, cmd, err)
		}
		n, err := parseCount(cmd, args, 1, 16)
		if err != nil {
			return false, err
		}
		mon.mem.Dump(mon.writer(terminal.StyleFeedback), addr, n)

	case cmdPoke:
		if len(args) < 2 {
			return false, curated.Errorf(BadArgument, cmd, "address and value required")
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return false, curated.Errorf(BadArgument, cmd, err)
		}
		for _, a := range args[1:] {
			v, err := parseNumber(a, 8)
			if err != nil {
				return false, curated.Errorf(BadArgument, cmd, err)
			}
			mon.mem.Poke(addr, uint8(v))
			addr++
		}

	case cmdPC:
		if len(args) == 0 {
			return false, curated.Errorf(BadArgument, cmd, "address required")
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return false, curated.Errorf(BadArgument, cmd, err)
		}
		mon.cpu.PC.Load(addr)

	case cmdDisasm:
		addr := mon.cpu.PC.Address()
		if len(args) > 0 {
			var err error
			addr, err = parseAddress(args[0])
			if err != nil {
				return false, curated.Errorf(BadArgument, cmd, err)
			}
		}
		n, err := parseCount(cmd, args, 1, 10)
		if err != nil {
			return false, err
		}
		entries, err := disassembly.Range(mon.mem, addr, n)
		if err != nil {
			return false, err
		}
		for _, e := range entries {
			mon.term.TermPrintLine(terminal.StyleFeedback, e.String())
		}

	case cmdReset:
		mon.cpu.Reset()
		mon.printRegs()

	case cmdNMI:
		mon.cpu.NMI()

	case cmdIRQ:
		if len(args) == 0 {
			_, irq := mon.cpu.Pending()
			mon.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("IRQ pending: %v", irq))
			return false, nil
		}
		switch strings.ToUpper(args[0]) {
		case "ON":
			mon.cpu.IRQ(true)
		case "OFF":
			mon.cpu.IRQ(false)
		default:
			return false, curated.Errorf(BadArgument, cmd, "expected ON or OFF")
		}

	case cmdBreak:
		if len(args) == 0 {
			mon.listBreakpoints()
			return false, nil
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return false, curated.Errorf(BadArgument, cmd, err)
		}
		mon.breakpoints[addr] = true

	case cmdDrop:
		if len(args) == 0 {
			return false, curated.Errorf(BadArgument, cmd, "address required")
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return false, curated.Errorf(BadArgument, cmd, err)
		}
		if !mon.breakpoints[addr] {
			return false, curated.Errorf(BadArgument, cmd, fmt.Sprintf("no breakpoint at $%04X", addr))
		}
		delete(mon.breakpoints, addr)

	case cmdLog:
		n, err := parseCount(cmd, args, 0, 10)
		if err != nil {
			return false, err
		}
		logger.Tail(mon.writer(terminal.StyleLog), n)

	case cmdScript:
		if len(args) == 0 {
			return false, curated.Errorf(BadArgument, cmd, "filename required")
		}
		if mon.scr == nil {
			mon.scr = script.NewEngine(mon.cpu, mon.mem, mon.writer(terminal.StyleFeedback))
		}
		if err := mon.scr.RunFile(args[0]); err != nil {
			return false, err
		}

	case cmdMemviz:
		if len(args) == 0 {
			return false, curated.Errorf(BadArgument, cmd, "filename required")
		}
		if err := mon.memviz(args[0]); err != nil {
			return false, curated.Errorf(BadArgument, cmd, err)
		}

	case cmdPrefs:
		if len(args) == 0 {
			mon.writer(terminal.StyleFeedback).Write([]byte(mon.cpu.Prefs.String()))
			return false, nil
		}
		if len(args) < 2 {
			return false, curated.Errorf(BadArgument, cmd, "key and value required")
		}
		if err := mon.cpu.Prefs.Set(args[0], args[1]); err != nil {
			return false, curated.Errorf(BadArgument, cmd, err)
		}

	case cmdKeys:
		return mon.keys()

	default:
		return false, curated.Errorf(UnknownCommand, cmd)
	}

	return false, nil
}

// step the CPU once and update the running totals
func (mon *Monitor) step() int {
	cycles := mon.cpu.Step()
	mon.Instructions++
	mon.Cycles += cycles
	return cycles
}

// run until a stopping condition. returns the reason execution stopped
func (mon *Monitor) run(limit int) (string, error) {
	for i := 0; i < limit; i++ {
		pc := mon.cpu.PC.Address()

		if mon.scr != nil {
			stop, err := mon.scr.Hook()
			if err != nil {
				return "script error", err
			}
			if stop {
				return fmt.Sprintf("stopped by script at $%04X", pc), nil
			}
		}

		mon.step()

		if mon.cpu.Killed {
			return fmt.Sprintf("halted at $%04X", mon.cpu.PC.Address()), nil
		}

		if mon.cpu.LastResult.Interrupt == execution.NoInterrupt && mon.cpu.PC.Address() == pc {
			return fmt.Sprintf("trap at $%04X", pc), nil
		}

		if mon.breakpoints[mon.cpu.PC.Address()] {
			return fmt.Sprintf("breakpoint at $%04X", mon.cpu.PC.Address()), nil
		}
	}

	return fmt.Sprintf("instruction limit reached (%d)", limit), nil
}

func (mon *Monitor) printResult() {
	e := disassembly.FormatResult(mon.cpu.LastResult)
	mon.term.TermPrintLine(terminal.StyleCPUStep, fmt.Sprintf("%s (%d cycles)", e, mon.cpu.LastResult.Cycles))
}

func (mon *Monitor) printRegs() {
	mon.term.TermPrintLine(terminal.StyleFeedback, mon.cpu.String())
}

func (mon *Monitor) listBreakpoints() {
	if len(mon.breakpoints) == 0 {
		mon.term.TermPrintLine(terminal.StyleFeedback, "no breakpoints")
		return
	}

	l := make([]int, 0, len(mon.breakpoints))
	for a := range mon.breakpoints {
		l = append(l, int(a))
	}
	sort.Ints(l)

	for _, a := range l {
		mon.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("$%04X", a))
	}
}

// write a graphviz diagram of the CPU. the memory is not included
func (mon *Monitor) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	snapshot := mon.cpu.Snapshot()
	snapshot.Plumb(nil)
	memviz.Map(f, snapshot)

	return nil
}

// single key stepping. requires a terminal that implements KeyInput
func (mon *Monitor) keys() (bool, error) {
	ki, ok := mon.term.(terminal.KeyInput)
	if !ok {
		return false, curated.Errorf(MonitorError, "terminal does not support single key input")
	}

	mon.term.TermPrintLine(terminal.StyleHelp, help[cmdKeys])

	for {
		k, err := ki.TermReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, curated.Errorf(MonitorError, err)
		}

		switch k {
		case ' ', 's', 'S':
			mon.step()
			mon.printResult()
		case 'r', 'R':
			mon.printRegs()
		case 'q', 'Q', '\x1b', '\x03':
			return false, nil
		}
	}
}
