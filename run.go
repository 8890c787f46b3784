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

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/famicore/famicore/debugger/script"
	"github.com/famicore/famicore/disassembly"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/execution"
)

// how often the context is checked for cancellation, in instructions
const cancelCheck = 4096

// runner executes a program until it traps, halts or reaches the instruction
// limit.
type runner struct {
	mc  *cpu.CPU
	scr *script.Engine

	// zero means no limit
	max int

	// each step is written here if not nil
	trace io.Writer
}

type runSummary struct {
	reason       string
	instructions int
	cycles       int
}

func (s runSummary) String() string {
	return fmt.Sprintf("%s after %d instructions (%d cycles)", s.reason, s.instructions, s.cycles)
}

func (r *runner) run(ctx context.Context) (runSummary, error) {
	var s runSummary

	for r.max == 0 || s.instructions < r.max {
		if s.instructions%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				s.reason = "interrupted"
				return s, nil
			}
		}

		pc := r.mc.PC.Address()

		if r.scr != nil {
			stop, err := r.scr.Hook()
			if err != nil {
				s.reason = "script error"
				return s, err
			}
			if stop {
				s.reason = fmt.Sprintf("stopped by script at $%04X", pc)
				return s, nil
			}
		}

		s.cycles += r.mc.Step()
		s.instructions++

		if r.trace != nil {
			fmt.Fprintf(r.trace, "%s (%d cycles)\n", disassembly.FormatResult(r.mc.LastResult), r.mc.LastResult.Cycles)
		}

		if r.mc.Killed {
			s.reason = fmt.Sprintf("halted at $%04X", r.mc.PC.Address())
			return s, nil
		}

		if r.mc.LastResult.Interrupt == execution.NoInterrupt && r.mc.PC.Address() == pc {
			s.reason = fmt.Sprintf("trap at $%04X", pc)
			return s, nil
		}
	}

	s.reason = "instruction limit reached"
	return s, nil
}
