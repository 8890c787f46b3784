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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "script: %v"
)

// the name of the optional hook function defined by a script
const hookName = "onstep"

// Engine is a Lua interpreter bound to a CPU and its memory.
type Engine struct {
	L      *lua.LState
	mc     *cpu.CPU
	mem    cpubus.Memory
	output io.Writer
}

// NewEngine is the preferred method of initialisation for the Engine type.
// Script output is written to output.
func NewEngine(mc *cpu.CPU, mem cpubus.Memory, output io.Writer) *Engine {
	e := &Engine{
		L:      lua.NewState(),
		mc:     mc,
		mem:    mem,
		output: output,
	}

	for name, f := range map[string]lua.LGFunction{
		"step":   e.step,
		"peek":   e.peek,
		"poke":   e.poke,
		"reg":    e.reg,
		"setreg": e.setreg,
		"nmi":    e.nmi,
		"irq":    e.irq,
		"reset":  e.reset,
		"log":    e.log,
		"print":  e.print,
	} {
		e.L.SetGlobal(name, e.L.NewFunction(f))
	}

	return e
}

// Close the Lua interpreter. The Engine cannot be used after Close().
func (e *Engine) Close() {
	e.L.Close()
}

// RunFile runs the script in the named file.
func (e *Engine) RunFile(filename string) error {
	if err := e.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the script in src.
func (e *Engine) RunString(src string) error {
	if err := e.L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// HasHook returns true if the script has defined the onstep() function.
func (e *Engine) HasHook() bool {
	return e.L.GetGlobal(hookName).Type() == lua.LTFunction
}

// Hook calls the onstep() function with the address of the instruction about
// to be executed. Returns true if the function returned true, meaning that
// execution should stop before the instruction. Any other return value,
// including nil, lets execution continue.
func (e *Engine) Hook() (bool, error) {
	fn := e.L.GetGlobal(hookName)
	if fn.Type() != lua.LTFunction {
		return false, nil
	}

	err := e.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LNumber(e.mc.PC.Address()))
	if err != nil {
		return true, curated.Errorf(ScriptError, err)
	}

	ret := e.L.Get(-1)
	e.L.Pop(1)

	return ret == lua.LTrue, nil
}

func (e *Engine) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	var cycles int
	for i := 0; i < n; i++ {
		cycles += e.mc.Step()
	}
	L.Push(lua.LNumber(cycles))
	return 1
}

func (e *Engine) peek(L *lua.LState) int {
	addr := L.CheckInt(1)
	L.Push(lua.LNumber(cpubus.Peek(e.mem, uint16(addr))))
	return 1
}

func (e *Engine) poke(L *lua.LState) int {
	addr := L.CheckInt(1)
	v := L.CheckInt(2)
	if p, ok := e.mem.(cpubus.Poker); ok {
		p.Poke(uint16(addr), uint8(v))
	} else {
		e.mem.Write(uint16(addr), uint8(v))
	}
	return 0
}

func (e *Engine) reg(L *lua.LState) int {
	var v int
	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		v = int(e.mc.A.Value())
	case "X":
		v = int(e.mc.X.Value())
	case "Y":
		v = int(e.mc.Y.Value())
	case "SP":
		v = int(e.mc.SP.Value())
	case "PC":
		v = int(e.mc.PC.Address())
	case "SR":
		v = int(e.mc.Status.Value())
	default:
		L.ArgError(1, "unknown register")
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (e *Engine) setreg(L *lua.LState) int {
	v := L.CheckInt(2)
	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		e.mc.A.Load(uint8(v))
	case "X":
		e.mc.X.Load(uint8(v))
	case "Y":
		e.mc.Y.Load(uint8(v))
	case "SP":
		e.mc.SP.Load(uint8(v))
	case "PC":
		e.mc.PC.Load(uint16(v))
	case "SR":
		e.mc.Status.Load(uint8(v))
	default:
		L.ArgError(1, "unknown register")
	}
	return 0
}

func (e *Engine) nmi(L *lua.LState) int {
	e.mc.NMI()
	return 0
}

func (e *Engine) irq(L *lua.LState) int {
	e.mc.IRQ(L.CheckBool(1))
	return 0
}

func (e *Engine) reset(L *lua.LState) int {
	e.mc.Reset()
	return 0
}

func (e *Engine) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (e *Engine) print(L *lua.LState) int {
	if e.output == nil {
		return 0
	}
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.Get(i).String())
	}
	fmt.Fprintln(e.output, strings.Join(s, "\t"))
	return 0
}
