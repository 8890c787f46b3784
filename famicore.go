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
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/debugger"
	"github.com/famicore/famicore/debugger/script"
	"github.com/famicore/famicore/debugger/terminal"
	"github.com/famicore/famicore/debugger/terminal/easyterm"
	"github.com/famicore/famicore/debugger/terminal/plainterm"
	"github.com/famicore/famicore/disassembly"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/singlestep"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/hardware/memory/ram"
	"github.com/famicore/famicore/hardware/preferences"
	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/modalflag"
	"github.com/famicore/famicore/prefs"
	"github.com/famicore/famicore/statsview"
	"github.com/famicore/famicore/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "TEST", "DISASM")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// interrupt signal cancels the context. modes that run for a long time
	// check the context regularly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "MONITOR":
		err = monitor(md)
	case "TEST":
		err = singleStepTests(ctx, md)
	case "DISASM":
		err = disasm(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		stop()
		os.Exit(20)
	}
}

// parse an address from the command line. a leading $ indicates hexadecimal.
// otherwise the usual Go prefixes are understood
func parseAddress(s string) (uint16, error) {
	var v uint64
	var err error
	if strings.HasPrefix(s, "$") {
		v, err = strconv.ParseUint(s[1:], 16, 16)
	} else {
		v, err = strconv.ParseUint(s, 0, 16)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid address (%s)", s)
	}
	return uint16(v), nil
}

// loader flags are shared by the RUN, MONITOR and DISASM modes
type loader struct {
	origin    *string
	entry     *string
	prefs     *string
	prefsFile *string
}

func addLoaderFlags(md *modalflag.Modes) loader {
	return loader{
		origin:    md.AddString("origin", "0x0000", "address at which the binary is loaded"),
		entry:     md.AddString("entry", "", "entry point. written to the reset vector"),
		prefs:     md.AddString("prefs", "", "preferences for this session (eg. \"cpu.illegalOpcodes::LOG; cpu.decimalMode::true\")"),
		prefsFile: md.AddString("prefsfile", "", "preferences file"),
	}
}

// load the binary named on the command line into a new RAM instance and
// create a CPU for it. the CPU is reset before returning
func (l loader) load(md *modalflag.Modes) (*cpu.CPU, *ram.RAM, error) {
	if len(md.RemainingArgs()) != 1 {
		return nil, nil, fmt.Errorf("a single binary file is required for %s mode", md)
	}

	origin, err := parseAddress(*l.origin)
	if err != nil {
		return nil, nil, err
	}

	mem := ram.NewRAM()

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	n, err := mem.Load(f, origin)
	if err != nil {
		return nil, nil, err
	}
	logger.Logf(logger.Allow, "famicore", "loaded %d bytes at %#04x", n, origin)

	if *l.entry != "" {
		entry, err := parseAddress(*l.entry)
		if err != nil {
			return nil, nil, err
		}
		mem.SetVector(cpubus.Reset, entry)
	}

	if *l.prefs != "" {
		prefs.PushCommandLineStack(*l.prefs)
		defer prefs.PopCommandLineStack()
	}

	p, err := preferences.NewPreferences(*l.prefsFile)
	if err != nil {
		return nil, nil, err
	}

	mc, err := cpu.NewCPU(mem)
	if err != nil {
		return nil, nil, err
	}
	mc.Prefs = p
	mc.Reset()

	return mc, mem, nil
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	l := addLoaderFlags(md)
	maxInstructions := md.AddInt("max", 0, "maximum number of instructions. zero means no limit")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	scriptFile := md.AddString("script", "", "Lua script to run before execution")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	trace := md.AddBool("trace", false, "print every instruction as it is executed")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		stop := statsview.Launch(os.Stdout, "")
		defer stop()
	}

	mc, mem, err := l.load(md)
	if err != nil {
		return err
	}

	r := &runner{
		mc:  mc,
		max: *maxInstructions,
	}

	if *trace {
		r.trace = os.Stdout
	}

	if *scriptFile != "" {
		r.scr = script.NewEngine(mc, mem, os.Stdout)
		defer r.scr.Close()
		if err := r.scr.RunFile(*scriptFile); err != nil {
			return err
		}
	}

	summary, err := r.run(ctx)
	fmt.Println(summary)
	fmt.Println(mc)

	return err
}

func monitor(md *modalflag.Modes) error {
	md.NewMode()

	l := addLoaderFlags(md)
	termType := md.AddString("term", "PLAIN", "terminal type: PLAIN, EASY")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	mc, mem, err := l.load(md)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "EASY":
		term = &easyterm.EasyTerminal{}
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	return debugger.NewMonitor(mc, mem, term).Run()
}

func singleStepTests(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	workers := md.AddInt("workers", 0, "number of files to run concurrently. zero means the number of CPUs")
	decimal := md.AddBool("decimal", true, "enable decimal arithmetic")
	maxFailures := md.AddInt("maxfailures", 10, "maximum number of failures to report per file. zero means no limit")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp("Arguments are JSON test files or directories containing them.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("test files required for %s mode", md)
	}

	report, err := singlestep.Run(ctx, md.RemainingArgs(), singlestep.Options{
		Workers:     *workers,
		DecimalMode: *decimal,
		MaxFailures: *maxFailures,
	})
	if err != nil {
		return err
	}

	report.Write(os.Stdout)
	if report.Passed+report.Skipped < report.Cases {
		return curated.Errorf("%d test cases failed", report.Cases-report.Passed-report.Skipped)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	l := addLoaderFlags(md)
	start := md.AddString("start", "", "address at which to start. defaults to the origin")
	count := md.AddInt("count", 0, "number of instructions. zero means to the end of the binary")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, mem, err := l.load(md)
	if err != nil {
		return err
	}

	origin, _ := parseAddress(*l.origin)
	address := origin
	if *start != "" {
		address, err = parseAddress(*start)
		if err != nil {
			return err
		}
	}

	fi, err := os.Stat(md.GetArg(0))
	if err != nil {
		return err
	}
	end := int(origin) + int(fi.Size())

	for n := 0; *count == 0 || n < *count; n++ {
		if *count == 0 && int(address) >= end {
			break
		}
		e, err := disassembly.Decode(mem, address)
		if err != nil {
			return err
		}
		fmt.Println(e)
		address += uint16(e.Result.ByteCount)

		// wrapped
		if address < e.Result.Address {
			break
		}
	}

	return nil
}
