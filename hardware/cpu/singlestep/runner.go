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

package singlestep

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/memory/ram"
	"github.com/famicore/famicore/logger"
	"golang.org/x/sync/errgroup"
)

// Options for a test run.
type Options struct {
	// the number of files to process concurrently. zero means the number of
	// CPUs
	Workers int

	// enable decimal arithmetic in the CPU
	DecimalMode bool

	// the maximum number of failures to record per file. zero means no limit
	MaxFailures int
}

// Failure describes a single failed test case.
type Failure struct {
	File   string
	Name   string
	Detail []string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s: %s", filepath.Base(f.File), f.Name, strings.Join(f.Detail, "; "))
}

// Report is the outcome of a test run.
type Report struct {
	Files    int
	Cases    int
	Passed   int
	Skipped  int
	Failures []Failure
}

func (r Report) String() string {
	return fmt.Sprintf("%d files: %d cases, %d passed, %d failed, %d skipped",
		r.Files, r.Cases, r.Passed, r.Cases-r.Passed-r.Skipped, r.Skipped)
}

// Write the report and every recorded failure to w.
func (r Report) Write(w io.Writer) {
	for _, f := range r.Failures {
		fmt.Fprintln(w, f)
	}
	fmt.Fprintln(w, r)
}

// expand directories into the test files they contain
func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, curated.Errorf(LoadError, p, err)
		}
		if !fi.IsDir() {
			files = append(files, p)
			continue
		}
		for _, pattern := range []string{"*.json", "*.json.gz"} {
			m, err := filepath.Glob(filepath.Join(p, pattern))
			if err != nil {
				return nil, curated.Errorf(LoadError, p, err)
			}
			files = append(files, m...)
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run the test cases in the files and directories named by paths. Test cases
// for undocumented opcodes are skipped.
func Run(ctx context.Context, paths []string, opts Options) (Report, error) {
	var report Report

	files, err := expand(paths)
	if err != nil {
		return report, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var crit sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, fn := range files {
		fn := fn
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := runFile(ctx, fn, opts)
			if err != nil {
				return err
			}
			logger.Logf(logger.Allow, "singlestep", "%s: %s", filepath.Base(fn), r)

			crit.Lock()
			defer crit.Unlock()
			report.Files++
			report.Cases += r.Cases
			report.Passed += r.Passed
			report.Skipped += r.Skipped
			report.Failures = append(report.Failures, r.Failures...)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	sort.SliceStable(report.Failures, func(i, j int) bool {
		return report.Failures[i].File < report.Failures[j].File
	})

	return report, nil
}

// run every case in a single file
func runFile(ctx context.Context, filename string, opts Options) (Report, error) {
	report := Report{Files: 1}

	cases, err := LoadFile(filename)
	if err != nil {
		return report, err
	}

	defs, err := instructions.GetDefinitions()
	if err != nil {
		return report, err
	}

	mem := ram.NewRAM()
	mc, err := cpu.NewCPU(mem)
	if err != nil {
		return report, err
	}
	if err := mc.Prefs.DecimalMode.Set(opts.DecimalMode); err != nil {
		return report, err
	}

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		report.Cases++

		if op, ok := c.Opcode(); !ok || defs[op].IsIllegal() {
			report.Skipped++
			continue
		}

		diff := c.Run(mc, mem)
		if len(diff) == 0 {
			report.Passed++
			continue
		}

		if opts.MaxFailures == 0 || len(report.Failures) < opts.MaxFailures {
			report.Failures = append(report.Failures, Failure{
				File:   filename,
				Name:   c.Name,
				Detail: diff,
			})
		}
	}

	return report, nil
}
