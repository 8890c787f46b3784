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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/famicore/famicore/debugger/terminal"
	"github.com/famicore/famicore/debugger/terminal/plainterm"
	"github.com/famicore/famicore/test"
)

func TestPlainTerminal(t *testing.T) {
	in := strings.NewReader("step\r\nregs\nquit")
	out := &strings.Builder{}

	pt := plainterm.NewPlainTerminal(in, out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectEquality(t, pt.IsRealTerminal(), false)
	test.ExpectEquality(t, pt.Width(), 0)

	for _, expected := range []string{"step", "regs", "quit"} {
		s, err := pt.TermRead(terminal.Prompt{Content: "1000"})
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, expected)
	}

	_, err := pt.TermRead(terminal.Prompt{})
	test.ExpectEquality(t, err, io.EOF)

	// prompt is not written because input is not a real terminal
	test.ExpectEquality(t, out.String(), "")

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "bad")
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "quiet")
	pt.TermPrintLine(terminal.StyleError, "loud")
	test.ExpectEquality(t, out.String(), "hello\n* bad\n* loud\n")
}

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Content: " $1000 "}
	test.ExpectEquality(t, p.String(), "[ $1000 ] >> ")
}
