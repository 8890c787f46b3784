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

package terminal

import (
	"strings"
)

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input has
	// been "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information as a result of an error. errors can be generated by the
	// emulation or the monitor
	StyleError

	// disassembly output of the CPU
	StyleCPUStep

	// information as a result of a command
	StyleFeedback

	// information from the log
	StyleLog
)

// Prompt specifies the prompt text.
type Prompt struct {
	Content string
}

// String returns the prompt with standard decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ] >> ")
	return s.String()
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input with the line ending removed.
	// Returns io.EOF when there is no more input.
	TermRead(prompt Prompt) (string, error)

	// IsRealTerminal returns true if the input is connected to a real
	// terminal.
	IsRealTerminal() bool
}

// KeyInput is implemented by terminals that can read single keypresses
// without waiting for a complete line.
type KeyInput interface {
	TermReadKey() (byte, error)
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
