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

// Package easyterm implements the Terminal interface for the monitor using
// "github.com/pkg/term". In addition to line input it can read single
// keypresses by putting the terminal into cbreak mode.
package easyterm

import (
	"bufio"
	"fmt"
	"strings"
	"sync"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/debugger/terminal"
	"github.com/pkg/term"
)

// Device is the terminal device opened by Initialise().
const Device = "/dev/tty"

// Sentinal error patterns.
const (
	TermError = "easyterm: %v"
)

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3  // end-of-text character
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
)

// EasyTerminal is a terminal implementation that can switch between canonical
// and cbreak modes.
type EasyTerminal struct {
	tty      *term.Term
	reader   *bufio.Reader
	silenced bool

	// CleanUp() may be called from a signal handler
	mu sync.Mutex
}

// Initialise perfoms any setting up required for the terminal.
func (et *EasyTerminal) Initialise() error {
	var err error

	et.tty, err = term.Open(Device)
	if err != nil {
		return curated.Errorf(TermError, err)
	}
	et.reader = bufio.NewReader(et.tty)

	return nil
}

// CleanUp returns the terminal to canonical mode and closes the device.
func (et *EasyTerminal) CleanUp() {
	et.mu.Lock()
	defer et.mu.Unlock()

	if et.tty == nil {
		return
	}
	_ = et.tty.Restore()
	_ = et.tty.Close()
	et.tty = nil
}

// Silence implements the terminal.Terminal interface.
func (et *EasyTerminal) Silence(silenced bool) {
	et.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (et *EasyTerminal) TermPrintLine(style terminal.Style, s string) {
	if et.silenced && style != terminal.StyleError {
		return
	}

	switch style {
	case terminal.StyleEcho:
		return
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	case terminal.StyleHelp:
		s = fmt.Sprintf("  %s", s)
	}

	et.tty.Write([]byte(s))
	et.tty.Write([]byte("\r\n"))
}

// TermRead implements the terminal.Input interface. The terminal is in
// canonical mode for the duration of the read.
func (et *EasyTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if err := et.tty.Restore(); err != nil {
		return "", curated.Errorf(TermError, err)
	}

	if !et.silenced {
		et.tty.Write([]byte(prompt.String()))
	}

	s, err := et.reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// TermReadKey implements the terminal.KeyInput interface. The terminal is put
// into cbreak mode and restored once the key has been read.
func (et *EasyTerminal) TermReadKey() (byte, error) {
	if err := et.tty.SetCbreak(); err != nil {
		return 0, curated.Errorf(TermError, err)
	}
	defer et.tty.Restore()

	return et.reader.ReadByte()
}

// IsRealTerminal implements the terminal.Input interface.
func (et *EasyTerminal) IsRealTerminal() bool {
	return true
}
