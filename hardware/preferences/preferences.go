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

package preferences

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/prefs"
)

// IllegalPolicy is the behaviour of the CPU when it encounters an opcode
// outside the documented instruction set.
type IllegalPolicy string

// List of valid IllegalPolicy values.
const (
	// treat as a single byte, single cycle NOP
	IllegalNOP IllegalPolicy = "NOP"

	// as IllegalNOP but add an entry to the log
	IllegalLog IllegalPolicy = "LOG"

	// jam the CPU. the PC does not advance until the next reset
	IllegalHalt IllegalPolicy = "HALT"
)

// Preferences defines and collates the preference values used by the CPU.
type Preferences struct {
	dsk *prefs.Disk

	// what to do with undocumented opcodes. one of the IllegalPolicy values
	IllegalOpcodes prefs.String

	// the break flag does not exist in the CPU. when the status register is
	// pulled from the stack (PLP and RTI) the break flag is cleared and the
	// unused flag is set. if PLPMask is false then the pulled value is loaded
	// unchanged, except for the unused flag which is always set
	PLPMask prefs.Bool

	// the 2A03 has its decimal mode circuitry disconnected. the D flag can be
	// set and cleared but has no effect on ADC and SBC unless DecimalMode is
	// true
	DecimalMode prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The path is the preferences file, which need not exist.
// An empty path means the preferences are not backed by a file but can
// still be set from the command line.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.IllegalOpcodes.SetHookPre(func(v prefs.Value) error {
		switch IllegalPolicy(strings.ToUpper(v.(string))) {
		case IllegalNOP, IllegalLog, IllegalHalt:
			return nil
		}
		return fmt.Errorf("unknown illegal opcode policy (%v)", v)
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.illegalOpcodes", &p.IllegalOpcodes)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.plpMask", &p.PLPMask)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.decimalMode", &p.DecimalMode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.IllegalOpcodes.Set(string(IllegalNOP))
	_ = p.PLPMask.Set(true)
	_ = p.DecimalMode.Set(false)
}

// Set the preference value identified by key. The key is the same as used in
// the preferences file, for example "cpu.plpMask".
func (p *Preferences) Set(key string, value string) error {
	var v interface{ Set(prefs.Value) error }

	switch key {
	case "cpu.illegalOpcodes":
		v = &p.IllegalOpcodes
	case "cpu.plpMask":
		v = &p.PLPMask
	case "cpu.decimalMode":
		v = &p.DecimalMode
	default:
		return fmt.Errorf("unknown preference (%s)", key)
	}

	return v.Set(value)
}

// Illegal returns the current illegal opcode policy.
func (p *Preferences) Illegal() IllegalPolicy {
	return IllegalPolicy(strings.ToUpper(p.IllegalOpcodes.String()))
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
