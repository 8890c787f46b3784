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

package execution

import (
	"github.com/famicore/famicore/curated"
)

// Sentinal error pattern for an invalid result.
const InvalidResult = "cpu: invalid result: %s"

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(InvalidResult, "execution not finalised")
	}

	if r.Interrupt != NoInterrupt {
		if r.Defn != nil {
			return curated.Errorf(InvalidResult, "interrupt with an instruction definition")
		}
		if r.Cycles != InterruptCycles {
			return curated.Errorf(InvalidResult, "wrong number of cycles for interrupt")
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf(InvalidResult, "no instruction definition")
	}

	if r.Halted {
		if !r.Defn.IsIllegal() {
			return curated.Errorf(InvalidResult, "halted on a documented instruction")
		}
		return nil
	}

	if r.PageCrossed && !r.Defn.AddressingMode.PageSensitive() && !r.Defn.IsBranch() {
		return curated.Errorf(InvalidResult, "unexpected page crossing")
	}

	if r.BranchTaken && !r.Defn.IsBranch() {
		return curated.Errorf(InvalidResult, "branch taken for a non-branch instruction")
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(InvalidResult, "unexpected number of bytes read during decode")
	}

	expected := r.Defn.Cycles
	switch {
	case r.Defn.IsBranch():
		if r.BranchTaken {
			expected++
			if r.PageCrossed {
				expected++
			}
		}
	case r.PageCrossed:
		expected += r.Defn.PageCycles
	}

	if r.Cycles != expected {
		return curated.Errorf(InvalidResult, "number of cycles wrong")
	}

	return nil
}
