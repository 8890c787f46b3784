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

package instructions

// Operator identifies the operation performed by an instruction. Several
// opcodes share the same operator, differing only in addressing mode.
type Operator int

// List of valid operators. The documented instruction set has 56 operators.
// Every undocumented opcode has the Illegal operator.
const (
	Illegal Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	numOperators
)

// NumDocumented is the number of operators in the documented instruction set.
const NumDocumented = int(numOperators) - 1

var operatorNames = [numOperators]string{
	"???",
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
	"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

// lookup table from mnemonic to operator. built on package initialisation
var mnemonics map[string]Operator

func init() {
	mnemonics = make(map[string]Operator, numOperators)
	for i, s := range operatorNames {
		mnemonics[s] = Operator(i)
	}
}

// String returns the mnemonic for the operator.
func (o Operator) String() string {
	if o < 0 || o >= numOperators {
		return "unknown operator"
	}
	return operatorNames[o]
}

// IsBranch returns true if the operator is one of the eight conditional
// branch operators.
func (o Operator) IsBranch() bool {
	switch o {
	case Bcc, Bcs, Beq, Bmi, Bne, Bpl, Bvc, Bvs:
		return true
	}
	return false
}

// IsShift returns true if the operator is one of the shift or rotate
// operators. These are the only operators that can use the Accumulator
// addressing mode.
func (o Operator) IsShift() bool {
	switch o {
	case Asl, Lsr, Rol, Ror:
		return true
	}
	return false
}
