package cpu

import "fmt"

type regKind uint8

const (
	kindNone regKind = iota
	kindA
	kindB
	kindC
	kindD
	kindE
	kindH
	kindL
	kindBC
	kindDE
	kindHL
	kindSP
	kindAF
	kindPC
	kindConst8
	kindConst16
)

// RegCode selects an instruction operand. It is one of the 8-bit registers,
// one of the 16-bit register views, AF, PC, or an immediate payload built
// with Const8 or Const16. In 8-bit operations BC, DE and HL refer to the
// byte they point at.
//
// Every CPU operation accepts only a narrow subset of RegCodes; anything
// else panics with a *UsageError.
type RegCode struct {
	kind  regKind
	value uint16
}

var (
	A  = RegCode{kind: kindA}
	B  = RegCode{kind: kindB}
	C  = RegCode{kind: kindC}
	D  = RegCode{kind: kindD}
	E  = RegCode{kind: kindE}
	H  = RegCode{kind: kindH}
	L  = RegCode{kind: kindL}
	BC = RegCode{kind: kindBC}
	DE = RegCode{kind: kindDE}
	HL = RegCode{kind: kindHL}
	SP = RegCode{kind: kindSP}
	AF = RegCode{kind: kindAF}
	PC = RegCode{kind: kindPC}
)

// Const8 returns an 8-bit immediate operand.
func Const8(value uint8) RegCode {
	return RegCode{kind: kindConst8, value: uint16(value)}
}

// Const16 returns a 16-bit immediate operand, used both for values and
// for absolute addresses.
func Const16(value uint16) RegCode {
	return RegCode{kind: kindConst16, value: value}
}

// Value returns the payload of an immediate operand and false for every
// other RegCode.
func (r RegCode) Value() (uint16, bool) {
	if r.kind == kindConst8 || r.kind == kindConst16 {
		return r.value, true
	}
	return 0, false
}

var regNames = [...]string{
	kindNone: "?",
	kindA:    "A",
	kindB:    "B",
	kindC:    "C",
	kindD:    "D",
	kindE:    "E",
	kindH:    "H",
	kindL:    "L",
	kindBC:   "BC",
	kindDE:   "DE",
	kindHL:   "HL",
	kindSP:   "SP",
	kindAF:   "AF",
	kindPC:   "PC",
}

func (r RegCode) String() string {
	switch r.kind {
	case kindConst8:
		return fmt.Sprintf("$%02X", r.value)
	case kindConst16:
		return fmt.Sprintf("$%04X", r.value)
	}
	if int(r.kind) < len(regNames) {
		return regNames[r.kind]
	}
	return "?"
}

// operand8 renders r as it appears in an 8-bit instruction, with register
// pairs and addresses shown as memory references.
func operand8(r RegCode) string {
	switch r.kind {
	case kindBC, kindDE, kindHL:
		return "(" + r.String() + ")"
	case kindConst16:
		return fmt.Sprintf("($%04X)", r.value)
	}
	return r.String()
}

// CondCode is the flag condition attached to conditional jumps, calls and
// returns.
type CondCode uint8

const (
	Always CondCode = iota
	NotZero
	Zero
	NotCarry
	Carry
)

func (cc CondCode) String() string {
	switch cc {
	case NotZero:
		return "NZ"
	case Zero:
		return "Z"
	case NotCarry:
		return "NC"
	case Carry:
		return "C"
	}
	return ""
}

// registerIndex maps the 3-bit register field used throughout the opcode
// map onto operands, (HL) sitting at index 6.
var registerIndex = [8]RegCode{B, C, D, E, H, L, HL, A}

// pairIndex maps the 2-bit register pair field of the 16-bit load and
// arithmetic opcodes.
var pairIndex = [4]RegCode{BC, DE, HL, SP}

// stackIndex maps the 2-bit register pair field of PUSH and POP.
var stackIndex = [4]RegCode{BC, DE, HL, AF}

// conditionIndex maps the 2-bit condition field of JR, JP, CALL and RET.
var conditionIndex = [4]CondCode{NotZero, Zero, NotCarry, Carry}
