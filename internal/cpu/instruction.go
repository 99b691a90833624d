package cpu

import "fmt"

// Instruction is a single decoded LR35902 instruction. Every opcode class
// has its own type carrying exactly the operands it needs; the set of
// types is closed to this package. The String form of an Instruction is
// its assembler mnemonic.
type Instruction interface {
	fmt.Stringer
	instruction()
}

type (
	Nop               struct{}
	Stop              struct{}
	Halt              struct{}
	EnableInterrupts  struct{}
	DisableInterrupts struct{}

	JumpRelative struct {
		Cond   CondCode
		Offset int8
	}
	Jump struct {
		Cond    CondCode
		Address uint16
	}
	JumpHL struct{}
	Call   struct {
		Cond    CondCode
		Address uint16
	}
	Return          struct{ Cond CondCode }
	ReturnInterrupt struct{}
	Restart         struct{ Vector uint16 }
	Push            struct{ Source RegCode }
	Pop             struct{ Target RegCode }

	Load8         struct{ Target, Source RegCode }
	Load16        struct{ Target, Source RegCode }
	LoadHigh      struct{ Target, Source RegCode }
	LoadIncrement struct{ Target, Source RegCode }
	LoadDecrement struct{ Target, Source RegCode }
	LoadHLSP      struct{ Offset int8 }

	Increment8  struct{ Target RegCode }
	Decrement8  struct{ Target RegCode }
	Increment16 struct{ Target RegCode }
	Decrement16 struct{ Target RegCode }

	Add8     struct{ Source RegCode }
	AddCarry struct{ Source RegCode }
	Sub      struct{ Source RegCode }
	SubCarry struct{ Source RegCode }
	And      struct{ Source RegCode }
	Xor      struct{ Source RegCode }
	Or       struct{ Source RegCode }
	Compare  struct{ Source RegCode }
	Add16    struct{ Source RegCode }
	AddSP    struct{ Offset int8 }

	DecimalAdjust       struct{}
	Complement          struct{}
	SetCarryFlag        struct{}
	ComplementCarryFlag struct{}

	RotateLeftA       struct{}
	RotateLeftCarryA  struct{}
	RotateRightA      struct{}
	RotateRightCarryA struct{}

	// CB-prefixed
	RotateLeft           struct{ Target RegCode }
	RotateRight          struct{ Target RegCode }
	RotateLeftCarry      struct{ Target RegCode }
	RotateRightCarry     struct{ Target RegCode }
	ShiftLeft            struct{ Target RegCode }
	ShiftRightArithmetic struct{ Target RegCode }
	ShiftRightLogical    struct{ Target RegCode }
	Swap                 struct{ Target RegCode }
	BitCheckZero         struct {
		Bit    uint8
		Target RegCode
	}
	BitSet struct {
		Bit    uint8
		Target RegCode
	}
	BitReset struct {
		Bit    uint8
		Target RegCode
	}
)

func (Nop) instruction()                  {}
func (Stop) instruction()                 {}
func (Halt) instruction()                 {}
func (EnableInterrupts) instruction()     {}
func (DisableInterrupts) instruction()    {}
func (JumpRelative) instruction()         {}
func (Jump) instruction()                 {}
func (JumpHL) instruction()               {}
func (Call) instruction()                 {}
func (Return) instruction()               {}
func (ReturnInterrupt) instruction()      {}
func (Restart) instruction()              {}
func (Push) instruction()                 {}
func (Pop) instruction()                  {}
func (Load8) instruction()                {}
func (Load16) instruction()               {}
func (LoadHigh) instruction()             {}
func (LoadIncrement) instruction()        {}
func (LoadDecrement) instruction()        {}
func (LoadHLSP) instruction()             {}
func (Increment8) instruction()           {}
func (Decrement8) instruction()           {}
func (Increment16) instruction()          {}
func (Decrement16) instruction()          {}
func (Add8) instruction()                 {}
func (AddCarry) instruction()             {}
func (Sub) instruction()                  {}
func (SubCarry) instruction()             {}
func (And) instruction()                  {}
func (Xor) instruction()                  {}
func (Or) instruction()                   {}
func (Compare) instruction()              {}
func (Add16) instruction()                {}
func (AddSP) instruction()                {}
func (DecimalAdjust) instruction()        {}
func (Complement) instruction()           {}
func (SetCarryFlag) instruction()         {}
func (ComplementCarryFlag) instruction()  {}
func (RotateLeftA) instruction()          {}
func (RotateLeftCarryA) instruction()     {}
func (RotateRightA) instruction()         {}
func (RotateRightCarryA) instruction()    {}
func (RotateLeft) instruction()           {}
func (RotateRight) instruction()          {}
func (RotateLeftCarry) instruction()      {}
func (RotateRightCarry) instruction()     {}
func (ShiftLeft) instruction()            {}
func (ShiftRightArithmetic) instruction() {}
func (ShiftRightLogical) instruction()    {}
func (Swap) instruction()                 {}
func (BitCheckZero) instruction()         {}
func (BitSet) instruction()               {}
func (BitReset) instruction()             {}

// conditional renders a mnemonic with an optional condition prefixed to
// its operand.
func conditional(mnemonic string, cc CondCode, operand string) string {
	switch {
	case cc == Always && operand == "":
		return mnemonic
	case cc == Always:
		return mnemonic + " " + operand
	case operand == "":
		return mnemonic + " " + cc.String()
	}
	return mnemonic + " " + cc.String() + ", " + operand
}

// operand16 renders r as it appears in a 16-bit load, where an immediate
// target is an address.
func operand16(r RegCode, target bool) string {
	if target && r.kind == kindConst16 {
		return fmt.Sprintf("($%04X)", r.value)
	}
	return r.String()
}

// operandHigh renders the memory side of a LoadHigh.
func operandHigh(r RegCode) string {
	switch r.kind {
	case kindConst8:
		return fmt.Sprintf("($FF%02X)", r.value)
	case kindC:
		return "(C)"
	}
	return operand8(r)
}

func (Nop) String() string               { return "NOP" }
func (Stop) String() string              { return "STOP" }
func (Halt) String() string              { return "HALT" }
func (EnableInterrupts) String() string  { return "EI" }
func (DisableInterrupts) String() string { return "DI" }

func (i JumpRelative) String() string {
	return conditional("JR", i.Cond, fmt.Sprintf("%+d", i.Offset))
}

func (i Jump) String() string {
	return conditional("JP", i.Cond, fmt.Sprintf("$%04X", i.Address))
}

func (JumpHL) String() string { return "JP (HL)" }

func (i Call) String() string {
	return conditional("CALL", i.Cond, fmt.Sprintf("$%04X", i.Address))
}

func (i Return) String() string       { return conditional("RET", i.Cond, "") }
func (ReturnInterrupt) String() string { return "RETI" }
func (i Restart) String() string      { return fmt.Sprintf("RST $%02X", i.Vector) }
func (i Push) String() string         { return "PUSH " + i.Source.String() }
func (i Pop) String() string          { return "POP " + i.Target.String() }

func (i Load8) String() string {
	return "LD " + operand8(i.Target) + ", " + operand8(i.Source)
}

func (i Load16) String() string {
	return "LD " + operand16(i.Target, true) + ", " + operand16(i.Source, false)
}

func (i LoadHigh) String() string {
	mnemonic := "LD "
	if i.Target.kind == kindConst8 || i.Source.kind == kindConst8 {
		mnemonic = "LDH "
	}
	if i.Source.kind == kindA {
		return mnemonic + operandHigh(i.Target) + ", A"
	}
	return mnemonic + "A, " + operandHigh(i.Source)
}

func (i LoadIncrement) String() string {
	if i.Target.kind == kindHL {
		return "LD (HL+), " + i.Source.String()
	}
	return "LD " + i.Target.String() + ", (HL+)"
}

func (i LoadDecrement) String() string {
	if i.Target.kind == kindHL {
		return "LD (HL-), " + i.Source.String()
	}
	return "LD " + i.Target.String() + ", (HL-)"
}

func (i LoadHLSP) String() string { return fmt.Sprintf("LD HL, SP%+d", i.Offset) }

func (i Increment8) String() string  { return "INC " + operand8(i.Target) }
func (i Decrement8) String() string  { return "DEC " + operand8(i.Target) }
func (i Increment16) String() string { return "INC " + i.Target.String() }
func (i Decrement16) String() string { return "DEC " + i.Target.String() }

func (i Add8) String() string     { return "ADD A, " + operand8(i.Source) }
func (i AddCarry) String() string { return "ADC A, " + operand8(i.Source) }
func (i Sub) String() string      { return "SUB " + operand8(i.Source) }
func (i SubCarry) String() string { return "SBC A, " + operand8(i.Source) }
func (i And) String() string      { return "AND " + operand8(i.Source) }
func (i Xor) String() string      { return "XOR " + operand8(i.Source) }
func (i Or) String() string       { return "OR " + operand8(i.Source) }
func (i Compare) String() string  { return "CP " + operand8(i.Source) }
func (i Add16) String() string    { return "ADD HL, " + i.Source.String() }
func (i AddSP) String() string    { return fmt.Sprintf("ADD SP, %+d", i.Offset) }

func (DecimalAdjust) String() string       { return "DAA" }
func (Complement) String() string          { return "CPL" }
func (SetCarryFlag) String() string        { return "SCF" }
func (ComplementCarryFlag) String() string { return "CCF" }

func (RotateLeftA) String() string       { return "RLCA" }
func (RotateLeftCarryA) String() string  { return "RLA" }
func (RotateRightA) String() string      { return "RRCA" }
func (RotateRightCarryA) String() string { return "RRA" }

func (i RotateLeft) String() string           { return "RLC " + operand8(i.Target) }
func (i RotateRight) String() string          { return "RRC " + operand8(i.Target) }
func (i RotateLeftCarry) String() string      { return "RL " + operand8(i.Target) }
func (i RotateRightCarry) String() string     { return "RR " + operand8(i.Target) }
func (i ShiftLeft) String() string            { return "SLA " + operand8(i.Target) }
func (i ShiftRightArithmetic) String() string { return "SRA " + operand8(i.Target) }
func (i ShiftRightLogical) String() string    { return "SRL " + operand8(i.Target) }
func (i Swap) String() string                 { return "SWAP " + operand8(i.Target) }

func (i BitCheckZero) String() string {
	return fmt.Sprintf("BIT %d, %s", i.Bit, operand8(i.Target))
}

func (i BitSet) String() string {
	return fmt.Sprintf("SET %d, %s", i.Bit, operand8(i.Target))
}

func (i BitReset) String() string {
	return fmt.Sprintf("RES %d, %s", i.Bit, operand8(i.Target))
}
