package cpu

// CBPrefix introduces the second opcode table.
const CBPrefix = 0xCB

type decoder func(c *CPU) Instruction

// baseTable holds a decoder for every legal unprefixed opcode. Entries left
// nil are the opcodes that have no meaning on the LR35902, and the
// CB prefix, which Fetch handles itself.
var baseTable [256]decoder

// fixed returns a decoder for an instruction without operands.
func fixed(instr Instruction) decoder {
	return func(*CPU) Instruction { return instr }
}

// aluOps maps the 3-bit operation field shared by 0x80-0xBF and the
// immediate ALU opcodes.
var aluOps = [8]func(RegCode) Instruction{
	func(r RegCode) Instruction { return Add8{r} },
	func(r RegCode) Instruction { return AddCarry{r} },
	func(r RegCode) Instruction { return Sub{r} },
	func(r RegCode) Instruction { return SubCarry{r} },
	func(r RegCode) Instruction { return And{r} },
	func(r RegCode) Instruction { return Xor{r} },
	func(r RegCode) Instruction { return Or{r} },
	func(r RegCode) Instruction { return Compare{r} },
}

func init() {
	// 0x00-0x3F
	baseTable[0x00] = fixed(Nop{})
	baseTable[0x10] = func(c *CPU) Instruction {
		// STOP is followed by a padding byte
		c.readOperand()
		return Stop{}
	}
	baseTable[0x08] = func(c *CPU) Instruction {
		return Load16{Const16(c.readOperand16()), SP}
	}
	baseTable[0x18] = func(c *CPU) Instruction {
		return JumpRelative{Always, int8(c.readOperand())}
	}
	for i, cc := range conditionIndex {
		cc := cc
		baseTable[0x20+i*8] = func(c *CPU) Instruction {
			return JumpRelative{cc, int8(c.readOperand())}
		}
	}
	for i, pair := range pairIndex {
		pair := pair
		base := i << 4
		baseTable[base|0x01] = func(c *CPU) Instruction {
			return Load16{pair, Const16(c.readOperand16())}
		}
		baseTable[base|0x03] = fixed(Increment16{pair})
		baseTable[base|0x09] = fixed(Add16{pair})
		baseTable[base|0x0B] = fixed(Decrement16{pair})
	}
	baseTable[0x02] = fixed(Load8{BC, A})
	baseTable[0x12] = fixed(Load8{DE, A})
	baseTable[0x22] = fixed(LoadIncrement{HL, A})
	baseTable[0x32] = fixed(LoadDecrement{HL, A})
	baseTable[0x0A] = fixed(Load8{A, BC})
	baseTable[0x1A] = fixed(Load8{A, DE})
	baseTable[0x2A] = fixed(LoadIncrement{A, HL})
	baseTable[0x3A] = fixed(LoadDecrement{A, HL})
	for i, r := range registerIndex {
		r := r
		baseTable[i<<3|0x04] = fixed(Increment8{r})
		baseTable[i<<3|0x05] = fixed(Decrement8{r})
		baseTable[i<<3|0x06] = func(c *CPU) Instruction {
			return Load8{r, Const8(c.readOperand())}
		}
	}
	baseTable[0x07] = fixed(RotateLeftA{})
	baseTable[0x0F] = fixed(RotateRightA{})
	baseTable[0x17] = fixed(RotateLeftCarryA{})
	baseTable[0x1F] = fixed(RotateRightCarryA{})
	baseTable[0x27] = fixed(DecimalAdjust{})
	baseTable[0x2F] = fixed(Complement{})
	baseTable[0x37] = fixed(SetCarryFlag{})
	baseTable[0x3F] = fixed(ComplementCarryFlag{})

	// 0x40-0xBF
	for opcode := 0x40; opcode < 0x80; opcode++ {
		baseTable[opcode] = fixed(Load8{registerIndex[(opcode>>3)&7], registerIndex[opcode&7]})
	}
	baseTable[0x76] = fixed(Halt{})
	for opcode := 0x80; opcode < 0xC0; opcode++ {
		baseTable[opcode] = fixed(aluOps[(opcode>>3)&7](registerIndex[opcode&7]))
	}

	// 0xC0-0xFF
	for i, cc := range conditionIndex {
		cc := cc
		base := 0xC0 + i*8
		baseTable[base] = fixed(Return{cc})
		baseTable[base|0x02] = func(c *CPU) Instruction {
			return Jump{cc, c.readOperand16()}
		}
		baseTable[base|0x04] = func(c *CPU) Instruction {
			return Call{cc, c.readOperand16()}
		}
	}
	for i := range stackIndex {
		baseTable[0xC1+i<<4] = fixed(Pop{stackIndex[i]})
		baseTable[0xC5+i<<4] = fixed(Push{stackIndex[i]})
	}
	for i, op := range aluOps {
		op := op
		baseTable[0xC6+i*8] = func(c *CPU) Instruction {
			return op(Const8(c.readOperand()))
		}
		baseTable[0xC7+i*8] = fixed(Restart{uint16(i * 8)})
	}
	baseTable[0xC3] = func(c *CPU) Instruction {
		return Jump{Always, c.readOperand16()}
	}
	baseTable[0xCD] = func(c *CPU) Instruction {
		return Call{Always, c.readOperand16()}
	}
	baseTable[0xC9] = fixed(Return{Always})
	baseTable[0xD9] = fixed(ReturnInterrupt{})
	baseTable[0xE9] = fixed(JumpHL{})
	baseTable[0xF9] = fixed(Load16{SP, HL})
	baseTable[0xE0] = func(c *CPU) Instruction {
		return LoadHigh{Const8(c.readOperand()), A}
	}
	baseTable[0xF0] = func(c *CPU) Instruction {
		return LoadHigh{A, Const8(c.readOperand())}
	}
	baseTable[0xE2] = fixed(LoadHigh{C, A})
	baseTable[0xF2] = fixed(LoadHigh{A, C})
	baseTable[0xEA] = func(c *CPU) Instruction {
		return LoadHigh{Const16(c.readOperand16()), A}
	}
	baseTable[0xFA] = func(c *CPU) Instruction {
		return LoadHigh{A, Const16(c.readOperand16())}
	}
	baseTable[0xE8] = func(c *CPU) Instruction {
		return AddSP{int8(c.readOperand())}
	}
	baseTable[0xF8] = func(c *CPU) Instruction {
		return LoadHLSP{int8(c.readOperand())}
	}
	baseTable[0xF3] = fixed(DisableInterrupts{})
	baseTable[0xFB] = fixed(EnableInterrupts{})
}

// Fetch decodes the instruction at PC and advances PC past it and its
// operands. Fetching one of the eleven unused opcodes panics with an
// *OpcodeError; PC is left pointing past the offending byte.
func (c *CPU) Fetch() Instruction {
	pc := c.PC
	opcode := c.readOperand()
	if opcode == CBPrefix {
		return decodeCB(c.readOperand())
	}
	decode := baseTable[opcode]
	if decode == nil {
		panic(&OpcodeError{Opcode: opcode, PC: pc})
	}
	return decode(c)
}

// Legal reports whether opcode has a meaning in the unprefixed table. The
// CB prefix is legal.
func Legal(opcode uint8) bool {
	return opcode == CBPrefix || baseTable[opcode] != nil
}
