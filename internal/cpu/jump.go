package cpu

import "github.com/thelolagemann/lr35902/pkg/bits"

// pushStack pushes a 16-bit value onto the stack, high byte at the higher
// address.
func (c *CPU) pushStack(value uint16) {
	high, low := bits.Split16(value)
	c.SP--
	c.Memory.Write(c.SP, high)
	c.SP--
	c.Memory.Write(c.SP, low)
}

// popStack pops a 16-bit value from the stack.
func (c *CPU) popStack() uint16 {
	low := c.Memory.Read(c.SP)
	c.SP++
	high := c.Memory.Read(c.SP)
	c.SP++
	return bits.Join16(high, low)
}

// Push pushes a register pair onto the stack.
//
//	PUSH nn
//	nn = AF, BC, DE, HL, PC
//
// Flags affected: none.
func (c *CPU) Push(source RegCode) {
	switch source.kind {
	case kindAF:
		c.pushStack(c.AF.Uint16())
	case kindBC:
		c.pushStack(c.BC.Uint16())
	case kindDE:
		c.pushStack(c.DE.Uint16())
	case kindHL:
		c.pushStack(c.HL.Uint16())
	case kindPC:
		c.pushStack(c.PC)
	default:
		panic(invalidOperand("Push", source))
	}
}

// Pop pops two bytes off the stack into a register pair. Popping into AF
// discards the low nibble of the flag byte.
//
//	POP nn
//	nn = AF, BC, DE, HL, PC
//
// Flags affected: none, except POP AF which loads all of them.
func (c *CPU) Pop(target RegCode) {
	switch target.kind {
	case kindAF:
		c.AF.SetUint16(c.popStack())
		c.AF.Low &= 0xF0
	case kindBC:
		c.BC.SetUint16(c.popStack())
	case kindDE:
		c.DE.SetUint16(c.popStack())
	case kindHL:
		c.HL.SetUint16(c.popStack())
	case kindPC:
		c.PC = c.popStack()
	default:
		panic(invalidOperand("Pop", target))
	}
}

// JumpRelative adds a signed displacement to PC if cond holds. PC already
// points past the instruction.
//
//	JR cc, e
//	cc = NZ, Z, NC, C, or none
func (c *CPU) JumpRelative(cond CondCode, offset int8) {
	if c.condition(cond) {
		c.PC += uint16(int16(offset))
	}
}

// Jump sets PC to address if cond holds.
//
//	JP cc, nn
func (c *CPU) Jump(cond CondCode, address uint16) {
	if c.condition(cond) {
		c.PC = address
	}
}

// JumpHL sets PC to HL.
//
//	JP (HL)
func (c *CPU) JumpHL() {
	c.PC = c.HL.Uint16()
}

// Call pushes the address of the next instruction and jumps to address if
// cond holds.
//
//	CALL cc, nn
func (c *CPU) Call(cond CondCode, address uint16) {
	if c.condition(cond) {
		c.pushStack(c.PC)
		c.PC = address
	}
}

// Return pops PC off the stack if cond holds.
//
//	RET cc
func (c *CPU) Return(cond CondCode) {
	if c.condition(cond) {
		c.PC = c.popStack()
	}
}

// ReturnInterrupt pops PC off the stack and enables interrupts.
//
//	RETI
func (c *CPU) ReturnInterrupt() {
	c.PC = c.popStack()
	c.ime = true
}

// Restart pushes PC and jumps to one of the eight fixed vectors.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) Restart(address uint16) {
	if address > 0x38 || address%8 != 0 {
		panic(invalidOperand("Restart", Const16(address)))
	}
	c.pushStack(c.PC)
	c.PC = address
}
