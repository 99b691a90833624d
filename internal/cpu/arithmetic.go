package cpu

// Increment8 adds one to the target, wrapping from 0xFF to 0x00.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) Increment8(target RegCode) {
	c.modify8("Increment8", target, func(value uint8) uint8 {
		incremented := value + 1
		c.setFlags(incremented == 0, false, value&0xF == 0xF, c.AF.Carry())
		return incremented
	})
}

// Decrement8 subtracts one from the target, wrapping from 0x00 to 0xFF.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) Decrement8(target RegCode) {
	c.modify8("Decrement8", target, func(value uint8) uint8 {
		decremented := value - 1
		c.setFlags(decremented == 0, true, value&0xF == 0x0, c.AF.Carry())
		return decremented
	})
}

// register16 returns the storage for BC, DE, HL or SP.
func (c *CPU) register16(op string, r RegCode) (get func() uint16, set func(uint16)) {
	switch r.kind {
	case kindBC:
		return c.BC.Uint16, c.BC.SetUint16
	case kindDE:
		return c.DE.Uint16, c.DE.SetUint16
	case kindHL:
		return c.HL.Uint16, c.HL.SetUint16
	case kindSP:
		return func() uint16 { return c.SP }, func(v uint16) { c.SP = v }
	}
	panic(invalidOperand(op, r))
}

// Increment16 adds one to a 16-bit register, wrapping at 0xFFFF.
//
//	INC nn
//	nn = BC, DE, HL, SP
//
// Flags affected: none.
func (c *CPU) Increment16(target RegCode) {
	get, set := c.register16("Increment16", target)
	set(get() + 1)
}

// Decrement16 subtracts one from a 16-bit register, wrapping at 0x0000.
//
//	DEC nn
//	nn = BC, DE, HL, SP
//
// Flags affected: none.
func (c *CPU) Decrement16(target RegCode) {
	get, set := c.register16("Decrement16", target)
	set(get() - 1)
}

// add is a helper function for adding two bytes together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(a, b uint8, withCarry bool) uint8 {
	var carry uint16
	if withCarry {
		carry = uint16(c.carryBit())
	}
	sum := uint16(a) + uint16(b) + carry
	sumHalf := uint16(a&0xF) + uint16(b&0xF) + carry
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	return uint8(sum)
}

// sub is a helper function for subtracting b (and optionally the carry
// flag) from a and setting the flags accordingly.
//
// Used by:
//
//	SUB n
//	SBC A, n
//	CP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(a, b uint8, withCarry bool) uint8 {
	var carry int16
	if withCarry {
		carry = int16(c.carryBit())
	}
	diff := int16(a) - int16(b) - carry
	diffHalf := int16(a&0xF) - int16(b&0xF) - carry
	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	return uint8(diff)
}

// Add8 adds the source to the accumulator.
//
//	ADD A, n
//	n = A, B, C, D, E, H, L, (HL), d8
func (c *CPU) Add8(source RegCode) {
	c.AF.High = c.add(c.AF.High, c.source8("Add8", source), false)
}

// AddCarry adds the source and the carry flag to the accumulator.
//
//	ADC A, n
//	n = A, B, C, D, E, H, L, (HL), d8
func (c *CPU) AddCarry(source RegCode) {
	c.AF.High = c.add(c.AF.High, c.source8("AddCarry", source), true)
}

// Sub subtracts the source from the accumulator.
//
//	SUB n
//	n = A, B, C, D, E, H, L, (HL), d8
func (c *CPU) Sub(source RegCode) {
	c.AF.High = c.sub(c.AF.High, c.source8("Sub", source), false)
}

// SubCarry subtracts the source and the carry flag from the accumulator.
//
//	SBC A, n
//	n = A, B, C, D, E, H, L, (HL), d8
func (c *CPU) SubCarry(source RegCode) {
	c.AF.High = c.sub(c.AF.High, c.source8("SubCarry", source), true)
}

// Add16 adds a 16-bit register to HL.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) Add16(source RegCode) {
	get, _ := c.register16("Add16", source)
	hl, nn := c.HL.Uint16(), get()
	sum := uint32(hl) + uint32(nn)
	c.setFlags(c.AF.Zero(), false, (hl&0xFFF)+(nn&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus a signed offset, with the flags set from the
// unsigned addition of the low byte of SP and the offset.
//
// Used by:
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(offset int8) uint16 {
	sp := c.SP
	value := uint16(int16(offset))
	c.setFlags(false, false, (sp&0xF)+(value&0xF) > 0xF, (sp&0xFF)+(value&0xFF) > 0xFF)
	return sp + value
}

// AddSP adds a signed offset to SP.
//
//	ADD SP, e
//	e = 8-bit signed immediate value
func (c *CPU) AddSP(offset int8) {
	c.SP = c.addSPSigned(offset)
}

// DecimalAdjust corrects the accumulator to packed BCD after an addition
// or subtraction of two BCD values.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) DecimalAdjust() {
	a := c.AF.High
	carry := c.AF.Carry()
	subtract := c.AF.Subtract()
	if !subtract {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.AF.HalfCarry() || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.AF.HalfCarry() {
			a -= 0x06
		}
	}
	c.AF.High = a
	c.setFlags(a == 0, subtract, false, carry)
}
