package cpu

// highPage is the base of the page addressed by LDH and LD (C).
const highPage = 0xFF00

// Load8 copies an 8-bit value from source to target.
//
//	LD r, r'
//	LD r, d8
//	LD r, (rr)
//	LD (rr), r
//	LD (HL), d8
//	r, r' = A, B, C, D, E, H, L
//	rr = BC, DE, HL
//
// Flags affected: none.
func (c *CPU) Load8(target, source RegCode) {
	var value uint8
	if reg := c.register8(source); reg != nil {
		value = *reg
	} else if address, ok := c.pointer(source); ok {
		value = c.Memory.Read(address)
	} else if source.kind == kindConst8 {
		value = uint8(source.value)
	} else {
		panic(invalidOperand("Load8", source))
	}

	if reg := c.register8(target); reg != nil {
		*reg = value
	} else if address, ok := c.pointer(target); ok {
		c.Memory.Write(address, value)
	} else {
		panic(invalidOperand("Load8", target))
	}
}

// Load16 copies a 16-bit value from source to target. When target is an
// immediate address the value is stored little-endian at that address.
//
//	LD rr, d16
//	LD SP, HL
//	LD (a16), SP
//	rr = BC, DE, HL, SP
//
// Flags affected: none.
func (c *CPU) Load16(target, source RegCode) {
	var value uint16
	switch source.kind {
	case kindBC:
		value = c.BC.Uint16()
	case kindDE:
		value = c.DE.Uint16()
	case kindHL:
		value = c.HL.Uint16()
	case kindSP:
		value = c.SP
	case kindConst16:
		value = source.value
	default:
		panic(invalidOperand("Load16", source))
	}

	switch target.kind {
	case kindBC:
		c.BC.SetUint16(value)
	case kindDE:
		c.DE.SetUint16(value)
	case kindHL:
		c.HL.SetUint16(value)
	case kindSP:
		c.SP = value
	case kindConst16:
		c.Memory.Write(target.value, uint8(value))
		c.Memory.Write(target.value+1, uint8(value>>8))
	default:
		panic(invalidOperand("Load16", target))
	}
}

// highAddress resolves the memory side of a LoadHigh.
func (c *CPU) highAddress(r RegCode) uint16 {
	switch r.kind {
	case kindConst8:
		return highPage + r.value
	case kindC:
		return highPage + uint16(c.BC.Low)
	case kindConst16:
		return r.value
	}
	panic(invalidOperand("LoadHigh", r))
}

// LoadHigh moves the accumulator to or from memory addressed either by an
// offset into the 0xFF00 page (an 8-bit immediate or register C) or by a
// 16-bit immediate address.
//
//	LDH (a8), A
//	LDH A, (a8)
//	LD (C), A
//	LD A, (C)
//	LD (a16), A
//	LD A, (a16)
//
// Flags affected: none.
func (c *CPU) LoadHigh(target, source RegCode) {
	switch {
	case source.kind == kindA:
		c.Memory.Write(c.highAddress(target), c.AF.High)
	case target.kind == kindA:
		c.AF.High = c.Memory.Read(c.highAddress(source))
	default:
		panic(invalidOperand("LoadHigh", target))
	}
}

// loadHL performs LD (HL), A or LD A, (HL) and then adds delta to HL.
func (c *CPU) loadHL(op string, target, source RegCode, delta uint16) {
	hl := c.HL.Uint16()
	switch {
	case target.kind == kindHL && source.kind == kindA:
		c.Memory.Write(hl, c.AF.High)
	case target.kind == kindA && source.kind == kindHL:
		c.AF.High = c.Memory.Read(hl)
	default:
		panic(invalidOperand(op, target))
	}
	c.HL.SetUint16(hl + delta)
}

// LoadIncrement loads through (HL) and then increments HL.
//
//	LD (HL+), A
//	LD A, (HL+)
//
// Flags affected: none.
func (c *CPU) LoadIncrement(target, source RegCode) {
	c.loadHL("LoadIncrement", target, source, 1)
}

// LoadDecrement loads through (HL) and then decrements HL.
//
//	LD (HL-), A
//	LD A, (HL-)
//
// Flags affected: none.
func (c *CPU) LoadDecrement(target, source RegCode) {
	c.loadHL("LoadDecrement", target, source, 0xFFFF)
}

// LoadHLSP loads SP plus a signed offset into HL.
//
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) LoadHLSP(offset int8) {
	c.HL.SetUint16(c.addSPSigned(offset))
}
