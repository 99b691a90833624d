package cpu

// And performs a bitwise AND of the source and the accumulator.
//
//	AND n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) And(source RegCode) {
	c.AF.High &= c.source8("And", source)
	c.setFlags(c.AF.High == 0, false, true, false)
}

// Or performs a bitwise OR of the source and the accumulator.
//
//	OR n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) Or(source RegCode) {
	c.AF.High |= c.source8("Or", source)
	c.setFlags(c.AF.High == 0, false, false, false)
}

// Xor performs a bitwise XOR of the source and the accumulator.
//
//	XOR n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) Xor(source RegCode) {
	c.AF.High ^= c.source8("Xor", source)
	c.setFlags(c.AF.High == 0, false, false, false)
}

// Compare subtracts the source from the accumulator, discarding the
// result and keeping the flags.
//
//	CP n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// Flags affected:
//
//	Z - Set if result is zero. (A == n)
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow. (A < n)
func (c *CPU) Compare(source RegCode) {
	c.sub(c.AF.High, c.source8("Compare", source), false)
}

// Complement flips every bit of the accumulator.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) Complement() {
	c.AF.High = ^c.AF.High
	c.setFlags(c.AF.Zero(), true, true, c.AF.Carry())
}
