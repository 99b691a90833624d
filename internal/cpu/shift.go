package cpu

import "github.com/thelolagemann/lr35902/pkg/bits"

// ShiftLeft shifts the target left by one bit. Bit 7 moves into the carry
// flag and bit 0 is reset.
//
//	SLA n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) ShiftLeft(target RegCode) {
	c.modify8("ShiftLeft", target, func(n uint8) uint8 {
		computed := n << 1
		c.setFlags(computed == 0, false, false, bits.Test(n, 7))
		return computed
	})
}

// ShiftRightArithmetic shifts the target right by one bit. Bit 0 moves into
// the carry flag and the most significant bit does not change.
//
//	SRA n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) ShiftRightArithmetic(target RegCode) {
	c.modify8("ShiftRightArithmetic", target, func(n uint8) uint8 {
		computed := n>>1 | n&0x80
		c.setFlags(computed == 0, false, false, bits.Test(n, 0))
		return computed
	})
}

// ShiftRightLogical shifts the target right by one bit. Bit 0 moves into
// the carry flag and bit 7 is reset.
//
//	SRL n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) ShiftRightLogical(target RegCode) {
	c.modify8("ShiftRightLogical", target, func(n uint8) uint8 {
		computed := n >> 1
		c.setFlags(computed == 0, false, false, bits.Test(n, 0))
		return computed
	})
}
