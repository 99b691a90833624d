package cpu

import "github.com/thelolagemann/lr35902/pkg/bits"

// rotateLeft rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//	RLCA
//
// Flags affected:
//
//	Z - Set if result is zero (RLCA: reset).
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(n uint8, zero bool) uint8 {
	carry := bits.Val(n, 7)
	computed := n<<1 | carry
	c.setFlags(zero && computed == 0, false, false, carry == 1)
	return computed
}

// rotateRight rotates n right by 1 bit. The least significant bit is copied
// to both the carry flag and the most significant bit.
//
//	RRC n
//	RRCA
func (c *CPU) rotateRight(n uint8, zero bool) uint8 {
	carry := bits.Val(n, 0)
	computed := n>>1 | carry<<7
	c.setFlags(zero && computed == 0, false, false, carry == 1)
	return computed
}

// rotateLeftCarry rotates n left by 1 bit through the carry flag. The old
// carry flag becomes the least significant bit and bit 7 becomes the carry.
//
//	RL n
//	RLA
func (c *CPU) rotateLeftCarry(n uint8, zero bool) uint8 {
	carry := bits.Val(n, 7)
	computed := n<<1 | c.carryBit()
	c.setFlags(zero && computed == 0, false, false, carry == 1)
	return computed
}

// rotateRightCarry rotates n right by 1 bit through the carry flag. The
// old carry flag becomes the most significant bit and bit 0 becomes the
// carry.
//
//	RR n
//	RRA
func (c *CPU) rotateRightCarry(n uint8, zero bool) uint8 {
	carry := bits.Val(n, 0)
	computed := n>>1 | c.carryBit()<<7
	c.setFlags(zero && computed == 0, false, false, carry == 1)
	return computed
}

// RotateLeftA is RLCA: rotate A left, bit 7 into both carry and bit 0.
// The zero flag is always reset.
func (c *CPU) RotateLeftA() {
	c.AF.High = c.rotateLeft(c.AF.High, false)
}

// RotateLeftCarryA is RLA: rotate A left through the carry flag.
func (c *CPU) RotateLeftCarryA() {
	c.AF.High = c.rotateLeftCarry(c.AF.High, false)
}

// RotateRightA is RRCA: rotate A right, bit 0 into both carry and bit 7.
func (c *CPU) RotateRightA() {
	c.AF.High = c.rotateRight(c.AF.High, false)
}

// RotateRightCarryA is RRA: rotate A right through the carry flag.
func (c *CPU) RotateRightCarryA() {
	c.AF.High = c.rotateRightCarry(c.AF.High, false)
}

// RotateLeft is RLC r.
//
//	r = A, B, C, D, E, H, L, (HL)
func (c *CPU) RotateLeft(target RegCode) {
	c.modify8("RotateLeft", target, func(n uint8) uint8 { return c.rotateLeft(n, true) })
}

// RotateRight is RRC r.
func (c *CPU) RotateRight(target RegCode) {
	c.modify8("RotateRight", target, func(n uint8) uint8 { return c.rotateRight(n, true) })
}

// RotateLeftCarry is RL r.
func (c *CPU) RotateLeftCarry(target RegCode) {
	c.modify8("RotateLeftCarry", target, func(n uint8) uint8 { return c.rotateLeftCarry(n, true) })
}

// RotateRightCarry is RR r.
func (c *CPU) RotateRightCarry(target RegCode) {
	c.modify8("RotateRightCarry", target, func(n uint8) uint8 { return c.rotateRightCarry(n, true) })
}
