package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/pkg/bits"
)

func checkBit(op string, bit uint8) {
	if bit > 7 {
		panic(&UsageError{Op: op, Operand: fmt.Sprintf("bit %d", bit)})
	}
}

// BitCheckZero tests the bit at the given position of the target.
//
//	BIT b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of register r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) BitCheckZero(bit uint8, target RegCode) {
	checkBit("BitCheckZero", bit)
	value := c.read8("BitCheckZero", target)
	c.setFlags(!bits.Test(value, bit), false, true, c.AF.Carry())
}

// BitSet sets the bit at the given position of the target.
//
//	SET b, r
//
// Flags affected: none.
func (c *CPU) BitSet(bit uint8, target RegCode) {
	checkBit("BitSet", bit)
	c.modify8("BitSet", target, func(n uint8) uint8 { return bits.Set(n, bit) })
}

// BitReset clears the bit at the given position of the target.
//
//	RES b, r
//
// Flags affected: none.
func (c *CPU) BitReset(bit uint8, target RegCode) {
	checkBit("BitReset", bit)
	c.modify8("BitReset", target, func(n uint8) uint8 { return bits.Reset(n, bit) })
}
