package cpu

import "github.com/thelolagemann/lr35902/pkg/bits"

// Swap exchanges the upper and lower nibbles of the target.
//
//	SWAP n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) Swap(target RegCode) {
	c.modify8("Swap", target, func(n uint8) uint8 {
		computed := bits.Swap(n)
		c.setFlags(computed == 0, false, false, false)
		return computed
	})
}
