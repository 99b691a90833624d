// Package bits holds the small bit and byte helpers shared by the CPU and
// its tooling.
package bits

// Val returns the value (0 or 1) of bit i of b.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset returns b with bit i cleared.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set returns b with bit i set.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test reports whether bit i of b is set.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Swap exchanges the upper and lower nibbles of b.
func Swap(b uint8) uint8 {
	return b<<4 | b>>4
}

// Join16 combines a high and low byte into a 16-bit value.
func Join16(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split16 splits a 16-bit value into its high and low bytes.
func Split16(value uint16) (high, low uint8) {
	return uint8(value >> 8), uint8(value)
}
