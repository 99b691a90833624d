package types

import "fmt"

// Register represents an 8-bit LR35902 register.
type Register = uint8

// Flag bits held in the low byte of the AF register pair.
const (
	FlagZero      Register = 1 << 7
	FlagSubtract  Register = 1 << 6
	FlagHalfCarry Register = 1 << 5
	FlagCarry     Register = 1 << 4

	flagMask = FlagZero | FlagSubtract | FlagHalfCarry | FlagCarry
)

// RegisterPair represents two 8-bit registers that can be addressed
// independently or as a single 16-bit value, with High holding the most
// significant byte. In the AF pair, Low is the flag register.
type RegisterPair struct {
	High Register
	Low  Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(r.High)<<8 | uint16(r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	r.High = uint8(value >> 8)
	r.Low = uint8(value)
}

// Zero reports whether the zero flag is set.
func (r *RegisterPair) Zero() bool { return r.Low&FlagZero != 0 }

// Subtract reports whether the subtract flag is set.
func (r *RegisterPair) Subtract() bool { return r.Low&FlagSubtract != 0 }

// HalfCarry reports whether the half-carry flag is set.
func (r *RegisterPair) HalfCarry() bool { return r.Low&FlagHalfCarry != 0 }

// Carry reports whether the carry flag is set.
func (r *RegisterPair) Carry() bool { return r.Low&FlagCarry != 0 }

// FlipZero toggles the zero flag.
func (r *RegisterPair) FlipZero() { r.Low ^= FlagZero }

// FlipSubtract toggles the subtract flag.
func (r *RegisterPair) FlipSubtract() { r.Low ^= FlagSubtract }

// FlipHalfCarry toggles the half-carry flag.
func (r *RegisterPair) FlipHalfCarry() { r.Low ^= FlagHalfCarry }

// FlipCarry toggles the carry flag.
func (r *RegisterPair) FlipCarry() { r.Low ^= FlagCarry }

// ClearFlags forces all four flags low. Calling it repeatedly has the
// same effect as calling it once.
func (r *RegisterPair) ClearFlags() { r.Low &^= flagMask }

// SetFlags writes all four flags at once. The unused low nibble of the
// flag register is always left zero.
func (r *RegisterPair) SetFlags(zero, subtract, halfCarry, carry bool) {
	var f Register
	if zero {
		f |= FlagZero
	}
	if subtract {
		f |= FlagSubtract
	}
	if halfCarry {
		f |= FlagHalfCarry
	}
	if carry {
		f |= FlagCarry
	}
	r.Low = f
}

// Registers represents the full LR35902 register file.
type Registers struct {
	AF RegisterPair
	BC RegisterPair
	DE RegisterPair
	HL RegisterPair

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next byte to be fetched.
	PC uint16
}

// NewRegisters returns the power-on register state: everything zero
// apart from the stack pointer, which starts at the top of memory.
func NewRegisters() Registers {
	return Registers{SP: 0xFFFF}
}

// String renders the register file on a single line, mostly for traces.
func (r Registers) String() string {
	return fmt.Sprintf("A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X",
		r.AF.High, r.AF.Low, r.BC.High, r.BC.Low, r.DE.High, r.DE.Low, r.HL.High, r.HL.Low, r.SP, r.PC)
}

// Save writes the register file to s.
func (r *Registers) Save(s *State) {
	for _, pair := range []*RegisterPair{&r.AF, &r.BC, &r.DE, &r.HL} {
		s.Write16(pair.Uint16())
	}
	s.Write16(r.SP)
	s.Write16(r.PC)
}

// Load restores the register file from s.
func (r *Registers) Load(s *State) {
	for _, pair := range []*RegisterPair{&r.AF, &r.BC, &r.DE, &r.HL} {
		pair.SetUint16(s.Read16())
	}
	r.AF.Low &= flagMask
	r.SP = s.Read16()
	r.PC = s.Read16()
}
