package cpu

import "fmt"

// setFlags writes all four flags from scratch.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.AF.SetFlags(zero, subtract, halfCarry, carry)
}

// condition evaluates cc against the current flags.
func (c *CPU) condition(cc CondCode) bool {
	switch cc {
	case Always:
		return true
	case NotZero:
		return !c.AF.Zero()
	case Zero:
		return c.AF.Zero()
	case NotCarry:
		return !c.AF.Carry()
	case Carry:
		return c.AF.Carry()
	}
	panic(&UsageError{Op: "condition", Operand: fmt.Sprintf("code %d", uint8(cc))})
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	if c.AF.Carry() {
		return 1
	}
	return 0
}
