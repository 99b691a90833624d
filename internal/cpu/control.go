package cpu

// Halt puts the CPU into the halted state until Unhalt is called.
//
//	HALT
func (c *CPU) Halt() {
	c.halted = true
	c.log.Debugf("halted at 0x%04X", c.PC)
}

// Stop records that STOP was executed. Whoever drives the CPU decides what
// stopping means.
//
//	STOP
func (c *CPU) Stop() {
	c.stopped = true
	c.log.Debugf("stopped at 0x%04X", c.PC)
}

// EnableInterrupts sets the interrupt master enable flag.
//
//	EI
func (c *CPU) EnableInterrupts() {
	c.ime = true
}

// DisableInterrupts clears the interrupt master enable flag.
//
//	DI
func (c *CPU) DisableInterrupts() {
	c.ime = false
}

// SetCarryFlag sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) SetCarryFlag() {
	c.setFlags(c.AF.Zero(), false, false, true)
}

// ComplementCarryFlag flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) ComplementCarryFlag() {
	c.setFlags(c.AF.Zero(), false, false, c.AF.Carry())
	c.AF.FlipCarry()
}
