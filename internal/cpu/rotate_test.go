package cpu

import "testing"

func TestCPU_RotateAccumulator(t *testing.T) {
	t.Run("RLA through carry", func(t *testing.T) {
		c := New()
		c.AF.High = 0b10000000
		c.RotateLeftCarryA()
		if c.AF.High != 0x00 {
			t.Errorf("expected A to be 0x00, got 0b%08b", c.AF.High)
		}
		expectFlags(t, c, false, false, false, true)

		c.AF.High = 0b10101010
		c.RotateLeftCarryA()
		if c.AF.High != 0b01010101 {
			t.Errorf("expected A to be 0b01010101, got 0b%08b", c.AF.High)
		}
		expectFlags(t, c, false, false, false, true)
	})
	t.Run("RLCA", func(t *testing.T) {
		c := New()
		c.AF.High = 0b10000101
		c.RotateLeftA()
		if c.AF.High != 0b00001011 {
			t.Errorf("expected A to be 0b00001011, got 0b%08b", c.AF.High)
		}
		expectFlags(t, c, false, false, false, true)
	})
	t.Run("RRCA", func(t *testing.T) {
		c := New()
		c.AF.High = 0b00000001
		c.RotateRightA()
		if c.AF.High != 0b10000000 {
			t.Errorf("expected A to be 0b10000000, got 0b%08b", c.AF.High)
		}
		expectFlags(t, c, false, false, false, true)
	})
	t.Run("RRA", func(t *testing.T) {
		c := New()
		c.AF.High = 0b00000001
		c.RotateRightCarryA()
		if c.AF.High != 0x00 {
			t.Errorf("expected A to be 0x00, got 0b%08b", c.AF.High)
		}
		// zero is never set by the accumulator rotates
		expectFlags(t, c, false, false, false, true)
		c.RotateRightCarryA()
		if c.AF.High != 0b10000000 {
			t.Errorf("expected A to be 0b10000000, got 0b%08b", c.AF.High)
		}
		expectFlags(t, c, false, false, false, false)
	})
}

func TestCPU_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		op       func(c *CPU, r RegCode)
		carryIn  bool
		value    uint8
		expected uint8
		carry    bool
	}{
		{"RLC", (*CPU).RotateLeft, false, 0x85, 0x0B, true},
		{"RLC zero", (*CPU).RotateLeft, true, 0x00, 0x00, false},
		{"RRC", (*CPU).RotateRight, false, 0x01, 0x80, true},
		{"RL", (*CPU).RotateLeftCarry, false, 0x80, 0x00, true},
		{"RL carry in", (*CPU).RotateLeftCarry, true, 0x11, 0x23, false},
		{"RR", (*CPU).RotateRightCarry, false, 0x01, 0x00, true},
		{"RR carry in", (*CPU).RotateRightCarry, true, 0x8A, 0xC5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.HL.SetUint16(0xC000)
			c.Memory.Write(0xC000, tt.value)
			c.AF.SetFlags(false, true, true, tt.carryIn)
			tt.op(c, HL)
			if got := c.Memory.Read(0xC000); got != tt.expected {
				t.Errorf("expected 0x%02X, got 0x%02X", tt.expected, got)
			}
			expectFlags(t, c, tt.expected == 0, false, false, tt.carry)
		})
	}
	expectUsageError(t, "RotateLeft", func() { New().RotateLeft(BC) })
}
