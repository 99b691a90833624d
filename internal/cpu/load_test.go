package cpu

import "testing"

func TestCPU_Load8(t *testing.T) {
	t.Run("register to register", func(t *testing.T) {
		for _, target := range []RegCode{A, B, C, D, E, H, L} {
			for _, source := range []RegCode{A, B, C, D, E, H, L} {
				c := New()
				*c.register8(source) = 0x42
				c.Load8(target, source)
				if got := *c.register8(target); got != 0x42 {
					t.Errorf("LD %s, %s: expected 0x42, got 0x%02X", target, source, got)
				}
			}
		}
	})
	t.Run("pointer", func(t *testing.T) {
		c := New()
		c.DE.SetUint16(0xC123)
		c.AF.High = 0x99
		c.Load8(DE, A)
		if got := c.Memory.Read(0xC123); got != 0x99 {
			t.Errorf("expected (DE) to be 0x99, got 0x%02X", got)
		}
		c.BC.SetUint16(0xC123)
		c.Load8(H, BC)
		if c.HL.High != 0x99 {
			t.Errorf("expected H to be 0x99, got 0x%02X", c.HL.High)
		}
	})
	t.Run("immediate", func(t *testing.T) {
		c := New()
		c.HL.SetUint16(0xD000)
		c.Load8(HL, Const8(0x7E))
		if got := c.Memory.Read(0xD000); got != 0x7E {
			t.Errorf("expected (HL) to be 0x7E, got 0x%02X", got)
		}
	})
	t.Run("invalid operand", func(t *testing.T) {
		expectUsageError(t, "Load8", func() { New().Load8(SP, A) })
		expectUsageError(t, "Load8", func() { New().Load8(A, Const16(0x1234)) })
	})
}

func TestCPU_Load16(t *testing.T) {
	for _, r := range []RegCode{BC, DE, HL, SP} {
		t.Run(r.String(), func(t *testing.T) {
			c := New()
			c.Load16(r, Const16(0xBEEF))
			get, _ := c.register16("test", r)
			if got := get(); got != 0xBEEF {
				t.Errorf("expected %s to be 0xBEEF, got 0x%04X", r, got)
			}
		})
	}
	t.Run("store SP", func(t *testing.T) {
		c := New()
		c.SP = 0xFFF8
		c.Load16(Const16(0xC100), SP)
		if low, high := c.Memory.Read(0xC100), c.Memory.Read(0xC101); low != 0xF8 || high != 0xFF {
			t.Errorf("expected 0xF8 0xFF, got 0x%02X 0x%02X", low, high)
		}
	})
	t.Run("invalid operand", func(t *testing.T) {
		expectUsageError(t, "Load16", func() { New().Load16(AF, Const16(0)) })
		expectUsageError(t, "Load16", func() { New().Load16(BC, A) })
	})
}

func TestCPU_LoadHigh(t *testing.T) {
	c := New()
	c.AF.High = 0x11
	c.LoadHigh(Const8(0x80), A)
	if got := c.Memory.Read(0xFF80); got != 0x11 {
		t.Errorf("expected 0xFF80 to be 0x11, got 0x%02X", got)
	}

	c.BC.Low = 0x81
	c.Memory.Write(0xFF81, 0x22)
	c.LoadHigh(A, C)
	if c.AF.High != 0x22 {
		t.Errorf("expected A to be 0x22, got 0x%02X", c.AF.High)
	}

	c.LoadHigh(Const16(0xC000), A)
	if got := c.Memory.Read(0xC000); got != 0x22 {
		t.Errorf("expected 0xC000 to be 0x22, got 0x%02X", got)
	}

	expectUsageError(t, "LoadHigh", func() { c.LoadHigh(B, C) })
	expectUsageError(t, "LoadHigh", func() { c.LoadHigh(B, A) })
}

func TestCPU_LoadIncrementDecrement(t *testing.T) {
	c := New()
	c.HL.SetUint16(0xFFFF)
	c.AF.High = 0x56
	c.LoadIncrement(HL, A)
	if got := c.Memory.Read(0xFFFF); got != 0x56 {
		t.Errorf("expected 0xFFFF to be 0x56, got 0x%02X", got)
	}
	if c.HL.Uint16() != 0x0000 {
		t.Errorf("expected HL to wrap to 0x0000, got 0x%04X", c.HL.Uint16())
	}

	c.Memory.Write(0x0000, 0x78)
	c.LoadDecrement(A, HL)
	if c.AF.High != 0x78 {
		t.Errorf("expected A to be 0x78, got 0x%02X", c.AF.High)
	}
	if c.HL.Uint16() != 0xFFFF {
		t.Errorf("expected HL to wrap to 0xFFFF, got 0x%04X", c.HL.Uint16())
	}

	expectUsageError(t, "LoadIncrement", func() { c.LoadIncrement(BC, A) })
}

func TestInstruction_Load(t *testing.T) {
	testInstruction(t, "LD BC, $1234", []byte{0x01, 0x34, 0x12}, func(t *testing.T, c *CPU, instr Instruction) {
		c.Execute(instr)
		if c.BC.Uint16() != 0x1234 {
			t.Errorf("expected BC to be 0x1234, got 0x%04X", c.BC.Uint16())
		}
	})
	testInstruction(t, "LD ($C000), SP", []byte{0x08, 0x00, 0xC0}, func(t *testing.T, c *CPU, instr Instruction) {
		c.SP = 0x1234
		c.Execute(instr)
		if low, high := c.Memory.Read(0xC000), c.Memory.Read(0xC001); low != 0x34 || high != 0x12 {
			t.Errorf("expected 0x34 0x12, got 0x%02X 0x%02X", low, high)
		}
	})
	testInstruction(t, "LD (HL), $55", []byte{0x36, 0x55}, func(t *testing.T, c *CPU, instr Instruction) {
		c.HL.SetUint16(0xC000)
		c.Execute(instr)
		if got := c.Memory.Read(0xC000); got != 0x55 {
			t.Errorf("expected (HL) to be 0x55, got 0x%02X", got)
		}
	})
	testInstruction(t, "LD (HL-), A", []byte{0x32}, func(t *testing.T, c *CPU, instr Instruction) {
		c.HL.SetUint16(0xC001)
		c.AF.High = 0x01
		c.Execute(instr)
		if c.HL.Uint16() != 0xC000 || c.Memory.Read(0xC001) != 0x01 {
			t.Errorf("expected (0xC001) = 0x01 and HL = 0xC000, got HL 0x%04X", c.HL.Uint16())
		}
	})
	testInstruction(t, "LDH ($FF44), A", []byte{0xE0, 0x44}, func(t *testing.T, c *CPU, instr Instruction) {
		c.AF.High = 0x90
		c.Execute(instr)
		if got := c.Memory.Read(0xFF44); got != 0x90 {
			t.Errorf("expected 0xFF44 to be 0x90, got 0x%02X", got)
		}
	})
	testInstruction(t, "LD A, ($C0DE)", []byte{0xFA, 0xDE, 0xC0}, func(t *testing.T, c *CPU, instr Instruction) {
		c.Memory.Write(0xC0DE, 0x12)
		c.Execute(instr)
		if c.AF.High != 0x12 {
			t.Errorf("expected A to be 0x12, got 0x%02X", c.AF.High)
		}
	})
	testInstruction(t, "LD HL, SP-2", []byte{0xF8, 0xFE}, func(t *testing.T, c *CPU, instr Instruction) {
		c.SP = 0xC002
		c.Execute(instr)
		if c.HL.Uint16() != 0xC000 {
			t.Errorf("expected HL to be 0xC000, got 0x%04X", c.HL.Uint16())
		}
	})
}
