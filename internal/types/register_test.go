package types

import "testing"

func TestRegisterPair(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		var pair RegisterPair
		for _, v := range []uint16{0x0000, 0x0001, 0x00FF, 0x0100, 0x1234, 0xABCD, 0xFFFF} {
			pair.SetUint16(v)
			if pair.High != uint8(v>>8) || pair.Low != uint8(v) {
				t.Errorf("expected %02X:%02X, got %02X:%02X", v>>8, v&0xFF, pair.High, pair.Low)
			}
			if pair.Uint16() != v {
				t.Errorf("expected 0x%04X, got 0x%04X", v, pair.Uint16())
			}
		}
	})
	t.Run("flip flags", func(t *testing.T) {
		var af RegisterPair
		af.FlipZero()
		af.FlipSubtract()
		af.FlipHalfCarry()
		af.FlipCarry()
		if !af.Zero() || !af.Subtract() || !af.HalfCarry() || !af.Carry() {
			t.Errorf("expected all flags set, got %08b", af.Low)
		}
		af.FlipCarry()
		if af.Carry() {
			t.Errorf("expected carry to be flipped off, got %08b", af.Low)
		}
	})
	t.Run("clear flags is idempotent", func(t *testing.T) {
		af := RegisterPair{High: 0x12, Low: 0xF0}
		af.ClearFlags()
		af.ClearFlags()
		if af.Low != 0 {
			t.Errorf("expected flags to be clear, got %08b", af.Low)
		}
		if af.High != 0x12 {
			t.Errorf("expected A to be untouched, got 0x%02X", af.High)
		}
	})
	t.Run("set flags", func(t *testing.T) {
		var af RegisterPair
		af.SetFlags(true, false, true, false)
		if af.Low != FlagZero|FlagHalfCarry {
			t.Errorf("expected %08b, got %08b", FlagZero|FlagHalfCarry, af.Low)
		}
	})
}

func TestRegisters(t *testing.T) {
	t.Run("power on", func(t *testing.T) {
		r := NewRegisters()
		if r.SP != 0xFFFF || r.PC != 0 || r.AF.Uint16() != 0 || r.HL.Uint16() != 0 {
			t.Errorf("unexpected power-on state %s", r)
		}
	})
	t.Run("save and load", func(t *testing.T) {
		r := NewRegisters()
		r.AF.SetUint16(0x12F0)
		r.BC.SetUint16(0x3456)
		r.DE.SetUint16(0x789A)
		r.HL.SetUint16(0xBCDE)
		r.PC = 0x0150

		s := NewState()
		r.Save(s)

		var loaded Registers
		loaded.Load(StateFromBytes(s.Bytes()))
		if loaded != r {
			t.Errorf("expected %s, got %s", r, loaded)
		}
	})
}
