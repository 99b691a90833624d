package bits

import "testing"

func TestBits(t *testing.T) {
	t.Run("set and reset", func(t *testing.T) {
		for i := uint8(0); i < 8; i++ {
			v := Set(0, i)
			if !Test(v, i) || Val(v, i) != 1 {
				t.Errorf("expected bit %d to be set, got %08b", i, v)
			}
			if v = Reset(v, i); v != 0 {
				t.Errorf("expected bit %d to be reset, got %08b", i, v)
			}
		}
	})
	t.Run("swap", func(t *testing.T) {
		if got := Swap(0xA5); got != 0x5A {
			t.Errorf("expected 0x5A, got 0x%02X", got)
		}
	})
	t.Run("join and split", func(t *testing.T) {
		for _, v := range []uint16{0x0000, 0x00FF, 0xFF00, 0x1234, 0xFFFF} {
			high, low := Split16(v)
			if got := Join16(high, low); got != v {
				t.Errorf("expected 0x%04X, got 0x%04X", v, got)
			}
		}
	})
}
