package mmu

import (
	"testing"

	"github.com/thelolagemann/lr35902/internal/types"
)

func TestMemory(t *testing.T) {
	t.Run("zeroed", func(t *testing.T) {
		m := New()
		for addr := 0; addr < Size; addr++ {
			if v := m.Read(uint16(addr)); v != 0 {
				t.Fatalf("expected 0x0000 at 0x%04X, got 0x%02X", addr, v)
			}
		}
	})
	t.Run("read write bounds", func(t *testing.T) {
		m := New()
		m.Write(0x0000, 0x11)
		m.Write(0xFFFF, 0x22)
		if m.Read(0x0000) != 0x11 || m.Read(0xFFFF) != 0x22 {
			t.Errorf("expected 0x11/0x22, got 0x%02X/0x%02X", m.Read(0x0000), m.Read(0xFFFF))
		}
	})
	t.Run("load bytes truncates", func(t *testing.T) {
		m := New()
		if n := m.LoadBytes(0xFFFE, []byte{1, 2, 3, 4}); n != 2 {
			t.Errorf("expected 2 bytes copied, got %d", n)
		}
		if m.Read(0xFFFF) != 2 {
			t.Errorf("expected 0x02 at 0xFFFF, got 0x%02X", m.Read(0xFFFF))
		}
	})
	t.Run("state", func(t *testing.T) {
		m := New()
		m.Write(0xC000, 0xAB)
		s := types.NewState()
		m.Save(s)
		if len(s.Bytes()) != Size {
			t.Fatalf("expected %d bytes, got %d", Size, len(s.Bytes()))
		}

		restored := New()
		restored.Load(types.StateFromBytes(s.Bytes()))
		if restored.Read(0xC000) != 0xAB {
			t.Errorf("expected 0xAB, got 0x%02X", restored.Read(0xC000))
		}
	})
}
