package cpu

import (
	"errors"
	"testing"
)

var illegalOpcodes = []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

func isIllegal(opcode uint8) bool {
	for _, o := range illegalOpcodes {
		if o == opcode {
			return true
		}
	}
	return false
}

func TestFetch(t *testing.T) {
	t.Run("NOP", func(t *testing.T) {
		c := NewWithROM([]byte{0x00})
		instr := c.Fetch()
		if _, ok := instr.(Nop); !ok {
			t.Errorf("expected NOP, got %T", instr)
		}
		if c.PC != ROMOffset+1 {
			t.Errorf("expected PC to advance by 1, got 0x%04X", c.PC)
		}
	})
	t.Run("JP", func(t *testing.T) {
		c := NewWithROM([]byte{0xC3, 0x50, 0x01})
		instr := c.Fetch()
		jump, ok := instr.(Jump)
		if !ok {
			t.Fatalf("expected JP, got %T", instr)
		}
		if jump.Address != 0x0150 || jump.Cond != Always {
			t.Errorf("expected JP $0150, got %s", jump)
		}
		if c.PC != ROMOffset+3 {
			t.Errorf("expected PC to advance by 3, got 0x%04X", c.PC)
		}
	})
	t.Run("STOP", func(t *testing.T) {
		c := NewWithROM([]byte{0x10, 0x00})
		if _, ok := c.Fetch().(Stop); !ok {
			t.Errorf("expected STOP")
		}
		if c.PC != ROMOffset+2 {
			t.Errorf("expected PC to advance by 2, got 0x%04X", c.PC)
		}
	})
}

func TestFetch_Length(t *testing.T) {
	lengths := map[uint8]uint16{}
	for _, o := range []uint8{0x01, 0x11, 0x21, 0x31, 0x08, 0xC2, 0xC3, 0xC4, 0xCA, 0xCC, 0xCD, 0xD2, 0xD4, 0xDA, 0xDC, 0xEA, 0xFA} {
		lengths[o] = 3
	}
	for _, o := range []uint8{
		0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E,
		0x10, 0x18, 0x20, 0x28, 0x30, 0x38,
		0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE,
		0xE0, 0xF0, 0xE8, 0xF8, 0xCB,
	} {
		lengths[o] = 2
	}

	for opcode := 0; opcode <= 0xFF; opcode++ {
		if isIllegal(uint8(opcode)) {
			continue
		}
		c := NewWithROM([]byte{uint8(opcode), 0x00, 0x00})
		c.Fetch()
		expected, ok := lengths[uint8(opcode)]
		if !ok {
			expected = 1
		}
		if got := c.PC - ROMOffset; got != expected {
			t.Errorf("0x%02X: expected length %d, got %d", opcode, expected, got)
		}
	}
}

func TestFetch_Illegal(t *testing.T) {
	for _, opcode := range illegalOpcodes {
		if Legal(opcode) {
			t.Errorf("expected 0x%02X to be illegal", opcode)
		}
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				var opErr *OpcodeError
				if !ok || !errors.As(err, &opErr) {
					t.Fatalf("expected *OpcodeError panic, got %v", r)
				}
				if opErr.Opcode != opcode || opErr.PC != ROMOffset {
					t.Errorf("expected opcode 0x%02X at 0x0100, got %s", opcode, opErr)
				}
			}()
			NewWithROM([]byte{opcode}).Fetch()
		}()
	}

	err := &OpcodeError{Opcode: 0xED, PC: 0x0100}
	if err.Error() != "illegal opcode 0xED at 0x0100" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

// every decodable instruction must also execute without a usage error
func TestExecute_Total(t *testing.T) {
	run := func(t *testing.T, program []byte) {
		c := NewWithROM(program)
		c.SP = 0xDFFE
		c.HL.SetUint16(0xC000)
		c.BC.SetUint16(0xC100)
		c.DE.SetUint16(0xC200)
		c.Step()
	}

	for opcode := 0; opcode <= 0xFF; opcode++ {
		if isIllegal(uint8(opcode)) || opcode == CBPrefix {
			continue
		}
		run(t, []byte{uint8(opcode), 0x00, 0xC0})
	}

	for code := 0; code <= 0xFF; code++ {
		c := NewWithROM([]byte{CBPrefix, uint8(code)})
		instr := c.Fetch()
		if c.PC != ROMOffset+2 {
			t.Errorf("CB 0x%02X: expected length 2, got %d", code, c.PC-ROMOffset)
		}
		if instr.String() == "" {
			t.Errorf("CB 0x%02X: empty mnemonic", code)
		}
		run(t, []byte{CBPrefix, uint8(code)})
	}
}

func TestFetch_Mnemonics(t *testing.T) {
	tests := []struct {
		program  []byte
		expected string
	}{
		{[]byte{0x00}, "NOP"},
		{[]byte{0x20, 0xFE}, "JR NZ, -2"},
		{[]byte{0x18, 0x05}, "JR +5"},
		{[]byte{0x31, 0xFE, 0xFF}, "LD SP, $FFFE"},
		{[]byte{0x3E, 0x01}, "LD A, $01"},
		{[]byte{0x7E}, "LD A, (HL)"},
		{[]byte{0x0A}, "LD A, (BC)"},
		{[]byte{0x2A}, "LD A, (HL+)"},
		{[]byte{0xE2}, "LD (C), A"},
		{[]byte{0xF0, 0x44}, "LDH A, ($FF44)"},
		{[]byte{0x34}, "INC (HL)"},
		{[]byte{0x03}, "INC BC"},
		{[]byte{0x86}, "ADD A, (HL)"},
		{[]byte{0x8F}, "ADC A, A"},
		{[]byte{0xD6, 0x10}, "SUB $10"},
		{[]byte{0xFE, 0x90}, "CP $90"},
		{[]byte{0x29}, "ADD HL, HL"},
		{[]byte{0xE8, 0x80}, "ADD SP, -128"},
		{[]byte{0xC0}, "RET NZ"},
		{[]byte{0xC9}, "RET"},
		{[]byte{0xDC, 0x00, 0x40}, "CALL C, $4000"},
		{[]byte{0xFF}, "RST $38"},
		{[]byte{0xF5}, "PUSH AF"},
		{[]byte{0xE1}, "POP HL"},
		{[]byte{0x07}, "RLCA"},
		{[]byte{0x17}, "RLA"},
		{[]byte{0x27}, "DAA"},
		{[]byte{0x76}, "HALT"},
		{[]byte{0xFB}, "EI"},
		{[]byte{0xCB, 0x11}, "RL C"},
		{[]byte{0xCB, 0x37}, "SWAP A"},
		{[]byte{0xCB, 0x7C}, "BIT 7, H"},
		{[]byte{0xCB, 0x86}, "RES 0, (HL)"},
		{[]byte{0xCB, 0xFF}, "SET 7, A"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := NewWithROM(tt.program).Fetch().String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
