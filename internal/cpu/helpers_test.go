package cpu

import (
	"errors"
	"testing"
)

// testInstruction loads program at ROMOffset, fetches a single instruction
// from it and hands both to fn, which is expected to arrange any state and
// then execute the instruction.
func testInstruction(t *testing.T, name string, program []byte, fn func(t *testing.T, c *CPU, instr Instruction)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		c := NewWithROM(program)
		instr := c.Fetch()
		if got := instr.String(); got != name {
			t.Errorf("expected mnemonic %q, got %q", name, got)
		}
		fn(t, c, instr)
	})
}

// expectFlags fails the test if the flags of c differ from z, n, h and cy.
func expectFlags(t *testing.T, c *CPU, z, n, h, cy bool) {
	t.Helper()
	if c.AF.Zero() != z || c.AF.Subtract() != n || c.AF.HalfCarry() != h || c.AF.Carry() != cy {
		t.Errorf("expected flags Z:%v N:%v H:%v C:%v, got Z:%v N:%v H:%v C:%v",
			z, n, h, cy, c.AF.Zero(), c.AF.Subtract(), c.AF.HalfCarry(), c.AF.Carry())
	}
}

// expectUsageError runs fn and fails the test unless it panics with a
// *UsageError naming op.
func expectUsageError(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		var usage *UsageError
		if !ok || !errors.As(err, &usage) {
			t.Fatalf("expected *UsageError panic, got %v", r)
		}
		if usage.Op != op {
			t.Errorf("expected usage error for %s, got %s", op, usage.Op)
		}
	}()
	fn()
}
