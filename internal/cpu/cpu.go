// Package cpu implements the Sharp LR35902 instruction engine: the register
// file, the base and CB-prefixed decoders, and the execution semantics of
// every instruction.
//
// The CPU is driven by calling Fetch, which decodes the instruction at PC
// and advances PC past it, followed by Execute. Step does both. The CPU is
// not safe for concurrent use; it is owned by whoever drives it.
package cpu

import (
	"github.com/thelolagemann/lr35902/internal/mmu"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// ROMOffset is the address ROM images are loaded to, and where execution
// starts when a ROM is supplied.
const ROMOffset = 0x0100

// CPU represents the LR35902. It owns the whole 64kB address space and
// the register file.
type CPU struct {
	// Registers contains the register pairs, as well as SP and PC.
	types.Registers
	// Memory is the address space the CPU executes against.
	Memory *mmu.Memory

	ime     bool
	halted  bool
	stopped bool

	log log.Logger
}

// Opt configures a CPU on creation.
type Opt func(c *CPU)

// WithLogger sets the logger that state transitions are reported to.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// New returns a CPU in its power-on state: zeroed memory and registers,
// SP at 0xFFFF and interrupts enabled.
func New(opts ...Opt) *CPU {
	c := &CPU{
		Registers: types.NewRegisters(),
		Memory:    mmu.New(),
		ime:       true,
		log:       log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewWithROM returns a CPU with rom copied verbatim to ROMOffset and PC
// pointing at it. No header validation or banking is performed.
func NewWithROM(rom []byte, opts ...Opt) *CPU {
	c := New(opts...)
	n := c.Memory.LoadBytes(ROMOffset, rom)
	if n < len(rom) {
		c.log.Errorf("rom truncated: loaded %d of %d bytes", n, len(rom))
	}
	c.PC = ROMOffset
	return c
}

// Halted reports whether HALT has been executed and not yet cleared.
func (c *CPU) Halted() bool { return c.halted }

// Unhalt clears the halted state, as an interrupt would.
func (c *CPU) Unhalt() { c.halted = false }

// Stopped reports whether STOP has been executed.
func (c *CPU) Stopped() bool { return c.stopped }

// InterruptsEnabled returns the interrupt master enable flag.
func (c *CPU) InterruptsEnabled() bool { return c.ime }

// SetInterruptsEnabled sets the interrupt master enable flag.
func (c *CPU) SetInterruptsEnabled(enabled bool) { c.ime = enabled }

// Step fetches and executes a single instruction, returning it.
func (c *CPU) Step() Instruction {
	instr := c.Fetch()
	c.Execute(instr)
	return instr
}

// readOperand reads the byte at PC and advances PC past it.
func (c *CPU) readOperand() uint8 {
	value := c.Memory.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian 16-bit operand at PC.
func (c *CPU) readOperand16() uint16 {
	low := uint16(c.readOperand())
	high := uint16(c.readOperand())
	return high<<8 | low
}

// register8 returns the storage of an 8-bit register, or nil when r is
// not one.
func (c *CPU) register8(r RegCode) *uint8 {
	switch r.kind {
	case kindA:
		return &c.AF.High
	case kindB:
		return &c.BC.High
	case kindC:
		return &c.BC.Low
	case kindD:
		return &c.DE.High
	case kindE:
		return &c.DE.Low
	case kindH:
		return &c.HL.High
	case kindL:
		return &c.HL.Low
	}
	return nil
}

// pointer returns the address held by BC, DE or HL.
func (c *CPU) pointer(r RegCode) (uint16, bool) {
	switch r.kind {
	case kindBC:
		return c.BC.Uint16(), true
	case kindDE:
		return c.DE.Uint16(), true
	case kindHL:
		return c.HL.Uint16(), true
	}
	return 0, false
}

// read8 reads an 8-bit register or the byte at (HL).
func (c *CPU) read8(op string, r RegCode) uint8 {
	if reg := c.register8(r); reg != nil {
		return *reg
	}
	if r.kind == kindHL {
		return c.Memory.Read(c.HL.Uint16())
	}
	panic(invalidOperand(op, r))
}

// write8 writes an 8-bit register or the byte at (HL).
func (c *CPU) write8(op string, r RegCode, value uint8) {
	if reg := c.register8(r); reg != nil {
		*reg = value
		return
	}
	if r.kind == kindHL {
		c.Memory.Write(c.HL.Uint16(), value)
		return
	}
	panic(invalidOperand(op, r))
}

// source8 is read8 widened to accept an 8-bit immediate, as taken by the
// accumulator ALU operations.
func (c *CPU) source8(op string, r RegCode) uint8 {
	if r.kind == kindConst8 {
		return uint8(r.value)
	}
	return c.read8(op, r)
}

// modify8 applies fn to an 8-bit register or (HL) in place.
func (c *CPU) modify8(op string, r RegCode, fn func(uint8) uint8) {
	c.write8(op, r, fn(c.read8(op, r)))
}

var _ types.Stater = (*CPU)(nil)

// Load restores the CPU, including its memory, from s.
func (c *CPU) Load(s *types.State) {
	c.Registers.Load(s)
	c.ime = s.ReadBool()
	c.halted = s.ReadBool()
	c.stopped = s.ReadBool()
	c.Memory.Load(s)
}

// Save writes the CPU, including its memory, to s.
func (c *CPU) Save(s *types.State) {
	c.Registers.Save(s)
	s.WriteBool(c.ime)
	s.WriteBool(c.halted)
	s.WriteBool(c.stopped)
	c.Memory.Save(s)
}
