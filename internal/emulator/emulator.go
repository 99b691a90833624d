// Package emulator drives the LR35902 core: it repeatedly fetches and
// executes instructions until something ends the run.
package emulator

import (
	"context"
	"fmt"

	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// cancelCheckInterval is how many instructions run between checks of the
// run context.
const cancelCheckInterval = 1024

// StopReason describes why Run returned.
type StopReason int

const (
	// Failed means the core panicked; the accompanying error says why.
	Failed StopReason = iota
	// Stopped means the program executed STOP.
	Stopped
	// StepLimit means the MaxSteps budget was used up.
	StepLimit
	// Breakpoint means PC reached an address registered with WithBreakpoint.
	Breakpoint
	// SoftwareBreakpoint means the program executed LD B, B while
	// WithSoftwareBreakpoint was set.
	SoftwareBreakpoint
	// Halted means the program executed HALT with interrupts disabled, so
	// nothing could ever wake it.
	Halted
	// Cancelled means the run context was done.
	Cancelled
)

var stopReasonNames = [...]string{
	Failed:             "failed",
	Stopped:            "stopped",
	StepLimit:          "step limit",
	Breakpoint:         "breakpoint",
	SoftwareBreakpoint: "software breakpoint",
	Halted:             "halted",
	Cancelled:          "cancelled",
}

func (r StopReason) String() string {
	if r >= 0 && int(r) < len(stopReasonNames) {
		return stopReasonNames[r]
	}
	return fmt.Sprintf("StopReason(%d)", int(r))
}

// Observer is called with the CPU and the number of executed steps. It
// runs on the emulation goroutine and must copy anything it keeps.
type Observer func(c *cpu.CPU, steps uint64)

type observer struct {
	every uint64
	fn    Observer
}

// Emulator owns a CPU and the bookkeeping around running it.
type Emulator struct {
	CPU *cpu.CPU

	log.Logger

	trace         bool
	maxSteps      uint64
	breakpoints   map[uint16]struct{}
	softwareBreak bool
	observers     []observer

	startPC  uint16
	hasPC    bool
	state    *types.State
	stateErr error

	steps    uint64
	counts   [256]uint64
	cbCounts [256]uint64

	// skipBreak lets a run resumed at a breakpoint step past it.
	skipBreak bool
}

// New returns an Emulator with rom loaded at cpu.ROMOffset.
func New(rom []byte, opts ...Opt) *Emulator {
	e := &Emulator{
		Logger:      log.NewNullLogger(),
		breakpoints: make(map[uint16]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.CPU = cpu.NewWithROM(rom, cpu.WithLogger(e.Logger))
	if e.state != nil {
		e.CPU.Load(e.state)
		if err := e.state.Err(); err != nil {
			e.stateErr = fmt.Errorf("emulator: loading state: %w", err)
		}
	}
	if e.hasPC {
		e.CPU.PC = e.startPC
	}

	return e
}

// Steps returns the number of instructions executed so far.
func (e *Emulator) Steps() uint64 { return e.steps }

// Counts returns how often each unprefixed opcode was executed. CB-prefixed
// instructions are counted under 0xCB.
func (e *Emulator) Counts() [256]uint64 { return e.counts }

// CBCounts returns how often each CB-prefixed opcode was executed.
func (e *Emulator) CBCounts() [256]uint64 { return e.cbCounts }

// Save writes the state of the emulated CPU to s.
func (e *Emulator) Save(s *types.State) {
	e.CPU.Save(s)
}

// Run executes instructions until the program stops, a limit or
// breakpoint is reached, or ctx is done. Panics raised by the core for an
// illegal opcode or an invalid operand are returned as errors; the CPU is
// left as it was when the panic occurred and should not be resumed.
func (e *Emulator) Run(ctx context.Context) (reason StopReason, err error) {
	if e.stateErr != nil {
		return Failed, e.stateErr
	}

	var pc uint16
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case *cpu.OpcodeError:
				reason, err = Failed, fmt.Errorf("emulator: %w", v)
			case *cpu.UsageError:
				reason, err = Failed, fmt.Errorf("emulator: at 0x%04X: %w", pc, v)
			default:
				panic(r)
			}
			e.Errorf("%v", err)
		}
	}()

	skipBreak := e.skipBreak
	e.skipBreak = false
	for start := e.steps; ; {
		if e.CPU.Stopped() {
			return Stopped, nil
		}
		if e.maxSteps > 0 && e.steps >= e.maxSteps {
			return StepLimit, nil
		}
		if (e.steps-start)%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return Cancelled, ctx.Err()
			default:
			}
		}
		if e.CPU.Halted() {
			if !e.CPU.InterruptsEnabled() {
				return Halted, nil
			}
			// nothing raises interrupts, so an enabled HALT wakes at once
			e.CPU.Unhalt()
		}

		pc = e.CPU.PC
		if _, ok := e.breakpoints[pc]; ok && !skipBreak {
			e.skipBreak = true
			e.Debugf("breakpoint at 0x%04X", pc)
			return Breakpoint, nil
		}
		skipBreak = false

		instr := e.step(pc)
		if e.softwareBreak && isSoftwareBreak(instr) {
			e.Debugf("software breakpoint at 0x%04X", pc)
			return SoftwareBreakpoint, nil
		}
	}
}

// step executes the instruction at pc and updates the counters.
func (e *Emulator) step(pc uint16) cpu.Instruction {
	opcode := e.CPU.Memory.Read(pc)
	instr := e.CPU.Fetch()
	e.counts[opcode]++
	if opcode == cpu.CBPrefix {
		e.cbCounts[e.CPU.Memory.Read(pc+1)]++
	}
	if e.trace {
		e.Debugf("%04X  %-18s %s", pc, instr, e.CPU.Registers)
	}

	e.CPU.Execute(instr)
	e.steps++

	for _, o := range e.observers {
		if e.steps%o.every == 0 {
			o.fn(e.CPU, e.steps)
		}
	}
	return instr
}

func isSoftwareBreak(instr cpu.Instruction) bool {
	ld, ok := instr.(cpu.Load8)
	return ok && ld.Target == cpu.B && ld.Source == cpu.B
}
