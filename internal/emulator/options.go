package emulator

import (
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// Opt is a function that modifies an Emulator
// instance.
type Opt func(e *Emulator)

// WithLogger sets the logger used by the emulator and its CPU.
func WithLogger(l log.Logger) Opt {
	return func(e *Emulator) {
		e.Logger = l
	}
}

// WithTrace logs every instruction, with the registers as they were
// before it executed, at debug level.
func WithTrace() Opt {
	return func(e *Emulator) {
		e.trace = true
	}
}

// MaxSteps ends the run after n instructions. Zero means no limit.
func MaxSteps(n uint64) Opt {
	return func(e *Emulator) {
		e.maxSteps = n
	}
}

// WithBreakpoint ends the run before the instruction at address executes.
// Running again resumes from the breakpoint.
func WithBreakpoint(address uint16) Opt {
	return func(e *Emulator) {
		e.breakpoints[address] = struct{}{}
	}
}

// WithSoftwareBreakpoint ends the run after LD B, B executes, which test
// ROMs use to signal completion.
func WithSoftwareBreakpoint() Opt {
	return func(e *Emulator) {
		e.softwareBreak = true
	}
}

// WithState restores the CPU and memory from s once the ROM is loaded.
// A truncated state makes Run fail.
func WithState(s *types.State) Opt {
	return func(e *Emulator) {
		e.state = s
	}
}

// WithPC starts execution at address rather than at the ROM entry point.
func WithPC(address uint16) Opt {
	return func(e *Emulator) {
		e.startPC = address
		e.hasPC = true
	}
}

// WithObserver calls fn after every nth executed instruction.
func WithObserver(every uint64, fn Observer) Opt {
	if every == 0 {
		every = 1
	}
	return func(e *Emulator) {
		e.observers = append(e.observers, observer{every: every, fn: fn})
	}
}
