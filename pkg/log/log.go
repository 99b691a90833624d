// Package log provides the minimal levelled logger used across the emulator.
package log

import (
	"fmt"
	"io"
	"os"
)

// Logger is implemented by anything the emulator can report through.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

type logger struct {
	w     io.Writer
	debug bool
}

// New returns a Logger writing to stdout. Debug messages are only
// written when debug is true.
func New(debug bool) Logger {
	return NewWithWriter(os.Stdout, debug)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, debug bool) Logger {
	return &logger{w: w, debug: debug}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	fmt.Fprintf(l.w, "[DEBUG]\t"+format+"\n", args...)
}

// Fatal logs str as an error and exits the process with status 1.
func (l *logger) Fatal(str string) {
	fmt.Fprintf(l.w, "[FATAL]\t%s\n", str)
	os.Exit(1)
}
