// Package disassembler produces instruction listings from raw LR35902
// machine code using the same decoder the CPU executes with.
package disassembler

import (
	"fmt"
	"io"
	"strings"

	"github.com/thelolagemann/lr35902/internal/cpu"
)

// Line is a single decoded instruction.
type Line struct {
	Address     uint16
	Bytes       []byte
	Instruction cpu.Instruction
}

// String renders the line as "ADDR  BYTES  MNEMONIC".
func (l Line) String() string {
	hex := make([]string, len(l.Bytes))
	for i, b := range l.Bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X  %-8s  %s", l.Address, strings.Join(hex, " "), l.Instruction)
}

// Disassemble decodes up to count instructions from program, which is
// assumed to be loaded at origin. A count of zero or less decodes the whole
// program. Nothing is executed. An illegal opcode ends the listing with an
// error; the lines decoded before it are still returned.
func Disassemble(program []byte, origin uint16, count int) (lines []Line, err error) {
	c := cpu.New()
	loaded := c.Memory.LoadBytes(origin, program)
	c.PC = origin

	defer func() {
		if r := recover(); r != nil {
			opErr, ok := r.(*cpu.OpcodeError)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("disassembler: %w", opErr)
		}
	}()

	for offset := 0; offset < loaded && (count <= 0 || len(lines) < count); {
		address := c.PC
		instr := c.Fetch()
		length := int(c.PC - address)
		end := offset + length
		if end > loaded {
			end = loaded
		}
		lines = append(lines, Line{
			Address:     address,
			Bytes:       program[offset:end],
			Instruction: instr,
		})
		offset += length
	}
	return lines, nil
}

// Write writes one line per instruction to w.
func Write(w io.Writer, lines []Line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
