package cpu

import "fmt"

// UsageError is the panic value raised when an operation is handed an
// operand it does not support. It always points at a decoder/dispatcher
// mismatch rather than at anything the executed program did.
type UsageError struct {
	Op      string // the CPU operation, e.g. "Add16"
	Operand string // the rejected operand
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid operand %s for %s", e.Operand, e.Op)
}

// OpcodeError is the panic value raised when Fetch reads a byte that has
// no meaning in the base opcode table.
type OpcodeError struct {
	Opcode uint8
	PC     uint16 // address the opcode was read from
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func invalidOperand(op string, r RegCode) *UsageError {
	return &UsageError{Op: op, Operand: r.String()}
}
