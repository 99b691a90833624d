// Package mmu provides the flat 64kB address space seen by the CPU. Every
// 16-bit address is backed by plain storage; memory-mapped I/O registers
// are left to collaborators layered on top.
package mmu

import "github.com/thelolagemann/lr35902/internal/types"

// Size is the number of addressable bytes.
const Size = 0x10000

// Memory is the 64kB address space, zero-initialised on creation.
type Memory struct {
	raw [Size]uint8
}

// New returns zeroed memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write stores value at the given address.
func (m *Memory) Write(address uint16, value uint8) {
	m.raw[address] = value
}

// LoadBytes copies data into memory starting at offset, stopping at the
// end of the address space. It returns the number of bytes copied.
func (m *Memory) LoadBytes(offset uint16, data []byte) int {
	return copy(m.raw[offset:], data)
}

// Bytes exposes the backing storage for inspection tools.
func (m *Memory) Bytes() []byte {
	return m.raw[:]
}

var _ types.Stater = (*Memory)(nil)

// Load restores the full address space from s.
func (m *Memory) Load(s *types.State) {
	s.ReadData(m.raw[:])
}

// Save writes the full address space to s.
func (m *Memory) Save(s *types.State) {
	s.WriteData(m.raw[:])
}
