package types

import "errors"

// ErrStateTruncated is reported by State.Err when a read ran past the end
// of the underlying data.
var ErrStateTruncated = errors.New("state: truncated data")

// State is a flat little-endian byte buffer that machine components
// serialise themselves into. It is used to save and load snapshots.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	truncated    bool
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new, empty state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition rewinds the read position to the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
	s.truncated = false
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

// take returns the next n bytes, or nil if fewer than n remain.
func (s *State) take(n int) []byte {
	if s.readPosition+n > len(s.raw) {
		s.readPosition = len(s.raw)
		s.truncated = true
		return nil
	}
	b := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return b
}

func (s *State) Read8() uint8 {
	b := s.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (s *State) Read16() uint16 {
	b := s.take(2)
	if b == nil {
		return 0
	}
	return uint16(b[0]) | uint16(b[1])<<8
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

// ReadData fills p from the state.
func (s *State) ReadData(p []byte) {
	copy(p, s.take(len(p)))
}

// Err returns ErrStateTruncated if any read has run out of data.
func (s *State) Err() error {
	if s.truncated {
		return ErrStateTruncated
	}
	return nil
}

// Bytes returns the raw state data.
func (s *State) Bytes() []byte {
	return s.raw
}
