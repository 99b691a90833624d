// Package emu stores CPU snapshots on disk.
//
// A state file is laid out as:
//
//	"LRST"     magic
//	version    1 byte
//	checksum   8 bytes, little-endian xxhash64 of the uncompressed state
//	payload    brotli compressed state
package emu

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"

	"github.com/thelolagemann/lr35902/internal/types"
)

const (
	stateMagic   = "LRST"
	stateVersion = 1
	headerSize   = len(stateMagic) + 1 + 8
)

var (
	ErrNotState      = errors.New("emu: not a state file")
	ErrStateVersion  = errors.New("emu: unsupported state version")
	ErrStateChecksum = errors.New("emu: state checksum mismatch")
)

// Digest returns the xxhash64 of b formatted as 16 hex digits.
func Digest(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

// Encode serialises s into the state file format.
func Encode(s *types.State) ([]byte, error) {
	raw := s.Bytes()
	compressed, err := cbrotli.Encode(raw, cbrotli.WriterOptions{
		Quality: 9,
	})
	if err != nil {
		return nil, fmt.Errorf("emu: compressing state: %w", err)
	}

	out := make([]byte, headerSize, headerSize+len(compressed))
	copy(out, stateMagic)
	out[len(stateMagic)] = stateVersion
	binary.LittleEndian.PutUint64(out[len(stateMagic)+1:], xxhash.Sum64(raw))
	return append(out, compressed...), nil
}

// Decode parses a state file, verifying its checksum.
func Decode(b []byte) (*types.State, error) {
	if len(b) < headerSize || !bytes.Equal(b[:len(stateMagic)], []byte(stateMagic)) {
		return nil, ErrNotState
	}
	if v := b[len(stateMagic)]; v != stateVersion {
		return nil, fmt.Errorf("%w: %d", ErrStateVersion, v)
	}
	sum := binary.LittleEndian.Uint64(b[len(stateMagic)+1:])

	raw, err := cbrotli.Decode(b[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("emu: decompressing state: %w", err)
	}
	if xxhash.Sum64(raw) != sum {
		return nil, ErrStateChecksum
	}
	return types.StateFromBytes(raw), nil
}

// SaveState writes s to path. The data is written to a temporary file in
// the same folder first and renamed over path once complete, so a crash
// never leaves a partial state behind.
func SaveState(path string, s *types.State) error {
	b, err := Encode(s)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), fmt.Sprintf("%s.*", filepath.Base(path)))
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("emu: writing state: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), path)
}

// LoadState reads and decodes the state file at path.
func LoadState(path string) (*types.State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
