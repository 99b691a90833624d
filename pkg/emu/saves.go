package emu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash"
)

const stateExt = ".lrst"

// ErrNoState is returned by LatestState when a ROM has no saved states.
var ErrNoState = errors.New("emu: no saved state")

// state file naming convention:
// <xxhash of ROM>.<timestamp>.lrst

// StatePath returns the path of a new state file for rom in dir.
func StatePath(dir string, rom []byte, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%016x.%d%s", xxhash.Sum64(rom), now.Unix(), stateExt))
}

// ListStates returns the state files saved for rom in dir, the newest first.
// A missing folder holds no states.
func ListStates(dir string, rom []byte) ([]string, error) {
	files, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("%016x.", xxhash.Sum64(rom))
	var states []string
	for _, file := range files {
		if file.IsDir() || !isStateFile(file.Name()) || !strings.HasPrefix(file.Name(), prefix) {
			continue
		}
		states = append(states, filepath.Join(dir, file.Name()))
	}

	// sort the state files by the timestamp they were saved with
	sort.SliceStable(states, func(i, j int) bool {
		return parseTimestampFromFilename(states[i]) > parseTimestampFromFilename(states[j])
	})
	return states, nil
}

// LatestState returns the newest state file saved for rom in dir.
func LatestState(dir string, rom []byte) (string, error) {
	states, err := ListStates(dir, rom)
	if err != nil {
		return "", err
	}
	if len(states) == 0 {
		return "", ErrNoState
	}
	return states[0], nil
}

// parseTimestampFromFilename parses the timestamp from the given filename.
// The filename is expected to be in the format of "<...>.<timestamp>.lrst".
// Where <timestamp> is the number of seconds since the Unix epoch,
// and <...> is any string.
func parseTimestampFromFilename(filename string) int64 {
	// strip the file extension
	filename = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	// get the timestamp from the filename (the last part preceded by a dot)
	parts := strings.Split(filename, ".")
	n, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// isStateFile returns true if the given filename is a state file.
func isStateFile(filename string) bool {
	return strings.HasSuffix(filename, stateExt)
}
