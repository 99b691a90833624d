package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("utils: archive is empty")

// LoadFile loads the given file and performs decompression if necessary.
// Gzip, zip and 7z files are recognised by their extension; for archives
// the first file is returned. Anything else is returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	// try to assert the compression type from the file extension
	var decoder io.ReadCloser
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		var r *zip.Reader
		if r, err = zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("%s: %w", filename, ErrEmptyArchive)
		}
		decoder, err = r.File[0].Open()
	case ".7z":
		var r *sevenzip.Reader
		if r, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("%s: %w", filename, ErrEmptyArchive)
		}
		decoder, err = r.File[0].Open()
	default:
		// return the data as is
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	defer decoder.Close()

	// read the decompressed data into a byte slice
	if data, err = io.ReadAll(decoder); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}
