// SPDX-License-Identifier: MIT
// Package basisio - format dispatch and file access.

package basisio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/lattice/matrix"
)

const (
	opOpen   = "Open"
	opCreate = "Create"
	opRead   = "Read"
	opWrite  = "Write"

	zstdExt = ".zst"
)

// Format selects an encoding.
type Format int

const (
	Text Format = iota
	JSON
	YAML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath infers the encoding from path's extension, looking through a
// trailing ".zst". Unrecognized extensions are Text.
func FormatFromPath(path string) (f Format, compressed bool) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, zstdExt) {
		compressed = true
		name = strings.TrimSuffix(name, zstdExt)
	}
	switch filepath.Ext(name) {
	case ".json":
		return JSON, compressed
	case ".yaml", ".yml":
		return YAML, compressed
	default:
		return Text, compressed
	}
}

// Read decodes a basis from r in format f.
func Read(r io.Reader, f Format) (*matrix.Dense, error) {
	switch f {
	case Text:
		return ReadText(r)
	case JSON:
		return ReadJSON(r)
	case YAML:
		return ReadYAML(r)
	default:
		return nil, ioErrorf(opRead, "", fmt.Errorf("%v: %w", f, ErrUnknownFormat))
	}
}

// Write encodes m to w in format f.
func Write(w io.Writer, m *matrix.Dense, f Format) error {
	switch f {
	case Text:
		return WriteText(w, m)
	case JSON:
		return WriteJSON(w, m)
	case YAML:
		return WriteYAML(w, m)
	default:
		return ioErrorf(opWrite, "", fmt.Errorf("%v: %w", f, ErrUnknownFormat))
	}
}

// Open reads the basis stored at path.
func Open(path string) (*matrix.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opOpen, path, err)
	}
	defer file.Close()

	f, compressed := FormatFromPath(path)
	var r io.Reader = file
	if compressed {
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, ioErrorf(opOpen, path, err)
		}
		defer dec.Close()
		r = dec
	}

	m, err := Read(r, f)
	if err != nil {
		return nil, ioErrorf(opOpen, path, err)
	}

	return m, nil
}

// Create writes m to path, truncating any existing file.
func Create(path string, m *matrix.Dense) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return ioErrorf(opCreate, path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = ioErrorf(opCreate, path, cerr)
		}
	}()

	f, compressed := FormatFromPath(path)
	if !compressed {
		if err = Write(file, m, f); err != nil {
			return ioErrorf(opCreate, path, err)
		}
		return nil
	}

	enc, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return ioErrorf(opCreate, path, err)
	}
	if err = Write(enc, m, f); err != nil {
		_ = enc.Close()
		return ioErrorf(opCreate, path, err)
	}
	if err = enc.Close(); err != nil {
		return ioErrorf(opCreate, path, err)
	}

	return nil
}
