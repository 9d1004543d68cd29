// SPDX-License-Identifier: MIT
// Package basisio - plain text encoding.
//
// Layout:
//
//	2 3
//	1 0 3
//	0 1 4
//
// The header carries the shape; body parsing is delegated to matrix.FromReader,
// so blank lines are skipped, surplus tokens on a row are ignored and a short
// row is an error.

package basisio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lattice/matrix"
)

const (
	opReadDims  = "ReadDims"
	opReadText  = "ReadText"
	opWriteText = "WriteText"
	opWriteRows = "WriteRows"
)

// ReadDims consumes the header line of br and returns the declared shape.
// Leading blank lines are skipped; tokens after the first two are ignored.
//
// Errors: ErrHeader, or the read error.
func ReadDims(br *bufio.Reader) (rows, cols int, err error) {
	var line string
	for {
		line, err = br.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			break
		}
		if err != nil {
			if err == io.EOF {
				return 0, 0, ioErrorf(opReadDims, "", fmt.Errorf("empty input: %w", ErrHeader))
			}
			return 0, 0, ioErrorf(opReadDims, "", err)
		}
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, ioErrorf(opReadDims, "", fmt.Errorf("%q: %w", strings.TrimSpace(line), ErrHeader))
	}
	if rows, err = strconv.Atoi(fields[0]); err != nil || rows <= 0 {
		return 0, 0, ioErrorf(opReadDims, "", fmt.Errorf("rows %q: %w", fields[0], ErrHeader))
	}
	if cols, err = strconv.Atoi(fields[1]); err != nil || cols <= 0 {
		return 0, 0, ioErrorf(opReadDims, "", fmt.Errorf("cols %q: %w", fields[1], ErrHeader))
	}

	return rows, cols, nil
}

// ReadText parses a header line followed by the basis rows.
//
// Errors: ErrHeader, matrix.ErrInvalidDimensions, matrix.ErrParse, matrix.ErrNaNInf.
func ReadText(r io.Reader) (*matrix.Dense, error) {
	br := bufio.NewReader(r)
	rows, cols, err := ReadDims(br)
	if err != nil {
		return nil, ioErrorf(opReadText, "", err)
	}
	m, err := matrix.New(rows, cols, matrix.FromReader(br))
	if err != nil {
		return nil, ioErrorf(opReadText, "", err)
	}

	return m, nil
}

// WriteRows writes the rows of m, one per line, values in shortest 'g' form
// separated by a single space. No header.
func WriteRows(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return ioErrorf(opWriteRows, "", err)
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			if v, err = m.At(i, j); err != nil {
				return ioErrorf(opWriteRows, "", err)
			}
			_, _ = bw.Write(strconv.AppendFloat(buf[:0], v, 'g', -1, 64))
		}
		_ = bw.WriteByte('\n')
	}
	if err = bw.Flush(); err != nil {
		return ioErrorf(opWriteRows, "", err)
	}

	return nil
}

// WriteText writes the "rows cols" header and the rows; ReadText reads it back exactly.
func WriteText(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return ioErrorf(opWriteText, "", err)
	}
	if _, err := fmt.Fprintf(w, "%d %d\n", m.Rows(), m.Cols()); err != nil {
		return ioErrorf(opWriteText, "", err)
	}
	if err := WriteRows(w, m); err != nil {
		return ioErrorf(opWriteText, "", err)
	}

	return nil
}
