// SPDX-License-Identifier: MIT
// Package matrix - construction policy for Dense.
//
// Purpose:
//   - Fix dimensions exactly once, at construction, and fill the buffer from one of
//     three sources: zeros, an externally supplied [][]float64, or a line reader.
//   - Reject data that does not fill rows×cols exactly (ErrInvalidDimensions) and
//     non-finite values under the default numeric policy (ErrNaNInf).
//
// Line-reader policy:
//   - Exactly `rows` non-blank lines are consumed; blank lines are skipped.
//   - A line with fewer than `cols` tokens is rejected; extra tokens are ignored.
//   - Tokens are parsed with strconv.ParseFloat(…, 64); failures yield ErrParse.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	ctxNew        = "New"
	ctxFromRows   = "FromRows"
	ctxFromReader = "FromReader"

	// maxLineBytes bounds a single input line (a very wide basis row).
	maxLineBytes = 16 << 20
)

// Source fills a freshly allocated Dense of fixed shape.
type Source interface {
	Load(dst *Dense) error
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(dst *Dense) error

// Load calls f(dst).
func (f SourceFunc) Load(dst *Dense) error { return f(dst) }

// New allocates a rows×cols Dense and fills it from src (nil means Zeros).
// Options adjust the numeric policy before the source runs.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shape or data that does not fit it.
//   - ErrNaNInf, ErrParse from the source.
//
// Complexity:
//   - Time O(r*c) plus the cost of the source.
func New(rows, cols int, src Source, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, err)
	}
	o := gatherOptions(opts...)
	m.validateNaNInf = o.validateNaNInf
	if src == nil {
		return m, nil
	}
	if err = src.Load(m); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, err)
	}

	return m, nil
}

// Zeros leaves the buffer zero-filled.
func Zeros() Source {
	return SourceFunc(func(*Dense) error { return nil })
}

// FromRows copies data row by row. len(data) must equal Rows() and every row
// must have exactly Cols() values.
func FromRows(data [][]float64) Source {
	return SourceFunc(func(dst *Dense) error {
		if len(data) != dst.r {
			return fmt.Errorf("%s: got %d rows, want %d: %w", ctxFromRows, len(data), dst.r, ErrInvalidDimensions)
		}
		var i, j int
		for i = 0; i < dst.r; i++ {
			if len(data[i]) != dst.c {
				return fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(data[i]), dst.c, ErrInvalidDimensions)
			}
			for j = 0; j < dst.c; j++ {
				if dst.validateNaNInf && isNonFinite(data[i][j]) {
					return denseErrorf(ctxFromRows, i, j, ErrNaNInf)
				}
			}
			copy(dst.row(i), data[i])
		}

		return nil
	})
}

// FromReader reads Rows() lines of at least Cols() whitespace-separated reals.
func FromReader(r io.Reader) Source {
	return SourceFunc(func(dst *Dense) error {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

		var (
			i, j   int
			line   int
			fields []string
			v      float64
			err    error
		)
		for i < dst.r && sc.Scan() {
			line++
			fields = strings.Fields(sc.Text())
			if len(fields) == 0 {
				continue // blank line
			}
			if len(fields) < dst.c {
				return fmt.Errorf("%s: line %d has %d values, want %d: %w", ctxFromReader, line, len(fields), dst.c, ErrInvalidDimensions)
			}
			for j = 0; j < dst.c; j++ {
				v, err = strconv.ParseFloat(fields[j], 64)
				if err != nil {
					return fmt.Errorf("%s: line %d token %q: %w", ctxFromReader, line, fields[j], ErrParse)
				}
				if dst.validateNaNInf && isNonFinite(v) {
					return denseErrorf(ctxFromReader, i, j, ErrNaNInf)
				}
				dst.data[i*dst.c+j] = v
			}
			i++
		}
		if err = sc.Err(); err != nil {
			return fmt.Errorf("%s: %w", ctxFromReader, err)
		}
		if i < dst.r {
			return fmt.Errorf("%s: got %d rows, want %d: %w", ctxFromReader, i, dst.r, ErrInvalidDimensions)
		}

		return nil
	})
}
