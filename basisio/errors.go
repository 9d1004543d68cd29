// SPDX-License-Identifier: MIT

package basisio

import (
	"errors"
	"fmt"
)

var (
	// ErrHeader is returned when the text header is missing or is not two positive integers.
	ErrHeader = errors.New("basisio: invalid header")

	// ErrUnknownFormat is returned for a Format value outside Text, JSON and YAML.
	ErrUnknownFormat = errors.New("basisio: unknown format")
)

// ioErrorf tags err with the operation and (optionally) the file it concerns.
func ioErrorf(op, path string, err error) error {
	if path == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s %s: %w", op, path, err)
}
