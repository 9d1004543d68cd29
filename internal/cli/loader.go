package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lattice/basisio"
	"github.com/katalvlaran/lattice/matrix"
)

// stdinName is the argument that selects standard input.
const stdinName = "-"

// Shape is an explicit basis shape for headerless stdin input; zero means "read the header".
type Shape struct {
	Rows, Cols int
}

func (s Shape) set() bool { return s.Rows != 0 || s.Cols != 0 }

// validate rejects a half-specified or negative shape.
func (s Shape) validate() error {
	if !s.set() {
		return nil
	}
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("--rows and --cols must both be positive (got %d, %d): %w",
			s.Rows, s.Cols, matrix.ErrInvalidDimensions)
	}
	return nil
}

// loadBasis reads the basis named by name: stdin for "-", a file otherwise.
// shape applies to stdin only.
func loadBasis(name string, stdin io.Reader, shape Shape) (*matrix.Dense, error) {
	if name != stdinName {
		return basisio.Open(name)
	}
	if shape.set() {
		return matrix.New(shape.Rows, shape.Cols, matrix.FromReader(stdin))
	}
	return basisio.ReadText(stdin)
}

// displayName is the label a basis is reported under.
func displayName(name string) string {
	if name == stdinName {
		return "stdin"
	}
	return name
}
