package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lattice/lll"
)

// VerifyOptions holds the flags of the verify command.
type VerifyOptions struct {
	Delta     float64
	Against   string
	Tolerance float64
}

// VerifyResult holds verification results.
type VerifyResult struct {
	Name                 string  `json:"name"`
	Delta                float64 `json:"delta"`
	Reduced              bool    `json:"reduced"`
	SizeReduced          bool    `json:"size_reduced"`
	LovaszSatisfied      bool    `json:"lovasz_satisfied"`
	MaxAbsMu             float64 `json:"max_abs_mu"`
	FirstLovaszViolation int     `json:"first_lovasz_violation"`
	GramDeterminant      float64 `json:"gram_determinant"`
	Against              string  `json:"against,omitempty"`
	SameLattice          *bool   `json:"same_lattice,omitempty"`
}

func (v VerifyResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "basis: %s\n", v.Name)
	fmt.Fprintf(&b, "delta: %g\n", v.Delta)
	fmt.Fprintf(&b, "size reduced: %t (max |mu| = %g)\n", v.SizeReduced, v.MaxAbsMu)
	if v.LovaszSatisfied {
		b.WriteString("lovasz condition: true\n")
	} else {
		fmt.Fprintf(&b, "lovasz condition: false (first violation at k=%d)\n", v.FirstLovaszViolation)
	}
	fmt.Fprintf(&b, "gram determinant: %.12g\n", v.GramDeterminant)
	if v.SameLattice != nil {
		fmt.Fprintf(&b, "same lattice as %s: %t\n", v.Against, *v.SameLattice)
	}
	if v.Reduced {
		b.WriteString("✓ basis is LLL-reduced\n")
	} else {
		b.WriteString("✗ basis is not LLL-reduced\n")
	}
	return b.String()
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	vo := &VerifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that a basis is LLL-reduced",
		Long: `Check size reduction and the Lovász condition of a basis and print its
Gram determinant. With --against, also check that both bases span the same
lattice (an integer transform with determinant ±1 maps one onto the other).

Exits with 1 when a check fails.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, vo, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&vo.Delta, "delta", lll.DefaultDelta, "Lovász parameter in (0.25, 1); overrides the config file")
	cmd.Flags().StringVar(&vo.Against, "against", "", "original basis the file should be a reduction of")
	cmd.Flags().Float64Var(&vo.Tolerance, "tolerance", 1e-6, "integrality tolerance for the --against transform")

	return cmd
}

func runVerify(opts *RootOptions, vo *VerifyOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	cfg := opts.settings()

	delta := cfg.Delta
	if cmd.Flags().Changed("delta") {
		delta = vo.Delta
	}

	basis, err := loadBasis(name, cmd.InOrStdin(), Shape{})
	if err != nil {
		return formatter.Fail(fmt.Errorf("%s: %w", displayName(name), err))
	}
	rep, err := lll.Check(basis, delta, lll.WithEpsilon(cfg.Epsilon))
	if err != nil {
		return formatter.Fail(err)
	}
	det, err := lll.GramDeterminant(basis)
	if err != nil {
		return formatter.Fail(err)
	}

	res := VerifyResult{
		Name:                 displayName(name),
		Delta:                delta,
		Reduced:              rep.Reduced(),
		SizeReduced:          rep.SizeReduced,
		LovaszSatisfied:      rep.LovaszSatisfied,
		MaxAbsMu:             rep.MaxAbsMu,
		FirstLovaszViolation: rep.FirstLovaszViolation,
		GramDeterminant:      det,
	}

	sameLattice := true
	if vo.Against != "" {
		original, err := loadBasis(vo.Against, cmd.InOrStdin(), Shape{})
		if err != nil {
			return formatter.Fail(fmt.Errorf("%s: %w", displayName(vo.Against), err))
		}
		if sameLattice, err = lll.IsUnimodular(original, basis, vo.Tolerance); err != nil {
			return formatter.Fail(err)
		}
		res.Against = displayName(vo.Against)
		res.SameLattice = &sameLattice
	}

	if err = formatter.Success(res); err != nil {
		return err
	}
	if !res.Reduced || !sameLattice {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %s is not an LLL reduction", ErrCodeNotReduced, res.Name))
	}
	return nil
}
