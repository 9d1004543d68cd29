package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lattice/lll"
	"github.com/katalvlaran/lattice/profile"
)

// ProfileOptions holds the flags of the profile command.
type ProfileOptions struct {
	Delta float64
	Plot  string
}

// ProfileResult is the Gram-Schmidt profile log2‖b*_i‖ before and after reduction.
type ProfileResult struct {
	Name   string    `json:"name"`
	Delta  float64   `json:"delta"`
	Before []float64 `json:"before"`
	After  []float64 `json:"after"`

	QualityBefore lll.Quality `json:"quality_before"`
	QualityAfter  lll.Quality `json:"quality_after"`

	Plot string `json:"plot,omitempty"`
}

func (p ProfileResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", p.Name)
	fmt.Fprintf(&b, "%3s %12s %12s\n", "i", "input", "reduced")
	for i := range p.Before {
		fmt.Fprintf(&b, "%3d %12.6f %12.6f\n", i, p.Before[i], p.After[i])
	}
	fmt.Fprintf(&b, "orthogonality defect: %g -> %g\n", p.QualityBefore.OrthogonalityDefect, p.QualityAfter.OrthogonalityDefect)
	fmt.Fprintf(&b, "hadamard ratio:       %.6f -> %.6f\n", p.QualityBefore.HadamardRatio, p.QualityAfter.HadamardRatio)
	fmt.Fprintf(&b, "shortest vector:      %g -> %g\n", p.QualityBefore.Shortest, p.QualityAfter.Shortest)
	if p.Plot != "" {
		fmt.Fprintf(&b, "plot written to %s\n", p.Plot)
	}
	return b.String()
}

// NewProfileCommand creates the profile command.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	po := &ProfileOptions{}

	cmd := &cobra.Command{
		Use:   "profile <file>",
		Short: "Show the Gram-Schmidt profile before and after reduction",
		Long: `Print log2 of the Gram-Schmidt norms ‖b*_i‖ of the basis and of its LLL
reduction, followed by the orthogonality defect, the Hadamard ratio and
the shortest row length of both bases. With --plot, also draw both profiles (.png, .svg, .pdf by extension).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(rootOpts, po, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&po.Delta, "delta", lll.DefaultDelta, "Lovász parameter in (0.25, 1); overrides the config file")
	cmd.Flags().StringVar(&po.Plot, "plot", "", "write a chart of both profiles to this file")

	return cmd
}

func runProfile(opts *RootOptions, po *ProfileOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	cfg := opts.settings()

	delta := cfg.Delta
	if cmd.Flags().Changed("delta") {
		delta = po.Delta
	}
	if err := lll.ValidateDelta(delta); err != nil {
		return formatter.Fail(err)
	}

	basis, err := loadBasis(name, cmd.InOrStdin(), Shape{})
	if err != nil {
		return formatter.Fail(fmt.Errorf("%s: %w", displayName(name), err))
	}
	eps := lll.WithEpsilon(cfg.Epsilon)
	before, err := lll.Profile(basis, eps)
	if err != nil {
		return formatter.Fail(err)
	}
	reduced := basis.Clone()
	if err = lll.Reduce(reduced, delta, append(cfg.ReducerOptions(), lll.WithLogger(opts.logger()))...); err != nil {
		return formatter.Fail(err)
	}
	after, err := lll.Profile(reduced, eps)
	if err != nil {
		return formatter.Fail(err)
	}

	qb, err := lll.Measure(basis, eps)
	if err != nil {
		return formatter.Fail(err)
	}
	qa, err := lll.Measure(reduced, eps)
	if err != nil {
		return formatter.Fail(err)
	}

	res := ProfileResult{
		Name:          displayName(name),
		Delta:         delta,
		Before:        before,
		After:         after,
		QualityBefore: qb,
		QualityAfter:  qa,
	}
	if po.Plot != "" {
		if err = profile.Render(before, after, po.Plot); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, ErrCodeWriteFailed, err)
		}
		res.Plot = po.Plot
	}

	return formatter.Success(res)
}
