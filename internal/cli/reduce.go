package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lattice/basisio"
	"github.com/katalvlaran/lattice/config"
	"github.com/katalvlaran/lattice/lll"
	"github.com/katalvlaran/lattice/matrix"
)

// ReduceOptions holds the flags of the reduce command.
type ReduceOptions struct {
	Delta    float64
	Shape    Shape
	Output   string
	Progress bool
	Jobs     int
}

// StatsResult mirrors lll.Stats for output.
type StatsResult struct {
	Iterations         int `json:"iterations"`
	SizeReductions     int `json:"size_reductions"`
	Swaps              int `json:"swaps"`
	Orthogonalizations int `json:"orthogonalizations"`
}

// ReduceResult is the outcome for one input basis.
type ReduceResult struct {
	Name    string      `json:"name"`
	Rows    int         `json:"rows"`
	Cols    int         `json:"cols"`
	Delta   float64     `json:"delta"`
	Input   [][]float64 `json:"input"`
	Reduced [][]float64 `json:"reduced"`
	Stats   StatsResult `json:"stats"`

	input, reduced *matrix.Dense
}

// ReduceReport is the ordered list of results; String renders the text report.
type ReduceReport []ReduceResult

// String renders one block per basis:
//
//	# name
//	A matrix RxC
//	Input matrix:
//	...
//
//	Reduced matrix:
//	...
func (r ReduceReport) String() string {
	var b strings.Builder
	for i, res := range r {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "# %s\n", res.Name)
		fmt.Fprintf(&b, "A matrix %dx%d\n", res.Rows, res.Cols)
		b.WriteString("Input matrix:\n")
		_ = basisio.WriteRows(&b, res.input)
		b.WriteString("\nReduced matrix:\n")
		_ = basisio.WriteRows(&b, res.reduced)
	}
	return b.String()
}

// NewReduceCommand creates the reduce command.
func NewReduceCommand(rootOpts *RootOptions) *cobra.Command {
	ro := &ReduceOptions{}

	cmd := &cobra.Command{
		Use:   "reduce [file...]",
		Short: "LLL-reduce one or more bases",
		Long: `Reduce each basis with the LLL algorithm and print the input and reduced bases.

With no file, or with "-", the basis is read from stdin. Stdin is text with a
"rows cols" header unless --rows and --cols are given. Several files are
reduced concurrently; results are printed in argument order.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReduce(rootOpts, ro, args, cmd)
		},
	}

	cmd.Flags().Float64Var(&ro.Delta, "delta", lll.DefaultDelta, "Lovász parameter in (0.25, 1); overrides the config file")
	cmd.Flags().IntVar(&ro.Shape.Rows, "rows", 0, "rows of a headerless stdin basis")
	cmd.Flags().IntVar(&ro.Shape.Cols, "cols", 0, "columns of a headerless stdin basis")
	cmd.Flags().StringVarP(&ro.Output, "output", "o", "", "also write the reduced basis to this file (single input only)")
	cmd.Flags().BoolVar(&ro.Progress, "progress", false, "show a progress bar on stderr")
	cmd.Flags().IntVarP(&ro.Jobs, "jobs", "j", 0, "bases reduced in parallel (0 = GOMAXPROCS)")

	return cmd
}

func runReduce(opts *RootOptions, ro *ReduceOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	cfg := opts.settings()
	log := opts.logger()

	delta := cfg.Delta
	if cmd.Flags().Changed("delta") {
		delta = ro.Delta
	}
	if err := lll.ValidateDelta(delta); err != nil {
		return formatter.Fail(err)
	}
	if err := ro.Shape.validate(); err != nil {
		return formatter.Fail(err)
	}
	if len(args) == 0 {
		args = []string{stdinName}
	}
	if ro.Output != "" && len(args) != 1 {
		return formatter.Fail(fmt.Errorf("--output needs exactly one input, got %d: %w", len(args), lll.ErrInvalidParameter))
	}

	// Inputs are read up front and in order; stdin can be consumed only once.
	bases := make([]*matrix.Dense, len(args))
	stdinSeen := false
	for i, name := range args {
		if name == stdinName {
			if stdinSeen {
				return formatter.Fail(fmt.Errorf("stdin given more than once: %w", lll.ErrInvalidParameter))
			}
			stdinSeen = true
		}
		b, err := loadBasis(name, cmd.InOrStdin(), ro.Shape)
		if err != nil {
			return formatter.Fail(fmt.Errorf("%s: %w", displayName(name), err))
		}
		formatter.VerboseLog("Loaded %s (%dx%d)", displayName(name), b.Rows(), b.Cols())
		bases[i] = b
	}

	var bar *progressbar.ProgressBar
	if ro.Progress {
		bar = progressbar.NewOptions(len(args),
			progressbar.OptionSetWriter(formatter.GetErrWriter()),
			progressbar.OptionSetDescription("Reducing bases"),
			progressbar.OptionShowCount(),
		)
	}

	jobs := ro.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	report := make(ReduceReport, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i := range args {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := displayName(args[i])
			res, err := reduceOne(name, bases[i], delta, cfg, log.With(zap.String("basis", name)))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			report[i] = res
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return formatter.Fail(err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if ro.Output != "" {
		if err := basisio.Create(ro.Output, report[0].reduced); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, ErrCodeWriteFailed, err)
		}
		formatter.VerboseLog("Wrote %s", ro.Output)
	}

	return formatter.Success(report)
}

// reduceOne reduces a copy of b; b itself is kept as the input snapshot.
func reduceOne(name string, b *matrix.Dense, delta float64, cfg config.Config, log *zap.Logger) (ReduceResult, error) {
	r, err := lll.NewReducer(delta, append(cfg.ReducerOptions(), lll.WithLogger(log))...)
	if err != nil {
		return ReduceResult{}, err
	}
	reduced := b.Clone()
	if err = r.Reduce(reduced); err != nil {
		return ReduceResult{}, err
	}
	s := r.Stats()
	log.Info("reduced",
		zap.Int("rows", b.Rows()),
		zap.Int("cols", b.Cols()),
		zap.Int("swaps", s.Swaps),
		zap.Int("size_reductions", s.SizeReductions),
	)

	return ReduceResult{
		Name:    name,
		Rows:    b.Rows(),
		Cols:    b.Cols(),
		Delta:   delta,
		Input:   b.ToRows(),
		Reduced: reduced.ToRows(),
		Stats: StatsResult{
			Iterations:         s.Iterations,
			SizeReductions:     s.SizeReductions,
			Swaps:              s.Swaps,
			Orthogonalizations: s.Orthogonalizations,
		},
		input:   b,
		reduced: reduced,
	}, nil
}
