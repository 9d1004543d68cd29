package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/basisio"
)

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "lll", cmd.Use)
	assert.Contains(t, cmd.Long, "Lovász")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, cmdName := range []string{"reduce", "verify", "profile", "config"} {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	reduceCmd, _, err := cmd.Find([]string{"reduce"})
	require.NoError(t, err)
	outputFlag := reduceCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, "0.75", reduceCmd.Flags().Lookup("delta").DefValue)
}

func TestReduce_TextGolden(t *testing.T) {
	out, _, err := execute(t, "", "reduce",
		filepath.Join("testdata", "textbook.txt"),
		filepath.Join("testdata", "swap.yaml"),
	)
	require.NoError(t, err)
	golden(t).Assert(t, "reduce_text", []byte(out))
}

func TestReduce_JSON(t *testing.T) {
	out, _, err := execute(t, "", "reduce", "--format", "json", "-j", "2",
		filepath.Join("testdata", "knapsack.json"),
		filepath.Join("testdata", "textbook.txt"),
	)
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   []ReduceResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 2)

	// Results keep argument order.
	knapsack := resp.Data[0]
	assert.Equal(t, filepath.Join("testdata", "knapsack.json"), knapsack.Name)
	assert.Equal(t, 5, knapsack.Rows)
	assert.Equal(t, 6, knapsack.Cols)
	assert.Equal(t, 0.75, knapsack.Delta)
	assert.Equal(t, []float64{0, -2, 4, -4, 3, 1}, knapsack.Reduced[0])
	assert.Positive(t, knapsack.Stats.Swaps)

	textbook := resp.Data[1]
	assert.Equal(t, [][]float64{{0, 1, 0}, {1, 0, 1}, {-1, 0, 2}}, textbook.Reduced)
	assert.Equal(t, StatsResult{Iterations: 5, SizeReductions: 3, Swaps: 2, Orthogonalizations: 6}, textbook.Stats)
}

func TestReduce_StdinHeader(t *testing.T) {
	out, _, err := execute(t, "2 2\n201 37\n1648 297\n", "reduce")
	require.NoError(t, err)
	assert.Contains(t, out, "# stdin\n")
	assert.Contains(t, out, "Reduced matrix:\n1 32\n40 1\n")
}

func TestReduce_StdinHeaderless(t *testing.T) {
	out, _, err := execute(t, "201 37 999\n1648 297\n", "reduce", "--rows", "2", "--cols", "2", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Input matrix:\n201 37\n1648 297\n")
	assert.Contains(t, out, "Reduced matrix:\n1 32\n40 1\n")

	_, _, err = execute(t, "1 2\n", "reduce", "--rows", "2")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestReduce_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reduced.json.zst")
	_, _, err := execute(t, "", "reduce", "-o", path, filepath.Join("testdata", "swap.yaml"))
	require.NoError(t, err)

	m, err := basisio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {5, 0}}, m.ToRows())

	_, _, err = execute(t, "", "reduce", "-o", path,
		filepath.Join("testdata", "swap.yaml"), filepath.Join("testdata", "textbook.txt"))
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestReduce_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		code     string
		exitCode int
	}{
		{"missing file", []string{"reduce", "testdata/nope.txt"}, ErrCodeNotFound, ExitCommandError},
		{"short row", []string{"reduce", "testdata/short.txt"}, ErrCodeRead, ExitCommandError},
		{"degenerate", []string{"reduce", "testdata/degenerate.txt"}, ErrCodeDegenerate, ExitFailure},
		{"bad delta", []string{"reduce", "--delta", "1.5", "testdata/textbook.txt"}, ErrCodeParameter, ExitCommandError},
		{"stdin twice", []string{"reduce", "-", "-"}, ErrCodeParameter, ExitCommandError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, "1 1\n1\n", tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.exitCode, GetExitCode(err))
			assert.Contains(t, out, "Error ["+tc.code+"]")
		})
	}
}

func TestReduce_JSONError(t *testing.T) {
	out, _, err := execute(t, "", "--format", "json", "reduce", "testdata/degenerate.txt")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeDegenerate, resp.Error.Code)
}

func TestReduce_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lll.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_iterations: 1\noutput:\n  format: json\n"), 0o600))

	out, _, err := execute(t, "", "--config", path, "reduce", "testdata/textbook.txt")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, ErrCodeIterationLimit)
	assert.True(t, json.Valid([]byte(out)), "output.format from the config applies")

	require.NoError(t, os.WriteFile(path, []byte("delta: 3\n"), 0o600))
	_, _, err = execute(t, "", "--config", path, "reduce", "testdata/textbook.txt")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestReduce_VerboseAndProgress(t *testing.T) {
	_, errOut, err := execute(t, "", "-v", "reduce", "--progress", "testdata/textbook.txt")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Loaded testdata/textbook.txt (3x3)")
	assert.Contains(t, errOut, "swap")
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "", "--format", "xml", "reduce", "testdata/textbook.txt")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVerify_TextGolden(t *testing.T) {
	out, _, err := execute(t, "", "verify", "--against", "testdata/textbook.txt", "testdata/textbook_reduced.txt")
	require.NoError(t, err)
	golden(t).Assert(t, "verify_text", []byte(out))
}

func TestVerify_NotReduced(t *testing.T) {
	out, _, err := execute(t, "", "verify", "--format", "json", "testdata/swap.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string       `json:"status"`
		Data   VerifyResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.False(t, resp.Data.LovaszSatisfied)
	assert.Equal(t, 1, resp.Data.FirstLovaszViolation)
	assert.Nil(t, resp.Data.SameLattice)
}

func TestVerify_DifferentLattice(t *testing.T) {
	out, _, err := execute(t, "", "verify", "--against", "testdata/swap.yaml", "testdata/textbook_reduced.txt")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [")
}

func TestProfile(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "gso.svg")
	out, _, err := execute(t, "", "profile", "--plot", plot, "testdata/swap.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "# testdata/swap.yaml\n")
	// log2‖b*‖ of {(5,0),(0,1)} is {log2 5, 0}; reduced it is {0, log2 5}.
	assert.Contains(t, out, "  0     2.321928     0.000000\n")
	assert.Contains(t, out, "  1     0.000000     2.321928\n")
	assert.Contains(t, out, "hadamard ratio:       1.000000 -> 1.000000\n")
	assert.Contains(t, out, "shortest vector:      1 -> 1\n")
	assert.Contains(t, out, "plot written to "+plot)

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestConfigSample(t *testing.T) {
	out, _, err := execute(t, "", "config", "sample")
	require.NoError(t, err)
	assert.Contains(t, out, "delta: 0.75\n")
	assert.Contains(t, out, "format: text\n")

	out, _, err = execute(t, "", "--format", "json", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"delta": 0.75`)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
}
