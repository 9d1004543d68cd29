package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/katalvlaran/lattice/basisio"
	"github.com/katalvlaran/lattice/config"
	"github.com/katalvlaran/lattice/lll"
	"github.com/katalvlaran/lattice/matrix"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Reduction failure or a basis that fails verification
	ExitCommandError = 2 // Command error (unreadable input, bad flags, bad config, etc.)
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric        = "E001" // Generic/unknown error
	ErrCodeRead           = "E002" // Malformed basis input
	ErrCodeDegenerate     = "E003" // Linearly dependent rows
	ErrCodeParameter      = "E004" // Invalid delta or flag combination
	ErrCodeNotFound       = "E005" // Path not found
	ErrCodeWriteFailed    = "E006" // Output file write error
	ErrCodeIterationLimit = "E007" // max_iterations exceeded
	ErrCodeNonFinite      = "E008" // NaN or Inf in input or during reduction
	ErrCodeConfig         = "E009" // Config file unreadable or invalid
	ErrCodeNotReduced     = "E010" // verify: basis is not δ-LLL-reduced
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classify maps a library error onto an output code and an exit code.
func classify(err error) (code string, exit int) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound, ExitCommandError
	case errors.Is(err, lll.ErrInvalidParameter):
		return ErrCodeParameter, ExitCommandError
	case errors.Is(err, config.ErrInvalidConfig):
		return ErrCodeConfig, ExitCommandError
	case errors.Is(err, basisio.ErrHeader),
		errors.Is(err, matrix.ErrParse),
		errors.Is(err, matrix.ErrInvalidDimensions):
		return ErrCodeRead, ExitCommandError
	case errors.Is(err, lll.ErrDegenerateBasis):
		return ErrCodeDegenerate, ExitFailure
	case errors.Is(err, lll.ErrIterationLimit):
		return ErrCodeIterationLimit, ExitFailure
	case errors.Is(err, matrix.ErrNaNInf):
		return ErrCodeNonFinite, ExitFailure
	default:
		return ErrCodeGeneric, ExitFailure
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E002", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// In text mode data is printed with fmt.Fprint; types render themselves via String.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == config.FormatJSON {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	_, err := fmt.Fprint(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == config.FormatJSON {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err in the configured format and returns the matching ExitError.
func (f *OutputFormatter) Fail(err error) error {
	code, exit := classify(err)
	_ = f.Error(code, err.Error(), nil)
	return WrapExitError(exit, code, err)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
