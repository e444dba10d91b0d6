package runner

import (
	"fmt"
	"strings"
)

// ScriptNotFoundError indicates the cleaner script is missing from every known location
type ScriptNotFoundError struct {
	Checked []string
}

func (e *ScriptNotFoundError) Error() string {
	return fmt.Sprintf("cleaner script not found; checked: %s", strings.Join(e.Checked, ", "))
}

// ScriptExecutionError indicates the script exited non-zero. Message holds
// the log file contents when the log exists, otherwise the raw stderr.
type ScriptExecutionError struct {
	Message string
}

func (e *ScriptExecutionError) Error() string {
	return fmt.Sprintf("cleaning script failed: %s", e.Message)
}

// ResultsMissingError indicates the script exited zero without writing its results file
type ResultsMissingError struct {
	Path string
}

func (e *ResultsMissingError) Error() string {
	return fmt.Sprintf("results file not created: %s", e.Path)
}

// ResultsParseError indicates the results file exists but is not valid result JSON
type ResultsParseError struct {
	Path string
	Err  error
}

func (e *ResultsParseError) Error() string {
	return fmt.Sprintf("parse results file %s: %v", e.Path, e.Err)
}

func (e *ResultsParseError) Unwrap() error {
	return e.Err
}
