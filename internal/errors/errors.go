// Package errors provides structured error handling for the chlog CLI:
// categorized errors with actionable remediation, mapped to distinct exit
// codes by the command layer.
package errors

import "fmt"

// ErrorCategory represents the kind of failure that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid command arguments.
	Argument ErrorCategory = iota
	// Configuration errors are caused by an invalid or unreadable config.
	Configuration
	// Git errors mean the repository could not be read (not a repository,
	// broken history). They abort the run before any file is mutated.
	Git
	// Write errors mean the changelog or version file could not be
	// written.
	Write
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Git:
		return "Git Error"
	case Write:
		return "Write Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with a category and remediation guidance.
type CLIError struct {
	// Category is the kind of failure.
	Category ErrorCategory
	// Message describes what went wrong.
	Message string
	// Remediation lists actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax, for argument errors.
	Usage string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// New creates a CLIError in the given category.
func New(category ErrorCategory, message string, remediation ...string) *CLIError {
	return &CLIError{Category: category, Message: message, Remediation: remediation}
}

// NewWithUsage creates an argument error that includes correct usage syntax.
func NewWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// Wrap wraps an existing error with a category and message prefix.
func Wrap(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
	}
}

// AsCLIError returns the error as a *CLIError, or nil if it is not one.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
