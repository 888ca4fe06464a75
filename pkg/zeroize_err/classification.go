// pkg/zeroize_err/classification.go
//
// Error classification with exit codes. The process boundary (cmd/root.go)
// is the only place that translates an error into an exit status.

package zeroize_err

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory classifies errors for appropriate handling
type ErrorCategory int

const (
	// CategorySystem - OS/filesystem issues (exit 1)
	CategorySystem ErrorCategory = iota
	// CategoryValidation - Input validation failures (exit 2)
	CategoryValidation
	// CategoryConfirmation - Failed or declined confirmation (exit 1)
	CategoryConfirmation
	// CategoryDependency - Missing external tools (exit 1)
	CategoryDependency
	// CategoryPermission - Permission denied / not root (exit 1)
	CategoryPermission
	// CategoryExternal - Invoked erase/query tool returned non-zero (exit 1)
	CategoryExternal
	// CategoryInternal - Bugs in zeroize itself (exit 3)
	CategoryInternal
)

// ClassifiedError wraps an error with category and remediation info
type ClassifiedError struct {
	Category    ErrorCategory
	Message     string
	Cause       error
	Remediation []string
}

func (e *ClassifiedError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Cause != nil && e.Cause.Error() != e.Message {
		sb.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	return sb.String()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error category
func (e *ClassifiedError) ExitCode() int {
	switch e.Category {
	case CategoryValidation:
		return 2
	case CategoryInternal:
		return 3
	default:
		return 1
	}
}

// GetRemediation extracts the remediation hints carried by a classified
// error, if any, looking through any wrapping layers.
func GetRemediation(err error) []string {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Remediation
	}
	return nil
}

// GetExitCode extracts an exit code from any error. Returns 0 for nil,
// the category code for classified errors, and 1 for everything else.
// Expected user errors (failed confirmations) still exit non-zero.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.ExitCode()
	}

	return 1
}

// NewValidationError creates an error for input validation failures
func NewValidationError(message string, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryValidation,
		Message:     message,
		Remediation: remediation,
	}
}

// NewDependencyError creates an error for a missing external tool
func NewDependencyError(dependency, operation string, remediation ...string) error {
	return &ClassifiedError{
		Category: CategoryDependency,
		Message: fmt.Sprintf("%s is required for %s but not found",
			dependency, operation),
		Remediation: remediation,
	}
}

// NewPermissionError creates an error for permission issues
func NewPermissionError(resource, operation string, remediation ...string) error {
	return &ClassifiedError{
		Category: CategoryPermission,
		Message: fmt.Sprintf("Permission denied: cannot %s %s",
			operation, resource),
		Remediation: remediation,
	}
}

// NewSystemError creates an error for OS/filesystem issues
func NewSystemError(message string, cause error, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategorySystem,
		Message:     message,
		Cause:       cause,
		Remediation: remediation,
	}
}

// NewExternalToolError creates an error for a non-zero exit from an invoked
// erase or query tool. There is no retry and no partial-state rollback.
func NewExternalToolError(tool string, cause error) error {
	return &ClassifiedError{
		Category: CategoryExternal,
		Message:  fmt.Sprintf("%s failed", tool),
		Cause:    cause,
	}
}

// NewInternalError creates an error for zeroize bugs
func NewInternalError(message string, cause error) error {
	return &ClassifiedError{
		Category: CategoryInternal,
		Message:  message,
		Cause:    cause,
	}
}
