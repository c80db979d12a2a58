package maven

import "fmt"

// ToolUnavailableError indicates the mvn executable is missing or not
// runnable. It short-circuits the invocation before any network call.
type ToolUnavailableError struct {
	// Tool is the executable that could not be used.
	Tool string
	// Reason is the underlying error.
	Reason error
}

// Error returns a user-friendly message naming the missing tool.
func (e *ToolUnavailableError) Error() string {
	return fmt.Sprintf("%s is not installed or not runnable: %v", e.Tool, e.Reason)
}

// Unwrap returns the underlying error.
func (e *ToolUnavailableError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ToolUnavailableError) Is(target error) bool {
	_, ok := target.(*ToolUnavailableError)
	return ok
}

// WriteError indicates the settings file could not be materialized on disk:
// directory creation failure, write failure, or rename failure. The caller
// must not trust the target path after receiving it.
type WriteError struct {
	// Path is the target settings path.
	Path string
	// Reason is the underlying filesystem error.
	Reason error
}

// Error returns a message naming the path and the filesystem failure.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write settings file %s: %v", e.Path, e.Reason)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *WriteError) Is(target error) bool {
	_, ok := target.(*WriteError)
	return ok
}
