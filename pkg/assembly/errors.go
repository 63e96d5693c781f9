package assembly

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrProductMismatch      = errors.New("producer and consumer have no common product to share")
	ErrKindViolation        = errors.New("edge between these node kinds is not allowed")
	ErrInvalidSplitPosition = errors.New("split position out of valid range")
	ErrIncompleteGraph      = errors.New("node with insufficient inbound/outbound edges")
)

// AssemblyError provides structured error information for graph operations.
type AssemblyError struct {
	Op    string // Operation that failed (e.g., "FormEdge", "Discover")
	Kind  Kind   // Kind of the node the operation was applied to
	Word  string // Product word of the node (if applicable)
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *AssemblyError) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Kind, e.Word, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *AssemblyError) Unwrap() error {
	return e.Cause
}
