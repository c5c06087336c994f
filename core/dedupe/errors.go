package dedupe

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOptions indicates the consolidator was configured incorrectly.
	ErrInvalidOptions = errors.New("invalid consolidation options")

	// ErrNotConverged indicates duplicates remained after the last allowed pass.
	ErrNotConverged = errors.New("consolidation did not converge")
)

// OptionsError reports an invalid option.
type OptionsError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *OptionsError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Field, e.Message)
}

// Is implements errors.Is support
func (e *OptionsError) Is(target error) bool {
	return target == ErrInvalidOptions
}

// ConvergenceError reports duplicates left over after MaxPasses passes.
type ConvergenceError struct {
	Passes    int
	Remaining []Duplicate
}

// Error implements the error interface
func (e *ConvergenceError) Error() string {
	parts := make([]string, 0, len(e.Remaining))
	for _, d := range e.Remaining {
		parts = append(parts, fmt.Sprintf("%s=%s (x%d)", d.Key, d.Value, d.Count))
	}
	return fmt.Sprintf("failed to converge after %d passes; still duplicated: %s", e.Passes, strings.Join(parts, ", "))
}

// Is implements errors.Is support
func (e *ConvergenceError) Is(target error) bool {
	return target == ErrNotConverged
}
