package equity

import "fmt"

// InvalidInputError reports a malformed evaluation request: a bad
// player count, mismatched hand sizes, a duplicate card, or an
// oversized board. It is never retried.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func invalidInputf(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// BatchExecutionError reports a failed concurrent batch. The whole
// evaluation fails with it: merging the surviving batches would produce
// a plausible-looking but wrong percentage.
type BatchExecutionError struct {
	Batch int
	Err   error
}

func (e *BatchExecutionError) Error() string {
	return fmt.Sprintf("batch %d failed: %v", e.Batch, e.Err)
}

func (e *BatchExecutionError) Unwrap() error {
	return e.Err
}
