package textchunk

import "fmt"

// ErrConfig reports self-contradictory chunker configuration. It is
// returned from constructors only; chunking itself never raises it.
type ErrConfig struct {
	Message string
}

func (e *ErrConfig) Error() string {
	return "config: " + e.Message
}

// ErrBoundary reports a computed slice offset that does not sit on a UTF-8
// rune boundary. Input can never cause it: every offset is snapped to a
// boundary before slicing, so seeing this error means a chunker defect.
type ErrBoundary struct {
	Offset int
	Reason string
}

func (e *ErrBoundary) Error() string {
	return fmt.Sprintf("boundary violation at byte %d: %s", e.Offset, e.Reason)
}
