package journal

import "errors"

var (
	// ErrRecordNotFound is reported by a store when an update targets a record that no longer exists.
	ErrRecordNotFound = errors.New("journal record not found")
	// ErrInvalidID is reported by a store when a record id is negative.
	ErrInvalidID = errors.New("invalid record id")
)

// ReferenceNotFoundError indicates that a referenced entity does not exist.
// It is user-correctable: the save is rejected before any side effect.
type ReferenceNotFoundError struct {
	Ref string // "lecture" or "student"
}

func (e *ReferenceNotFoundError) Error() string {
	return e.Ref + " with specified id does not exist"
}

// UnexpectedDataError wraps a store fault or a violated referential-integrity
// assumption. These signal corruption or bugs, not user errors.
type UnexpectedDataError struct {
	Msg string
	Err error
}

func (e *UnexpectedDataError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *UnexpectedDataError) Unwrap() error { return e.Err }

// DataError wraps a lower-level storage error. Store implementations report
// all backend faults through it.
type DataError struct {
	Err error
}

func (e *DataError) Error() string { return "data access error: " + e.Err.Error() }

func (e *DataError) Unwrap() error { return e.Err }
