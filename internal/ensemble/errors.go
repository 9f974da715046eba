package ensemble

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyEnsemble indicates a sweep or summary without members.
	ErrEmptyEnsemble = errors.New("ensemble: no samples")

	// ErrLengthMismatch indicates hypercube columns of different length.
	ErrLengthMismatch = errors.New("ensemble: sample columns differ in length")

	// ErrEmptyGrid indicates a profile request without positions.
	ErrEmptyGrid = errors.New("ensemble: empty spatial grid")

	// ErrRaggedField indicates members with different profile lengths.
	ErrRaggedField = errors.New("ensemble: members have different profile lengths")

	// ErrInvalidValue indicates a NaN or Inf concentration.
	ErrInvalidValue = errors.New("ensemble: invalid concentration (NaN or Inf)")
)

// MemberError wraps an error with the ensemble member it occurred in.
type MemberError struct {
	Member   int
	Position int
	Wrapped  error
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("member %d, node %d: %v", e.Member, e.Position, e.Wrapped)
}

func (e *MemberError) Unwrap() error {
	return e.Wrapped
}
