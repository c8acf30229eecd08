package align

import "errors"

// Sentinel errors returned by the alignment engine.
var (
	// ErrInvalidCapacity indicates that NewAligner was asked for a negative capacity.
	ErrInvalidCapacity = errors.New("align: maximum lengths must be >= 0")

	// ErrCapacityExceeded indicates that a sequence length exceeds the
	// capacity fixed at construction. Nothing is computed.
	ErrCapacityExceeded = errors.New("align: sequence length exceeds preallocated capacity")

	// ErrNegativeLength indicates that a negative sequence length was passed.
	ErrNegativeLength = errors.New("align: sequence length must be >= 0")

	// ErrNilScoring indicates a nil similarity or gap-cost function.
	ErrNilScoring = errors.New("align: similarity and gap cost must be non-nil")

	// ErrInvalidState indicates a result query before any alignment completed.
	ErrInvalidState = errors.New("align: no alignment has been computed")

	// ErrInternalIndex indicates a broken DP or traceback invariant.
	// It should be unreachable.
	ErrInternalIndex = errors.New("align: internal index fault")

	// ErrSequenceMismatch indicates that the sequences handed to the renderer
	// are shorter or longer than the lengths the alignment was computed for.
	ErrSequenceMismatch = errors.New("align: sequence lengths do not match the alignment")
)
