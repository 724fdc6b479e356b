package model

import "errors"

// Validation errors surfaced before any ledger computation begins. The
// engine never fails mid-computation; degenerate inputs are rejected up
// front with one of these sentinels.
var (
	// ErrInvalidRange means the end date is not strictly after the start date.
	ErrInvalidRange = errors.New("end date must be after start date")

	// ErrInvalidTier means the tier set is empty, malformed, overlapping,
	// or has an open-ended tier in a non-final position.
	ErrInvalidTier = errors.New("invalid interest tier configuration")

	// ErrInvalidAmount means the principal is missing, unparsable, or not
	// strictly positive.
	ErrInvalidAmount = errors.New("principal must be a positive amount")
)
