package model

import (
	"time"

	"github.com/google/uuid"
)

// CalculationRecord is the persisted pairing of a request's parameters and
// the result they produced. The engine itself has no persistence
// responsibility; the application layer owns these records and can replay
// the parameters through the engine at any time.
type CalculationRecord struct {
	id        uuid.UUID
	params    CalculationParameters
	result    CalculationResult
	createdAt time.Time
}

// NewCalculationRecord creates a record with a fresh identifier.
func NewCalculationRecord(params CalculationParameters, result CalculationResult) CalculationRecord {
	return CalculationRecord{
		id:        uuid.New(),
		params:    params,
		result:    result,
		createdAt: time.Now().UTC(),
	}
}

// ReconstructCalculationRecord recreates a record from persistence
// (no validation, no fresh identifiers).
func ReconstructCalculationRecord(
	id uuid.UUID,
	params CalculationParameters,
	result CalculationResult,
	createdAt time.Time,
) CalculationRecord {
	return CalculationRecord{
		id:        id,
		params:    params,
		result:    result,
		createdAt: createdAt,
	}
}

// ID returns the record identifier.
func (r CalculationRecord) ID() uuid.UUID { return r.id }

// Parameters returns the original request parameters.
func (r CalculationRecord) Parameters() CalculationParameters { return r.params }

// Result returns the calculation result.
func (r CalculationRecord) Result() CalculationResult { return r.result }

// CreatedAt returns when the calculation was performed.
func (r CalculationRecord) CreatedAt() time.Time { return r.createdAt }
