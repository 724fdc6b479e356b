package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tierbank/depositcalc/internal/platform/events"
)

const TypeCalculationCompleted = "calculation.completed"

// CalculationCompleted is emitted after a calculation run has been
// persisted to history. Downstream consumers (reporting, auditing) get
// the headline figures without re-running the engine.
type CalculationCompleted struct {
	ID            uuid.UUID `json:"event_id"`
	CalculationID uuid.UUID `json:"calculation_id"`
	Principal     string    `json:"principal"`
	TotalInterest string    `json:"total_interest"`
	FinalAmount   string    `json:"final_amount"`
	TotalDays     int       `json:"total_days"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Occurred      time.Time `json:"occurred_at"`
}

var _ events.DomainEvent = CalculationCompleted{}

func NewCalculationCompleted(
	calculationID uuid.UUID,
	principal, totalInterest, finalAmount decimal.Decimal,
	totalDays int,
	startDate, endDate time.Time,
) CalculationCompleted {
	return CalculationCompleted{
		ID:            uuid.New(),
		CalculationID: calculationID,
		Principal:     principal.String(),
		TotalInterest: totalInterest.String(),
		FinalAmount:   finalAmount.String(),
		TotalDays:     totalDays,
		StartDate:     startDate,
		EndDate:       endDate,
		Occurred:      time.Now().UTC(),
	}
}

func (e CalculationCompleted) EventID() uuid.UUID     { return e.ID }
func (e CalculationCompleted) EventType() string      { return TypeCalculationCompleted }
func (e CalculationCompleted) AggregateID() uuid.UUID { return e.CalculationID }
func (e CalculationCompleted) OccurredAt() time.Time  { return e.Occurred }

// Payload serializes the event body. Marshaling a struct of these field
// types cannot fail, so the error is discarded.
func (e CalculationCompleted) Payload() []byte {
	payload, _ := json.Marshal(e)
	return payload
}
