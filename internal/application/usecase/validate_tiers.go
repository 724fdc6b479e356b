package usecase

import (
	"fmt"

	"github.com/tierbank/depositcalc/internal/application/dto"
	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/valueobject"
)

// ValidateTiersUseCase checks a tier set for gaps, overlaps, and malformed
// bounds without running a calculation.
type ValidateTiersUseCase struct{}

func NewValidateTiersUseCase() *ValidateTiersUseCase {
	return &ValidateTiersUseCase{}
}

func (uc *ValidateTiersUseCase) Execute(inputs []dto.TierInput) error {
	tiers, err := parseTiers(inputs)
	if err != nil {
		return err
	}
	if err := valueobject.ValidateTierSet(tiers); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidTier, err)
	}
	return nil
}
