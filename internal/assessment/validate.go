package assessment

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"talentloop/internal/domain"
)

// SchemaValidator enforces the LLMAssessment contract: numeric ranges and
// enum membership via struct tags, plus the exact 11-dimension key set.
type SchemaValidator struct {
	validate *validator.Validate
}

func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate rejects malformed submissions outright. A rejected document never
// reaches the hybrid validator.
func (v *SchemaValidator) Validate(a domain.LLMAssessment) error {
	if err := v.validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if len(a.Dimensions) != len(domain.AllDimensions) {
		return fmt.Errorf("%w: expected %d dimensions, got %d", domain.ErrValidation, len(domain.AllDimensions), len(a.Dimensions))
	}
	for key := range a.Dimensions {
		if !domain.Dimension(key).Valid() {
			return fmt.Errorf("%w: unknown dimension %q", domain.ErrValidation, key)
		}
	}
	return nil
}
