package db

import (
	"fmt"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/models"
)

// Write validation at the data-access boundary. The document store itself is
// schema-flexible, so required fields are checked here before insertion.

func validateAttraction(a *models.Attraction) error {
	if a.Name == "" {
		return fmt.Errorf("%w: attraction name is required", ErrValidation)
	}
	if a.EntryFee < 0 {
		return fmt.Errorf("%w: entry fee must not be negative", ErrValidation)
	}
	return nil
}

func validateVisitor(v *models.Visitor) error {
	if v.Name == "" {
		return fmt.Errorf("%w: visitor name is required", ErrValidation)
	}
	return nil
}

func validateReview(r *models.Review) error {
	if r.Visitor.IsZero() {
		return fmt.Errorf("%w: review visitor is required", ErrValidation)
	}
	if r.Attraction.IsZero() {
		return fmt.Errorf("%w: review attraction is required", ErrValidation)
	}
	return nil
}
