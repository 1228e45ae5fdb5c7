package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/sagarp07/college-portal/backend/internal/validation"
)

// CustomValidator adapts the shared validator to Echo's Validator
// interface so c.Validate(i) works inside handlers.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validation.Instance()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
