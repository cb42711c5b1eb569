// Package validator binds go-playground/validator as Echo's request validator.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks the struct tags of a bound request payload. The raw
// validation error is returned; handlers translate it into the response
// envelope.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
