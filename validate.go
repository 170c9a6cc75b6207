package lambdapi

import (
	"context"

	"github.com/go-playground/validator/v10"
)

// PlaygroundValidator adapts go-playground/validator to the Validator
// capability. Struct tag failures become the structured 422 variant.
type PlaygroundValidator struct {
	validate *validator.Validate
}

// NewPlaygroundValidator returns a validator with the library defaults.
func NewPlaygroundValidator() *PlaygroundValidator {
	return &PlaygroundValidator{validate: validator.New()}
}

// Validate checks the struct tags of a decoded argument struct.
func (v *PlaygroundValidator) Validate(ctx context.Context, value interface{}) error {
	err := v.validate.StructCtx(ctx, value)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError and friends are malfunctions, not input
		// failures.
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fe.Error(),
		})
	}
	return &ValidationError{Fields: fields}
}
