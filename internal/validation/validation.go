// Package validation wraps go-playground/validator with translated, per-field
// error messages suitable for API responses.
package validation

import (
	"errors"
	"fmt"
	"strings"

	locale "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldError describes one validation violation on a named request field.
type FieldError struct {
	Field   string `json:"param,omitempty"`
	Message string `json:"msg"`
}

// Validator validates request payload structs against their validate tags.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a Validator with English message translations registered.
func New() (*Validator, error) {
	en := locale.New()
	uni := ut.New(en, en)

	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, errors.New("en translator not found")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register translations: %w", err)
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// Struct validates s and returns one FieldError per violation, or nil when the
// payload is valid.
func (v *Validator) Struct(s any) []FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: "invalid request body"}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fe.Translate(v.trans),
		})
	}

	return fieldErrors
}
