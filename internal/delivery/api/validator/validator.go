// Package validator adapts go-playground/validator to echo and maps failures to domain errors.
package validator

import (
	"reflect"
	"strings"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/errors"

	"github.com/go-playground/validator/v10"
)

// EmailFormatTag validates the registration email format.
const EmailFormatTag = "email_format"

// Rule identifies a failing field (by JSON name) and validation tag.
type Rule struct {
	Field string
	Tag   string
}

// Messages maps rules to the error reported for them.
type Messages map[Rule]*domainerrors.BaseError

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator reporting JSON field names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	if err := validate.RegisterValidation(EmailFormatTag, func(fl validator.FieldLevel) bool {
		return entity.IsValidEmail(fl.Field().String())
	}); err != nil {
		panic(errors.Wrap(err, "register email_format validation"))
	}

	return &Validator{validate: validate}
}

// Validate checks the struct tags of i.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FirstError converts a validation failure into the domain error of its first
// failing rule. Fields are checked in declaration order, so struct layout
// decides which message wins.
func FirstError(err error, messages Messages) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok || len(validationErrs) == 0 {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	first := validationErrs[0]
	if appErr, found := messages[Rule{Field: first.Field(), Tag: first.Tag()}]; found {
		return appErr
	}

	return domainerrors.ErrValidationFailed.WithDetails(first.Field() + " failed " + first.Tag())
}
