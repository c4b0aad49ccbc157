package validator

import (
	"testing"

	domainerrors "todo/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email_format"`
	Password string `json:"password" validate:"required"`
	Nickname string `json:"nickname,omitempty" validate:"omitempty,min=3"`
}

var signupMessages = Messages{
	{Field: "email", Tag: "required"}:     domainerrors.ErrEmailRequired,
	{Field: "email", Tag: EmailFormatTag}: domainerrors.ErrEmailInvalid,
	{Field: "password", Tag: "required"}:  domainerrors.ErrPasswordRequired,
}

func TestFirstError_Order(t *testing.T) {
	v := New()

	cases := []struct {
		name string
		form signupForm
		want error
	}{
		{"empty form", signupForm{}, domainerrors.ErrEmailRequired},
		{"bad email and no password", signupForm{Email: "nope"}, domainerrors.ErrEmailInvalid},
		{"no password", signupForm{Email: "jane@example.com"}, domainerrors.ErrPasswordRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := FirstError(v.Validate(&tc.form), signupMessages)

			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFirstError_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Email: "jane@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.NoError(t, FirstError(err, signupMessages))
}

func TestFirstError_UnmappedRule(t *testing.T) {
	v := New()

	err := FirstError(v.Validate(&signupForm{Email: "jane@example.com", Password: "secret", Nickname: "ab"}), signupMessages)

	appErr, ok := err.(*domainerrors.BaseError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "nickname failed min", appErr.Details())
}

func TestFirstError_NotAValidationError(t *testing.T) {
	v := New()

	err := FirstError(v.Validate("not a struct"), signupMessages)

	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
