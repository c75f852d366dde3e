package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type packageForm struct {
	Name       string    `json:"name" validate:"required"`
	PickupDate time.Time `json:"pickup_date" validate:"required,future"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&registerForm{
		Email:           "not-an-email",
		Password:        "longenough",
		ConfirmPassword: "longenough",
	})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid email address", verr.Errors["email"])
	assert.NotContains(t, verr.Errors, "Email")
}

func TestValidate_PasswordRules(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&registerForm{
		Email:           "user@example.com",
		Password:        "short",
		ConfirmPassword: "different",
	})
	require.Error(t, err)

	verr := err.(*ValidationError)
	assert.Equal(t, "Must be 8 or more characters long", verr.Errors["password"])
	assert.Equal(t, "Fields do not match", verr.Errors["confirm_password"])
}

func TestValidate_FutureRule(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&packageForm{
		Name:       "Books",
		PickupDate: time.Now().Add(-time.Hour),
	})
	require.Error(t, err)
	verr := err.(*ValidationError)
	assert.Equal(t, "Must be a date in the future", verr.Errors["pickup_date"])

	err = v.Validate(&packageForm{
		Name:       "Books",
		PickupDate: time.Now().Add(24 * time.Hour),
	})
	assert.NoError(t, err)
}

func TestValidationError_FieldErrors(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Errors: map[string]string{
		"email": "This field is required",
	}}

	fields := verr.FieldErrors()
	require.Len(t, fields, 1)
	assert.Equal(t, "email", fields[0]["field"])
	assert.Equal(t, "This field is required", fields[0]["message"])
}
