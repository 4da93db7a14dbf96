package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleDTO struct {
	Email string `json:"email" validate:"required,email"`
	Plz   string `json:"plz" validate:"required,plz"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleDTO{Email: "a@example.com", Plz: "64283"})
	assert.NoError(t, err)
}

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	v := New()
	err := v.Validate(&sampleDTO{Email: "not-an-email", Plz: "1234"})
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "plz")
}

func TestValidate_PlzRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.de", Plz: "60311"}))
	assert.Error(t, v.Validate(&sampleDTO{Email: "a@b.de", Plz: "603111"}))
	assert.Error(t, v.Validate(&sampleDTO{Email: "a@b.de", Plz: "6031a"}))
}
