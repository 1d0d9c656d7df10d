package validation_test

import (
	"testing"

	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestEmailShape(t *testing.T) {
	validate := validator.New()
	validation.RegisterValidators(validate)

	valid := []string{
		"ada@example.com",
		"ada.lovelace@mail.example.co.uk",
		"a@b.cd",
		"weird+tag@sub.domain.io",
	}
	for _, email := range valid {
		assert.NoError(t, validate.Var(email, "email_shape"), email)
		assert.True(t, validation.IsEmailShape(email), email)
	}

	invalid := []string{
		"not-an-email",
		"missing-domain@",
		"@missing-local.com",
		"no-dot@domain",
		"dot-before-at.only@domain",
		"white space@example.com",
		"trailing-dot@example.",
		"",
	}
	for _, email := range invalid {
		assert.Error(t, validate.Var(email, "email_shape"), email)
		assert.False(t, validation.IsEmailShape(email), email)
	}
}
