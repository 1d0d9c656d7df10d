package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Simple email shape: local-part, @, domain with at least one dot.
	// Deliberately looser than full RFC validation — the mail provider is the
	// final authority on deliverability.
	emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("email_shape", EmailShape)
}

// EmailShape validates that a string looks like local@domain.tld with no
// whitespace and at least one dot after the @.
func EmailShape(fl validator.FieldLevel) bool {
	return emailShapeRegex.MatchString(fl.Field().String())
}

// IsEmailShape reports whether s matches the email shape pattern.
// Exposed directly for callers that validate a single value.
func IsEmailShape(s string) bool {
	return emailShapeRegex.MatchString(s)
}
