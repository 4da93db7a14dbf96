package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var plzPattern = regexp.MustCompile(`^\d{5}$`)

// registerCustomRules adds domain-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	// German postal codes are exactly five digits.
	return v.RegisterValidation("plz", func(fl validator.FieldLevel) bool {
		return plzPattern.MatchString(fl.Field().String())
	})
}
