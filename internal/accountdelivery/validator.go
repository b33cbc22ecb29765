package accountdelivery

import (
	"github.com/go-playground/validator/v10"

	"minibank/pkg/emailpkg"
)

// ValidEmail validates whether the value passes the account identifier grammar.
var ValidEmail validator.Func = func(fl validator.FieldLevel) bool {
	if email, ok := fl.Field().Interface().(string); ok {
		return emailpkg.IsValid(email)
	}

	return false
}
