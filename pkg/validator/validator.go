// Package validator holds the input-format rules for account requests.
// All checks are pure and fail closed.
package validator

import (
	"strings"
	"unicode"

	playground "github.com/go-playground/validator/v10"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 20

	maxNameLength     = 50
	maxLastNameLength = 50
	maxLocationLength = 255
)

var validate = playground.New()

// IsValidEmail reports whether s is a syntactically valid email address.
// No DNS or deliverability check is performed.
func IsValidEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// IsValidPassword reports whether s satisfies the password policy: 8-20
// characters with at least one lowercase letter, one uppercase letter, one
// digit, one symbol and one space.
//
// NOTE: the mandatory space is preserved from the observed behavior of the
// product this service replaces; it is almost certainly an inverted
// "no spaces" rule. Confirm with product before changing it.
func IsValidPassword(s string) bool {
	runes := []rune(s)
	if len(runes) < minPasswordLength || len(runes) > maxPasswordLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol && strings.Contains(s, " ")
}

// AreValidUserFields reports whether the profile fields fit their column
// bounds. Emptiness and character set are deliberately not checked.
func AreValidUserFields(name, lastName, location string) bool {
	return len(name) <= maxNameLength &&
		len(lastName) <= maxLastNameLength &&
		len(location) <= maxLocationLength
}
