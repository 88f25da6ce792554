package models

import (
	"unicode"
	"unicode/utf8"
)

// ValidPassword enforces the account password policy: minimum 8 characters with
// at least one letter, one digit, and one non-alphanumeric symbol.
func ValidPassword(pw string) bool {
	if utf8.RuneCountInString(pw) < 8 {
		return false
	}
	var hasLetter, hasDigit, hasSymbol bool
	for _, c := range pw {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsDigit(c):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLetter && hasDigit && hasSymbol
}
