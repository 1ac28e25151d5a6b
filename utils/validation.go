package utils

import (
	"regexp"
	"strings"
)

var (
	phonePattern   = regexp.MustCompile(`^\+60\d{9,10}$`)
	voucherPattern = regexp.MustCompile(`^[A-Z0-9-]{6,32}$`)
)

// CanonicalValue returns the constant matching value case-insensitively.
func CanonicalValue(value string, constantValues []string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, r := range constantValues {
		if strings.EqualFold(r, value) {
			return r, true
		}
	}
	return "", false
}

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsStrongPassword requires a lower case letter, an upper case letter, a digit and one of @$!%*?.&
func IsStrongPassword(password string) bool {
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?.&", r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// NormalizeVoucherCode trims and upper-cases a code, reporting whether it has a valid shape.
func NormalizeVoucherCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	return code, voucherPattern.MatchString(code)
}
