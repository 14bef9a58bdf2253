package auth

import (
	"unicode"

	"github.com/jcastellanos/conecta-api/internal/domain"
)

// ValidatePassword aplica la política de passwords: mínimo 8 caracteres con
// mayúscula, minúscula, dígito y carácter especial.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return domain.ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return domain.ErrWeakPassword
	}
	return nil
}
