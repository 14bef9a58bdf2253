package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcastellanos/conecta-api/internal/application/auth"
	"github.com/jcastellanos/conecta-api/internal/domain"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valida", "Secret123!", false},
		{"muy corta", "Ab1!", true},
		{"sin mayuscula", "secret123!", true},
		{"sin minuscula", "SECRET123!", true},
		{"sin digito", "SecretPwd!", true},
		{"sin especial", "Secret1234", true},
		{"vacia", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := auth.ValidatePassword(tc.password)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
