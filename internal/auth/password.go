package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword genera el hash bcrypt de la contraseña en texto plano.
// El texto plano nunca se persiste ni se loggea.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compara la contraseña contra el hash usando la rutina de
// bcrypt (comparación en tiempo constante), nunca re-derivando y comparando
// strings a mano.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsStrongPassword valida la política de fortaleza: largo >= 8 y al menos
// una minúscula, una mayúscula y un dígito.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}
