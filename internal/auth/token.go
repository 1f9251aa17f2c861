package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL es la vigencia por defecto de un token de sesión.
const DefaultTokenTTL = 30 * time.Minute

// Errores de verificación. Ambos colapsan a un 401 genérico en el borde
// HTTP: el cliente nunca distingue cuál de los dos ocurrió.
var (
	// ErrTokenMalformed: el token no se pudo parsear o la firma no valida.
	ErrTokenMalformed = errors.New("token malformado o firma inválida")
	// ErrTokenExpired: la firma es válida pero el token ya expiró.
	ErrTokenExpired = errors.New("token expirado")
)

type sessionClaims struct {
	jwt.RegisteredClaims
}

// IssueToken firma un token HS256 con subject (email) y expiración
// absoluta issued_at + ttl. El secret es configuración de proceso: rotarlo
// invalida todos los tokens emitidos.
func IssueToken(subject string, secret []byte, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	return signed, expires, err
}

// VerifyToken valida firma y expiración, y retorna el subject (email).
func VerifyToken(tokenString string, secret []byte) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
