// ============================================================================
// AUTH MIDDLEWARE
// ============================================================================
// Resuelve el Bearer token del header Authorization a una identidad (email).
// Un único resolver con dos modos:
//   - RequireAuth: sin identidad => 401 genérico + WWW-Authenticate: Bearer
//   - OptionalAuth: sin identidad => continúa anónimo (búsqueda pública)
// En ambos modos el subject debe seguir existiendo en el Record Store.

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/aniverse/internal/apperror"
	"github.com/yourorg/aniverse/internal/auth"
	"github.com/yourorg/aniverse/internal/store"
)

const identityKey = "user_email"

// resolveIdentity extrae y valida el Bearer token. Cualquier fallo (header
// ausente, esquema incorrecto, token inválido/expirado, subject desconocido)
// produce simplemente "sin identidad"; el motivo no se propaga.
func resolveIdentity(c *fiber.Ctx, st store.Store, secret []byte) (string, bool) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	email, err := auth.VerifyToken(strings.TrimSpace(parts[1]), secret)
	if err != nil {
		return "", false
	}

	// El registro pudo desaparecer después de emitir el token
	users, err := st.Load()
	if err != nil {
		return "", false
	}
	if _, ok := users[email]; !ok {
		return "", false
	}

	return email, true
}

// RequireAuth exige una identidad válida; si no la hay responde 401.
// El mensaje es genérico a propósito: no distingue token expirado de
// malformado ni de subject inexistente.
func RequireAuth(st store.Store, secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := resolveIdentity(c, st, secret)
		if !ok {
			return apperror.NewAuthError("No se pudieron validar las credenciales.")
		}
		c.Locals(identityKey, email)
		return c.Next()
	}
}

// OptionalAuth intenta resolver la identidad pero nunca falla: las rutas
// públicas personalizan solo si hay identidad presente.
func OptionalAuth(st store.Store, secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if email, ok := resolveIdentity(c, st, secret); ok {
			c.Locals(identityKey, email)
		}
		return c.Next()
	}
}

// CurrentUser retorna la identidad resuelta por el middleware, si existe.
func CurrentUser(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals(identityKey).(string)
	return email, ok && email != ""
}
