package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/aniverse/internal/apperror"
	"github.com/yourorg/aniverse/internal/auth"
	"github.com/yourorg/aniverse/internal/debug"
	"github.com/yourorg/aniverse/internal/models"
)

// RegisterUser handles POST /register.
// El frontend envía un form (email, password, username). Validaciones en
// orden: email único, username único, contraseña fuerte.
func RegisterUser(c *fiber.Ctx) error {
	email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
	password := c.FormValue("password")
	username := strings.TrimSpace(c.FormValue("username"))

	if email == "" || password == "" || username == "" {
		return apperror.NewValidationError("Email, contraseña y nombre de usuario son obligatorios.")
	}
	if !strings.Contains(email, "@") {
		return apperror.NewValidationError("Email inválido.")
	}

	err := mutateUsers(func(users map[string]models.User) error {
		if _, exists := users[email]; exists {
			return apperror.NewValidationError("El email ya está registrado.")
		}
		for _, u := range users {
			if u.Username == username {
				return apperror.NewValidationError("El nombre de usuario ya está en uso.")
			}
		}
		if !auth.IsStrongPassword(password) {
			return apperror.NewValidationError(
				"La contraseña debe tener al menos 8 caracteres, incluyendo mayúsculas, minúsculas y números.")
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return apperror.NewInternalError("No se pudo procesar la contraseña.", err)
		}

		users[email] = models.User{
			Username:     username,
			PasswordHash: hash,
			AvatarURL:    models.DefaultAvatarURL,
			Favorites:    []int{},
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("✅ Usuario registrado: %s (%s)", username, email)
	debug.Event("user_registered", map[string]interface{}{"username": username})

	return c.JSON(fiber.Map{"message": "Registro exitoso."})
}

// Login handles POST /login.
// Email desconocido y contraseña incorrecta producen exactamente el mismo
// error genérico: nunca se revela cuál de los dos falló.
func Login(c *fiber.Ctx) error {
	email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
	password := c.FormValue("password")

	if email == "" || password == "" {
		return apperror.NewAuthError("Credenciales inválidas.")
	}

	users, err := getStore().Load()
	if err != nil {
		return apperror.NewStorageError("No se pudo leer el registro.", err)
	}

	user, ok := users[email]
	if !ok || !auth.VerifyPassword(password, user.PasswordHash) {
		return apperror.NewAuthError("Credenciales inválidas.")
	}

	token, _, err := auth.IssueToken(email, getJWTSecret(), getTokenTTL())
	if err != nil {
		return apperror.NewInternalError("No se pudo firmar el token.", err)
	}

	debug.Event("user_login", map[string]interface{}{"username": user.Username})

	c.Set("Cache-Control", "no-store")
	return c.JSON(models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
