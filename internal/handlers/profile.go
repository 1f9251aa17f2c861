package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yourorg/aniverse/internal/apperror"
	"github.com/yourorg/aniverse/internal/auth"
	"github.com/yourorg/aniverse/internal/middleware"
	"github.com/yourorg/aniverse/internal/models"
)

// GetProfile handles GET /api/profile/me.
func GetProfile(c *fiber.Ctx) error {
	email, ok := middleware.CurrentUser(c)
	if !ok {
		return apperror.NewAuthError("No se pudieron validar las credenciales.")
	}

	users, err := getStore().Load()
	if err != nil {
		return apperror.NewStorageError("No se pudo leer el registro.", err)
	}

	user, found := users[email]
	if !found {
		return apperror.NewNotFoundError("Usuario no encontrado.")
	}

	return c.JSON(models.UserProfile{
		Username:  user.Username,
		Email:     email,
		AvatarURL: user.AvatarURL,
	})
}

// UpdateProfile handles PUT /api/profile/update (multipart).
// Username y avatar son opcionales; se aplica solo lo que venga en el form.
func UpdateProfile(c *fiber.Ctx) error {
	email, ok := middleware.CurrentUser(c)
	if !ok {
		return apperror.NewAuthError("No se pudieron validar las credenciales.")
	}

	newUsername := strings.TrimSpace(c.FormValue("username"))

	var avatarURL string
	file, fileErr := c.FormFile("avatar")
	if fileErr == nil && file != nil {
		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return apperror.NewValidationError("El archivo debe ser una imagen.")
		}

		// localpart_timestamp_uuid8_nombre para evitar colisiones entre usuarios
		localPart := email
		if at := strings.Index(email, "@"); at > 0 {
			localPart = email[:at]
		}
		filename := fmt.Sprintf("%s_%d_%s_%s",
			localPart,
			time.Now().Unix(),
			uuid.New().String()[:8],
			filepath.Base(file.Filename))

		dest := filepath.Join(getAvatarDir(), filename)
		if err := c.SaveFile(file, dest); err != nil {
			return apperror.NewInternalError("No se pudo guardar el avatar.", err)
		}
		avatarURL = "/static/avatars/" + filename
		log.Printf("🖼️ Avatar actualizado para %s: %s", email, filename)
	}

	var profile models.UserProfile
	err := mutateUsers(func(users map[string]models.User) error {
		user, found := users[email]
		if !found {
			return apperror.NewNotFoundError("Usuario no encontrado.")
		}

		if newUsername != "" && newUsername != user.Username {
			for other, u := range users {
				if other != email && u.Username == newUsername {
					return apperror.NewValidationError("El nombre de usuario ya está en uso.")
				}
			}
			user.Username = newUsername
		}
		if avatarURL != "" {
			user.AvatarURL = avatarURL
		}

		users[email] = user
		profile = models.UserProfile{
			Username:  user.Username,
			Email:     email,
			AvatarURL: user.AvatarURL,
		}
		return nil
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":    "Perfil actualizado.",
		"username":   profile.Username,
		"avatar_url": profile.AvatarURL,
	})
}

// UpdatePassword handles PUT /api/profile/password.
func UpdatePassword(c *fiber.Ctx) error {
	email, ok := middleware.CurrentUser(c)
	if !ok {
		return apperror.NewAuthError("No se pudieron validar las credenciales.")
	}

	var req models.PasswordUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Cuerpo de la petición inválido.")
	}

	err := mutateUsers(func(users map[string]models.User) error {
		user, found := users[email]
		if !found {
			return apperror.NewNotFoundError("Usuario no encontrado.")
		}
		if !auth.VerifyPassword(req.CurrentPassword, user.PasswordHash) {
			return apperror.NewValidationError("Contraseña actual incorrecta.")
		}
		if !auth.IsStrongPassword(req.NewPassword) {
			return apperror.NewValidationError("La nueva contraseña no es segura.")
		}

		hash, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			return apperror.NewInternalError("No se pudo procesar la contraseña.", err)
		}
		user.PasswordHash = hash
		users[email] = user
		return nil
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Contraseña actualizada."})
}
