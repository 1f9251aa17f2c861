package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/aniverse/internal/apperror"
	"github.com/yourorg/aniverse/internal/debug"
	"github.com/yourorg/aniverse/internal/middleware"
	"github.com/yourorg/aniverse/internal/models"
)

// ToggleFavorite handles POST /api/favorites/toggle.
// Si el anime ya está en favoritos se quita; si no, se agrega.
func ToggleFavorite(c *fiber.Ctx) error {
	email, ok := middleware.CurrentUser(c)
	if !ok {
		return apperror.NewAuthError("No se pudieron validar las credenciales.")
	}

	var req models.FavoriteToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Cuerpo de la petición inválido.")
	}
	if req.MalID <= 0 {
		return apperror.NewValidationError("mal_id inválido.")
	}

	var resp models.FavoriteToggleResponse
	err := mutateUsers(func(users map[string]models.User) error {
		user, found := users[email]
		if !found {
			return apperror.NewNotFoundError("Usuario no encontrado.")
		}

		if user.HasFavorite(req.MalID) {
			kept := make([]int, 0, len(user.Favorites))
			for _, id := range user.Favorites {
				if id != req.MalID {
					kept = append(kept, id)
				}
			}
			user.Favorites = kept
			resp = models.FavoriteToggleResponse{
				Message:    "Anime eliminado de favoritos.",
				IsFavorite: false,
			}
		} else {
			user.Favorites = append(user.Favorites, req.MalID)
			resp = models.FavoriteToggleResponse{
				Message:    "Anime agregado a favoritos.",
				IsFavorite: true,
			}
		}

		users[email] = user
		return nil
	})
	if err != nil {
		return err
	}

	debug.Event("favorite_toggled", map[string]interface{}{
		"mal_id":      req.MalID,
		"is_favorite": resp.IsFavorite,
	})

	return c.JSON(resp)
}

// ListFavorites handles GET /api/favorites.
func ListFavorites(c *fiber.Ctx) error {
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

	favorites := user.Favorites
	if favorites == nil {
		favorites = []int{}
	}
	return c.JSON(fiber.Map{"favorites": favorites})
}

// FavoriteStatus handles GET /api/favorites/status/:id.
// Un usuario sin registro responde false en lugar de 404: la página de
// detalle consulta este endpoint sin importar el estado de la cuenta.
func FavoriteStatus(c *fiber.Ctx) error {
	email, ok := middleware.CurrentUser(c)
	if !ok {
		return apperror.NewAuthError("No se pudieron validar las credenciales.")
	}

	malID, err := c.ParamsInt("id")
	if err != nil || malID <= 0 {
		return apperror.NewValidationError("mal_id inválido.")
	}

	users, err := getStore().Load()
	if err != nil {
		return apperror.NewStorageError("No se pudo leer el registro.", err)
	}

	user, found := users[email]
	if !found {
		return c.JSON(fiber.Map{"is_favorite": false})
	}

	return c.JSON(fiber.Map{"is_favorite": user.HasFavorite(malID)})
}
