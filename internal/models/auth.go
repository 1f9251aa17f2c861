package models

// TokenResponse es la respuesta de un login exitoso.
// El frontend guarda access_token en localStorage.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PasswordUpdateRequest es el body de PUT /api/profile/password.
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// FavoriteToggleRequest es el body de POST /api/favorites/toggle.
type FavoriteToggleRequest struct {
	MalID int `json:"mal_id"`
}

// FavoriteToggleResponse indica el estado resultante del toggle.
type FavoriteToggleResponse struct {
	Message    string `json:"message"`
	IsFavorite bool   `json:"is_favorite"`
}

// ErrorResponse is a simple error shape for API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
