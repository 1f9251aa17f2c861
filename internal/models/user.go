package models

// DefaultAvatarURL es el avatar que recibe todo usuario nuevo.
const DefaultAvatarURL = "/static/images/default_avatar.png"

// User representa el registro persistido de un usuario.
// El email NO se guarda dentro del registro: es la clave del documento.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	AvatarURL    string `json:"avatar_url"`
	Favorites    []int  `json:"favorites"`
}

// HasFavorite indica si el anime ya está en la lista de favoritos.
func (u *User) HasFavorite(malID int) bool {
	for _, id := range u.Favorites {
		if id == malID {
			return true
		}
	}
	return false
}

// UserProfile es la proyección pública del perfil (sin hash de contraseña).
type UserProfile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}
