package models

// AnimeSearchResult es el formato que retornamos al frontend para
// búsquedas y tendencias. El título se deja en inglés/japonés por
// precisión; la sinopsis llega ya traducida.
type AnimeSearchResult struct {
	MalID    int    `json:"mal_id"`
	Title    string `json:"title"`
	Synopsis string `json:"synopsis,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// CharacterResult representa un personaje del anime ("Main" o "Supporting").
type CharacterResult struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Role     string `json:"role"`
}
