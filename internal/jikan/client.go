// ============================================================================
// Jikan Client - AniVerse
// ============================================================================
// Cliente HTTP para el catálogo de metadata de anime (Jikan v4, la API
// pública de MyAnimeList). Es un colaborador externo: se consume con timeout
// acotado y se trata como black box. Sin retries ni backoff.
// ============================================================================

package jikan

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Cliente para la API de Jikan
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient crea un nuevo cliente del catálogo.
// Timeout de 10s: la traducción posterior ya hace lenta la búsqueda,
// no podemos permitir además un upstream colgado.
func NewClient() *Client {
	baseURL := os.Getenv("JIKAN_URL")
	if baseURL == "" {
		baseURL = "https://api.jikan.moe/v4"
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Anime es la proyección que usamos de una entrada del catálogo.
type Anime struct {
	MalID         int
	Title         string
	Synopsis      string
	ImageURL      string
	LargeImageURL string
}

// Character es un personaje con su rol ("Main" / "Supporting").
type Character struct {
	Name     string
	ImageURL string
	Role     string
}

// SearchParams son los filtros soportados por la búsqueda.
type SearchParams struct {
	Query string
	Genre int
	Year  int
	Limit int
}

// Formato wire de Jikan (solo los campos que proyectamos)

type animeEntry struct {
	MalID    int    `json:"mal_id"`
	Title    string `json:"title"`
	Synopsis string `json:"synopsis"`
	Images   struct {
		JPG struct {
			ImageURL      string `json:"image_url"`
			LargeImageURL string `json:"large_image_url"`
		} `json:"jpg"`
	} `json:"images"`
}

type animeListResponse struct {
	Data []animeEntry `json:"data"`
}

type characterEntry struct {
	Character struct {
		Name   string `json:"name"`
		Images struct {
			JPG struct {
				ImageURL string `json:"image_url"`
			} `json:"jpg"`
		} `json:"images"`
	} `json:"character"`
	Role string `json:"role"`
}

type characterListResponse struct {
	Data []characterEntry `json:"data"`
}

func toAnime(e animeEntry) Anime {
	return Anime{
		MalID:         e.MalID,
		Title:         e.Title,
		Synopsis:      e.Synopsis,
		ImageURL:      e.Images.JPG.ImageURL,
		LargeImageURL: e.Images.JPG.LargeImageURL,
	}
}

func (c *Client) getJSON(path string, params url.Values, out interface{}) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	resp, err := c.httpClient.Get(fullURL)
	if err != nil {
		return fmt.Errorf("consultando catálogo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catálogo retornó status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parseando respuesta del catálogo: %w", err)
	}
	return nil
}

// Search busca animes por texto, género y/o año.
func (c *Client) Search(p SearchParams) ([]Anime, error) {
	params := url.Values{}
	if p.Query != "" {
		params.Add("q", p.Query)
	}
	if p.Genre > 0 {
		params.Add("genres", strconv.Itoa(p.Genre))
	}
	if p.Year > 0 {
		params.Add("start_date_year", strconv.Itoa(p.Year))
	}
	if p.Limit > 0 {
		params.Add("limit", strconv.Itoa(p.Limit))
	}

	var resp animeListResponse
	if err := c.getJSON("/anime", params, &resp); err != nil {
		return nil, err
	}

	results := make([]Anime, 0, len(resp.Data))
	for _, entry := range resp.Data {
		results = append(results, toAnime(entry))
	}
	return results, nil
}

// Suggest retorna hasta 5 títulos para autocompletado.
func (c *Client) Suggest(query string) ([]string, error) {
	animes, err := c.Search(SearchParams{Query: query, Limit: 5})
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(animes))
	for _, a := range animes {
		titles = append(titles, a.Title)
	}
	return titles, nil
}

// Trending retorna el top 10 de animes en emisión (para el carrusel).
func (c *Client) Trending() ([]Anime, error) {
	params := url.Values{}
	params.Add("filter", "airing")
	params.Add("limit", "10")

	var resp animeListResponse
	if err := c.getJSON("/top/anime", params, &resp); err != nil {
		return nil, err
	}

	results := make([]Anime, 0, len(resp.Data))
	for _, entry := range resp.Data {
		results = append(results, toAnime(entry))
	}
	return results, nil
}

// Detail retorna el detalle crudo de un anime por ID. Se pasa el documento
// completo al frontend (solo se reemplaza la sinopsis por su traducción),
// por eso el tipo es un mapa genérico y no una struct.
func (c *Client) Detail(malID int) (map[string]interface{}, error) {
	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := c.getJSON(fmt.Sprintf("/anime/%d", malID), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("catálogo sin datos para id %d", malID)
	}
	return resp.Data, nil
}

// Characters retorna los primeros 10 personajes del anime.
func (c *Client) Characters(malID int) ([]Character, error) {
	var resp characterListResponse
	if err := c.getJSON(fmt.Sprintf("/anime/%d/characters", malID), nil, &resp); err != nil {
		return nil, err
	}

	// Solo los primeros 10 para no saturar la vista de detalle
	entries := resp.Data
	if len(entries) > 10 {
		entries = entries[:10]
	}

	characters := make([]Character, 0, len(entries))
	for _, e := range entries {
		characters = append(characters, Character{
			Name:     e.Character.Name,
			ImageURL: e.Character.Images.JPG.ImageURL,
			Role:     e.Role,
		})
	}
	return characters, nil
}

// HealthCheck verifica que el catálogo responda.
func (c *Client) HealthCheck() error {
	resp, err := c.httpClient.Get(c.baseURL + "/anime?limit=1")
	if err != nil {
		return fmt.Errorf("catálogo inalcanzable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catálogo retornó status %d", resp.StatusCode)
	}
	return nil
}
