package handlers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/aniverse/internal/apperror"
	"github.com/yourorg/aniverse/internal/cache"
	"github.com/yourorg/aniverse/internal/debug"
	"github.com/yourorg/aniverse/internal/jikan"
	"github.com/yourorg/aniverse/internal/middleware"
	"github.com/yourorg/aniverse/internal/models"
)

// ============================================================================
// ANIME HANDLERS - PROXY AL CATÁLOGO EXTERNO
// ============================================================================
// Todos los endpoints del catálogo siguen el mismo patrón: revisar caché,
// consultar Jikan, traducir lo que corresponda y cachear el resultado.
// Un catálogo caído degrada a listas vacías, nunca a un 500.

// SearchAnime handles GET /api/anime/search?q=&genre=&year=
func SearchAnime(c *fiber.Ctx) error {
	query := c.Query("q")
	genre, _ := strconv.Atoi(c.Query("genre"))
	year, _ := strconv.Atoi(c.Query("year"))

	if query == "" && genre <= 0 && year <= 0 {
		return apperror.NewValidationError("Faltan parámetros de búsqueda.")
	}

	cacheKey := fmt.Sprintf("search:%s:%d:%d", query, genre, year)
	if cached, found := cache.SearchCache.Get(cacheKey); found {
		return c.JSON(cached)
	}

	start := time.Now()
	animes, err := getCatalog().Search(jikan.SearchParams{
		Query: query,
		Genre: genre,
		Year:  year,
	})
	if err != nil {
		// Catálogo caído: la búsqueda degrada a lista vacía
		log.Printf("⚠️ Error consultando catálogo: %v", err)
		return c.JSON([]models.AnimeSearchResult{})
	}

	translator := getTranslator()
	results := make([]models.AnimeSearchResult, 0, len(animes))
	for _, a := range animes {
		results = append(results, models.AnimeSearchResult{
			MalID:    a.MalID,
			Title:    a.Title,
			Synopsis: translator.Snippet(a.Synopsis),
			ImageURL: a.ImageURL,
		})
	}

	cache.SearchCache.Set(cacheKey, results)

	if user, ok := middleware.CurrentUser(c); ok {
		debug.Event("anime_search", map[string]interface{}{
			"query": query,
			"user":  user,
		})
	}
	log.Printf("🔍 Búsqueda %q: %d resultados en %v", query, len(results), time.Since(start))

	return c.JSON(results)
}

// SuggestAnime handles GET /api/anime/suggest?q=
// Autocompletado: con menos de 2 caracteres no vale la pena consultar.
func SuggestAnime(c *fiber.Ctx) error {
	query := c.Query("q")
	if len(query) < 2 {
		return c.JSON([]string{})
	}

	cacheKey := "suggest:" + query
	if cached, found := cache.SuggestCache.Get(cacheKey); found {
		return c.JSON(cached)
	}

	titles, err := getCatalog().Suggest(query)
	if err != nil {
		log.Printf("⚠️ Error en sugerencias: %v", err)
		return c.JSON([]string{})
	}
	if titles == nil {
		titles = []string{}
	}

	cache.SuggestCache.Set(cacheKey, titles)
	return c.JSON(titles)
}

// TrendingAnime handles GET /api/anime/trending
// Top en emisión para el carrusel. Sin traducción: solo título e imagen.
func TrendingAnime(c *fiber.Ctx) error {
	const cacheKey = "trending"
	if cached, found := cache.TrendingCache.Get(cacheKey); found {
		return c.JSON(cached)
	}

	animes, err := getCatalog().Trending()
	if err != nil {
		log.Printf("⚠️ Error consultando trending: %v", err)
		return c.JSON([]models.AnimeSearchResult{})
	}

	results := make([]models.AnimeSearchResult, 0, len(animes))
	for _, a := range animes {
		image := a.LargeImageURL
		if image == "" {
			image = a.ImageURL
		}
		results = append(results, models.AnimeSearchResult{
			MalID:    a.MalID,
			Title:    a.Title,
			ImageURL: image,
		})
	}

	cache.TrendingCache.Set(cacheKey, results)
	return c.JSON(results)
}

// AnimeDetail handles GET /api/anime/:id
// Devuelve el documento completo del catálogo con la sinopsis traducida.
func AnimeDetail(c *fiber.Ctx) error {
	malID, err := c.ParamsInt("id")
	if err != nil || malID <= 0 {
		return apperror.NewValidationError("ID de anime inválido.")
	}

	cacheKey := fmt.Sprintf("detail:%d", malID)
	if cached, found := cache.DetailCache.Get(cacheKey); found {
		return c.JSON(cached)
	}

	data, err := getCatalog().Detail(malID)
	if err != nil {
		return apperror.NewNotFoundError("Anime no encontrado.")
	}

	if synopsis, ok := data["synopsis"].(string); ok {
		data["synopsis"] = getTranslator().Snippet(synopsis)
	} else {
		data["synopsis"] = getTranslator().Snippet("")
	}

	cache.DetailCache.Set(cacheKey, data)
	return c.JSON(data)
}

// AnimeCharacters handles GET /api/anime/:id/characters
func AnimeCharacters(c *fiber.Ctx) error {
	malID, err := c.ParamsInt("id")
	if err != nil || malID <= 0 {
		return apperror.NewValidationError("ID de anime inválido.")
	}

	cacheKey := fmt.Sprintf("characters:%d", malID)
	if cached, found := cache.DetailCache.Get(cacheKey); found {
		return c.JSON(cached)
	}

	characters, err := getCatalog().Characters(malID)
	if err != nil {
		log.Printf("⚠️ Error consultando personajes de %d: %v", malID, err)
		return c.JSON([]models.CharacterResult{})
	}

	results := make([]models.CharacterResult, 0, len(characters))
	for _, ch := range characters {
		results = append(results, models.CharacterResult{
			Name:     ch.Name,
			ImageURL: ch.ImageURL,
			Role:     ch.Role,
		})
	}

	cache.DetailCache.Set(cacheKey, results)
	return c.JSON(results)
}
