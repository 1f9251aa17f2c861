package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/yourorg/aniverse/internal/debug"
	"github.com/yourorg/aniverse/internal/handlers"
	"github.com/yourorg/aniverse/internal/middleware"
	"github.com/yourorg/aniverse/internal/store"
)

// ============================================================================
// RUTAS - ANIVERSE
// ============================================================================

// Register configura todas las rutas de la aplicación
func Register(app *fiber.App, st store.Store, secret []byte) {
	requireAuth := middleware.RequireAuth(st, secret)
	optionalAuth := middleware.OptionalAuth(st, secret)

	// --- Vistas HTML y archivos estáticos ---
	app.Get("/", handlers.Index)
	app.Get("/login", handlers.LoginPage)
	app.Get("/register", handlers.RegisterPage)
	app.Get("/anime/:id", handlers.DetailPage)
	app.Static("/static", "./static")

	// --- Salud ---
	app.Get("/api/health", handlers.HealthCheck)

	// --- Autenticación (form-encoded, como lo envía el frontend) ---
	app.Post("/register", handlers.RegisterUser)
	app.Post("/login", handlers.Login)

	// --- Perfil (requiere token) ---
	profile := app.Group("/api/profile", requireAuth)
	profile.Get("/me", handlers.GetProfile)
	profile.Put("/update", handlers.UpdateProfile)
	profile.Put("/password", handlers.UpdatePassword)

	// --- Favoritos (requiere token) ---
	favorites := app.Group("/api/favorites", requireAuth)
	favorites.Post("/toggle", handlers.ToggleFavorite)
	favorites.Get("/", handlers.ListFavorites)
	favorites.Get("/status/:id", handlers.FavoriteStatus)

	// --- Catálogo (público; la búsqueda registra al usuario si viene token) ---
	anime := app.Group("/api/anime")
	anime.Get("/search", optionalAuth, handlers.SearchAnime)
	// suggest y trending ANTES de /:id para que Fiber no los capture como ID
	anime.Get("/suggest", handlers.SuggestAnime)
	anime.Get("/trending", handlers.TrendingAnime)
	anime.Get("/:id", handlers.AnimeDetail)
	anime.Get("/:id/characters", handlers.AnimeCharacters)

	// WebSocket para el dashboard de debug (siempre disponible)
	app.Use("/ws/debug", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/debug", websocket.New(func(c *websocket.Conn) {
		debug.HandleWebSocketFiber(c)
	}))
}
