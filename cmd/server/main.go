package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/yourorg/aniverse/internal/apperror"
	"github.com/yourorg/aniverse/internal/auth"
	"github.com/yourorg/aniverse/internal/cache"
	"github.com/yourorg/aniverse/internal/handlers"
	"github.com/yourorg/aniverse/internal/routes"
	"github.com/yourorg/aniverse/internal/store"
)

func main() {
	_ = godotenv.Load()

	app := fiber.New(fiber.Config{
		ErrorHandler: apperror.ErrorHandler,
		BodyLimit:    10 * 1024 * 1024, // avatares hasta 10MB
	})
	app.Use(logger.New())
	app.Use(cors.New())

	// ============================================================================
	// STORE DE USUARIOS (archivo JSON plano)
	// ============================================================================
	st := store.NewFileStore()
	log.Printf("📁 Store de usuarios: %s", st.Path())

	// Directorio de avatares subidos
	avatarDir := os.Getenv("AVATAR_DIR")
	if avatarDir == "" {
		avatarDir = "static/avatars"
	}
	if err := os.MkdirAll(avatarDir, 0o755); err != nil {
		log.Fatalf("No se pudo crear el directorio de avatares: %v", err)
	}

	secret := auth.SecretFromEnv()
	handlers.Setup(st, secret)
	routes.Register(app, st, secret)
	log.Println("✅ Rutas registradas")

	// ============================================================================
	// GRACEFUL SHUTDOWN
	// ============================================================================
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\n🛑 Señal de terminación recibida, cerrando servidor...")

		cache.StopCaches()

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️  Error cerrando servidor: %v", err)
		}

		log.Println("✅ Servidor cerrado correctamente")
		os.Exit(0)
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Servidor escuchando en :%s", port)
	log.Println("📍 Endpoints disponibles:")
	log.Println("   ═══ AUTENTICACIÓN ═══")
	log.Println("   POST /register                      - Registro de usuario")
	log.Println("   POST /login                         - Login (token bearer)")
	log.Println("")
	log.Println("   ═══ PERFIL ═══")
	log.Println("   GET  /api/profile/me                - Perfil del usuario actual")
	log.Println("   PUT  /api/profile/update            - Actualizar username/avatar")
	log.Println("   PUT  /api/profile/password          - Cambiar contraseña")
	log.Println("")
	log.Println("   ═══ FAVORITOS ═══")
	log.Println("   POST /api/favorites/toggle          - Agregar/quitar favorito")
	log.Println("   GET  /api/favorites                 - Lista de favoritos")
	log.Println("   GET  /api/favorites/status/:id      - ¿Es favorito?")
	log.Println("")
	log.Println("   ═══ CATÁLOGO ═══")
	log.Println("   GET  /api/anime/search              - Búsqueda (q/genre/year)")
	log.Println("   GET  /api/anime/suggest             - Autocompletado")
	log.Println("   GET  /api/anime/trending            - Top en emisión")
	log.Println("   GET  /api/anime/:id                 - Detalle (sinopsis en español)")
	log.Println("   GET  /api/anime/:id/characters      - Personajes")
	log.Println("")
	log.Println("💡 Presiona Ctrl+C para detener")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
