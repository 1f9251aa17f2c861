package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/aniverse/internal/debug"
)

// HealthCheck handles GET /api/health.
// Reporta estado del store de usuarios y del catálogo externo. Si algún
// servicio falla el status global baja a "degraded" con 503.
func HealthCheck(c *fiber.Ctx) error {
	services := fiber.Map{}
	overall := "ok"

	var status debug.ApiStatus
	status.Backend.Status = "ok"
	status.Backend.Version = "1.0.0"

	users, err := getStore().Load()
	if err != nil {
		services["store"] = fiber.Map{"status": "error", "error": err.Error()}
		status.Store.Status = "error"
		overall = "degraded"
	} else {
		services["store"] = fiber.Map{"status": "ok", "users": len(users)}
		status.Store.Status = "ok"
		status.Store.Users = len(users)
	}

	start := time.Now()
	if err := getCatalog().HealthCheck(); err != nil {
		services["catalog"] = fiber.Map{"status": "error", "error": err.Error()}
		status.Catalog.Status = "error"
		overall = "degraded"
	} else {
		elapsed := time.Since(start)
		services["catalog"] = fiber.Map{
			"status":           "ok",
			"response_time_ms": elapsed.Milliseconds(),
		}
		status.Catalog.Status = "ok"
		status.Catalog.ResponseTime = float64(elapsed.Milliseconds())
	}

	debug.SendApiStatus(status)

	code := fiber.StatusOK
	if overall == "degraded" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":   overall,
		"services": services,
	})
}
