package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// ============================================================================
// PAGE HANDLERS - VISTAS HTML
// ============================================================================
// El frontend es estático: cada vista se sirve como archivo y consume la
// API por fetch desde el navegador.

// Index sirve la página principal
func Index(c *fiber.Ctx) error {
	return c.SendFile("templates/index.html")
}

// LoginPage sirve el formulario de login
func LoginPage(c *fiber.Ctx) error {
	return c.SendFile("templates/login.html")
}

// RegisterPage sirve el formulario de registro
func RegisterPage(c *fiber.Ctx) error {
	return c.SendFile("templates/register.html")
}

// DetailPage sirve la vista de detalle de un anime
func DetailPage(c *fiber.Ctx) error {
	return c.SendFile("templates/detail.html")
}
