// Package apperror centraliza los errores de la aplicación y su mapeo a
// códigos HTTP, para que los handlers solo retornen `error` y la respuesta
// JSON se arme en un único lugar (el ErrorHandler de Fiber).
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/aniverse/internal/models"
)

// ErrorType clasifica el error según la taxonomía de la API.
type ErrorType int

const (
	// InternalError es un error interno genérico.
	InternalError ErrorType = iota
	// ValidationError es una entrada inválida (password débil, duplicados, etc.).
	ValidationError
	// AuthError es un fallo de autenticación. El mensaje SIEMPRE es genérico:
	// nunca se revela si falló el token, la firma o las credenciales.
	AuthError
	// NotFoundError es un recurso inexistente (usuario o anime desconocido).
	NotFoundError
	// UpstreamError es un fallo del gateway externo (catálogo o traducción).
	UpstreamError
	// StorageError es un fallo escribiendo el documento persistido.
	StorageError
)

// AppError es el error tipado de la aplicación.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode mapea el tipo de error al código HTTP correspondiente.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError:
		return fiber.StatusBadRequest
	case AuthError:
		return fiber.StatusUnauthorized
	case NotFoundError:
		return fiber.StatusNotFound
	case UpstreamError:
		return fiber.StatusBadGateway
	case StorageError, InternalError:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

func newError(t ErrorType, message string, err error) *AppError {
	return &AppError{Type: t, Message: message, Err: err}
}

func NewValidationError(message string) *AppError {
	return newError(ValidationError, message, nil)
}

func NewAuthError(message string) *AppError {
	return newError(AuthError, message, nil)
}

func NewNotFoundError(message string) *AppError {
	return newError(NotFoundError, message, nil)
}

func NewUpstreamError(message string, err error) *AppError {
	return newError(UpstreamError, message, err)
}

func NewStorageError(message string, err error) *AppError {
	return newError(StorageError, message, err)
}

func NewInternalError(message string, err error) *AppError {
	return newError(InternalError, message, err)
}

// IsNotFound indica si el error (o alguno envuelto) es NotFoundError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsValidation indica si el error (o alguno envuelto) es ValidationError.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// ErrorHandler es el ErrorHandler global de Fiber: convierte cualquier
// error retornado por un handler en una respuesta JSON consistente.
// Los detalles del error subyacente (Err) nunca llegan al cliente.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Type == AuthError {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		}
		return c.Status(appErr.StatusCode()).JSON(models.ErrorResponse{Error: appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(models.ErrorResponse{Error: fiberErr.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "Error interno del servidor."})
}
