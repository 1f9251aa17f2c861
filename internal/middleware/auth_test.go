package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/aniverse/internal/apperror"
	"github.com/yourorg/aniverse/internal/auth"
	"github.com/yourorg/aniverse/internal/middleware"
	"github.com/yourorg/aniverse/internal/models"
	"github.com/yourorg/aniverse/internal/store"
)

var testSecret = []byte("clave-de-pruebas-suficientemente-larga-123456")

func newApp(t *testing.T, st store.Store) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{ErrorHandler: apperror.ErrorHandler})
	app.Get("/protegida", middleware.RequireAuth(st, testSecret), func(c *fiber.Ctx) error {
		email, _ := middleware.CurrentUser(c)
		return c.JSON(fiber.Map{"email": email})
	})
	app.Get("/publica", middleware.OptionalAuth(st, testSecret), func(c *fiber.Ctx) error {
		email, ok := middleware.CurrentUser(c)
		return c.JSON(fiber.Map{"email": email, "anonimo": !ok})
	})
	return app
}

func newStoreWithUser(t *testing.T, email string) store.Store {
	t.Helper()

	st := store.NewFileStoreAt(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, st.Save(map[string]models.User{
		email: {Username: "ana", PasswordHash: "x", AvatarURL: models.DefaultAvatarURL},
	}))
	return st
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	st := newStoreWithUser(t, "ana@example.com")
	app := newApp(t, st)

	token, _, err := auth.IssueToken("ana@example.com", testSecret, time.Minute)
	require.NoError(t, err)

	resp := get(t, app, "/protegida", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuthRejections(t *testing.T) {
	st := newStoreWithUser(t, "ana@example.com")
	app := newApp(t, st)

	expired, _, err := auth.IssueToken("ana@example.com", testSecret, -time.Second)
	require.NoError(t, err)

	// Token válido pero el registro fue eliminado del store
	orphan, _, err := auth.IssueToken("borrada@example.com", testSecret, time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
	}{
		{"sin header", ""},
		{"token basura", "no-es-un-jwt"},
		{"token expirado", expired},
		{"subject inexistente", orphan},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := get(t, app, "/protegida", tc.token)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
		})
	}
}

func TestOptionalAuthNeverFails(t *testing.T) {
	st := newStoreWithUser(t, "ana@example.com")
	app := newApp(t, st)

	// Anónimo pasa
	resp := get(t, app, "/publica", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Token inválido también pasa (como anónimo)
	resp2 := get(t, app, "/publica", "token-basura")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}
