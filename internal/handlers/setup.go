package handlers

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/yourorg/aniverse/internal/apperror"
	"github.com/yourorg/aniverse/internal/auth"
	"github.com/yourorg/aniverse/internal/cache"
	"github.com/yourorg/aniverse/internal/jikan"
	"github.com/yourorg/aniverse/internal/models"
	"github.com/yourorg/aniverse/internal/store"
	"github.com/yourorg/aniverse/internal/translate"
)

// package-level dependencies
var (
	setupMu    sync.RWMutex // Protege acceso a variables globales
	userStore  store.Store
	jwtSecret  []byte
	tokenTTL   = auth.DefaultTokenTTL
	catalog    *jikan.Client
	translator *translate.Client
	avatarDir  = "static/avatars"
)

// Setup wires shared dependencies for handlers. Call this during app bootstrap.
func Setup(st store.Store, secret []byte) {
	setupMu.Lock()
	defer setupMu.Unlock()

	userStore = st
	jwtSecret = secret
	tokenTTL = auth.TokenTTLFromEnv()

	if dir := os.Getenv("AVATAR_DIR"); dir != "" {
		avatarDir = dir
	}

	catalog = jikan.NewClient()
	translator = translate.NewClient()

	cache.InitCaches()
}

// getStore retorna el record store de forma segura
func getStore() store.Store {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return userStore
}

// getJWTSecret retorna el secret JWT de forma segura
func getJWTSecret() []byte {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return jwtSecret
}

func getTokenTTL() time.Duration {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return tokenTTL
}

func getCatalog() *jikan.Client {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return catalog
}

func getTranslator() *translate.Client {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return translator
}

func getAvatarDir() string {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return avatarDir
}

// mutateUsers ejecuta load-mutar-save como unidad. Los errores tipados del
// callback pasan tal cual; un fallo de persistencia se reporta como
// StorageError (500, fatal para el request).
func mutateUsers(fn func(users map[string]models.User) error) error {
	err := getStore().Mutate(fn)
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewStorageError("No se pudo guardar el registro.", err)
}
