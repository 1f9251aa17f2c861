// ============================================================================
// Record Store - AniVerse
// ============================================================================
// Persistencia de la tabla completa de usuarios en un único documento JSON
// (email -> registro). No hay updates parciales: toda mutación se hace en
// memoria sobre la tabla cargada y luego se reescribe el documento entero.
// ============================================================================

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/yourorg/aniverse/internal/models"
)

// Store abstrae la persistencia de la tabla de usuarios, para poder
// cambiar el documento JSON por otro backend sin tocar los handlers.
type Store interface {
	// Load retorna la tabla completa. Un documento ausente o corrupto se
	// trata como tabla vacía, nunca como error fatal.
	Load() (map[string]models.User, error)
	// Save reescribe el documento completo. Un fallo de escritura es fatal
	// para el request que lo disparó.
	Save(users map[string]models.User) error
	// Mutate ejecuta load-mutar-save como unidad bajo el lock del store.
	// Si fn retorna error, no se persiste nada.
	Mutate(fn func(users map[string]models.User) error) error
}

// FileStore implementa Store sobre un archivo JSON (db.json por defecto).
// El lock serializa a los escritores dentro del proceso; no coordina
// múltiples procesos.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileStore crea un FileStore usando DB_FILE o el path por defecto.
func NewFileStore() *FileStore {
	path := os.Getenv("DB_FILE")
	if path == "" {
		path = "db.json"
	}
	return &FileStore{path: path}
}

// NewFileStoreAt crea un FileStore sobre un path explícito.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Path retorna la ubicación del documento persistido.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (map[string]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadLocked()
}

func (s *FileStore) Save(users map[string]models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(users)
}

func (s *FileStore) Mutate(fn func(users map[string]models.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadLocked()
	if err != nil {
		return err
	}
	if err := fn(users); err != nil {
		return err
	}
	return s.saveLocked(users)
}

func (s *FileStore) loadLocked() (map[string]models.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// Archivo ausente => tabla vacía
		return map[string]models.User{}, nil
	}

	users := map[string]models.User{}
	if err := json.Unmarshal(data, &users); err != nil {
		// Documento corrupto => tabla vacía
		return map[string]models.User{}, nil
	}
	return users, nil
}

func (s *FileStore) saveLocked(users map[string]models.User) error {
	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return fmt.Errorf("serializando tabla de usuarios: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("escribiendo %s: %w", s.path, err)
	}
	return nil
}
