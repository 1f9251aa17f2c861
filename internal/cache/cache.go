package cache

import (
	"sync"
	"time"
)

// ============================================================================
// CACHE SERVICE - IN-MEMORY CACHING CON TTL
// ============================================================================
// Caché thread-safe con expiración automática para las respuestas del
// catálogo externo (Jikan). Una búsqueda traducida puede tardar varios
// segundos; servirla desde caché la deja en sub-milisegundos y reduce la
// presión sobre la API de terceros.
//
// Uso:
//   cache := NewCache(5*time.Minute, 10*time.Minute)
//   cache.Set("search:naruto", results)
//   if data, found := cache.Get("search:naruto"); found {
//       return data
//   }

// Item representa un elemento en caché con timestamp de expiración
type Item struct {
	Value      interface{}
	Expiration int64 // Unix timestamp (ns)
}

// Cache es un almacén thread-safe de key-value con TTL
type Cache struct {
	items             map[string]Item
	mu                sync.RWMutex
	defaultExpiration time.Duration
	cleanupInterval   time.Duration
	stopCleanup       chan bool
}

// NewCache crea una nueva instancia de caché con TTL por defecto.
// cleanupInterval ejecuta limpieza periódica de items expirados.
func NewCache(defaultExpiration, cleanupInterval time.Duration) *Cache {
	cache := &Cache{
		items:             make(map[string]Item),
		defaultExpiration: defaultExpiration,
		cleanupInterval:   cleanupInterval,
		stopCleanup:       make(chan bool),
	}

	go cache.startCleanupTimer()

	return cache
}

// Set almacena un valor con la expiración por defecto
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.defaultExpiration)
}

// SetWithTTL almacena un valor con una duración de expiración específica
func (c *Cache) SetWithTTL(key string, value interface{}, duration time.Duration) {
	var expiration int64

	if duration > 0 {
		expiration = time.Now().Add(duration).UnixNano()
	}

	c.mu.Lock()
	c.items[key] = Item{
		Value:      value,
		Expiration: expiration,
	}
	c.mu.Unlock()
}

// Get recupera un valor del caché.
// Retorna (valor, true) si existe y no ha expirado.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	item, found := c.items[key]
	c.mu.RUnlock()

	if !found {
		return nil, false
	}

	if item.Expiration > 0 && time.Now().UnixNano() > item.Expiration {
		c.Delete(key)
		return nil, false
	}

	return item.Value, true
}

// Delete elimina un key del caché
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// DeletePrefix elimina todas las keys que empiezan con el prefijo dado.
// Útil para invalidar grupos (ej: "search:" invalida todas las búsquedas).
func (c *Cache) DeletePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for key := range c.items {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.items, key)
			count++
		}
	}
	return count
}

// Clear limpia completamente el caché
func (c *Cache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]Item)
	c.mu.Unlock()
}

// Count retorna el número de items en caché (incluye expirados)
func (c *Cache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats retorna estadísticas del caché
type Stats struct {
	TotalItems   int
	ExpiredItems int
	ValidItems   int
}

// GetStats retorna estadísticas actuales del caché
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{
		TotalItems: len(c.items),
	}

	now := time.Now().UnixNano()
	for _, item := range c.items {
		if item.Expiration > 0 && now > item.Expiration {
			stats.ExpiredItems++
		} else {
			stats.ValidItems++
		}
	}

	return stats
}

// startCleanupTimer ejecuta limpieza periódica de items expirados
func (c *Cache) startCleanupTimer() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.deleteExpired()
		case <-c.stopCleanup:
			return
		}
	}
}

// deleteExpired elimina todos los items expirados
func (c *Cache) deleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for key, item := range c.items {
		if item.Expiration > 0 && now > item.Expiration {
			delete(c.items, key)
		}
	}
}

// Stop detiene la limpieza automática
func (c *Cache) Stop() {
	c.stopCleanup <- true
}

// ============================================================================
// CACHE PRESETS - CACHÉS PRE-CONFIGURADOS PARA EL CATÁLOGO
// ============================================================================

var (
	// TrendingCache - Top en emisión (TTL: 10 minutos)
	// El carrusel debe cargar instantáneo; el top cambia lento
	TrendingCache *Cache

	// SearchCache - Búsquedas con sinopsis traducida (TTL: 5 minutos)
	// La traducción es la parte cara de una búsqueda
	SearchCache *Cache

	// DetailCache - Detalle por ID (TTL: 10 minutos)
	DetailCache *Cache

	// SuggestCache - Sugerencias de autocompletado (TTL: 5 minutos)
	SuggestCache *Cache
)

// InitCaches inicializa todos los cachés del catálogo
func InitCaches() {
	TrendingCache = NewCache(10*time.Minute, 15*time.Minute)
	SearchCache = NewCache(5*time.Minute, 10*time.Minute)
	DetailCache = NewCache(10*time.Minute, 15*time.Minute)
	SuggestCache = NewCache(5*time.Minute, 10*time.Minute)
}

// StopCaches detiene todos los cachés
func StopCaches() {
	for _, c := range []*Cache{TrendingCache, SearchCache, DetailCache, SuggestCache} {
		if c != nil {
			c.Stop()
		}
	}
}

// GetAllCacheStats retorna estadísticas de todos los cachés
func GetAllCacheStats() map[string]Stats {
	stats := make(map[string]Stats)

	if TrendingCache != nil {
		stats["trending"] = TrendingCache.GetStats()
	}
	if SearchCache != nil {
		stats["search"] = SearchCache.GetStats()
	}
	if DetailCache != nil {
		stats["detail"] = DetailCache.GetStats()
	}
	if SuggestCache != nil {
		stats["suggest"] = SuggestCache.GetStats()
	}

	return stats
}
