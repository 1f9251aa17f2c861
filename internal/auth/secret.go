package auth

import (
	"log"
	"os"
	"time"
)

// SecretFromEnv carga el secret JWT del proceso desde JWT_SECRET.
// En producción es obligatorio; en desarrollo se usa un default con warning.
func SecretFromEnv() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("ENV") == "production" || os.Getenv("ENVIRONMENT") == "production" {
			log.Fatal("❌ CRITICAL: JWT_SECRET must be set in production environment")
		}
		log.Println("⚠️ WARNING: Using default JWT secret (development only)")
		secret = "dev-secret-change-me-aniverse-0123456789"
	}

	if len(secret) < 32 {
		log.Fatalf("❌ CRITICAL: JWT_SECRET must be at least 32 characters long (current: %d)", len(secret))
	}

	return []byte(secret)
}

// TokenTTLFromEnv lee JWT_TTL (formato time.ParseDuration) o retorna el
// default de 30 minutos.
func TokenTTLFromEnv() time.Duration {
	ttl := os.Getenv("JWT_TTL")
	if ttl == "" {
		return DefaultTokenTTL
	}
	dur, err := time.ParseDuration(ttl)
	if err != nil || dur <= 0 {
		log.Printf("invalid JWT_TTL=%q, using default %s", ttl, DefaultTokenTTL)
		return DefaultTokenTTL
	}
	return dur
}
