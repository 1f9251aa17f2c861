package debug

import (
	"log"
	"os"
)

var (
	enabled = false
)

func init() {
	enabled = os.Getenv("ANIVERSE_DEBUG_DASHBOARD") == "true"
	if enabled {
		log.Println("🐛 Debug Dashboard habilitado")
	}
}

// IsEnabled retorna si el dashboard de monitoreo está habilitado
func IsEnabled() bool {
	return enabled
}

// LogInfo envía un log de nivel info al dashboard
func LogInfo(message string, metadata map[string]interface{}) {
	if !enabled {
		return
	}
	SendLog("backend", "info", message, metadata)
}

// LogWarn envía un log de nivel warn al dashboard
func LogWarn(message string, metadata map[string]interface{}) {
	if !enabled {
		return
	}
	SendLog("backend", "warn", message, metadata)
}

// LogError envía un log de nivel error al dashboard
func LogError(message string, metadata map[string]interface{}) {
	if !enabled {
		return
	}
	SendLog("backend", "error", message, metadata)
}

// Event envía un evento de dominio al dashboard (registro, login,
// favorito, búsqueda)
func Event(event string, metadata map[string]interface{}) {
	if !enabled {
		return
	}
	SendEvent(event, metadata)
}
