// ============================================================================
// Translate Client - AniVerse
// ============================================================================
// Pass-through al endpoint público de Google Translate (client=gtx) para
// traducir sinopsis de inglés a español. Best-effort: si el servicio falla
// se devuelve el texto original, nunca se propaga el error al usuario.
// ============================================================================

package translate

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

// NoSynopsisText se devuelve cuando el anime no trae sinopsis.
const NoSynopsisText = "Sin descripción disponible."

// maxSnippetLen limita lo que se manda a traducir para que la búsqueda
// no se vuelva demasiado lenta.
const maxSnippetLen = 500

// Cliente para el servicio de traducción
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient crea un nuevo cliente de traducción.
func NewClient() *Client {
	baseURL := os.Getenv("TRANSLATE_URL")
	if baseURL == "" {
		baseURL = "https://translate.googleapis.com/translate_a/single"
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Translate traduce text al idioma target (ej: "es"). Retorna error si el
// servicio falla: el caller decide cómo degradar.
func (c *Client) Translate(text, target string) (string, error) {
	params := url.Values{}
	params.Add("client", "gtx")
	params.Add("sl", "auto")
	params.Add("tl", target)
	params.Add("dt", "t")
	params.Add("q", text)

	resp, err := c.httpClient.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return "", fmt.Errorf("consultando traductor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("traductor retornó status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("leyendo respuesta del traductor: %w", err)
	}

	// La respuesta gtx es un array anidado:
	// [[["Hola","Hello",...],["mundo","world",...]], null, "en", ...]
	var payload []interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("parseando respuesta del traductor: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("respuesta del traductor vacía")
	}

	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("respuesta del traductor con forma inesperada")
	}

	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if translated, ok := parts[0].(string); ok {
			sb.WriteString(translated)
		}
	}

	result := sb.String()
	if result == "" {
		return "", fmt.Errorf("traducción vacía")
	}
	return result, nil
}

// Snippet traduce una sinopsis a español con las reglas de la app:
// texto vacío => NoSynopsisText; se traducen como máximo 500 caracteres
// (con "..." si se truncó); si el traductor falla se devuelve el original.
func (c *Client) Snippet(text string) string {
	if text == "" {
		return NoSynopsisText
	}

	snippet := text
	truncated := false
	if len(snippet) > maxSnippetLen {
		// Cortar en un límite de rune válido
		cut := maxSnippetLen
		for cut > 0 && !utf8.RuneStart(snippet[cut]) {
			cut--
		}
		snippet = snippet[:cut]
		truncated = true
	}

	translated, err := c.Translate(snippet, "es")
	if err != nil {
		log.Printf("Error traduciendo: %v", err)
		return text // Si falla, devolvemos el original en inglés
	}

	if truncated {
		return translated + "..."
	}
	return translated
}
