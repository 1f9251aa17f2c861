package translate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("TRANSLATE_URL", srv.URL)
	return NewClient()
}

// gtxResponse arma una respuesta con la forma del endpoint client=gtx
func gtxResponse(t *testing.T, segments ...string) []byte {
	t.Helper()
	outer := []interface{}{}
	inner := []interface{}{}
	for _, s := range segments {
		inner = append(inner, []interface{}{s, "orig", nil, nil, 10})
	}
	outer = append(outer, inner, nil, "en")
	data, err := json.Marshal(outer)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestTranslateJoinsSegments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tl") != "es" {
			t.Errorf("tl = %q, want es", r.URL.Query().Get("tl"))
		}
		w.Write(gtxResponse(t, "Hola ", "mundo."))
	})

	got, err := client.Translate("Hello world.", "es")
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if got != "Hola mundo." {
		t.Errorf("Translate = %q, want %q", got, "Hola mundo.")
	}
}

func TestSnippetEmptyText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no debería llamarse al traductor con texto vacío")
	})

	if got := client.Snippet(""); got != NoSynopsisText {
		t.Errorf("Snippet(\"\") = %q, want %q", got, NoSynopsisText)
	}
}

func TestSnippetFallbackOnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	// Si el traductor falla, se devuelve el original
	if got := client.Snippet("A ninja story."); got != "A ninja story." {
		t.Errorf("Snippet = %q, want original text", got)
	}
}

func TestSnippetTruncatesLongText(t *testing.T) {
	var received string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		received = r.URL.Query().Get("q")
		w.Write(gtxResponse(t, "traducido"))
	})

	long := strings.Repeat("a", 600)
	got := client.Snippet(long)

	if len(received) != 500 {
		t.Errorf("se enviaron %d caracteres al traductor, want 500", len(received))
	}
	if got != "traducido..." {
		t.Errorf("Snippet = %q, want sufijo ...", got)
	}
}
