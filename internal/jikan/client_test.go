package jikan

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchBody = `{
	"data": [
		{
			"mal_id": 20,
			"title": "Naruto",
			"synopsis": "A ninja story.",
			"images": {"jpg": {"image_url": "https://cdn/x.jpg", "large_image_url": "https://cdn/x_l.jpg"}}
		},
		{
			"mal_id": 21,
			"title": "One Piece",
			"images": {"jpg": {"image_url": "https://cdn/y.jpg"}}
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("JIKAN_URL", srv.URL)
	return NewClient()
}

func TestSearch(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(searchBody))
	})

	results, err := client.Search(SearchParams{Query: "naruto", Limit: 5})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if gotPath != "/anime" {
		t.Errorf("path = %q, want /anime", gotPath)
	}
	if gotQuery != "naruto" {
		t.Errorf("q = %q, want naruto", gotQuery)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].MalID != 20 || results[0].Title != "Naruto" {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	if results[0].ImageURL != "https://cdn/x.jpg" {
		t.Errorf("image_url = %q", results[0].ImageURL)
	}
}

func TestTrending(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/top/anime" {
			t.Errorf("path = %q, want /top/anime", r.URL.Path)
		}
		if r.URL.Query().Get("filter") != "airing" {
			t.Errorf("filter = %q, want airing", r.URL.Query().Get("filter"))
		}
		w.Write([]byte(searchBody))
	})

	results, err := client.Trending()
	if err != nil {
		t.Fatalf("Trending error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].LargeImageURL != "https://cdn/x_l.jpg" {
		t.Errorf("large_image_url = %q", results[0].LargeImageURL)
	}
}

func TestDetailNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := client.Detail(99999); err == nil {
		t.Fatal("expected error for 404 upstream")
	}
}

func TestCharactersTruncatedToTen(t *testing.T) {
	body := `{"data": [`
	for i := 0; i < 15; i++ {
		if i > 0 {
			body += ","
		}
		body += `{"character": {"name": "C", "images": {"jpg": {"image_url": "u"}}}, "role": "Supporting"}`
	}
	body += `]}`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	chars, err := client.Characters(20)
	if err != nil {
		t.Fatalf("Characters error: %v", err)
	}
	if len(chars) != 10 {
		t.Fatalf("expected 10 characters, got %d", len(chars))
	}
}

func TestSuggest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "5" {
			t.Errorf("limit = %q, want 5", r.URL.Query().Get("limit"))
		}
		w.Write([]byte(searchBody))
	})

	titles, err := client.Suggest("na")
	if err != nil {
		t.Fatalf("Suggest error: %v", err)
	}
	if len(titles) != 2 || titles[0] != "Naruto" {
		t.Fatalf("unexpected titles: %v", titles)
	}
}
