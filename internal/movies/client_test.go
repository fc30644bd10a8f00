// Package movies tests document the expected behavior of the OMDb client.
//
// Test requirements (this file serves as documentation):
// - Popular builds a page from the seed-list fan-out (search then detail)
// - A failed title lookup drops that title, never the page
// - When nothing can be fetched the listing degrades to synthetic data
// - ByGenre searches a keyword from the genre table and details the hits
// - Search returns errors (no synthetic fallback) and caps detail lookups
// - Records failing the upstream validity gate are filtered out
package movies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
)

// omdbStub serves canned search and detail responses and records which
// titles were searched.
type omdbStub struct {
	mu       sync.Mutex
	searched []string

	failSearches bool
	failDetails  map[string]bool // imdbID -> serve an invalid record
}

func (s *omdbStub) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("apikey") != "test-key" {
			t.Errorf("expected apikey=test-key, got %q", q.Get("apikey"))
		}

		if title := q.Get("s"); title != "" {
			s.mu.Lock()
			s.searched = append(s.searched, title)
			s.mu.Unlock()

			if s.failSearches {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			id := "tt" + strings.ReplaceAll(strings.ToLower(title), " ", "")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"Search":   []map[string]string{{"imdbID": id, "Title": title, "Year": "2020"}},
				"Response": "True",
			})
			return
		}

		id := q.Get("i")
		if s.failDetails[id] {
			_ = json.NewEncoder(w).Encode(map[string]string{"Response": "False", "Error": "Movie not found!"})
			return
		}
		_ = json.NewEncoder(w).Encode(Movie{
			ImdbID:     id,
			Title:      "Movie " + id,
			Plot:       "A plot",
			Year:       "2020",
			ImdbRating: "7.9",
			Response:   "True",
		})
	}
}

func newTestClient(serverURL string, opts ...ClientOption) *Client {
	opts = append([]ClientOption{
		WithBaseURL(serverURL),
		WithLogger(log.New(io.Discard)),
	}, opts...)
	return NewClient("test-key", opts...)
}

func TestPopular_BuildsFullPageFromSeedList(t *testing.T) {
	stub := &omdbStub{}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	client := newTestClient(server.URL)

	movies, err := client.Popular(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != PageSize {
		t.Fatalf("expected a full page of %d movies, got %d", PageSize, len(movies))
	}
	for _, m := range movies {
		if !m.Valid() {
			t.Errorf("every returned movie must pass the validity gate, got %+v", m)
		}
	}
	if len(stub.searched) != PageSize {
		t.Errorf("expected %d title searches, got %d", PageSize, len(stub.searched))
	}
}

func TestPopular_PartialFailureKeepsPage(t *testing.T) {
	stub := &omdbStub{failDetails: map[string]bool{"ttavengers": true, "ttbatman": true}}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	client := newTestClient(server.URL)

	movies, err := client.Popular(context.Background(), 1)
	if err != nil {
		t.Fatalf("partial failure must not fail the page: %v", err)
	}
	if len(movies) != PageSize-2 {
		t.Errorf("expected %d movies after two dropped lookups, got %d", PageSize-2, len(movies))
	}
}

func TestPopular_TotalFailureDegradesToSynthetic(t *testing.T) {
	stub := &omdbStub{failSearches: true}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	client := newTestClient(server.URL)

	movies, err := client.Popular(context.Background(), 1)
	if err != nil {
		t.Fatalf("total failure must degrade, not error: %v", err)
	}
	if len(movies) != PageSize {
		t.Fatalf("expected a full synthetic page, got %d", len(movies))
	}
	for _, m := range movies {
		if m.ImdbID == "" || m.Title == "" {
			t.Errorf("synthetic movie missing fields: %+v", m)
		}
	}
}

func TestPopular_PastSeedListReturnsEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no network call expected past the seed list")
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	movies, err := client.Popular(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("expected an empty page past the seed list, got %d movies", len(movies))
	}
}

func TestByGenre_SearchesGenreKeyword(t *testing.T) {
	stub := &omdbStub{}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	// Pin the keyword pick to the first entry so the searched term is known.
	client := newTestClient(server.URL, WithKeywordPicker(func(n int) int { return 0 }))

	movies, err := client.ByGenre(context.Background(), []string{"Comedy"}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected 1 movie from the stub, got %d", len(movies))
	}
	if stub.searched[0] != "comedy" {
		t.Errorf("expected the Comedy keyword to be searched, got %q", stub.searched[0])
	}
}

func TestByGenre_SearchFailureDegradesToSynthetic(t *testing.T) {
	stub := &omdbStub{failSearches: true}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	client := newTestClient(server.URL)

	movies, err := client.ByGenre(context.Background(), []string{"Horror"}, 2)
	if err != nil {
		t.Fatalf("search failure must degrade, not error: %v", err)
	}
	if len(movies) != PageSize {
		t.Errorf("expected a full synthetic page, got %d", len(movies))
	}
}

func TestSearch_ErrorsPropagate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	if _, err := client.Search(context.Background(), "inception"); err == nil {
		t.Fatal("expected an error when the upstream fails")
	}
}

func TestSearch_CapsDetailLookups(t *testing.T) {
	var detailCalls int
	var mu sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("s") != "" {
			hits := make([]map[string]string, 8)
			for i := range hits {
				hits[i] = map[string]string{"imdbID": fmt.Sprintf("tt%07d", i), "Title": "Hit"}
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"Search": hits, "Response": "True"})
			return
		}
		mu.Lock()
		detailCalls++
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(Movie{ImdbID: q.Get("i"), Title: "Hit", Response: "True"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	movies, err := client.Search(context.Background(), "hit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != SearchDetailLimit {
		t.Errorf("expected %d movies, got %d", SearchDetailLimit, len(movies))
	}
	if detailCalls != SearchDetailLimit {
		t.Errorf("expected %d detail lookups, got %d", SearchDetailLimit, detailCalls)
	}
}

func TestSyntheticMovies_Deterministic(t *testing.T) {
	first := SyntheticMovies(1)
	second := SyntheticMovies(1)

	if len(first) != PageSize {
		t.Fatalf("expected a full page of %d, got %d", PageSize, len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("synthetic batches must be deterministic, diverged at %d", i)
		}
		if !first[i].Valid() {
			t.Errorf("synthetic movie %d must pass the validity gate", i)
		}
	}
}
