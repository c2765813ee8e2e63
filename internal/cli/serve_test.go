package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroviz/gamewatch/pkg/cache"
)

const serveTestData = `
[[games]]
game = "Ball"
model = "AC-01"
series = "Silver"
released = 1980-04-28
order = 1
produced = 400000

[[games]]
game = "Manhole"
model = "MH-06"
series = "Gold"
released = 1981-01-29
order = 2
produced = 550000
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "games.toml")
	if err := os.WriteFile(path, []byte(serveTestData), 0o644); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}

	s := &server{
		opts:  serveOpts{data: path},
		cache: cache.NewNullCache(),
	}
	ts := httptest.NewServer(s.routes(context.Background()))
	t.Cleanup(ts.Close)
	return ts
}

func TestServeHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}
}

func TestServeList(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/charts")
	if err != nil {
		t.Fatalf("GET /charts: %v", err)
	}
	defer resp.Body.Close()

	var list []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(list) != len(chartNames) {
		t.Fatalf("got %d charts, want %d", len(list), len(chartNames))
	}
	for i, c := range list {
		if c.Name != chartNames[i] {
			t.Errorf("chart[%d] = %q, want %q", i, c.Name, chartNames[i])
		}
	}
}

func TestServeChart(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name        string
		path        string
		status      int
		contentType string
	}{
		{"produced svg", "/charts/produced", http.StatusOK, "image/svg+xml"},
		{"released explicit format", "/charts/released?format=svg", http.StatusOK, "image/svg+xml"},
		{"timeline with max-year", "/charts/timeline?max-year=1981", http.StatusOK, "image/svg+xml"},
		{"outliers order column", "/charts/outliers?column=order", http.StatusOK, "image/svg+xml"},
		{"unknown chart", "/charts/sparkline", http.StatusNotFound, "application/json"},
		{"bad format", "/charts/produced?format=gif", http.StatusBadRequest, "application/json"},
		{"bad column", "/charts/outliers?column=price", http.StatusBadRequest, "application/json"},
		{"bad max-year", "/charts/produced?max-year=soon", http.StatusBadRequest, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatalf("GET %s: %v", tt.path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("content type = %q, want %q", ct, tt.contentType)
			}
		})
	}
}

func TestServeChartCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.toml")
	if err := os.WriteFile(path, []byte(serveTestData), 0o644); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("creating cache: %v", err)
	}
	s := &server{opts: serveOpts{data: path}, cache: c}
	ts := httptest.NewServer(s.routes(context.Background()))
	defer ts.Close()

	fetch := func() []byte {
		resp, err := http.Get(ts.URL + "/charts/produced")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("reading body: %v", err)
		}
		return body
	}

	first := fetch()
	second := fetch()
	if string(first) != string(second) {
		t.Error("cached response differs from the rendered one")
	}
}
