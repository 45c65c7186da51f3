package handlers_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"sbsoverseas/internal/config"
	"sbsoverseas/internal/content"
	"sbsoverseas/internal/http/handlers"
	"sbsoverseas/internal/repos"
	"sbsoverseas/internal/services"
)

// Minimal app with tight rate and body limits so the guards trip quickly.
func newRateSizeApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", ContentDir: t.TempDir(), UploadsDir: t.TempDir()}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store, err := content.NewStore(cfg.ContentDir)
	if err != nil {
		t.Fatalf("content store: %v", err)
	}
	authSvc := &services.AuthService{Users: repos.NewUserRepo(db)}

	app := fiber.New()
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, cfg, store, authSvc, nil)
	app.Get("/api/products/search", limiter.New(limiter.Config{Max: 3, Expiration: time.Second}), deps.SearchHandler.Search)
	app.Post("/api/submissions", limiter.New(limiter.Config{Max: 3, Expiration: time.Second}), deps.SubmissionHandler.Create)
	return app
}

// Burst traffic past the limit answers 429.
func TestRateLimits(t *testing.T) {
	app := newRateSizeApp(t)

	for i := 0; i < 4; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/products/search?q=basmati", nil))
		if err != nil {
			t.Fatal(err)
		}
		if i < 3 && resp.StatusCode == http.StatusTooManyRequests {
			t.Fatalf("hit rate limit too early at %d", i)
		}
		if i == 3 && resp.StatusCode != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after limit, got %d", resp.StatusCode)
		}
	}

	for i := 0; i < 4; i++ {
		body := strings.NewReader(`{"name":"A","email":"a@example.com"}`)
		req := httptest.NewRequest("POST", "/api/submissions", body)
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if i < 3 && resp.StatusCode == http.StatusTooManyRequests {
			t.Fatalf("form limit too early at %d", i)
		}
		if i == 3 && resp.StatusCode != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after form limit, got %d", resp.StatusCode)
		}
	}
}

// Oversized bodies are cut off by the server's request size guard.
func TestBodySizeLimit(t *testing.T) {
	app := newRateSizeApp(t)

	oversize := bytes.Repeat([]byte("A"), (1<<20)+10)
	req := httptest.NewRequest("POST", "/api/submissions", bytes.NewReader(oversize))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	// Fiber may surface the cutoff as a transport error instead of a response
	if err != nil {
		if strings.Contains(err.Error(), "body size exceeds") || strings.Contains(err.Error(), "too large") {
			return
		}
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 413 for oversize, got %d body=%s", resp.StatusCode, string(body))
	}
}
