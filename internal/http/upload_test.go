package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadStoresTimestampPrefixedFile(t *testing.T) {
	app, env := newSiteApp(t, nil)
	admin := adminCookie(t, env)

	body, ctype := multipartBody(t, "file", "logo.png", []byte("png-bytes"))
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	req.AddCookie(admin)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 200, got %d body=%s", resp.StatusCode, b)
	}
	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.ImageURL, "/uploads/") || !strings.HasSuffix(out.ImageURL, "-logo.png") {
		t.Fatalf("unexpected imageUrl %q", out.ImageURL)
	}

	// The returned path maps to a real file holding the original bytes
	name := strings.TrimPrefix(out.ImageURL, "/uploads/")
	saved, err := os.ReadFile(filepath.Join(env.UploadsDir, name))
	if err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}
	if string(saved) != "png-bytes" {
		t.Fatalf("stored bytes differ: %q", saved)
	}
}

func TestUploadSanitizesFilename(t *testing.T) {
	app, env := newSiteApp(t, nil)
	admin := adminCookie(t, env)

	body, ctype := multipartBody(t, "file", `..\..\evil name.png`, []byte("x"))
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	req.AddCookie(admin)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	name := strings.TrimPrefix(out.ImageURL, "/uploads/")
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		t.Fatalf("filename not sanitized: %q", name)
	}
	// Nothing escaped the uploads directory
	if _, err := os.Stat(filepath.Join(env.UploadsDir, name)); err != nil {
		t.Fatalf("sanitized file not in uploads dir: %v", err)
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	app, env := newSiteApp(t, nil)
	admin := adminCookie(t, env)

	big := bytes.Repeat([]byte("A"), (10<<20)+1)
	body, ctype := multipartBody(t, "file", "big.bin", big)
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", ctype)
	req.AddCookie(admin)
	resp, err := app.Test(req, 30_000)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversize upload, got %d", resp.StatusCode)
	}

	// Nothing landed on disk
	entries, err := os.ReadDir(env.UploadsDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("oversize upload left %d files behind", len(entries))
	}
}

func TestUploadRequiresFileAndAdmin(t *testing.T) {
	app, env := newSiteApp(t, nil)
	admin := adminCookie(t, env)

	// No file part
	req := httptest.NewRequest("POST", "/api/upload", strings.NewReader(""))
	req.AddCookie(admin)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without file, got %d", resp.StatusCode)
	}

	// Anonymous caller is blocked before the handler runs
	body, ctype := multipartBody(t, "file", "logo.png", []byte("x"))
	reqAnon := httptest.NewRequest("POST", "/api/upload", body)
	reqAnon.Header.Set("Content-Type", ctype)
	respAnon, err := app.Test(reqAnon)
	if err != nil {
		t.Fatal(err)
	}
	if respAnon.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for anonymous upload, got %d", respAnon.StatusCode)
	}
}
