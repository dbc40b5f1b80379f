package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestGet_AttachesAuthHeaders(t *testing.T) {
	var gotCookie, gotOrigin string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		gotOrigin = r.Header.Get("Origin")
		w.Write([]byte(`{"body":[]}`))
	}))
	defer srv.Close()

	client := NewClient("abc123")
	body, err := client.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"body":[]}` {
		t.Errorf("body = %q", body)
	}
	if gotCookie != "FANBOXSESSID=abc123" {
		t.Errorf("Cookie = %q, want session cookie", gotCookie)
	}
	if gotOrigin != origin {
		t.Errorf("Origin = %q, want %q", gotOrigin, origin)
	}
}

func TestGet_NoCookieWithoutSession(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
	}))
	defer srv.Close()

	client := NewClient("")
	if _, err := client.Get(context.Background(), srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCookie != "" {
		t.Errorf("Cookie = %q, want none", gotCookie)
	}
}

func TestGet_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient("")
	if _, err := client.Get(context.Background(), srv.URL); err == nil {
		t.Error("expected error for 401 response")
	}
}

func TestDownloadFile_StreamsToDisk(t *testing.T) {
	payload := []byte("file contents")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "f.bin")
	client := NewClient("s")

	var lastWritten int64
	err := client.DownloadFile(context.Background(), srv.URL, dest, func(written, total int64) {
		lastWritten = written
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(payload) {
		t.Errorf("file contents = %q, want %q", got, payload)
	}
	if lastWritten != int64(len(payload)) {
		t.Errorf("progress reported %d bytes, want %d", lastWritten, len(payload))
	}
}
