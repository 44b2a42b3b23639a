package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchSendsHeaders(t *testing.T) {
	headers := map[string]string{
		"User-Agent":      "Mozilla/5.0",
		"Accept-Language": "en-US,en;q=0.9",
	}

	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	f := NewFetcher(headers)
	body, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if body != "<html></html>" {
		t.Errorf("body = %q", body)
	}
	for k, v := range headers {
		if got.Get(k) != v {
			t.Errorf("header %s = %q, want %q", k, got.Get(k), v)
		}
	}
}

func TestFetchNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher(nil)
	if _, err := f.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
