package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMetadataFetch_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		w.Write([]byte(`{"title":"Never Gonna Give You Up","author_name":"Rick Astley","thumbnail_url":"https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}`))
	}))
	defer srv.Close()

	c := &MetadataClient{Endpoint: srv.URL, HTTP: srv.Client()}
	m := c.Fetch(context.Background(), "dQw4w9WgXcQ")
	if m.Title != "Never Gonna Give You Up" || m.Author != "Rick Astley" {
		t.Errorf("unexpected metadata: %+v", m)
	}
	if m.Thumbnail == "" {
		t.Error("expected thumbnail url")
	}
}

func TestMetadataFetch_FailuresFallBack(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-2xx", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) }},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("<html>not json")) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()
			c := &MetadataClient{Endpoint: srv.URL, HTTP: srv.Client()}
			m := c.Fetch(context.Background(), "dQw4w9WgXcQ")
			if m.Title != "Video" || m.Author != "Unknown" || m.Thumbnail != "" {
				t.Errorf("want fallback record, got %+v", m)
			}
		})
	}
}

func TestMetadataFetch_TransportErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := &MetadataClient{Endpoint: srv.URL, HTTP: http.DefaultClient}
	m := c.Fetch(context.Background(), "dQw4w9WgXcQ")
	if m.Title != "Video" || m.Author != "Unknown" {
		t.Errorf("want fallback record, got %+v", m)
	}
}
