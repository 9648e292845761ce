package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"veltacases.com/web/internal/i18n"
)

func testBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	b, err := i18n.Load("../../locales", "en")
	require.NoError(t, err)
	return b
}

func TestLocaleResolution(t *testing.T) {
	t.Parallel()

	var got string
	h := Locale(testBundle(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Lang(r)
	}))

	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{name: "accept language", target: "/", accept: "es-ES,es;q=0.9", want: "es"},
		{name: "query override", target: "/?hl=es", accept: "en", want: "es"},
		{name: "cookie wins over accept", target: "/", cookie: "es", accept: "en", want: "es"},
		{name: "unsupported accept falls back", target: "/", accept: "fr", want: "en"},
		{name: "unknown query ignored", target: "/?hl=fr", accept: "es", want: "es"},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, tc.target, nil)
		if tc.accept != "" {
			req.Header.Set("Accept-Language", tc.accept)
		}
		if tc.cookie != "" {
			req.AddCookie(&http.Cookie{Name: "hl", Value: tc.cookie})
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, tc.want, got, tc.name)
		require.Equal(t, tc.want, rec.Header().Get("Content-Language"), tc.name)
	}
}

func TestLocaleQueryOverridePersists(t *testing.T) {
	t.Parallel()

	h := Locale(testBundle(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/?hl=es", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "hl" && c.Value == "es" {
			found = true
		}
	}
	require.True(t, found, "hl override should be written back as a cookie")
}

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	h := LoadTheme(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(CurrentTheme(r).Class()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "theme-light", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "theme-dark", rec.Body.String())
}

func TestHTMXFlag(t *testing.T) {
	t.Parallel()

	var got bool
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IsHTMX(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.False(t, got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.True(t, got)
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithHTMX(req.Context(), true))
	rec := httptest.NewRecorder()
	WriteError(rec, req, http.StatusBadGateway, "feed_unavailable", "catalog is unavailable")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "feed_unavailable", envelope.Error.Code)
	require.Equal(t, "catalog is unavailable", envelope.Error.Message)

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	plain = plain.WithContext(context.Background())
	rec = httptest.NewRecorder()
	WriteError(rec, plain, http.StatusNotFound, "not_found", "no such page")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "no such page")
}

func TestAssetsWithCache(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{margin:0}"), 0o644))

	h := AssetsWithCache("/assets", dir)

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req = httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)
}
