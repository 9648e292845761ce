package middleware

import (
	"net/http"
	"strings"
	"time"

	"veltacases.com/web/internal/i18n"
	"veltacases.com/web/internal/theme"
)

const langCookieName = "hl"

// Locale resolves the request language: an ?hl= override is persisted to the
// hl cookie, then the cookie applies, then Accept-Language. Responses carry
// Content-Language and vary on Accept-Language.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var lang string
			if q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(langCookieName))); q != "" && bundle.Has(q) {
				lang = q
				http.SetCookie(w, &http.Cookie{
					Name:     langCookieName,
					Value:    q,
					Path:     "/",
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					SameSite: http.SameSiteLaxMode,
				})
			}
			if lang == "" {
				if c, err := r.Cookie(langCookieName); err == nil {
					if v := strings.ToLower(c.Value); bundle.Has(v) {
						lang = v
					}
				}
			}
			if lang == "" {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			w.Header().Set("Content-Language", lang)
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// Lang returns the resolved request language, falling back to "en".
func Lang(r *http.Request) string {
	if v := langFrom(r.Context()); v != "" {
		return v
	}
	return "en"
}

// LoadTheme reads the theme cookie once per request.
func LoadTheme(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithTheme(r.Context(), theme.FromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentTheme returns the visitor's theme preference, Light by default.
func CurrentTheme(r *http.Request) theme.Preference {
	if p, ok := themeFrom(r.Context()); ok {
		return p
	}
	return theme.Light
}
