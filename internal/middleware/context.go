package middleware

import (
	"context"

	"veltacases.com/web/internal/theme"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyRequestID ctxKey = "req_id"
	ctxKeyIsHTMX    ctxKey = "is_htmx"
	ctxKeyLang      ctxKey = "lang"
	ctxKeyTheme     ctxKey = "theme"
)

// WithRequestID stores the request id in context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID gets the request id from context.
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok
}

// WithHTMX marks the request as coming from htmx.
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX reports whether this is an htmx request.
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// WithLang stores the resolved language.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLang, lang)
}

func langFrom(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyLang).(string)
	return v
}

// WithTheme stores the visitor's theme preference.
func WithTheme(ctx context.Context, p theme.Preference) context.Context {
	return context.WithValue(ctx, ctxKeyTheme, p)
}

func themeFrom(ctx context.Context) (theme.Preference, bool) {
	v, ok := ctx.Value(ctxKeyTheme).(theme.Preference)
	return v, ok
}
