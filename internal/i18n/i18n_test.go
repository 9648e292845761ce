package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func loadBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load("../../locales", "en")
	require.NoError(t, err)
	return b
}

func TestLoad(t *testing.T) {
	t.Parallel()

	b := loadBundle(t)
	require.Equal(t, []string{"en", "es"}, b.Supported())
	require.Equal(t, "en", b.Fallback())
	require.True(t, b.Has("es"))
	require.False(t, b.Has("fr"))
}

func TestLoadMissingFallback(t *testing.T) {
	t.Parallel()

	_, err := Load("../../locales", "de")
	require.Error(t, err)
}

func TestT(t *testing.T) {
	t.Parallel()

	b := loadBundle(t)
	require.Equal(t, "Search", b.T("en", "shop.search.label"))
	require.Equal(t, "Buscar", b.T("es", "shop.search.label"))
	require.Equal(t, b.T("en", "shop.search.label"), b.T("fr", "shop.search.label"),
		"unknown language falls back to the default")
	require.Equal(t, "shop.unknown.key", b.T("en", "shop.unknown.key"),
		"unknown key falls back to the key itself")
}

func TestTF(t *testing.T) {
	t.Parallel()

	b := loadBundle(t)
	got := b.TF("en", "contact.message", "Marina Ten", "2", "https://veltacases.com/products/2")
	require.Contains(t, got, "Marina Ten")
	require.Contains(t, got, "2")
}

func TestResolve(t *testing.T) {
	t.Parallel()

	b := loadBundle(t)

	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{name: "q values decide", accept: "es;q=0.8, en;q=0.9", want: "en"},
		{name: "region tag reduces to base", accept: "es-MX", want: "es"},
		{name: "first supported wins", accept: "fr, es, en", want: "es"},
		{name: "unsupported only", accept: "fr, de", want: "en"},
		{name: "empty header", accept: "", want: "en"},
		{name: "malformed q keeps full weight", accept: "es;q=high, en", want: "es"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, b.Resolve(tc.accept))
		})
	}
}
