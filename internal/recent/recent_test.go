package recent

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

// carry moves the cookie written by Push onto a fresh request, the way a
// browser would on the next page view.
func carry(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestPushAndRead(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testKey)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	rest := codec.Push(rec, req, "case-01")
	require.Empty(t, rest, "nothing viewed before the first push")

	req = carry(t, rec)
	require.Equal(t, []string{"case-01"}, codec.FromRequest(req))

	rec = httptest.NewRecorder()
	rest = codec.Push(rec, req, "7")
	require.Equal(t, []string{"case-01"}, rest)

	req = carry(t, rec)
	require.Equal(t, []string{"7", "case-01"}, codec.FromRequest(req))
}

func TestPushDeduplicates(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testKey)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	codec.Push(rec, req, "1")
	req = carry(t, rec)

	rec = httptest.NewRecorder()
	codec.Push(rec, req, "2")
	req = carry(t, rec)

	rec = httptest.NewRecorder()
	rest := codec.Push(rec, req, "1")
	require.Equal(t, []string{"2"}, rest, "re-viewed id moves to the front, not duplicated")

	req = carry(t, rec)
	require.Equal(t, []string{"1", "2"}, codec.FromRequest(req))
}

func TestPushCapsEntries(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testKey)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for i := 0; i < 12; i++ {
		rec := httptest.NewRecorder()
		codec.Push(rec, req, fmt.Sprintf("case-%02d", i))
		req = carry(t, rec)
	}

	ids := codec.FromRequest(req)
	require.Len(t, ids, maxEntries)
	require.Equal(t, "case-11", ids[0])
}

func TestTamperedCookieReadsEmpty(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testKey)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "recently_viewed", Value: "not-a-signed-value"})
	require.Nil(t, codec.FromRequest(req))
}

func TestKeysDoNotCrossDecode(t *testing.T) {
	t.Parallel()

	codec := NewCodec(testKey)
	other := NewCodec([]byte("ffffffffffffffffffffffffffffffff"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	codec.Push(rec, req, "1")

	req = carry(t, rec)
	require.Nil(t, other.FromRequest(req))
}
