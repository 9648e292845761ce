// Package recent tracks the visitor's recently viewed products in a signed
// cookie.
package recent

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	cookieName = "recently_viewed"
	maxEntries = 8
	lifetime   = 30 * 24 * time.Hour
)

// Codec signs and decodes the recently-viewed cookie.
type Codec struct {
	sc *securecookie.SecureCookie
}

// NewCodec builds a codec around the cookie signing key.
func NewCodec(hashKey []byte) *Codec {
	sc := securecookie.New(hashKey, nil)
	sc.SetSerializer(securecookie.JSONEncoder{})
	sc.MaxAge(int(lifetime.Seconds()))
	return &Codec{sc: sc}
}

// FromRequest returns the stored ids, most recent first. A missing or
// tampered cookie reads as empty.
func (c *Codec) FromRequest(r *http.Request) []string {
	ck, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}
	var ids []string
	if err := c.sc.Decode(cookieName, ck.Value, &ids); err != nil {
		return nil
	}
	return ids
}

// Push records id as the most recently viewed and rewrites the cookie. It
// returns the previous entries with id filtered out, which is what a
// "recently viewed" strip below the current product shows.
func (c *Codec) Push(w http.ResponseWriter, r *http.Request, id string) []string {
	prev := c.FromRequest(r)
	rest := make([]string, 0, len(prev))
	for _, v := range prev {
		if v != id {
			rest = append(rest, v)
		}
	}

	next := append([]string{id}, rest...)
	if len(next) > maxEntries {
		next = next[:maxEntries]
	}
	if encoded, err := c.sc.Encode(cookieName, next); err == nil {
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    encoded,
			Path:     "/",
			MaxAge:   int(lifetime.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return rest
}
