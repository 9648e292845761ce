// Package theme persists the visitor's light or dark preference per origin.
package theme

import (
	"net/http"
	"time"
)

// Preference is the visitor's colour scheme choice.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

const cookieName = "theme"

// Parse maps a raw value onto a Preference. Unknown values read as Light.
func Parse(s string) Preference {
	if Preference(s) == Dark {
		return Dark
	}
	return Light
}

// FromRequest reads the stored preference; a fresh visitor is Light.
func FromRequest(r *http.Request) Preference {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return Light
	}
	return Parse(c.Value)
}

// Toggle flips the preference.
func (p Preference) Toggle() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

// Class returns the body class applied for the preference.
func (p Preference) Class() string { return "theme-" + string(p) }

// Write persists the preference for a year.
func Write(w http.ResponseWriter, p Preference) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    string(p),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
