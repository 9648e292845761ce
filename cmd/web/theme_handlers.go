package main

import (
	"encoding/json"
	"net/http"
	"net/url"

	mw "veltacases.com/web/internal/middleware"
	"veltacases.com/web/internal/theme"
)

// ThemeToggleView drives the theme toggle button partial. The field set
// mirrors PageData so the base layout can render the same partial.
type ThemeToggleView struct {
	Lang  string
	Theme theme.Preference
}

func themeToggleView(lang string, pref theme.Preference) ThemeToggleView {
	return ThemeToggleView{Lang: lang, Theme: pref}
}

// ThemeToggleHandler flips the stored theme preference. htmx requests
// get the refreshed toggle button plus an event carrying the new body
// class; plain form posts bounce back to the referring page.
func ThemeToggleHandler(w http.ResponseWriter, r *http.Request) {
	next := mw.CurrentTheme(r).Toggle()
	theme.Write(w, next)

	if mw.IsHTMX(r.Context()) {
		payload := map[string]any{
			"velta:theme": map[string]string{"class": next.Class()},
		}
		if raw, err := json.Marshal(payload); err == nil {
			w.Header().Set("HX-Trigger", string(raw))
		}
		renderTemplate(w, r, "frag_theme_toggle", themeToggleView(mw.Lang(r), next))
		return
	}

	target := "/"
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" {
		target = ref.Path
		if ref.RawQuery != "" {
			target += "?" + ref.RawQuery
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
