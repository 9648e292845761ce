package handlers

import (
	"veltacases.com/web/internal/nav"
	"veltacases.com/web/internal/seo"
	"veltacases.com/web/internal/theme"
)

// PageData is the layout view model shared by every full page render.
// Handlers fill the common fields and attach their own payload to the
// slot matching the template being rendered.
type PageData struct {
	Title     string
	Lang      string
	Theme     theme.Preference
	Year      int
	SEO       seo.Meta
	Analytics Analytics

	// Common layout fields
	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Per-page payloads. Only the one for the rendered template is set.
	Shop    any
	Product any
	Content any
}
