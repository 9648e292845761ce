package main

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"veltacases.com/web/internal/content"
	"veltacases.com/web/internal/format"
	handlersPkg "veltacases.com/web/internal/handlers"
	mw "veltacases.com/web/internal/middleware"
	"veltacases.com/web/internal/nav"
	"veltacases.com/web/internal/seo"

	"go.uber.org/zap"
)

const contentCacheControl = "public, max-age=600"

// ContentView is the static page view model.
type ContentView struct {
	Lang         string
	Title        string
	Summary      string
	Body         template.HTML
	Headings     []content.Heading
	UpdatedLabel string
}

// StaticPageHandler serves a markdown-backed page such as /about or /care.
func StaticPageHandler(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := mw.Lang(r)
		page, err := contentStore.Page(slug, lang)
		if errors.Is(err, content.ErrNotFound) {
			mw.WriteError(w, r, http.StatusNotFound, "page_not_found", http.StatusText(http.StatusNotFound))
			return
		}
		if err != nil {
			logger.Error("load content page", zap.String("slug", slug), zap.Error(err))
			mw.WriteError(w, r, http.StatusInternalServerError, "content_error", i18nBundle.T(lang, "error.fragment"))
			return
		}

		etag := contentETag(page)
		w.Header().Set("Cache-Control", contentCacheControl)
		w.Header().Set("ETag", etag)
		if !page.UpdatedAt.IsZero() {
			w.Header().Set("Last-Modified", page.UpdatedAt.UTC().Format(http.TimeFormat))
		}
		if matchesETag(r, etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		view := ContentView{
			Lang:     page.Lang,
			Title:    page.Title,
			Summary:  page.Summary,
			Body:     page.Body,
			Headings: page.Headings,
		}
		if !page.UpdatedAt.IsZero() {
			view.UpdatedLabel = i18nBundle.TF(lang, "content.updated", format.Date(page.UpdatedAt, lang))
		}

		vm := handlersPkg.PageData{
			Title:       page.Title,
			Lang:        lang,
			Theme:       mw.CurrentTheme(r),
			Year:        currentYear(),
			Path:        r.URL.Path,
			Nav:         nav.Build(r.URL.Path),
			Breadcrumbs: nav.BreadcrumbsNamed(r.URL.Path, page.Title),
			Analytics:   handlersPkg.LoadAnalyticsFromEnv(),
			Content:     view,
		}

		brand := i18nOrDefault(lang, "brand.name", "Velta Cases")
		vm.SEO.Title = page.Title + " | " + brand
		vm.SEO.Description = firstNonEmptyString(page.SEO.Description, page.Summary, page.Excerpt)
		vm.SEO.Canonical = absoluteURL(r)
		vm.SEO.OG.URL = vm.SEO.Canonical
		vm.SEO.OG.SiteName = brand
		vm.SEO.OG.Title = vm.SEO.Title
		vm.SEO.OG.Description = vm.SEO.Description
		vm.SEO.OG.Type = "article"
		vm.SEO.Twitter.Card = "summary"
		vm.SEO.Alternates = buildAlternates(r)
		if !page.UpdatedAt.IsZero() {
			vm.SEO.JSONLD = []string{
				seo.JSON(seo.Article(page.Title, vm.SEO.Canonical, page.SEO.OGImage, page.UpdatedAt.UTC().Format("2006-01-02"))),
			}
		}

		renderPage(w, r, "content_page", vm)
	}
}

func contentETag(page content.Page) string {
	sum := sha256.Sum256([]byte(page.Lang + "|" + page.Slug + "|" + string(page.Body)))
	return fmt.Sprintf(`W/"%x"`, sum[:8])
}

func matchesETag(r *http.Request, etag string) bool {
	if etag == "" || r == nil {
		return false
	}
	raw := r.Header.Get("If-None-Match")
	if strings.TrimSpace(raw) == "" {
		return false
	}
	for _, candidate := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "*" || trimmed == etag {
			return true
		}
	}
	return false
}

func firstNonEmptyString(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
