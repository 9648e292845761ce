package main

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"veltacases.com/web/internal/catalog"
	handlersPkg "veltacases.com/web/internal/handlers"
	mw "veltacases.com/web/internal/middleware"
	"veltacases.com/web/internal/nav"
	"veltacases.com/web/internal/seo"
)

// ProductDetailHandler renders a single product page, or the not-found
// view when the id has no catalog match.
func ProductDetailHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	id := chi.URLParam(r, "productID")
	records, _ := catalogStore.Refresh(r.Context())

	brand := i18nOrDefault(lang, "brand.name", "Velta Cases")

	p, ok := catalog.Find(records, id)
	if !ok {
		view := notFoundDetailView(lang, id)
		title := i18nBundle.T(lang, "detail.notfound.title")
		vm := handlersPkg.PageData{
			Title:       title,
			Lang:        lang,
			Theme:       mw.CurrentTheme(r),
			Year:        currentYear(),
			Path:        r.URL.Path,
			Nav:         nav.Build(r.URL.Path),
			Breadcrumbs: nav.BreadcrumbsNamed(r.URL.Path, title),
			Analytics:   handlersPkg.LoadAnalyticsFromEnv(),
			Product:     view,
		}
		vm.SEO.Title = title + " | " + brand
		vm.SEO.NoIndex = true
		renderPageStatus(w, r, http.StatusNotFound, "detail", vm)
		return
	}

	previous := recentCodec.Push(w, r, p.ID.String())
	view := buildDetailView(lang, p)
	view.Recent = buildRecentStrip(lang, previous, records)

	vm := handlersPkg.PageData{
		Title:       p.Name,
		Lang:        lang,
		Theme:       mw.CurrentTheme(r),
		Year:        currentYear(),
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.BreadcrumbsNamed(r.URL.Path, p.Name),
		Analytics:   handlersPkg.LoadAnalyticsFromEnv(),
		Product:     view,
	}

	canonical := absolutePath(r, "/products/"+url.PathEscape(p.ID.String()))
	vm.SEO.Title = p.Name + " | " + brand
	vm.SEO.Description = truncateText(p.Description, 160)
	vm.SEO.Canonical = canonical
	vm.SEO.OG.URL = canonical
	vm.SEO.OG.SiteName = brand
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	vm.SEO.OG.Type = "product"
	vm.SEO.OG.Image = p.PrimaryImage()
	vm.SEO.Twitter.Card = "summary_large_image"
	vm.SEO.Twitter.Image = p.PrimaryImage()
	vm.SEO.Alternates = buildAlternates(r)
	vm.SEO.JSONLD = []string{
		seo.JSON(seo.Product(p.Name, vm.SEO.Description, canonical, p.PrimaryImage(), p.ID.String(), float64(p.Price), "EUR")),
		seo.JSON(seo.BreadcrumbList([]seo.BreadcrumbItem{
			{Name: i18nBundle.T(lang, "nav.shop"), Item: absoluteBase(r) + "/"},
			{Name: p.Name, Item: canonical},
		})),
	}

	renderPage(w, r, "detail", vm)
}

// ProductGalleryFrag swaps the gallery to the requested image without a
// full page load.
func ProductGalleryFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	id := chi.URLParam(r, "productID")
	records, _ := catalogStore.Snapshot()

	p, ok := catalog.Find(records, id)
	if !ok {
		mw.WriteError(w, r, http.StatusNotFound, "product_not_found", i18nBundle.T(lang, "detail.notfound.title"))
		return
	}

	active := 0
	if raw := r.URL.Query().Get("image"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			active = n
		}
	}
	renderTemplate(w, r, "frag_gallery", buildGalleryView(lang, p, active))
}
