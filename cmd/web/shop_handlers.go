package main

import (
	"net/http"

	handlersPkg "veltacases.com/web/internal/handlers"
	mw "veltacases.com/web/internal/middleware"
	"veltacases.com/web/internal/nav"
	"veltacases.com/web/internal/seo"
)

// ShopHandler renders the catalog page. Full page loads refresh the
// catalog from the feed; fragment requests reuse the last snapshot.
func ShopHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	records, err := catalogStore.Refresh(r.Context())
	view := buildShopView(lang, records, err, catalogStore.LoadedAt(), r.URL.Query())

	title := i18nOrDefault(lang, "meta.home.title", "Handcrafted watch display cases")
	desc := i18nOrDefault(lang, "meta.home.desc", "Solid wood watch display cases.")

	vm := handlersPkg.PageData{
		Title:       title,
		Lang:        lang,
		Theme:       mw.CurrentTheme(r),
		Year:        currentYear(),
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path),
		Analytics:   handlersPkg.LoadAnalyticsFromEnv(),
		Shop:        view,
	}

	brand := i18nOrDefault(lang, "brand.name", "Velta Cases")
	vm.SEO.Title = title + " | " + brand
	vm.SEO.Description = desc
	vm.SEO.Canonical = absoluteURL(r)
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.SiteName = brand
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	vm.SEO.OG.Type = "website"
	vm.SEO.Twitter.Card = "summary_large_image"
	vm.SEO.Alternates = buildAlternates(r)
	vm.SEO.JSONLD = []string{
		seo.JSON(seo.Organization(brand, absoluteBase(r), absolutePath(r, "/assets/img/logo.svg"))),
		seo.JSON(seo.WebSite(brand, absoluteBase(r), absolutePath(r, "/?q="))),
	}

	renderPage(w, r, "shop", vm)
}

// ShopGridFrag re-derives the product grid from the current snapshot
// without hitting the feed.
func ShopGridFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	records, lastErr := catalogStore.Snapshot()
	view := buildShopView(lang, records, lastErr, catalogStore.LoadedAt(), r.URL.Query())

	w.Header().Set("HX-Push-Url", view.PushURL)
	renderTemplate(w, r, "frag_product_grid", view)
}
