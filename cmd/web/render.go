package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"veltacases.com/web/internal/format"
	"veltacases.com/web/internal/seo"
)

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"t": func(lang, key string) string {
			return i18nBundle.T(lang, key)
		},
		"tf": func(lang, key string, args ...any) string {
			return i18nBundle.TF(lang, key, args...)
		},
		"currency": format.Currency,
		"date":     format.Date,
		// jsonld marks pre-serialized schema.org payloads as safe for
		// direct embedding in ld+json script elements.
		"jsonld": func(s string) template.JS {
			return template.JS(s)
		},
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func templates(w http.ResponseWriter) *template.Template {
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	if tmplCache == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return nil
	}
	return tmplCache
}

// renderPage executes a full page template. In dev mode templates are
// reparsed on each request.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := templates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("render page", zap.String("template", name), zap.Error(err))
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// renderPageStatus is renderPage with an explicit response status for
// views like the product not-found page.
func renderPageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	t := templates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("render page", zap.String("template", name), zap.Error(err))
	}
}

// renderTemplate executes a fragment template without the page layout.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := templates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("render fragment", zap.String("template", name), zap.Error(err))
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// i18nOrDefault translates key for lang, returning def when the bundle
// has no entry.
func i18nOrDefault(lang, key, def string) string {
	if i18nBundle == nil {
		return def
	}
	if got := i18nBundle.T(lang, key); got != key {
		return got
	}
	return def
}

func absoluteBase(r *http.Request) string {
	if base := strings.TrimRight(appConfig.BaseURL, "/"); base != "" {
		return base
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// absoluteURL reconstructs the full URL of the current request.
func absoluteURL(r *http.Request) string {
	u := absoluteBase(r) + r.URL.Path
	if r.URL.RawQuery != "" {
		u += "?" + r.URL.RawQuery
	}
	return u
}

func absolutePath(r *http.Request, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return absoluteBase(r) + path
}

// buildAlternates lists hreflang links for every supported language plus
// an x-default pointing at the language-negotiated URL.
func buildAlternates(r *http.Request) []seo.Alternate {
	if i18nBundle == nil {
		return nil
	}
	langs := i18nBundle.Supported()
	alts := make([]seo.Alternate, 0, len(langs)+1)
	for _, lang := range langs {
		q := cloneQuery(r.URL.Query())
		q.Set("hl", lang)
		alts = append(alts, seo.Alternate{Href: urlWithQuery(r, q), Hreflang: lang})
	}
	q := cloneQuery(r.URL.Query())
	q.Del("hl")
	alts = append(alts, seo.Alternate{Href: urlWithQuery(r, q), Hreflang: "x-default"})
	return alts
}

func urlWithQuery(r *http.Request, q url.Values) string {
	u := absoluteBase(r) + r.URL.Path
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func cloneQuery(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, vs := range q {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
