package main

import (
	"context"
	"errors"
	"flag"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"veltacases.com/web/internal/catalog"
	"veltacases.com/web/internal/config"
	"veltacases.com/web/internal/contact"
	"veltacases.com/web/internal/content"
	"veltacases.com/web/internal/i18n"
	mw "veltacases.com/web/internal/middleware"
	"veltacases.com/web/internal/observability"
	"veltacases.com/web/internal/recent"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	localesDir   = "locales"
	contentDir   = "content"

	devMode   bool
	tmplCache *template.Template

	appConfig    config.Config
	logger       *zap.Logger
	i18nBundle   *i18n.Bundle
	catalogStore *catalog.Store
	contentStore *content.Store
	recentCodec  *recent.Codec
	merchant     contact.Merchant
)

func currentYear() int { return time.Now().Year() }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		addr     string
		tmplPath string
		pubPath  string
		locPath  string
		contPath string
	)
	flag.StringVar(&addr, "addr", cfg.Addr, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&locPath, "locales", localesDir, "locale dictionaries directory")
	flag.StringVar(&contPath, "content", contentDir, "markdown content directory")
	flag.Parse()

	appConfig = cfg
	templatesDir = tmplPath
	publicDir = pubPath
	localesDir = locPath
	contentDir = contPath
	devMode = cfg.Dev

	logger, err = observability.NewLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	i18nBundle, err = i18n.Load(localesDir, "en")
	if err != nil {
		logger.Fatal("load locales", zap.Error(err))
	}

	var loader catalog.Loader
	if cfg.FeedURL != "" {
		loader = catalog.NewClient(cfg.FeedURL,
			catalog.WithTimeout(cfg.FeedTimeout),
			catalog.WithRetries(cfg.FeedRetries),
			catalog.WithLogger(logger),
		)
	} else {
		loader = catalog.FileLoader{Path: cfg.FeedFile}
	}
	catalogStore = catalog.NewStore(loader, logger)
	contentStore = content.NewStore(contentDir, content.WithReload(devMode), content.WithFallbackLang("en"))
	recentCodec = recent.NewCodec(cfg.CookieKey)
	merchant = contact.Merchant{
		Name:     "Velta Cases",
		WhatsApp: cfg.WhatsApp,
		Email:    cfg.Email,
		BaseURL:  cfg.BaseURL,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(mw.HTMX)
	r.Use(mw.Locale(i18nBundle))
	r.Use(mw.LoadTheme)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets under /assets/
	r.Handle("/assets/*", mw.AssetsWithCache("/assets", filepath.Join(publicDir, "assets")))

	r.Get("/", ShopHandler)
	// The breadcrumb trail and nav link to /products as the listing alias.
	r.Get("/products", func(w http.ResponseWriter, r *http.Request) {
		target := "/"
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	})
	r.Get("/fragments/products", ShopGridFrag)
	r.Get("/products/{productID}", ProductDetailHandler)
	r.Get("/fragments/products/{productID}/gallery", ProductGalleryFrag)
	r.Post("/theme", ThemeToggleHandler)
	r.Get("/about", StaticPageHandler("about"))
	r.Get("/care", StaticPageHandler("care"))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          zap.NewStdLog(logger),
	}

	// Warm the catalog so the first page view does not wait on the feed.
	go func() {
		warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_, _ = catalogStore.Refresh(warmCtx)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("web listening", zap.String("addr", addr), zap.Bool("dev", devMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("web stopped")
}
