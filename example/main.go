package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/httplang"
	"github.com/dmitrymomot/httplang/pkg/i18n"
	"github.com/dmitrymomot/httplang/pkg/logger"
)

//go:embed translations
var translationsFS embed.FS

func main() {
	log := logger.New(httplang.LocaleExtractor())

	subFS, err := fs.Sub(translationsFS, "translations")
	if err != nil {
		log.Error("failed to open translations", "error", err)
		os.Exit(1)
	}

	catalog, err := httplang.NewCatalog(
		i18n.WithYAMLDir(subFS),
		i18n.WithErrorLog(log),
	)
	if err != nil {
		log.Error("failed to build catalog", "error", err)
		os.Exit(1)
	}

	defaultLocale := httplang.MustParseTag("en")
	supported := catalog.Locales()

	r := chi.NewRouter()
	r.Use(httplang.Locale(defaultLocale, supported,
		httplang.WithRedirectMode(httplang.RedirectToLanguageSubPath),
		httplang.WithExcludedPaths("/healthz"),
	))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		tag := httplang.MustLocale(r.Context(), defaultLocale)

		msg, err := catalog.Format(tag, "greeting", httplang.M{"name": "visitor"})
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		log.InfoContext(r.Context(), "rendering greeting")
		fmt.Fprintln(w, msg)
	})

	srv := &http.Server{
		Addr:              getEnv("ADDRESS", ":8080"),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
