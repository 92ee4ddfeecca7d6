package httplang

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/httplang/middlewares"
	"github.com/dmitrymomot/httplang/pkg/i18n"
	"github.com/dmitrymomot/httplang/pkg/locale"
	"github.com/dmitrymomot/httplang/pkg/logger"
)

// Type aliases - public API
type (
	// Tag is an immutable, normalized language tag such as "en" or "en-US".
	Tag = locale.Tag

	// RedirectMode selects whether and how requests lacking a locale path
	// prefix are redirected.
	RedirectMode = middlewares.RedirectMode

	// LocaleOption configures the Locale middleware.
	LocaleOption = middlewares.LocaleOption

	// Catalog is an immutable message catalog keyed by locale.
	Catalog = i18n.Catalog

	// CatalogOption configures a Catalog during construction.
	CatalogOption = i18n.Option

	// NumberOptions controls numeric argument formatting in messages.
	NumberOptions = i18n.NumberOptions

	// M is a convenience alias for formatting arguments.
	M = i18n.M

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor
)

// Redirect modes
const (
	NoRedirect                  = middlewares.NoRedirect
	RedirectToLanguageSubPath   = middlewares.RedirectToLanguageSubPath
	RedirectToFullLocaleSubPath = middlewares.RedirectToFullLocaleSubPath
)

// ParseTag parses and normalizes a language tag.
func ParseTag(s string) (Tag, error) {
	return locale.Parse(s)
}

// MustParseTag is like ParseTag but panics on invalid input.
// Intended for tags hardcoded at startup.
func MustParseTag(s string) Tag {
	return locale.MustParse(s)
}

// Locale returns middleware that negotiates the locale for each request.
//
// Example:
//
//	supported := []httplang.Tag{
//	    httplang.MustParseTag("en"),
//	    httplang.MustParseTag("ja"),
//	}
//
//	mux := chi.NewRouter()
//	mux.Use(httplang.Locale(supported[0], supported,
//	    httplang.WithRedirectMode(httplang.RedirectToLanguageSubPath),
//	    httplang.WithExcludedPaths("/static/"),
//	))
func Locale(defaultLocale Tag, supported []Tag, opts ...LocaleOption) func(http.Handler) http.Handler {
	return middlewares.Locale(defaultLocale, supported, opts...)
}

// WithRedirectMode sets the middleware redirect mode. The default is NoRedirect.
func WithRedirectMode(mode RedirectMode) LocaleOption {
	return middlewares.WithRedirectMode(mode)
}

// WithExcludedPaths sets path prefixes exempt from redirect decisions.
func WithExcludedPaths(prefixes ...string) LocaleOption {
	return middlewares.WithExcludedPaths(prefixes...)
}

// GetLocale extracts the negotiated locale from the request context.
func GetLocale(ctx context.Context) (Tag, bool) {
	return middlewares.GetLocale(ctx)
}

// MustLocale extracts the negotiated locale from the request context,
// returning fallback when the middleware did not attach one.
func MustLocale(ctx context.Context, fallback Tag) Tag {
	return middlewares.MustLocale(ctx, fallback)
}

// LocaleExtractor returns a ContextExtractor that adds "locale" to log
// entries for negotiated requests.
func LocaleExtractor() ContextExtractor {
	return middlewares.LocaleExtractor()
}

// NewCatalog creates an immutable message catalog with the given options.
func NewCatalog(opts ...CatalogOption) (*Catalog, error) {
	return i18n.New(opts...)
}
