package middlewares

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/httplang/pkg/locale"
	"github.com/dmitrymomot/httplang/pkg/logger"
)

// localeKey is the context key for storing the negotiated locale.
type localeKey struct{}

// RedirectMode selects whether and how the Locale middleware redirects
// requests that lack a locale path prefix.
type RedirectMode uint8

const (
	// NoRedirect resolves the locale from the Accept-Language header and
	// attaches it to the request. The URI is never changed and no redirect
	// is ever issued.
	NoRedirect RedirectMode = iota

	// RedirectToLanguageSubPath expects a locale prefix in the path
	// ("/en/..."). Requests without one are redirected to a path prefixed
	// with the preferred locale's language subtag only.
	//
	// Stripping rewrites the language-subtag form of the prefix. A regional
	// prefix such as "/en-US/" still resolves the locale, but the path
	// reaches the next handler unchanged; emit language-only prefixes in
	// this mode.
	RedirectToLanguageSubPath

	// RedirectToFullLocaleSubPath is like RedirectToLanguageSubPath but
	// uses the full locale tag ("/en-US/...") as the prefix.
	RedirectToFullLocaleSubPath
)

// String returns the mode name for logging and error messages.
func (m RedirectMode) String() string {
	switch m {
	case NoRedirect:
		return "no_redirect"
	case RedirectToLanguageSubPath:
		return "redirect_to_language_sub_path"
	case RedirectToFullLocaleSubPath:
		return "redirect_to_full_locale_sub_path"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Mode          RedirectMode
	ExcludedPaths []string // path prefixes exempt from redirect decisions
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithRedirectMode sets the redirect mode. The default is NoRedirect.
func WithRedirectMode(mode RedirectMode) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Mode = mode
	}
}

// WithExcludedPaths sets path prefixes that bypass locale negotiation
// entirely in the path-prefix redirect modes. Typical entries are asset
// and health-check paths ("/static/", "/healthz").
func WithExcludedPaths(prefixes ...string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.ExcludedPaths = prefixes
	}
}

// Locale returns middleware that determines which locale governs each
// request and, in the path-prefix modes, redirects requests lacking a
// locale prefix.
//
// The configuration is captured once and never mutated afterwards, so a
// single middleware instance is safe for concurrent requests. The resolved
// locale is stored in the request context; read it with GetLocale.
func Locale(defaultLocale locale.Tag, supported []locale.Tag, opts ...LocaleOption) func(http.Handler) http.Handler {
	if defaultLocale.IsZero() {
		panic("middlewares: default locale is not provided")
	}

	cfg := &LocaleConfig{Mode: NoRedirect}
	for _, opt := range opts {
		opt(cfg)
	}

	// Private snapshots keep the configuration immutable after construction.
	supported = slices.Clone(supported)
	excluded := slices.Clone(cfg.ExcludedPaths)
	mode := cfg.Mode

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch mode {
			case NoRedirect:
				tag, ok := locale.ParseAcceptLanguage(r.Header.Get("Accept-Language"), supported)
				if !ok {
					tag = defaultLocale
				}
				next.ServeHTTP(w, withLocale(r, tag))

			case RedirectToLanguageSubPath, RedirectToFullLocaleSubPath:
				if tag, ok := locale.FromPath(r.URL.Path, supported); ok {
					// Prefix already present: strip it and pass through.
					next.ServeHTTP(w, withLocale(stripLocalePrefix(r, localePathPrefix(tag, mode)), tag))
					return
				}

				for _, prefix := range excluded {
					if strings.HasPrefix(r.URL.Path, prefix) {
						// Exclusion bypasses negotiation entirely: no locale attached.
						next.ServeHTTP(w, r)
						return
					}
				}

				preferred, ok := locale.ParseAcceptLanguage(r.Header.Get("Accept-Language"), supported)
				if !ok {
					preferred = defaultLocale
				}

				// Original path and query are preserved behind the new prefix.
				target := "/" + localePathPrefix(preferred, mode) + r.URL.RequestURI()
				w.Header().Set("Location", target)
				w.WriteHeader(http.StatusFound)

			default:
				panic(fmt.Sprintf("middlewares: unknown redirect mode %s", mode))
			}
		})
	}
}

// localePathPrefix returns the path-prefix representation of tag for the
// given mode: the language subtag only, or the full tag.
func localePathPrefix(tag locale.Tag, mode RedirectMode) string {
	switch mode {
	case RedirectToLanguageSubPath:
		return tag.Language()
	case RedirectToFullLocaleSubPath:
		return tag.String()
	default:
		panic(fmt.Sprintf("middlewares: redirect mode %s has no path prefix", mode))
	}
}

// stripLocalePrefix removes the first "/<repr>/" occurrence from the request
// URI and returns a request with the rewritten URL. Only the first match is
// replaced, so later path segments that share a prefix with the locale code
// survive untouched. Applying it to an already-stripped URI is a no-op.
//
// The rewritten string is always derived from a previously valid URI;
// a reconstruction failure is an internal invariant violation and panics.
func stripLocalePrefix(r *http.Request, repr string) *http.Request {
	uri := r.URL.RequestURI()
	rewritten := strings.Replace(uri, "/"+repr+"/", "/", 1)
	if rewritten == uri {
		return r
	}

	u, err := url.ParseRequestURI(rewritten)
	if err != nil {
		panic(fmt.Sprintf("middlewares: rewritten URI %q is invalid: %s", rewritten, err))
	}

	r2 := r.Clone(r.Context())
	r2.URL = u
	r2.RequestURI = rewritten
	return r2
}

// withLocale returns a shallow copy of r carrying tag in its context.
func withLocale(r *http.Request, tag locale.Tag) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), localeKey{}, tag))
}

// GetLocale extracts the negotiated locale from the context.
// Returns false if the Locale middleware did not attach one, which also
// happens for requests matching an excluded path prefix.
func GetLocale(ctx context.Context) (locale.Tag, bool) {
	tag, ok := ctx.Value(localeKey{}).(locale.Tag)
	return tag, ok
}

// MustLocale extracts the negotiated locale from the context, returning
// fallback when the Locale middleware did not attach one. Handlers that
// always need a locale use this instead of checking GetLocale's second
// return value.
func MustLocale(ctx context.Context, fallback locale.Tag) locale.Tag {
	if tag, ok := GetLocale(ctx); ok {
		return tag
	}
	return fallback
}

// LocaleExtractor returns a ContextExtractor for use with the logger package.
// Automatically adds "locale" to all log entries for negotiated requests.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if tag, ok := GetLocale(ctx); ok {
			return slog.String("locale", tag.String()), true
		}
		return slog.Attr{}, false
	}
}
