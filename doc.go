// Package httplang negotiates the locale that governs each inbound HTTP
// request and, optionally, redirects clients to locale-prefixed URLs.
//
// The middleware parses locale hints from the URL path and the
// Accept-Language header, matches them against a configured supported set
// by primary language subtag, and either attaches the resolved locale to
// the request context or issues a 302 redirect to a locale-prefixed path.
// It never changes the semantics of a request it does not need to redirect.
//
// # Quick Start
//
//	supported := []httplang.Tag{
//	    httplang.MustParseTag("en"),
//	    httplang.MustParseTag("ja"),
//	}
//
//	handler := httplang.Locale(supported[0], supported,
//	    httplang.WithRedirectMode(httplang.RedirectToLanguageSubPath),
//	    httplang.WithExcludedPaths("/static/", "/healthz"),
//	)(mux)
//
// A request to "/lists" with header "en-US,en;q=0.5" is redirected to
// "/en/lists"; a request to "/en/lists" passes through as "/lists" with
// the "en" tag attached to its context:
//
//	tag, ok := httplang.GetLocale(r.Context())
//
// # Subpackages
//
// The root package re-exports the common API. The subpackages hold the
// implementations:
//
//   - pkg/locale: language tag parsing and matching
//   - pkg/i18n: message catalog with exact-then-language fallback
//   - pkg/logger: slog factory with context-aware attributes
//   - middlewares: the negotiation middleware itself
package httplang
