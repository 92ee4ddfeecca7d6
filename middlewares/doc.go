// Package middlewares provides the HTTP locale negotiation middleware.
//
// Locale wraps a downstream http.Handler and decides, per request, which
// locale governs the response. In NoRedirect mode the locale comes from the
// Accept-Language header. In the path-prefix modes the first path segment
// is authoritative: a supported locale prefix is stripped from the URI
// before the downstream handler runs, and requests without one receive a
// 302 redirect to a locale-prefixed path built from the header preference
// or the default locale. Excluded path prefixes bypass negotiation
// entirely.
//
// Negotiation is pure, synchronous, per-request work: the middleware holds
// only immutable configuration and introduces no buffering between the
// client and the downstream handler.
package middlewares
