// Package locale provides parsing and matching of language tags for HTTP
// locale negotiation.
//
// A Tag is an immutable, normalized language identifier ("en", "en-US",
// "zh-Hans") built on golang.org/x/text/language. Tags compare two ways:
// full equality (all subtags) and language-only equality (primary subtag,
// ignoring region and script). Supported-set membership always uses
// language-only equality, so a set containing "en" accepts "en-US".
//
// # Parsing
//
//	tag, err := locale.Parse("en-US")
//	tag.Language() // "en"
//	tag.String()   // "en-US"
//
// # Negotiation sources
//
// ParseAcceptLanguage scans an Accept-Language header in client preference
// order and returns the first supported tag:
//
//	supported := []locale.Tag{locale.MustParse("en"), locale.MustParse("ja")}
//	tag, ok := locale.ParseAcceptLanguage("de,en-US;q=0.5", supported)
//	// tag = "en-US", ok = true
//
// FromPath extracts a supported locale from the first path segment:
//
//	tag, ok := locale.FromPath("/ja/lists", supported)
//	// tag = "ja", ok = true
//
// # Resolution
//
// Match performs the exact-then-language fallback lookup shared by content
// negotiation and message-catalog resolution: an exact full-tag match wins,
// otherwise the first candidate with the same primary language subtag.
//
// All functions are pure; Tag values are safe to share across goroutines.
package locale
