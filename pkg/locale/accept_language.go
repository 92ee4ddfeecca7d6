package locale

import "strings"

// maxAcceptLanguageLength caps header processing to guard against oversized
// Accept-Language values.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage extracts the first supported locale from an
// Accept-Language header value.
//
// The whole header is tried as a single tag first (the common case for simple
// clients). If that fails or is unsupported, the header is split on commas,
// quality suffixes (";q=...") are stripped, and segments are tried in header
// order, which is the client's preference order. Malformed segments and
// wildcards ("*") are skipped rather than aborting the scan. Quality values
// are stripped, not used for ranking: this is a first-supported-preference
// scan, not a weighted negotiation.
//
// Returns false when the header is empty or no segment is supported; callers
// fall back to their default locale.
func ParseAcceptLanguage(header string, supported []Tag) (Tag, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Tag{}, false
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	if tag, err := Parse(header); err == nil && Supported(tag, supported) {
		return tag, true
	}

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i := strings.IndexByte(part, ';'); i >= 0 {
			part = strings.TrimSpace(part[:i])
		}

		tag, err := Parse(part)
		if err != nil {
			continue
		}
		if Supported(tag, supported) {
			return tag, true
		}
	}

	return Tag{}, false
}
