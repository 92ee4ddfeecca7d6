package locale

// Supported reports whether tag matches any entry in supported by primary
// language subtag. Region and script are deliberately ignored so that
// "en-US" is accepted when only "en" is configured.
func Supported(tag Tag, supported []Tag) bool {
	for _, s := range supported {
		if tag.SameLanguage(s) {
			return true
		}
	}
	return false
}

// Match resolves tag against candidates using a two-stage lookup:
// an exact full-tag match wins, otherwise the first candidate sharing the
// primary language subtag is returned. Candidate order is preserved, so the
// result is deterministic for a given candidates slice.
func Match(tag Tag, candidates []Tag) (Tag, bool) {
	for _, c := range candidates {
		if tag.Equal(c) {
			return c, true
		}
	}
	for _, c := range candidates {
		if tag.SameLanguage(c) {
			return c, true
		}
	}
	return Tag{}, false
}
