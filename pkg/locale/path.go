package locale

import "strings"

// FromPath extracts a supported locale from the first segment of a URL path.
// For "/ja/lists" it returns the "ja" tag when "ja" is in supported.
// It returns false when the path has no first segment, the segment does not
// parse as a language tag, or the parsed tag is not supported.
func FromPath(path string, supported []Tag) (Tag, bool) {
	parts := strings.Split(path, "/")
	// Index 0 is the empty element before the leading slash.
	if len(parts) < 2 {
		return Tag{}, false
	}

	tag, err := Parse(parts[1])
	if err != nil {
		return Tag{}, false
	}
	if !Supported(tag, supported) {
		return Tag{}, false
	}
	return tag, true
}
