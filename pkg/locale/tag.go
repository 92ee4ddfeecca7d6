package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Tag is an immutable, normalized language tag such as "en" or "en-US".
// The zero value is not a valid tag; construct tags with Parse or MustParse.
type Tag struct {
	full   string // canonical full tag, e.g. "en-US"
	lang   string // primary language subtag, e.g. "en"
	script string // optional script subtag, e.g. "Hans"
	region string // optional region subtag, e.g. "US"
}

// Parse parses and normalizes a language tag. It returns an error wrapping
// ErrInvalidTag when the input does not conform to the language-tag grammar
// (empty string, wildcard, invalid subtags). There is no partial success:
// on error the returned Tag is the zero value.
func Parse(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Tag{}, fmt.Errorf("%w: empty input", ErrInvalidTag)
	}

	t, err := language.Parse(s)
	if err != nil {
		return Tag{}, fmt.Errorf("%w: %q: %s", ErrInvalidTag, s, err)
	}

	base, script, region := t.Raw()

	tag := Tag{
		full: t.String(),
		lang: base.String(),
	}
	// Raw reports placeholder values ("Zzzz", "ZZ") for absent subtags.
	if v := script.String(); v != "Zzzz" {
		tag.script = v
	}
	if v := region.String(); v != "ZZ" {
		tag.region = v
	}

	return tag, nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for tags hardcoded at startup.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the canonical full tag, e.g. "en-US".
func (t Tag) String() string { return t.full }

// Language returns the primary language subtag, e.g. "en".
func (t Tag) Language() string { return t.lang }

// Region returns the region subtag, or an empty string if absent.
func (t Tag) Region() string { return t.region }

// Script returns the script subtag, or an empty string if absent.
func (t Tag) Script() string { return t.script }

// IsZero reports whether t is the zero (unparsed) tag.
func (t Tag) IsZero() bool { return t.full == "" }

// Equal reports full-tag equality: all subtags must match.
func (t Tag) Equal(other Tag) bool { return t.full == other.full }

// SameLanguage reports language-only equality: only the primary language
// subtag is compared, region and script are ignored.
func (t Tag) SameLanguage(other Tag) bool {
	return t.lang != "" && t.lang == other.lang
}
