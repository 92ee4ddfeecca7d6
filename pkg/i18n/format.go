package i18n

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/httplang/pkg/locale"
)

// Format renders the message under key for the given locale, resolving the
// locale with exact-then-language fallback. Argument values replace
// {{name}} placeholders; number arguments honor the catalog's NumberOptions.
//
// A missing argument is non-fatal: the placeholder stays in the output and
// the problem is reported to the error log. Structural failures return
// ErrLocaleNotFound, ErrKeyNotFound, or ErrNoStandaloneValue.
func (c *Catalog) Format(tag locale.Tag, key string, args M) (string, error) {
	return c.format(tag, key, "", args)
}

// FormatAttr is like Format but renders the named attribute of the message
// instead of its standalone value. A missing attribute returns
// ErrAttributeNotFound.
func (c *Catalog) FormatAttr(tag locale.Tag, key, attribute string, args M) (string, error) {
	if attribute == "" {
		return c.format(tag, key, "", args)
	}
	return c.format(tag, key, attribute, args)
}

func (c *Catalog) format(tag locale.Tag, key, attribute string, args M) (string, error) {
	resolved, ok := c.Resolve(tag)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLocaleNotFound, tag)
	}
	bundle := c.bundles[resolved.String()]

	lookupKey := key
	if attribute != "" {
		lookupKey = key + "." + attribute
	}

	message, exists := bundle[lookupKey]
	if !exists {
		switch {
		case attribute != "" && c.keyKnown(bundle, key):
			return "", fmt.Errorf("%w: %s.%s", ErrAttributeNotFound, key, attribute)
		case attribute == "" && hasAttributes(bundle, key):
			return "", fmt.Errorf("%w: %s", ErrNoStandaloneValue, key)
		default:
			return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}
	}

	return c.render(resolved, lookupKey, message, args), nil
}

// keyKnown reports whether key exists as a standalone message or owns any
// attribute entries.
func (c *Catalog) keyKnown(bundle map[string]string, key string) bool {
	if _, ok := bundle[key]; ok {
		return true
	}
	return hasAttributes(bundle, key)
}

func hasAttributes(bundle map[string]string, key string) bool {
	prefix := key + "."
	for k := range bundle {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// render substitutes {{name}} placeholders with coerced argument values.
// Placeholders without a matching argument are left in place and reported
// to the error log; the best-effort string is still returned.
func (c *Catalog) render(tag locale.Tag, key, message string, args M) string {
	if c.errLog != nil {
		// Missing names come from the message template, so argument values
		// that happen to contain "{{...}}" text are never misreported.
		for _, name := range placeholderNames(message) {
			if _, ok := args[name]; !ok {
				c.errLog.Warn("missing format argument",
					"locale", tag.String(),
					"key", key,
					"argument", name,
				)
			}
		}
	}

	result := message
	for name, value := range args {
		placeholder := "{{" + name + "}}"
		result = strings.ReplaceAll(result, placeholder, c.coerce(value))
	}

	return result
}

// coerce converts an argument value to its string form. Numbers honor the
// catalog's NumberOptions; strings pass through; everything else is
// stringified.
func (c *Catalog) coerce(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return c.numberOptions.Format(float64(v))
	case int64:
		return c.numberOptions.Format(float64(v))
	case float64:
		return c.numberOptions.Format(v)
	case float32:
		return c.numberOptions.Format(float64(v))
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// placeholderNames returns the names of {{name}} placeholders that appear
// in a message template.
func placeholderNames(message string) []string {
	var names []string
	rest := message
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			return names
		}
		end := strings.Index(rest[start+2:], "}}")
		if end < 0 {
			return names
		}
		name := rest[start+2 : start+2+end]
		if name != "" && !strings.ContainsAny(name, "{} \t\n") {
			names = append(names, name)
		}
		rest = rest[start+2+end+2:]
	}
}
