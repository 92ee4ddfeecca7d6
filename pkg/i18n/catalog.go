package i18n

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/httplang/pkg/locale"
)

// M is a convenience alias for formatting arguments.
type M = map[string]any

// Catalog holds message bundles keyed by locale. It is immutable after
// creation, making it safe for concurrent use.
type Catalog struct {
	// Flattened messages per canonical locale tag.
	// Nested message maps flatten to dotted keys; attributes of a message
	// live under "key.attribute".
	bundles map[string]map[string]string

	// Registration order of locales. Language-only fallback scans this
	// slice, so resolution is deterministic for a given catalog.
	tags []locale.Tag

	numberOptions NumberOptions

	// Sink for non-fatal formatting problems (missing arguments).
	errLog *slog.Logger
}

// Option configures the Catalog during construction.
type Option func(*Catalog) error

// New creates a Catalog with the given options. All configuration happens
// during construction; the returned catalog never changes.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		bundles:       make(map[string]map[string]string),
		numberOptions: DefaultNumberOptions(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return c, nil
}

// WithMessages registers messages for a locale. The map can be nested; it is
// flattened internally to dotted keys. Registering the same locale again
// merges the maps, with later values overriding earlier ones. You may use
// this to layer fallback messages under the actual translation.
func WithMessages(tag locale.Tag, messages map[string]any) Option {
	return func(c *Catalog) error {
		if tag.IsZero() {
			return ErrEmptyLocale
		}
		c.merge(tag, flattenMessages(messages, ""))
		return nil
	}
}

// WithNumberOptions sets the numeric formatting options applied to number
// arguments during message formatting.
func WithNumberOptions(opts NumberOptions) Option {
	return func(c *Catalog) error {
		c.numberOptions = opts
		return nil
	}
}

// WithErrorLog sets the logger that receives non-fatal formatting problems,
// such as a referenced argument missing. By default these are dropped.
func WithErrorLog(log *slog.Logger) Option {
	return func(c *Catalog) error {
		c.errLog = log
		return nil
	}
}

// merge adds flattened messages to the locale's bundle, creating it on first
// registration.
func (c *Catalog) merge(tag locale.Tag, messages map[string]string) {
	key := tag.String()
	bundle, exists := c.bundles[key]
	if !exists {
		bundle = make(map[string]string, len(messages))
		c.bundles[key] = bundle
		c.tags = append(c.tags, tag)
	}
	maps.Copy(bundle, messages)
}

// Resolve returns the registered locale that serves the given tag: an exact
// full-tag match, or the first registered locale with the same primary
// language subtag.
func (c *Catalog) Resolve(tag locale.Tag) (locale.Tag, bool) {
	return locale.Match(tag, c.tags)
}

// Bundle returns the flattened message bundle serving the given locale,
// resolved with exact-then-language fallback. The returned map is a copy;
// mutating it does not affect the catalog.
func (c *Catalog) Bundle(tag locale.Tag) (map[string]string, bool) {
	resolved, ok := c.Resolve(tag)
	if !ok {
		return nil, false
	}
	return maps.Clone(c.bundles[resolved.String()]), true
}

// Locales returns the registered locales in registration order.
func (c *Catalog) Locales() []locale.Tag {
	out := make([]locale.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// NumberOptions returns the catalog's numeric formatting options.
func (c *Catalog) NumberOptions() NumberOptions {
	return c.numberOptions
}

// flattenMessages flattens nested message maps into dotted keys.
func flattenMessages(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenMessages(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
