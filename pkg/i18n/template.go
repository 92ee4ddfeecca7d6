package i18n

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/httplang/pkg/locale"
)

// TemplateFunc adapts the catalog to the template function-call convention,
// for registration in a template.FuncMap:
//
//	tmpl := template.New("page").Funcs(template.FuncMap{
//		"t": catalog.TemplateFunc(),
//	})
//
//	{{ t "lang" .Lang "key" "cart.total" "amount" 1234.5 }}
//
// Arguments are name/value pairs. "lang" (a parseable locale tag) and "key"
// are required; "attribute" selects a message attribute; every other pair is
// passed through as a formatting argument. Values are coerced JSON-like:
// numbers become numeric formatting values honoring the catalog's
// NumberOptions, strings pass through, nil is treated as absent, and
// anything else is stringified.
func (c *Catalog) TemplateFunc() func(pairs ...any) (string, error) {
	return func(pairs ...any) (string, error) {
		if len(pairs)%2 != 0 {
			return "", fmt.Errorf("i18n: template call needs name/value pairs, got %d arguments", len(pairs))
		}

		var (
			langArg   string
			keyArg    string
			attribute string
			args      = make(M)
		)

		for i := 0; i < len(pairs); i += 2 {
			name, ok := pairs[i].(string)
			if !ok {
				return "", fmt.Errorf("i18n: template argument name must be a string, got %T", pairs[i])
			}
			value := pairs[i+1]

			switch name {
			case "lang":
				s, ok := value.(string)
				if !ok {
					return "", fmt.Errorf("i18n: lang must be a string, got %T", value)
				}
				langArg = s
			case "key":
				s, ok := value.(string)
				if !ok {
					return "", fmt.Errorf("i18n: key must be a string, got %T", value)
				}
				keyArg = s
			case "attribute":
				s, ok := value.(string)
				if !ok {
					return "", fmt.Errorf("i18n: attribute must be a string, got %T", value)
				}
				attribute = s
			default:
				if coerced, present := coerceTemplateValue(value); present {
					args[name] = coerced
				}
			}
		}

		if langArg == "" {
			return "", fmt.Errorf("i18n: missing lang argument")
		}
		if keyArg == "" {
			return "", fmt.Errorf("i18n: missing key argument")
		}

		tag, err := locale.Parse(langArg)
		if err != nil {
			return "", fmt.Errorf("i18n: invalid lang argument: %w", err)
		}

		return c.FormatAttr(tag, keyArg, attribute, args)
	}
}

// coerceTemplateValue applies JSON-like coercion to a template argument.
// Nil values are absent; numbers stay numeric so the formatter can apply
// NumberOptions; other values are kept for stringification during render.
func coerceTemplateValue(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, true
		}
		return v.String(), true
	default:
		return v, true
	}
}
