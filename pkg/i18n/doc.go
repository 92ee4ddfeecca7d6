// Package i18n provides an immutable, thread-safe message catalog keyed by
// locale, with exact-then-language fallback resolution.
//
// A Catalog holds one message bundle per locale. Lookup resolves the
// requested locale to a bundle the same way HTTP negotiation resolves
// supported locales: an exact full-tag match first, then the first
// registered locale sharing the primary language subtag. A catalog with an
// "en" bundle therefore serves "en-US" requests.
//
// # Building a catalog
//
//	catalog, err := i18n.New(
//		i18n.WithMessages(locale.MustParse("en"), map[string]any{
//			"greeting": "Hello {{name}}",
//			"login": map[string]any{
//				"placeholder": "Email address",
//			},
//		}),
//		i18n.WithMessages(locale.MustParse("ja"), map[string]any{
//			"greeting": "こんにちは {{name}}",
//		}),
//	)
//
// Nested maps flatten to dotted keys. A dotted sub-key acts as a message
// attribute: "login.placeholder" is the "placeholder" attribute of "login".
//
// # File-based bundles
//
// Load messages from YAML or JSON files via fs.FS, one directory per locale:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	catalog, err := i18n.New(i18n.WithYAMLDir(subFS))
//
// Files within a locale directory merge in lexical order, later files
// overriding earlier ones. You may use this to layer fallback messages
// under the actual translation.
//
// # Formatting
//
//	msg, err := catalog.Format(tag, "greeting", i18n.M{"name": "Deadpool"})
//	msg, err := catalog.FormatAttr(tag, "login", "placeholder", nil)
//
// Structural failures return ErrLocaleNotFound, ErrKeyNotFound,
// ErrAttributeNotFound, or ErrNoStandaloneValue. A missing formatting
// argument is non-fatal: the placeholder stays in the output and the
// problem is reported to the logger set with WithErrorLog.
//
// # Templates
//
// TemplateFunc adapts the catalog to html/template:
//
//	tmpl.Funcs(template.FuncMap{"t": catalog.TemplateFunc()})
package i18n
