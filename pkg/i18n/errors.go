package i18n

import "errors"

var (
	// ErrLocaleNotFound indicates no bundle is registered for the requested
	// locale, even after language-only fallback.
	ErrLocaleNotFound = errors.New("i18n: locale not found")

	// ErrKeyNotFound indicates the resolved bundle has no message for the key.
	ErrKeyNotFound = errors.New("i18n: message key not found")

	// ErrAttributeNotFound indicates the message exists but the requested
	// attribute does not.
	ErrAttributeNotFound = errors.New("i18n: message attribute not found")

	// ErrNoStandaloneValue indicates the message has attributes but no
	// standalone value of its own.
	ErrNoStandaloneValue = errors.New("i18n: message has no standalone value")

	// ErrEmptyLocale indicates a catalog option received a zero locale tag.
	ErrEmptyLocale = errors.New("i18n: locale cannot be empty")

	// ErrInvalidFile indicates a translation file could not be loaded.
	ErrInvalidFile = errors.New("i18n: invalid translation file")
)
