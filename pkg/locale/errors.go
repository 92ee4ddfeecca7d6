package locale

import "errors"

// ErrInvalidTag is returned by Parse when the input does not conform to the
// language-tag grammar.
var ErrInvalidTag = errors.New("locale: invalid language tag")
