package lexgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/lexgo/query"
)

var (
	// ErrParse is returned when query text cannot be compiled. The
	// concrete query-package error can be accessed via errors.As.
	ErrParse = errors.New("cannot parse query")

	// ErrUnknownValue is returned in strict mode when a literal value
	// does not occur in the corpus dictionary. Lenient mode (see
	// WithLenientLookup) substitutes an empty posting list instead.
	ErrUnknownValue = errors.New("value not in corpus")
)

// translateError maps query-package errors onto the public error
// contract of this package.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var uv *query.UnknownValueError
	if errors.As(err, &uv) {
		return fmt.Errorf("%w: %w", ErrUnknownValue, err)
	}

	var se *query.SyntaxError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	var ua *query.UnknownAttributeError
	if errors.As(err, &ua) {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	return err
}
