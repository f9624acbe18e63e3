package parser

import "github.com/pkg/errors"

// Error kinds returned by ParseRequest and ParseBody. They are always wrapped
// with context, so compare with errors.Is or errors.Cause.
var (
	// ErrEmptyInput means there was no request at all, as opposed to a
	// request with empty fields.
	ErrEmptyInput = errors.New("empty request")

	// ErrMalformedStartLine means the start line has fewer than two tokens.
	ErrMalformedStartLine = errors.New("malformed start line")

	// ErrMalformedBody means the body text is not a flat JSON object.
	ErrMalformedBody = errors.New("malformed body")
)
