package configfile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat indicates the file extension does not map to a
	// known format adapter.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrMissingKey indicates the requested path does not resolve to an
	// existing section or key.
	ErrMissingKey = errors.New("missing key")

	// ErrInvalidPath indicates a malformed dot-path (empty, or containing
	// an empty segment).
	ErrInvalidPath = errors.New("invalid path")

	// ErrCoercion indicates a stored value could not be converted to the
	// requested type.
	ErrCoercion = errors.New("cannot coerce value")

	// ErrOriginalNotFound indicates the original config file to restore
	// from does not exist.
	ErrOriginalNotFound = errors.New("original config file not found")
)

// ParseError reports that the underlying format parser rejected the file
// content. It wraps the parser's own error.
type ParseError struct {
	Format Format
	Path   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s config file '%s': %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
