package pyvers

import "github.com/pkg/errors"

var (
	// ErrInvalidVersion reports a version string outside the recognized
	// dotted-numeric (optionally pre-release-suffixed) grammar.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrMissingField reports an upstream release record without its
	// implementation's version field.
	ErrMissingField = errors.New("missing field")

	// ErrUnsupportedImplementation reports a requested interpreter
	// implementation outside the known set (cpython, pypy).
	ErrUnsupportedImplementation = errors.New("unsupported implementation")
)
