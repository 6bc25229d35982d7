package registry

import (
	"errors"
	"fmt"
)

// ErrEmptyKey is wrapped by an InvalidResolverError when a resolver is
// registered under an empty key.
var ErrEmptyKey = errors.New("resolver key must not be empty")

// InvalidResolverError reports an attempt to register something that is not
// a usable resolver. The registry is left unchanged.
type InvalidResolverError struct {
	Key string
	// Type is the Go type of the rejected value.
	Type string
	Err  error
}

func (e *InvalidResolverError) Error() string {
	return fmt.Sprintf("invalid resolver for %q (%s): %v", e.Key, e.Type, e.Err)
}

func (e *InvalidResolverError) Unwrap() error {
	return e.Err
}

// DuplicateKeyError reports an attempt to register a key that is already
// taken without the ExistOK option. The existing entry is left untouched.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("a resolver is already registered for %q; use another key or register with ExistOK to override the existing resolver", e.Key)
}
