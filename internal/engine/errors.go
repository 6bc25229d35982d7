package engine

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

var (
	// ErrInvalidFunction is returned when a zero function.Function is installed.
	ErrInvalidFunction = errors.New("resolver function is not initialized")
	// ErrUnknownFunction is returned by Call for a key with no installed resolver.
	ErrUnknownFunction = errors.New("no resolver is installed under this key")
)

// InvalidKeyError reports a key that cannot be expressed as an HCL function
// name.
type InvalidKeyError struct {
	Key string
	// Segment is the offending dot-separated part of Key.
	Segment string
}

func (e *InvalidKeyError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("invalid resolver key %q: empty name segment", e.Key)
	}
	return fmt.Sprintf("invalid resolver key %q: %q is not a valid identifier", e.Key, e.Segment)
}

// ConflictError reports an attempt to install a resolver under a name the
// engine already has. Installed resolvers are never replaced.
type ConflictError struct {
	Key  string
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("resolver %q is already installed as function %q", e.Key, e.Name)
}

// EvalError carries the diagnostics of a failed parse or evaluation.
type EvalError struct {
	Diagnostics hcl.Diagnostics
}

func (e *EvalError) Error() string {
	return e.Diagnostics.Error()
}

// Unwrap exposes the errors returned by the resolvers themselves, so callers
// can match them with errors.As.
func (e *EvalError) Unwrap() []error {
	var errs []error
	for _, diag := range e.Diagnostics {
		extra, ok := hcl.DiagnosticExtra[hclsyntax.FunctionCallDiagExtra](diag)
		if !ok {
			continue
		}
		if err := extra.FunctionCallError(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func diagsError(diags hcl.Diagnostics) error {
	if !diags.HasErrors() {
		return nil
	}
	return &EvalError{Diagnostics: diags}
}
