package engine

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

const inlineFilename = "<inline>"

// Call invokes the resolver installed under key directly, bypassing HCL
// argument conversion. Errors from the resolver are returned unchanged.
func (e *Engine) Call(key string, args ...cty.Value) (cty.Value, error) {
	name, err := FunctionName(key)
	if err != nil {
		return cty.NilVal, err
	}
	e.mu.RLock()
	fn, ok := e.functions[name]
	e.mu.RUnlock()
	if !ok {
		return cty.NilVal, fmt.Errorf("%w: %q", ErrUnknownFunction, key)
	}
	return fn.Call(args)
}

// EvaluateExpression parses and evaluates a single HCL expression such as
// `hya::add(1, 4)`.
func (e *Engine) EvaluateExpression(src string) (cty.Value, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), inlineFilename, hcl.InitialPos)
	if err := diagsError(diags); err != nil {
		return cty.NilVal, err
	}
	return e.Evaluate(expr)
}

// EvaluateTemplate parses and evaluates an HCL template such as
// `total: ${hya::add(1, 4)}`.
func (e *Engine) EvaluateTemplate(src string) (cty.Value, error) {
	expr, diags := hclsyntax.ParseTemplate([]byte(src), inlineFilename, hcl.InitialPos)
	if err := diagsError(diags); err != nil {
		return cty.NilVal, err
	}
	return e.Evaluate(expr)
}

// Evaluate evaluates an already parsed expression. Calls to unknown
// functions are reported before anything is evaluated.
func (e *Engine) Evaluate(expr hcl.Expression) (cty.Value, error) {
	if err := diagsError(e.Validate(expr)); err != nil {
		return cty.NilVal, err
	}
	val, diags := expr.Value(e.EvalContext())
	if err := diagsError(diags); err != nil {
		return cty.NilVal, err
	}
	return val, nil
}
