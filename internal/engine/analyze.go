package engine

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// Validate reports every call in expr to a function the engine does not have.
// Expressions that did not come from the native syntax cannot be inspected
// and always pass.
func (e *Engine) Validate(expr hcl.Expression) hcl.Diagnostics {
	syntaxExpr, ok := expr.(hclsyntax.Expression)
	if !ok {
		return nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	var diags hcl.Diagnostics
	for _, call := range functionCalls(syntaxExpr) {
		if _, ok := e.functions[call.Name]; ok {
			continue
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Call to unknown function",
			Detail:   fmt.Sprintf("No resolver is installed for %q (registry key %q).", call.Name, KeyName(call.Name)),
			Subject:  call.NameRange.Ptr(),
			Context:  call.Range().Ptr(),
		})
	}
	return diags
}

// FunctionNames returns the sorted, de-duplicated names of every function
// called in expr.
func FunctionNames(expr hcl.Expression) []string {
	syntaxExpr, ok := expr.(hclsyntax.Expression)
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	for _, call := range functionCalls(syntaxExpr) {
		seen[call.Name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReferencedNames returns the sorted, de-duplicated root names of every
// variable traversal in expr.
func ReferencedNames(expr hcl.Expression) []string {
	seen := make(map[string]struct{})
	for _, traversal := range expr.Variables() {
		seen[traversal.RootName()] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// functionCalls collects function calls in source order, nested calls
// included.
func functionCalls(expr hclsyntax.Expression) []*hclsyntax.FunctionCallExpr {
	var calls []*hclsyntax.FunctionCallExpr
	hclsyntax.VisitAll(expr, func(node hclsyntax.Node) hcl.Diagnostics {
		if call, ok := node.(*hclsyntax.FunctionCallExpr); ok {
			calls = append(calls, call)
		}
		return nil
	})
	return calls
}
