package hcl_adapter

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hyago/internal/config"
	"github.com/vk/hyago/internal/ctxlog"
	"github.com/vk/hyago/internal/dag"
	"github.com/vk/hyago/internal/engine"
	"github.com/zclconf/go-cty/cty"
)

func (l *Loader) evaluate(ctx context.Context, names []string, files []*hcl.File) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	attrs, diags := collectAttributes(files)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode configuration: %w", diags)
	}

	// Unknown resolvers are reported for every attribute at once, before any
	// resolver runs.
	for _, name := range sortedNames(attrs) {
		diags = append(diags, l.engine.Validate(attrs[name].Expr)...)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("configuration calls unknown resolvers: %w", &engine.EvalError{Diagnostics: diags})
	}

	order, err := evaluationOrder(attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to order configuration attributes: %w", err)
	}

	evalCtx := l.engine.EvalContext()
	if evalCtx.Variables == nil {
		evalCtx.Variables = make(map[string]cty.Value)
	}
	values := make(map[string]cty.Value, len(attrs))
	for _, name := range order {
		val, valDiags := attrs[name].Expr.Value(evalCtx)
		if valDiags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate attribute %q: %w", name, &engine.EvalError{Diagnostics: valDiags})
		}
		values[name] = val
		evalCtx.Variables[name] = val
		logger.Debug("Evaluated configuration attribute.", "name", name)
	}

	logger.Debug("HCL loading complete.", "attributes", len(values), "files", len(names))
	return config.NewDocument(names, values), nil
}

// collectAttributes merges the top-level attributes of all files. An
// attribute may be defined only once across all files.
func collectAttributes(files []*hcl.File) (map[string]*hcl.Attribute, hcl.Diagnostics) {
	attrs := make(map[string]*hcl.Attribute)
	var diags hcl.Diagnostics
	for _, file := range files {
		fileAttrs, attrDiags := file.Body.JustAttributes()
		diags = append(diags, attrDiags...)
		for _, name := range sortedNames(fileAttrs) {
			attr := fileAttrs[name]
			if prev, exists := attrs[name]; exists {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate attribute",
					Detail:   fmt.Sprintf("Attribute %q was already defined at %s.", name, prev.NameRange),
					Subject:  attr.NameRange.Ptr(),
				})
				continue
			}
			attrs[name] = attr
		}
	}
	return attrs, diags
}

// evaluationOrder sorts attributes so that each one follows the attributes
// it references.
func evaluationOrder(attrs map[string]*hcl.Attribute) ([]string, error) {
	g := dag.New()
	for name := range attrs {
		g.AddNode(name)
	}
	for _, name := range sortedNames(attrs) {
		for _, ref := range engine.ReferencedNames(attrs[name].Expr) {
			if _, ok := attrs[ref]; !ok {
				continue
			}
			if ref == name {
				return nil, fmt.Errorf("attribute %q refers to itself", name)
			}
			if err := g.AddEdge(ref, name); err != nil {
				return nil, err
			}
		}
	}
	return g.Order()
}

func sortedNames(attrs map[string]*hcl.Attribute) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
