package engine

import (
	"log/slog"
	"maps"
	"sort"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Engine is an HCL function table plus the variables expressions may refer
// to. It is safe for concurrent use.
type Engine struct {
	mu        sync.RWMutex
	functions map[string]function.Function
	variables map[string]cty.Value
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStdlib pre-installs a small set of go-cty standard library functions
// under their usual HCL names.
func WithStdlib() Option {
	return func(e *Engine) {
		for name, fn := range stdlibFunctions() {
			e.functions[name] = fn
		}
	}
}

// WithVariables makes vars available to every evaluation.
func WithVariables(vars map[string]cty.Value) Option {
	return func(e *Engine) {
		for name, v := range vars {
			e.variables[name] = v
		}
	}
}

func stdlibFunctions() map[string]function.Function {
	return map[string]function.Function{
		"upper":      stdlib.UpperFunc,
		"lower":      stdlib.LowerFunc,
		"length":     stdlib.LengthFunc,
		"join":       stdlib.JoinFunc,
		"format":     stdlib.FormatFunc,
		"concat":     stdlib.ConcatFunc,
		"jsonencode": stdlib.JSONEncodeFunc,
		"jsondecode": stdlib.JSONDecodeFunc,
		"coalesce":   stdlib.CoalesceFunc,
		"abs":        stdlib.AbsoluteFunc,
		"floor":      stdlib.FloorFunc,
		"ceil":       stdlib.CeilFunc,
	}
}

// New creates an Engine with an empty function table unless WithStdlib is
// given.
func New(opts ...Option) *Engine {
	e := &Engine{
		functions: make(map[string]function.Function),
		variables: make(map[string]cty.Value),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HasResolver reports whether a function is installed for key. Keys that
// cannot be translated to a function name are never installed.
func (e *Engine) HasResolver(key string) bool {
	name, err := FunctionName(key)
	if err != nil {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.functions[name]
	return ok
}

// RegisterResolver installs fn under the function name derived from key.
// It refuses to replace an installed function.
func (e *Engine) RegisterResolver(key string, fn function.Function) error {
	name, err := FunctionName(key)
	if err != nil {
		return err
	}
	if fn == (function.Function{}) {
		return ErrInvalidFunction
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.functions[name]; exists {
		return &ConflictError{Key: key, Name: name}
	}
	e.functions[name] = fn
	e.logger.Debug("Installed resolver.", "key", key, "function", name)
	return nil
}

// Functions returns the installed function names in sorted order.
func (e *Engine) Functions() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.functions))
	for name := range e.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EvalContext returns a snapshot of the engine as an HCL evaluation context.
// The caller may add variables to the returned context without affecting the
// engine.
func (e *Engine) EvalContext() *hcl.EvalContext {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return &hcl.EvalContext{
		Variables: maps.Clone(e.variables),
		Functions: maps.Clone(e.functions),
	}
}
