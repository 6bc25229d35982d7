package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/vk/hyago/internal/resolver"
	"github.com/zclconf/go-cty/cty/function"
)

// Registry holds the resolvers registered for a single application instance.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]function.Function
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger registrations are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates and initializes an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]function.Function),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFrom creates a Registry seeded with a copy of initial. Later changes to
// initial are not seen by the registry, and vice versa. Zero functions in
// initial are skipped so the registry never holds an unusable entry.
func NewFrom(initial map[string]function.Function, opts ...Option) *Registry {
	r := New(opts...)
	for key, fn := range initial {
		if key == "" || fn == (function.Function{}) {
			r.logger.Warn("Skipping unusable initial resolver.", "key", key)
			continue
		}
		r.entries[key] = fn
	}
	return r
}

// RegisterOption tunes a single registration.
type RegisterOption func(*registerOptions)

type registerOptions struct {
	existOK bool
}

// ExistOK allows a registration to replace a resolver already stored under
// the same key.
func ExistOK() RegisterOption {
	return func(o *registerOptions) {
		o.existOK = true
	}
}

// Register compiles resolver and stores it under key.
//
// It fails with an *InvalidResolverError if resolver is not callable (see
// resolver.Compile) and with a *DuplicateKeyError if key is taken and ExistOK
// was not given. On failure the registry is unchanged.
func (r *Registry) Register(key string, resolverFn any, opts ...RegisterOption) error {
	var o registerOptions
	for _, opt := range opts {
		opt(&o)
	}

	if key == "" {
		return &InvalidResolverError{Key: key, Type: fmt.Sprintf("%T", resolverFn), Err: ErrEmptyKey}
	}
	fn, err := resolver.Compile(resolverFn)
	if err != nil {
		return &InvalidResolverError{Key: key, Type: fmt.Sprintf("%T", resolverFn), Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.entries[key]
	if exists && !o.existOK {
		return &DuplicateKeyError{Key: key}
	}
	r.entries[key] = fn

	if exists {
		r.logger.Debug("Overriding resolver.", "key", key)
	} else {
		r.logger.Debug("Registering resolver.", "key", key)
	}
	return nil
}

// Bind registers fn under key and hands fn back unchanged, so a resolver can
// be declared and registered in one statement:
//
//	var add, _ = registry.Bind(reg, "hya.add", func(a, b int) int { return a + b })
func Bind[F any](r *Registry, key string, fn F, opts ...RegisterOption) (F, error) {
	if err := r.Register(key, fn, opts...); err != nil {
		return fn, err
	}
	return fn, nil
}

// MustBind is like Bind but panics if registration fails. It is intended for
// start-up code where a failure is a programming error.
func MustBind[F any](r *Registry, key string, fn F, opts ...RegisterOption) F {
	fn, err := Bind(r, key, fn, opts...)
	if err != nil {
		panic(err)
	}
	return fn
}

// HasResolver reports whether a resolver is registered under key.
func (r *Registry) HasResolver(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Lookup returns the resolver registered under key.
func (r *Registry) Lookup(key string) (function.Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.entries[key]
	return fn, ok
}

// State returns a snapshot of the key to resolver mapping. The returned map
// belongs to the caller; changing it does not affect the registry.
func (r *Registry) State() map[string]function.Function {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state := make(map[string]function.Function, len(r.entries))
	for k, v := range r.entries {
		state[k] = v
	}
	return state
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered resolvers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
