package registry

import "sync/atomic"

// def is the process-wide registry returned by Default.
var def atomic.Pointer[Registry]

// Default returns the shared registry, creating it on first use. Most code
// should receive a *Registry explicitly; Default exists for callers that
// genuinely need one well-known instance.
func Default() *Registry {
	if r := def.Load(); r != nil {
		return r
	}
	def.CompareAndSwap(nil, New())
	return def.Load()
}

// ResetDefault replaces the shared registry with a fresh, empty one.
func ResetDefault() {
	def.Store(New())
}
