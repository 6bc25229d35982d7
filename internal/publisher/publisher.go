// Package publisher installs the resolvers held by a registry into an
// interpolation engine.
package publisher

import (
	"context"

	"github.com/vk/hyago/internal/ctxlog"
	"github.com/vk/hyago/internal/registry"
	"github.com/zclconf/go-cty/cty/function"
)

// Target is the part of an interpolation engine the publisher needs.
// *engine.Engine satisfies it.
type Target interface {
	HasResolver(key string) bool
	RegisterResolver(key string, fn function.Function) error
}

// Publish installs every resolver in reg that target does not already know,
// in key order. Publishing an unchanged registry again is a no-op.
//
// An install error is returned as is. Resolvers installed before the failing
// key stay installed.
func Publish(ctx context.Context, reg *registry.Registry, target Target) error {
	logger := ctxlog.FromContext(ctx)

	state := reg.State()
	installed := 0
	for _, key := range reg.Keys() {
		fn, ok := state[key]
		if !ok {
			// Registered after the snapshot was taken; the next Publish picks it up.
			continue
		}
		if target.HasResolver(key) {
			logger.Debug("Resolver already known to engine, skipping.", "key", key)
			continue
		}
		if err := target.RegisterResolver(key, fn); err != nil {
			logger.Debug("Engine rejected resolver.", "key", key, "error", err)
			return err
		}
		installed++
	}

	logger.Debug("Published resolvers.", "installed", installed, "registered", len(state))
	return nil
}
