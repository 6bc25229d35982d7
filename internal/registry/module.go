package registry

import "fmt"

// Module is the interface that resolver modules implement to add their
// resolvers to a Registry.
type Module interface {
	Register(r *Registry) error
}

// RegisterModules registers every module in order and stops at the first
// failure. Resolvers registered by earlier modules stay registered.
func (r *Registry) RegisterModules(modules ...Module) error {
	for _, mod := range modules {
		if err := mod.Register(r); err != nil {
			return fmt.Errorf("failed to register module %T: %w", mod, err)
		}
	}
	r.logger.Debug("All resolver modules registered.", "modules", len(modules), "resolvers", r.Len())
	return nil
}
