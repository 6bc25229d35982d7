package app

import (
	"github.com/vk/hyago/internal/registry"
	"github.com/vk/hyago/modules/arith"
	"github.com/vk/hyago/modules/braceexpand"
	"github.com/vk/hyago/modules/codec"
	"github.com/vk/hyago/modules/collections"
	"github.com/vk/hyago/modules/env_vars"
	"github.com/vk/hyago/modules/hash"
	"github.com/vk/hyago/modules/ident"
	"github.com/vk/hyago/modules/paths"
)

// CoreModules is the definitive list of resolver modules compiled into the
// application, all registered under namespace.
func CoreModules(namespace string) []registry.Module {
	return []registry.Module{
		&arith.Module{Namespace: namespace},
		&hash.Module{Namespace: namespace},
		&paths.Module{Namespace: namespace},
		&collections.Module{Namespace: namespace},
		&braceexpand.Module{Namespace: namespace},
		&codec.Module{Namespace: namespace},
		&ident.Module{Namespace: namespace},
		&env_vars.Module{Namespace: namespace},
	}
}
