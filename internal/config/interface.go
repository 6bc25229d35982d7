package config

import (
	"context"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given files or directories and
	// evaluates it into a Document.
	Load(ctx context.Context, paths ...string) (*Document, error)
	// LoadBytes evaluates a single in-memory source. filename is used in
	// diagnostics only.
	LoadBytes(ctx context.Context, src []byte, filename string) (*Document, error)
}
