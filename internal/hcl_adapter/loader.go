package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/hyago/internal/config"
	"github.com/vk/hyago/internal/ctxlog"
	"github.com/vk/hyago/internal/engine"
	"github.com/vk/hyago/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	engine *engine.Engine
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a loader that evaluates configuration against eng.
func NewLoader(eng *engine.Engine) *Loader {
	return &Loader{engine: eng}
}

// Load parses every .hcl file found in paths and evaluates the result into a
// single Document. Paths that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.CollectFiles(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	files := make([]*hcl.File, 0, len(hclFiles))
	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		files = append(files, hclFile)
	}

	return l.evaluate(ctx, hclFiles, files)
}

// LoadBytes evaluates a single in-memory HCL source.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Document, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", filename, diags)
	}
	return l.evaluate(ctx, []string{filename}, []*hcl.File{hclFile})
}
