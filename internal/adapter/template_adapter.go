package adapter

import (
	"context"

	m "tidyvue.dev/pkg/tidyvue/internal/model"
	"tidyvue.dev/pkg/tidyvue/internal/template"
)

// TemplateAdapter encapsulates template parsing so the domain layer can focus
// on rewrite rules while delegating tokenization details to an infrastructure
// component.
type TemplateAdapter interface {
	// FindRegion locates the markup portion of a file. For single-file
	// components this is the top-level template block; other files are
	// treated as markup in full. Returns false when no markup exists.
	FindRegion(ctx context.Context, path m.Path, src []byte) (template.Region, bool)

	// ScanElements tokenizes every open tag inside the region into its
	// ordered prop list with exact byte spans.
	ScanElements(ctx context.Context, src []byte, region template.Region) []m.Element
}

// LocalTemplateAdapter provides a concrete TemplateAdapter backed by the
// template scanner.
type LocalTemplateAdapter struct{}

// NewLocalTemplateAdapter constructs a LocalTemplateAdapter.
func NewLocalTemplateAdapter() *LocalTemplateAdapter {
	return &LocalTemplateAdapter{}
}

// FindRegion locates the markup region for the given file.
func (a *LocalTemplateAdapter) FindRegion(_ context.Context, path m.Path, src []byte) (template.Region, bool) {
	return template.FindRegion(string(path), src)
}

// ScanElements tokenizes the elements inside the markup region.
func (a *LocalTemplateAdapter) ScanElements(_ context.Context, src []byte, region template.Region) []m.Element {
	return template.ScanElements(src, region)
}
