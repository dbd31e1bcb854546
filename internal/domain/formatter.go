// Package domain contains the core formatting workflow and logic.
package domain

import (
	"context"
	"fmt"

	"tidyvue.dev/pkg/tidyvue/internal/adapter"
	"tidyvue.dev/pkg/tidyvue/internal/domain/rewrite"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
	pkg "tidyvue.dev/pkg/tidyvue/pkg"
)

// Formatter defines the interface for computing a file's normalized form.
type Formatter interface {
	// FormatSource reads the file, rebuilds every attribute block that
	// deviates from the configured form and reports the outcome. Nothing is
	// written to disk; the rebuilt contents travel in the report.
	FormatSource(ctx context.Context, source m.Source, cfg m.ResolvedConfig) (m.Report, error)
}

// formatter handles pure formatting logic on top of the filesystem and
// template adapters.
type formatter struct {
	adapter.SourceFSAdapter
	adapter.TemplateAdapter
}

// NewFormatter creates a new Formatter instance.
func NewFormatter(fsAdapter adapter.SourceFSAdapter, templateAdapter adapter.TemplateAdapter) Formatter {
	return &formatter{
		SourceFSAdapter: fsAdapter,
		TemplateAdapter: templateAdapter,
	}
}

func (f *formatter) FormatSource(ctx context.Context, source m.Source, cfg m.ResolvedConfig) (m.Report, error) {
	if source.Origin == nil || source.Origin.FullPath == "" {
		return m.Report{}, fmt.Errorf("missing source origin")
	}

	content, err := f.ReadFile(ctx, source.Origin.FullPath)
	if err != nil {
		return m.Report{}, fmt.Errorf("read %s: %w", source.Origin.FullPath, err)
	}

	region, ok := f.FindRegion(ctx, source.Origin.FullPath, content)
	if !ok {
		return m.Report{Source: source, Status: m.Clean}, nil
	}

	var edits []pkg.Edit

	for _, element := range f.ScanElements(ctx, content, region) {
		if err := ctx.Err(); err != nil {
			return m.Report{}, err
		}

		replacement, changed := rewrite.Rebuild(content, element, cfg)
		if !changed {
			continue
		}

		edits = append(edits, pkg.Edit{
			Start: replacement.Start,
			End:   replacement.End,
			Text:  replacement.NewText,
		})
	}

	if len(edits) == 0 {
		return m.Report{Source: source, Status: m.Clean}, nil
	}

	output, err := pkg.ApplyEdits(content, edits)
	if err != nil {
		return m.Report{}, fmt.Errorf("rebuild %s: %w", source.Origin.FullPath, err)
	}

	return m.Report{
		Source:       source,
		Status:       m.Dirty,
		Replacements: len(edits),
		Output:       string(output),
	}, nil
}
