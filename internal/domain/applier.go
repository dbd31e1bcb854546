package domain

import (
	"context"
	"fmt"
	"log/slog"

	"tidyvue.dev/pkg/tidyvue/internal/adapter"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// Applier writes formatted output back to the original file.
type Applier interface {
	// ApplyReport persists the rebuilt contents of a dirty report and
	// returns the report with its status advanced. Reports that carry no
	// pending changes pass through untouched.
	ApplyReport(ctx context.Context, report m.Report) (m.Report, error)
}

type applier struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewApplier constructs an Applier backed by the provided filesystem adapter.
func NewApplier(fsAdapter adapter.SourceFSAdapter) Applier {
	return &applier{fsAdapter: fsAdapter}
}

func (a *applier) ApplyReport(ctx context.Context, report m.Report) (m.Report, error) {
	if report.Status != m.Dirty {
		return report, nil
	}

	if report.Source.Origin == nil {
		return m.Report{}, fmt.Errorf("source origin is nil")
	}

	path := report.Source.Origin.FullPath

	info, err := a.fsAdapter.FileInfo(ctx, path)
	if err != nil {
		slog.Error("failed to stat file before write", "path", path, "error", err)
		return m.Report{}, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := a.fsAdapter.WriteFile(ctx, path, []byte(report.Output), info.Mode().Perm()); err != nil {
		slog.Error("failed to write formatted file", "path", path, "error", err)
		return m.Report{}, fmt.Errorf("write %s: %w", path, err)
	}

	slog.Debug("wrote formatted file", "path", path, "rewrites", report.Replacements)

	report.Status = m.Formatted

	return report, nil
}
