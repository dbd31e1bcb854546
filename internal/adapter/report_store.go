package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// reportsFileName is the file written inside a reports directory.
const reportsFileName = "reports.yaml"

// shardDirPrefix names the per-shard subdirectories written by sharded runs.
const shardDirPrefix = "shard_"

// ReportStore persists formatting reports between runs so unchanged files can
// be skipped and sharded results can be merged later.
type ReportStore interface {
	SaveReports(ctx context.Context, dir m.Path, reports []m.Report) error
	LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error)

	// ShardDirs lists the shard_* subdirectories under a reports directory,
	// sorted by name.
	ShardDirs(ctx context.Context, dir m.Path) ([]m.Path, error)
}

// LocalReportStore stores reports as a YAML document on the local filesystem.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReports writes the reports into dir, creating it if needed.
func (s *LocalReportStore) SaveReports(_ context.Context, dir m.Path, reports []m.Report) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	target := filepath.Join(string(dir), reportsFileName)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	slog.Debug("saved reports", "path", target, "count", len(reports))

	return nil
}

// LoadReports reads the reports stored in dir. A missing reports file is not
// an error; it yields an empty result.
func (s *LocalReportStore) LoadReports(_ context.Context, dir m.Path) ([]m.Report, error) {
	target := filepath.Join(string(dir), reportsFileName)

	data, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports: %w", err)
	}

	var reports []m.Report
	if err := yaml.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decode reports %s: %w", target, err)
	}

	slog.Debug("loaded reports", "path", target, "count", len(reports))

	return reports, nil
}

// ShardDirs lists shard subdirectories under dir.
func (s *LocalReportStore) ShardDirs(_ context.Context, dir m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports directory: %w", err)
	}

	var dirs []m.Path

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		if len(name) > len(shardDirPrefix) && name[:len(shardDirPrefix)] == shardDirPrefix {
			dirs = append(dirs, m.Path(filepath.Join(string(dir), name)))
		}
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })

	return dirs, nil
}
