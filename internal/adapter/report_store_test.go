package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

func sampleReports() []m.Report {
	return []m.Report{
		{
			Source: m.Source{Origin: &m.File{
				FullPath:  "/project/src/App.vue",
				ShortPath: "src/App.vue",
				Hash:      "abc123",
			}},
			Status:       m.Clean,
			Replacements: 0,
		},
		{
			Source: m.Source{Origin: &m.File{
				FullPath:  "/project/src/Page.vue",
				ShortPath: "src/Page.vue",
				Hash:      "def456",
			}},
			Status:       m.Dirty,
			Replacements: 3,
		},
	}
}

func TestReportStore_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	store := NewLocalReportStore()
	ctx := context.Background()

	require.NoError(t, store.SaveReports(ctx, m.Path(dir), sampleReports()))

	loaded, err := store.LoadReports(ctx, m.Path(dir))
	require.NoError(t, err)
	require.Equal(t, sampleReports(), loaded)
}

func TestReportStore_OutputIsNotPersisted(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	store := NewLocalReportStore()
	ctx := context.Background()

	reports := sampleReports()
	reports[1].Output = "<div class=\"a b\"/>"

	require.NoError(t, store.SaveReports(ctx, m.Path(dir), reports))

	loaded, err := store.LoadReports(ctx, m.Path(dir))
	require.NoError(t, err)
	require.Empty(t, loaded[1].Output)
}

func TestReportStore_LoadMissingDirIsEmpty(t *testing.T) {
	store := NewLocalReportStore()

	loaded, err := store.LoadReports(context.Background(), m.Path(filepath.Join(t.TempDir(), "never-created")))
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestReportStore_LoadCorruptFileErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, reportsFileName), []byte("{not yaml"), 0o600))

	store := NewLocalReportStore()

	_, err := store.LoadReports(context.Background(), m.Path(dir))
	require.Error(t, err)
}

func TestReportStore_ShardDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shard_1"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shard_0"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "other"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shard_2"), []byte("file not dir"), 0o600))

	store := NewLocalReportStore()

	dirs, err := store.ShardDirs(context.Background(), m.Path(dir))
	require.NoError(t, err)
	require.Equal(t, []m.Path{
		m.Path(filepath.Join(dir, "shard_0")),
		m.Path(filepath.Join(dir, "shard_1")),
	}, dirs)
}

func TestReportStore_ShardDirsMissingRoot(t *testing.T) {
	store := NewLocalReportStore()

	dirs, err := store.ShardDirs(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	require.Empty(t, dirs)
}
