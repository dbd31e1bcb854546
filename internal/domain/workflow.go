package domain

import (
	"context"
	"errors"

	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// ErrNotClean reports that a check run found files that deviate from their
// normalized form. Callers map it to a non-zero exit code.
var ErrNotClean = errors.New("files need formatting")

// CheckArgs contains the arguments for a check (dry-run) pass.
type CheckArgs struct {
	Paths           []m.Path
	Exclude         []string
	UseCache        bool
	Reports         m.Path
	Threads         int
	ShardIndex      int
	TotalShardCount int
	Config          m.ResolvedConfig
}

// FormatArgs contains the arguments for a format (write back) pass.
type FormatArgs struct {
	CheckArgs
}

// ViewArgs contains the arguments for viewing stored reports.
type ViewArgs struct {
	Reports m.Path
}

// MergeArgs contains the arguments for merging sharded reports.
type MergeArgs struct {
	Reports m.Path
}

// Workflow defines the interface for the formatting workflow.
type Workflow interface {
	// Check computes replacements without writing and returns ErrNotClean
	// when any file deviates.
	Check(ctx context.Context, args CheckArgs) error

	// Format computes replacements and writes the rebuilt files back.
	Format(ctx context.Context, args FormatArgs) error

	// View displays previously stored reports.
	View(ctx context.Context, args ViewArgs) error

	// Merge folds shard_* report directories into the root reports directory.
	Merge(ctx context.Context, args MergeArgs) error
}
