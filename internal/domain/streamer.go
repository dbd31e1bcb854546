package domain

import (
	"context"
	"log/slog"
	"sort"

	"tidyvue.dev/pkg/tidyvue/internal/adapter"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// SourceStreamer defines the interface for streaming discovered sources.
type SourceStreamer interface {
	// Stream discovers sources for the given paths, excluding matched
	// patterns, and emits them in a stable order. The channel closes when
	// done or when ctx is cancelled.
	Stream(ctx context.Context, paths []m.Path, exclude []string, threads int) <-chan m.Source

	// ShardSources filters sources by shard index using round-robin
	// distribution, streaming only the sources that belong to this shard.
	ShardSources(ctx context.Context, sources <-chan m.Source, threads int, shardIndex, totalShardCount int) <-chan m.Source
}

type sourceStreamer struct {
	adapter.SourceFSAdapter
}

// NewSourceStreamer creates a new SourceStreamer instance with the provided
// filesystem adapter.
func NewSourceStreamer(fsAdapter adapter.SourceFSAdapter) SourceStreamer {
	return &sourceStreamer{SourceFSAdapter: fsAdapter}
}

func (ss *sourceStreamer) Stream(ctx context.Context, paths []m.Path, exclude []string, threads int) <-chan m.Source {
	slog.Debug("starting source streaming", "paths", len(paths), "threads", threads)
	ch := make(chan m.Source, ss.normalizeBufferSize(threads))

	go func() {
		defer close(ch)

		sources, err := ss.Get(ctx, paths, exclude...)
		if err != nil {
			slog.Error("failed to discover sources", "error", err)
			return
		}

		// Sort sources by content hash for deterministic ordering across
		// processes; shard assignment depends on this order.
		sort.Slice(sources, func(i, j int) bool {
			return sources[i].Origin.Hash < sources[j].Origin.Hash
		})

		slog.Debug("discovered sources", "count", len(sources))

		for _, source := range sources {
			select {
			case <-ctx.Done():
				slog.Debug("source streaming cancelled")
				return
			case ch <- source:
			}
		}
	}()

	return ch
}

// normalizeBufferSize ensures the buffer size is at least 1.
func (ss *sourceStreamer) normalizeBufferSize(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

func (ss *sourceStreamer) ShardSources(ctx context.Context, sources <-chan m.Source, threads int, shardIndex, totalShardCount int) <-chan m.Source {
	ch := make(chan m.Source, ss.normalizeBufferSize(threads))

	go func() {
		defer close(ch)

		// A single shard means no filtering at all.
		if totalShardCount <= 1 {
			ss.passThroughSources(ctx, sources, ch)
			return
		}

		slog.Debug("starting source sharding", "shardIndex", shardIndex, "totalShardCount", totalShardCount)
		ss.filterSourcesByShard(ctx, sources, ch, shardIndex, totalShardCount)
	}()

	return ch
}

func (ss *sourceStreamer) passThroughSources(ctx context.Context, in <-chan m.Source, out chan<- m.Source) {
	for source := range in {
		select {
		case <-ctx.Done():
			slog.Debug("source pass-through cancelled")
			return
		case out <- source:
		}
	}
}

func (ss *sourceStreamer) filterSourcesByShard(ctx context.Context, in <-chan m.Source, out chan<- m.Source, shardIndex, totalShardCount int) {
	index := 0

	for source := range in {
		select {
		case <-ctx.Done():
			slog.Debug("source sharding cancelled")
			return
		default:
		}

		if index%totalShardCount == shardIndex {
			select {
			case <-ctx.Done():
				return
			case out <- source:
			}
		}

		index++
	}
}
