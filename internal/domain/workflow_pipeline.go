package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
	"tidyvue.dev/pkg/tidyvue/internal/adapter"
	"tidyvue.dev/pkg/tidyvue/internal/controller"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

type workflowPipeline struct {
	adapter.ReportStore
	controller.UI
	Formatter
	Applier
	SourceStreamer
}

// NewWorkflow creates a new Workflow instance using a pipeline pattern with
// the provided dependencies.
func NewWorkflow(
	streamer SourceStreamer,
	formatter Formatter,
	applier Applier,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflowPipeline{
		ReportStore:    reportStore,
		UI:             ui,
		Formatter:      formatter,
		Applier:        applier,
		SourceStreamer: streamer,
	}
}

// Check computes replacements without writing anything back.
func (w *workflowPipeline) Check(ctx context.Context, args CheckArgs) error {
	reports, err := w.run(ctx, args, false)
	if err != nil {
		return err
	}

	for _, report := range reports {
		if report.Status == m.Dirty {
			return ErrNotClean
		}
	}

	return nil
}

// Format computes replacements and writes the rebuilt files back to disk.
func (w *workflowPipeline) Format(ctx context.Context, args FormatArgs) error {
	_, err := w.run(ctx, args.CheckArgs, true)

	return err
}

// run drives the shared pipeline: discover, shard, cache-filter, format,
// optionally apply, then persist and display the reports.
func (w *workflowPipeline) run(ctx context.Context, args CheckArgs, apply bool) ([]m.Report, error) {
	mode := controller.WithCheckMode()
	if apply {
		mode = controller.WithFormatMode()
	}

	if err := w.Start(ctx, mode); err != nil {
		slog.Error("failed to start workflow UI", "error", err)
		return nil, err
	}

	threads := normalizeThreads(args.Threads)

	shardCount := args.TotalShardCount
	if shardCount <= 0 {
		shardCount = 1
	}

	w.DisplayConcurrencyInfo(ctx, threads, args.ShardIndex, shardCount)

	sourcesChannel := w.Stream(ctx, args.Paths, args.Exclude, threads)
	shardChannel := w.ShardSources(ctx, sourcesChannel, threads, args.ShardIndex, shardCount)

	sources, err := collectSources(ctx, shardChannel)
	if err != nil {
		w.Close(ctx)
		return nil, err
	}

	pending, cached, err := w.partitionCached(ctx, args, sources)
	if err != nil {
		w.Close(ctx)
		return nil, fmt.Errorf("apply report cache: %w", err)
	}

	reportsChannel, formatErrorChannel := w.formatReportsChannel(ctx, pending, threads, args.Config)
	finalChannel, applyErrorChannel := w.applyReportsChannel(ctx, reportsChannel, apply)
	errorChannel := mergeErrorChannels(formatErrorChannel, applyErrorChannel)

	reports, err := w.collectReports(ctx, finalChannel, errorChannel)
	if err != nil {
		w.Close(ctx)
		slog.Error("formatting pipeline failed", "error", err)

		return nil, err
	}

	reports = append(reports, cached...)

	if err := w.saveRun(ctx, args, reports); err != nil {
		w.Close(ctx)
		return nil, fmt.Errorf("save reports: %w", err)
	}

	if err := w.DisplaySummary(ctx, reports, cleanScoreFromReports(reports)); err != nil {
		w.Close(ctx)
		return nil, fmt.Errorf("display: %w", err)
	}

	// Wait for UI to be closed by user (press 'q')
	w.Wait(ctx)
	w.Close(ctx)

	return reports, nil
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

func collectSources(ctx context.Context, sources <-chan m.Source) ([]m.Source, error) {
	var all []m.Source

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case source, ok := <-sources:
			if !ok {
				return all, nil
			}

			all = append(all, source)
		}
	}
}

// partitionCached splits discovered sources into files that still need a
// formatting pass and reports carried over from the previous run. A file is
// skipped only when its content hash matches a stored clean report.
func (w *workflowPipeline) partitionCached(ctx context.Context, args CheckArgs, sources []m.Source) ([]m.Source, []m.Report, error) {
	if !args.UseCache || args.Reports == "" {
		return sources, nil, nil
	}

	previous, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		return nil, nil, err
	}

	cleanByHash := make(map[string]m.Report, len(previous))

	for _, report := range previous {
		if report.Status != m.Clean || report.Source.Origin == nil {
			continue
		}

		cleanByHash[report.Source.Origin.Hash] = report
	}

	var (
		pending []m.Source
		cached  []m.Report
	)

	for _, source := range sources {
		if report, ok := cleanByHash[source.Origin.Hash]; ok {
			cached = append(cached, report)
			continue
		}

		pending = append(pending, source)
	}

	slog.Debug("cache partition", "pending", len(pending), "cached", len(cached))

	return pending, cached, nil
}

// formatReportsChannel runs the formatter over the pending sources with a
// bounded worker pool. A file that fails to format becomes a Failed report
// rather than aborting the whole run.
func (w *workflowPipeline) formatReportsChannel(ctx context.Context, sources []m.Source, threads int, cfg m.ResolvedConfig) (<-chan m.Report, <-chan error) {
	reportsChannel := make(chan m.Report, threads)
	errorChannel := make(chan error, threads)

	var group errgroup.Group
	group.SetLimit(threads)

	go func() {
		for _, source := range sources {
			if ctx.Err() != nil {
				break
			}

			currentSource := source

			group.Go(func() error {
				w.DisplayFileStarting(ctx, currentSource)

				report, err := w.FormatSource(ctx, currentSource, cfg)
				if err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}

					slog.Warn("failed to format source", "source", currentSource.Origin.FullPath, "error", err)

					report = m.Report{Source: currentSource, Status: m.Failed, Output: err.Error()}
				}

				select {
				case <-ctx.Done():
					return ctx.Err()
				case reportsChannel <- report:
				}

				return nil
			})
		}

		err := group.Wait()

		close(reportsChannel)

		if err != nil {
			errorChannel <- err
		}

		close(errorChannel)
	}()

	return reportsChannel, errorChannel
}

// applyReportsChannel writes dirty reports back to disk when apply is set and
// forwards every report downstream.
func (w *workflowPipeline) applyReportsChannel(ctx context.Context, reports <-chan m.Report, apply bool) (<-chan m.Report, <-chan error) {
	out := make(chan m.Report, 1)
	errorChannel := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errorChannel)

		for report := range reports {
			if apply {
				applied, err := w.ApplyReport(ctx, report)
				if err != nil {
					errorChannel <- err
					return
				}

				report = applied
			}

			w.DisplayFileCompleted(ctx, report)

			select {
			case <-ctx.Done():
				errorChannel <- ctx.Err()
				return
			case out <- report:
			}
		}
	}()

	return out, errorChannel
}

// collectReports gathers all reports and watches the merged error channel.
func (w *workflowPipeline) collectReports(ctx context.Context, reportsChannel <-chan m.Report, errorChannel <-chan error) ([]m.Report, error) {
	var allReports []m.Report

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		for {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case report, ok := <-reportsChannel:
				if !ok {
					return nil
				}

				allReports = append(allReports, report)
			}
		}
	})

	group.Go(func() error {
		select {
		case <-groupCtx.Done():
			return groupCtx.Err()
		case err, ok := <-errorChannel:
			if !ok {
				return nil
			}

			return err
		}
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return allReports, nil
}

// saveRun persists the run's reports. Sharded runs write into their own
// shard_N subdirectory so parallel processes never clobber each other.
func (w *workflowPipeline) saveRun(ctx context.Context, args CheckArgs, reports []m.Report) error {
	if args.Reports == "" {
		return nil
	}

	dir := args.Reports
	if args.TotalShardCount > 1 {
		dir = m.Path(filepath.Join(string(args.Reports), fmt.Sprintf("shard_%d", args.ShardIndex)))
	}

	sortReports(reports)

	return w.SaveReports(ctx, dir, reports)
}

func sortReports(reports []m.Report) {
	sort.Slice(reports, func(i, j int) bool {
		return reportPath(reports[i]) < reportPath(reports[j])
	})
}

func reportPath(report m.Report) m.Path {
	if report.Source.Origin == nil {
		return ""
	}

	return report.Source.Origin.ShortPath
}

// View displays reports stored by a previous run.
func (w *workflowPipeline) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.Start(ctx, controller.WithCheckMode()); err != nil {
		return err
	}

	if err := w.DisplaySummary(ctx, reports, cleanScoreFromReports(reports)); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// Merge folds shard_N report directories into the root reports directory.
// Later shards win when two shards report the same file.
func (w *workflowPipeline) Merge(ctx context.Context, args MergeArgs) error {
	dirs, err := w.ShardDirs(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("list shard reports: %w", err)
	}

	if len(dirs) == 0 {
		slog.Debug("no shard directories to merge", "reports", args.Reports)
		return nil
	}

	merged := make(map[m.Path]m.Report)

	base, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	mergeInto(merged, base)

	for _, dir := range dirs {
		shardReports, err := w.LoadReports(ctx, dir)
		if err != nil {
			return fmt.Errorf("load shard reports %s: %w", dir, err)
		}

		mergeInto(merged, shardReports)
	}

	reports := make([]m.Report, 0, len(merged))
	for _, report := range merged {
		reports = append(reports, report)
	}

	sortReports(reports)

	if err := w.SaveReports(ctx, args.Reports, reports); err != nil {
		return fmt.Errorf("save merged reports: %w", err)
	}

	slog.Debug("merged shard reports", "shards", len(dirs), "files", len(reports))

	return nil
}

func mergeInto(merged map[m.Path]m.Report, reports []m.Report) {
	for _, report := range reports {
		if report.Source.Origin == nil {
			continue
		}

		merged[report.Source.Origin.FullPath] = report
	}
}

func mergeErrorChannels(ch1, ch2 <-chan error) <-chan error {
	merged := make(chan error, 1)

	go func() {
		defer close(merged)

		for ch1 != nil || ch2 != nil {
			select {
			case err, ok := <-ch1:
				if !ok {
					ch1 = nil
				} else {
					merged <- err
					return // Send first error and close
				}
			case err, ok := <-ch2:
				if !ok {
					ch2 = nil
				} else {
					merged <- err
					return
				}
			}
		}
	}()

	return merged
}
