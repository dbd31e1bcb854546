package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

var (
	cleanStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dirtyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// statusLabel renders a colored status name for terminal output.
func statusLabel(status m.FileStatus) string {
	switch status {
	case m.Clean, m.Formatted:
		return cleanStyle.Render(status.String())
	case m.Dirty:
		return dirtyStyle.Render(status.String())
	case m.Failed:
		return failedStyle.Render(status.String())
	}

	return status.String()
}

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	s.mode = config.mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Formatting with %d worker(s) (Shard %d/%d)\n", threads, shardIndex, shardCount)
}

// DisplayFileStarting shows info about a file being picked up.
func (s *SimpleUI) DisplayFileStarting(ctx context.Context, source m.Source) {
	if err := ctx.Err(); err != nil {
		return
	}

	if source.Origin == nil {
		return
	}

	s.printf("Processing %s\n", source.Origin.ShortPath)
}

// DisplayFileCompleted shows the outcome for a single file.
func (s *SimpleUI) DisplayFileCompleted(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	path := ""
	if report.Source.Origin != nil {
		path = string(report.Source.Origin.ShortPath)
	}

	s.printf("%s -> %s\n", path, statusLabel(report.Status))

	if report.Status == m.Failed && report.Output != "" {
		s.printf("  %s\n", report.Output)
	}
}

// DisplaySummary prints the per-file results table and the clean score.
func (s *SimpleUI) DisplaySummary(ctx context.Context, reports []m.Report, score float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sorted := make([]m.Report, len(reports))
	copy(sorted, reports)

	sort.Slice(sorted, func(i, j int) bool {
		return shortPathOf(sorted[i]) < shortPathOf(sorted[j])
	})

	s.printf("\n%s", renderSummaryTable(sorted))
	s.printf("Clean score: %.2f%%\n", score*100)

	return nil
}

func shortPathOf(report m.Report) string {
	if report.Source.Origin == nil {
		return ""
	}

	return string(report.Source.Origin.ShortPath)
}

func renderSummaryTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Status", "Rewrites"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	rewrites := 0

	for _, report := range reports {
		table.Append([]string{
			shortPathOf(report),
			report.Status.String(),
			fmt.Sprintf("%d", report.Replacements),
		})

		rewrites += report.Replacements
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		"",
		fmt.Sprintf("%d", rewrites),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
