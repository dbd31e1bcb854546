package controller

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// recentLineCount limits how many completed files stay visible while running.
const recentLineCount = 8

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to the provided output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	model := newRunModel(config.mode)
	p.program = tea.NewProgram(model, tea.WithOutput(p.output))
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		_, _ = p.program.Run()
	}()

	return nil
}

// Close asks the program to quit.
func (p *TUI) Close(ctx context.Context) {
	if p.program == nil {
		return
	}

	p.program.Quit()

	select {
	case <-ctx.Done():
	case <-p.done:
	}
}

// Wait blocks until the program exits.
func (p *TUI) Wait(ctx context.Context) {
	if p.done == nil {
		return
	}

	select {
	case <-ctx.Done():
	case <-p.done:
	}
}

// DisplayConcurrencyInfo shows concurrency settings.
func (p *TUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	p.send(ctx, concurrencyMsg{threads: threads, shardIndex: shardIndex, shardCount: shardCount})
}

// DisplayFileStarting shows info about a file being picked up.
func (p *TUI) DisplayFileStarting(ctx context.Context, source m.Source) {
	if source.Origin == nil {
		return
	}

	p.send(ctx, fileStartingMsg{path: string(source.Origin.ShortPath)})
}

// DisplayFileCompleted shows the outcome for a single file.
func (p *TUI) DisplayFileCompleted(ctx context.Context, report m.Report) {
	p.send(ctx, fileCompletedMsg{report: report})
}

// DisplaySummary renders the final results and quits the program.
func (p *TUI) DisplaySummary(ctx context.Context, reports []m.Report, score float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.send(ctx, summaryMsg{reports: reports, score: score})

	return nil
}

func (p *TUI) send(ctx context.Context, msg tea.Msg) {
	if p.program == nil || ctx.Err() != nil {
		return
	}

	p.program.Send(msg)
}

type concurrencyMsg struct {
	threads    int
	shardIndex int
	shardCount int
}

type fileStartingMsg struct {
	path string
}

type fileCompletedMsg struct {
	report m.Report
}

type summaryMsg struct {
	reports []m.Report
	score   float64
}

// runModel is the Bubble Tea model for a check or format run.
type runModel struct {
	mode        StartMode
	spin        spinner.Model
	scoreBar    progress.Model
	concurrency string
	current     string
	recent      []string
	counts      map[m.FileStatus]int
	summary     *summaryMsg
	quitting    bool
}

func newRunModel(mode StartMode) runModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return runModel{
		mode:     mode,
		spin:     spin,
		scoreBar: progress.New(progress.WithDefaultGradient()),
		counts:   make(map[m.FileStatus]int),
	}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spin.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			rm.quitting = true
			return rm, tea.Quit
		}

		return rm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		rm.spin, cmd = rm.spin.Update(msg)

		return rm, cmd

	case concurrencyMsg:
		rm.concurrency = fmt.Sprintf("%d worker(s), shard %d/%d", msg.threads, msg.shardIndex, msg.shardCount)
		return rm, nil

	case fileStartingMsg:
		rm.current = msg.path
		return rm, nil

	case fileCompletedMsg:
		rm.counts[msg.report.Status]++
		rm.recent = append(rm.recent, completedLine(msg.report))

		if len(rm.recent) > recentLineCount {
			rm.recent = rm.recent[len(rm.recent)-recentLineCount:]
		}

		return rm, nil

	case summaryMsg:
		rm.summary = &msg
		return rm, tea.Quit
	}

	return rm, nil
}

func completedLine(report m.Report) string {
	path := ""
	if report.Source.Origin != nil {
		path = string(report.Source.Origin.ShortPath)
	}

	return fmt.Sprintf("  %s %s", statusLabel(report.Status), path)
}

func (rm runModel) View() string {
	var b strings.Builder

	if rm.mode == ModeFormat {
		b.WriteString(titleStyle.Render("tidyvue · format"))
	} else {
		b.WriteString(titleStyle.Render("tidyvue · check"))
	}

	b.WriteString("\n")

	if rm.concurrency != "" {
		b.WriteString(faintStyle.Render("  " + rm.concurrency))
		b.WriteString("\n")
	}

	if rm.summary != nil {
		rm.renderSummary(&b)
		return b.String()
	}

	fmt.Fprintf(&b, "\n  %s %s\n\n", rm.spin.View(), rm.current)

	for _, line := range rm.recent {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (rm runModel) renderSummary(b *strings.Builder) {
	reports := make([]m.Report, len(rm.summary.reports))
	copy(reports, rm.summary.reports)

	sort.Slice(reports, func(i, j int) bool {
		return shortPathOf(reports[i]) < shortPathOf(reports[j])
	})

	b.WriteString("\n")

	for _, report := range reports {
		if report.Status == m.Clean {
			continue
		}

		fmt.Fprintf(b, "  %s %s (%d rewrites)\n", statusLabel(report.Status), shortPathOf(report), report.Replacements)
	}

	fmt.Fprintf(b, "\n  %d file(s): %d clean, %d need format, %d formatted, %d failed\n",
		len(reports),
		rm.counts[m.Clean],
		rm.counts[m.Dirty],
		rm.counts[m.Formatted],
		rm.counts[m.Failed])

	fmt.Fprintf(b, "\n  Clean score %.1f%%\n  %s\n", rm.summary.score*100, rm.scoreBar.ViewAs(rm.summary.score))
}
