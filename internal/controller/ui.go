// Package controller provides output adapters for displaying formatting results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCheck StartMode = iota
	ModeFormat
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithCheckMode sets the UI to check (dry-run) mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithFormatMode sets the UI to format (write back) mode.
func WithFormatMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFormat
	}
}

// UI defines the interface for displaying formatting progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int)
	DisplayFileStarting(ctx context.Context, source m.Source)
	DisplayFileCompleted(ctx context.Context, report m.Report)
	DisplaySummary(ctx context.Context, reports []m.Report, score float64) error
}

// NewUI selects the interactive TUI when attached to a terminal and falls
// back to the plain printer otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to an interactive terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
