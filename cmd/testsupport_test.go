package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"tidyvue.dev/pkg/tidyvue/internal/domain"
)

// stubWorkflow records the arguments each workflow operation was invoked
// with so command tests can assert on flag plumbing.
type stubWorkflow struct {
	checkArgs  []domain.CheckArgs
	formatArgs []domain.FormatArgs
	viewArgs   []domain.ViewArgs
	mergeArgs  []domain.MergeArgs

	checkErr  error
	formatErr error
	viewErr   error
	mergeErr  error
}

func (s *stubWorkflow) Check(_ context.Context, args domain.CheckArgs) error {
	s.checkArgs = append(s.checkArgs, args)
	return s.checkErr
}

func (s *stubWorkflow) Format(_ context.Context, args domain.FormatArgs) error {
	s.formatArgs = append(s.formatArgs, args)
	return s.formatErr
}

func (s *stubWorkflow) View(_ context.Context, args domain.ViewArgs) error {
	s.viewArgs = append(s.viewArgs, args)
	return s.viewErr
}

func (s *stubWorkflow) Merge(_ context.Context, args domain.MergeArgs) error {
	s.mergeArgs = append(s.mergeArgs, args)
	return s.mergeErr
}

// withStubWorkflow swaps the package-level workflow for the test's lifetime
// and returns a fresh root command wired with the given subcommands.
func withStubWorkflow(t *testing.T, subcommands ...*cobra.Command) (*stubWorkflow, *cobra.Command) {
	t.Helper()

	stub := &stubWorkflow{}
	original := workflow
	workflow = stub
	t.Cleanup(func() { workflow = original })

	cmd := newRootCmd()
	for _, sub := range subcommands {
		cmd.AddCommand(sub)
	}

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return stub, cmd
}
