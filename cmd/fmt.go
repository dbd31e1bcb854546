package cmd

import (
	"github.com/spf13/cobra"

	"tidyvue.dev/pkg/tidyvue/internal/domain"
)

var fmtParallelFlag int
var fmtShardFlag string

// fmtCmd represents the fmt command.
var fmtCmd = newFmtCmd()

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Rewrite template attribute blocks in place",
		Long:  fmtLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Format(cmd.Context(), domain.FormatArgs{
				CheckArgs: buildCheckArgs(args, fmtShardFlag),
			})
		},
	}

	configureConcurrencyFlags(cmd, &fmtParallelFlag, &fmtShardFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
