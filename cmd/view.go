package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"tidyvue.dev/pkg/tidyvue/internal/domain"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously generated formatting reports",
		Long:  "View previously generated formatting reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
