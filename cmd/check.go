package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tidyvue.dev/pkg/tidyvue/internal/domain"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

var checkParallelFlag int
var checkShardFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check template formatting without rewriting files",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(cmd.Context(), buildCheckArgs(args, checkShardFlag))
		},
	}

	configureConcurrencyFlags(cmd, &checkParallelFlag, &checkShardFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// buildCheckArgs assembles the shared workflow arguments from flags,
// config and positional paths.
func buildCheckArgs(args []string, shard string) domain.CheckArgs {
	shardIndex, totalShards := parseShardFlag(shard)

	return domain.CheckArgs{
		Paths:           parsePaths(args),
		Exclude:         viper.GetStringSlice(excludeConfigKey),
		UseCache:        !viper.GetBool(noCacheFlagName),
		Reports:         m.Path(viper.GetString(outputFlagName)),
		Threads:         viper.GetInt(runParallelConfigKey),
		ShardIndex:      shardIndex,
		TotalShardCount: totalShards,
		Config:          resolveConfig(),
	}
}

func configureConcurrencyFlags(cmd *cobra.Command, parallel *int, shard *string) {
	cmd.Flags().IntVarP(parallel, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	cmd.Flags().StringVarP(shard, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
