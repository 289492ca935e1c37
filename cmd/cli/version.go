package cli

import (
	"fmt"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "打印版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetBuildInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "fintaa-site %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)
	},
}
