package cli

import (
	"github.com/anzhiyu-c/fintaa-site/cmd/server"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "创建或升级数据表并初始化页面树根节点",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		core, err := server.NewCore(cfg)
		if err != nil {
			return err
		}
		defer core.Close()
		return core.Migrate(cmd.Context())
	},
}
