package cli

import (
	"fmt"

	"github.com/anzhiyu-c/fintaa-site/cmd/server"
	"github.com/anzhiyu-c/fintaa-site/internal/pkg/version"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "迁移数据库并启动 HTTP 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app, cleanup, err := server.NewAppWithConfig(cfg, version.GetVersion())
	if err != nil {
		return fmt.Errorf("应用初始化失败: %w", err)
	}
	defer cleanup()
	// 确保后台任务在程序退出时被停止
	defer app.Stop()

	app.PrintBanner()
	if err := app.Run(); err != nil {
		return fmt.Errorf("应用运行失败: %w", err)
	}
	return nil
}
