/*
 * @Description: 命令行入口
 * @Author: 安知鱼
 * @Date: 2026-10-14 17:52:10
 * @LastEditTime: 2026-10-14 17:52:10
 * @LastEditors: 安知鱼
 */
package cli

import (
	"fmt"
	"os"

	"github.com/anzhiyu-c/fintaa-site/pkg/config"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "fintaa-site",
	Short: "Fintaa Software House 站点服务",
	Long: `fintaa-site 提供站点页面树、联系表单收集与后台管理接口。
不带子命令运行时等同于 serve。`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// Execute 执行根命令，出错时以非零状态码退出
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径 (默认为 "+config.DefaultConfigPath+")")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, versionCmd)
	seedCmd.AddCommand(seedContactsCmd)
}

// loadConfig 未指定 --config 时使用默认路径，并在缺失时写入默认配置
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.NewConfig()
	}
	cfg, err := config.NewConfigFromFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("加载配置文件 %s 失败: %w", cfgFile, err)
	}
	return cfg, nil
}
