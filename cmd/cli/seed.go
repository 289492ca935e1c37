/*
 * @Description: 示例数据命令
 * @Author: 安知鱼
 * @Date: 2026-10-14 17:58:41
 * @LastEditTime: 2026-10-14 18:03:19
 * @LastEditors: 安知鱼
 */
package cli

import (
	"fmt"

	"github.com/anzhiyu-c/fintaa-site/cmd/server"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/seed"
	"github.com/spf13/cobra"
)

var seedClean bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "写入示例页面与联系表单提交",
	Long: `seed 在已有的页面树根节点下写入首页及其子页面，并创建示例联系表单提交。
seed 不会执行迁移，请先运行 migrate 或 serve。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(s *seed.Seeder) error {
			return s.Run(cmd.Context(), seedClean)
		})
	},
}

var seedContactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "按邮箱写入示例联系表单提交，已存在的不会重复创建",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(s *seed.Seeder) error {
			_, err := s.SeedContacts(cmd.Context())
			return err
		})
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedClean, "clean", false, "写入前清空根节点以下的页面与全部提交")
}

func withSeeder(cmd *cobra.Command, fn func(s *seed.Seeder) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	core, err := server.NewCore(cfg)
	if err != nil {
		return err
	}
	defer core.Close()

	repos := core.Repositories()
	seeder := seed.NewSeeder(core.PageService(), repos.Page, repos.ContactSubmission, cmd.OutOrStdout())
	if err := fn(seeder); err != nil {
		return fmt.Errorf("写入示例数据失败: %w", err)
	}
	return nil
}
