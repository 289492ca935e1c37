/*
 * @Description: 数据库表结构迁移
 * @Author: 安知鱼
 * @Date: 2025-12-08
 */
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/anzhiyu-c/fintaa-site/internal/infra/persistence/migrate"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
)

// Migrate 使用 ent 的 schema 迁移器创建或升级所有数据表
func Migrate(ctx context.Context, db *sql.DB, dbType string) error {
	d, err := DialectOf(dbType)
	if err != nil {
		return err
	}

	log.Println("⚡ 开始数据库表结构迁移...")
	m, err := schema.NewMigrate(entsql.OpenDB(d, db),
		schema.WithDropIndex(true),  // 允许删除旧索引（包括唯一约束）
		schema.WithDropColumn(true), // 允许删除旧列
	)
	if err != nil {
		return fmt.Errorf("创建迁移器失败: %w", err)
	}
	if err := m.Create(ctx, migrate.Tables...); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	log.Println("✅ 数据库表结构迁移成功")
	return nil
}
