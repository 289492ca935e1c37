// Package testutil 测试用的数据库与服务装配
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/anzhiyu-c/fintaa-site/internal/infra/persistence/database"
	"github.com/anzhiyu-c/fintaa-site/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/repository"
	"github.com/stretchr/testify/require"

	"entgo.io/ent/dialect"
)

// NewSQLite 在临时目录中创建并迁移一个 SQLite 数据库，测试结束时关闭
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db, "sqlite"))
	return db
}

// NewRepositories 返回基于临时 SQLite 的仓库集合与事务管理器
func NewRepositories(t testing.TB) (repository.Repositories, repository.TransactionManager) {
	t.Helper()
	db := NewSQLite(t)
	return ent.NewRepositories(db, dialect.SQLite), ent.NewTransactionManager(db, dialect.SQLite)
}
