/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-07-13 23:40:12
 * @LastEditTime: 2026-10-14 12:20:31
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anzhiyu-c/fintaa-site/pkg/domain/repository"
)

// sqlTransactionManager 基于 *sql.Tx 的事务管理器，事务内的仓库共享同一个 Tx
type sqlTransactionManager struct {
	db      *sql.DB
	dialect string
}

// NewTransactionManager 是 sqlTransactionManager 的构造函数。
func NewTransactionManager(db *sql.DB, dbDialect string) repository.TransactionManager {
	return &sqlTransactionManager{
		db:      db,
		dialect: dbDialect,
	}
}

// NewRepositories 返回非事务的仓库集合
func NewRepositories(db *sql.DB, dbDialect string) repository.Repositories {
	return repository.Repositories{
		Page:              NewPageRepo(db, dbDialect),
		ContactSubmission: NewContactSubmissionRepo(db, dbDialect),
	}
}

// Do 开启事务，fn 返回错误或发生 panic 时回滚，否则提交。
func (tm *sqlTransactionManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	repos := repository.Repositories{
		Page:              NewPageRepo(tx, tm.dialect),
		ContactSubmission: NewContactSubmissionRepo(tx, tm.dialect),
	}

	if err := fn(repos); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("事务执行失败: %w, 回滚事务也失败: %v", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交事务失败: %w", err)
	}
	return nil
}
