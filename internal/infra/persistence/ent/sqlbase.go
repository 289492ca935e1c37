/*
 * @Description: 基于 ent SQL 构建器的仓库公共部分
 * @Author: 安知鱼
 * @Date: 2025-07-13 23:02:51
 * @LastEditTime: 2026-10-14 12:05:44
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// executor 同时由 *sql.DB 与 *sql.Tx 实现，仓库因此可以在事务内外复用
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sqliteTimeLayout 定长格式，保证 SQLite 中按文本比较与按时间比较一致
const sqliteTimeLayout = "2006-01-02 15:04:05.000000000"

type sqlBase struct {
	exec    executor
	dialect string
}

func (b sqlBase) builder() *entsql.DialectBuilder {
	return entsql.Dialect(b.dialect)
}

func (b sqlBase) timeArg(t time.Time) any {
	if b.dialect == dialect.SQLite {
		return t.UTC().Format(sqliteTimeLayout)
	}
	return t.UTC()
}

func (b sqlBase) nullTimeArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return b.timeArg(*t)
}

// insert 执行插入并返回自增主键
func (b sqlBase) insert(ctx context.Context, ib *entsql.InsertBuilder) (uint, error) {
	if b.dialect == dialect.Postgres {
		query, args := ib.Returning("id").Query()
		var id uint
		if err := b.exec.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	query, args := ib.Query()
	res, err := b.exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("获取自增主键失败: %w", err)
	}
	return uint(id), nil
}

func (b sqlBase) execQuery(ctx context.Context, q interface{ Query() (string, []any) }) (int, error) {
	query, args := q.Query()
	res, err := b.exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (b sqlBase) count(ctx context.Context, s *entsql.Selector) (int, error) {
	query, args := s.Query()
	var n int
	if err := b.exec.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// notFound 将 sql.ErrNoRows 转换为业务层的 ErrNotFound
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return constant.ErrNotFound
	}
	return err
}

func uintArgs(ids []uint) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func stringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

// nullTime 兼容驱动返回 time.Time、字符串或字节切片的时间列
type nullTime struct {
	Time  time.Time
	Valid bool
}

var timeLayouts = []string{
	sqliteTimeLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (n *nullTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		n.Time, n.Valid = time.Time{}, false
		return nil
	case time.Time:
		n.Time, n.Valid = v, true
		return nil
	case string:
		return n.parse(v)
	case []byte:
		return n.parse(string(v))
	}
	return fmt.Errorf("无法将 %T 转换为时间", value)
}

func (n *nullTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			n.Time, n.Valid = t, true
			return nil
		}
	}
	return fmt.Errorf("无法解析时间: %q", s)
}

func (n nullTime) ptr() *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}
