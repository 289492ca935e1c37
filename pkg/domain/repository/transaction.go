/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-07-02 00:43:46
 * @LastEditTime: 2026-10-14 11:20:45
 * @LastEditors: 安知鱼
 */
package repository

import "context"

// Repositories 聚合了在单个事务中可能用到的仓储接口。
type Repositories struct {
	Page              PageRepository
	ContactSubmission ContactSubmissionRepository
}

// TransactionManager 执行一个业务逻辑单元，并确保其中的所有数据库操作都在单个事务中完成。
type TransactionManager interface {
	// Do 在事务中调用 fn。fn 返回错误时回滚，否则提交。
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
