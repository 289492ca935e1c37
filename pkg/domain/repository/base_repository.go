package repository

import (
	"context"
)

// BaseRepository 定义了所有仓储层都应具备的最基础的CRUD操作。
type BaseRepository[T any] interface {
	// FindByID 根据主键ID查找实体，不存在时返回 constant.ErrNotFound。
	FindByID(ctx context.Context, id uint) (*T, error)

	// Create 创建一个新的实体，并回填主键与创建时间。
	Create(ctx context.Context, entity *T) error
}
