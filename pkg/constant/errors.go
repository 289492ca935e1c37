/*
 * @Description: 业务错误定义
 * @Author: 安知鱼
 * @Date: 2025-06-27 12:08:15
 * @LastEditTime: 2026-10-14 10:12:40
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrConflict 表示资源冲突，可以由 Handler 转换为 409
	ErrConflict = errors.New("资源冲突")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrUnauthorized 表示未授权，可以由 Handler 转换为 401
	ErrUnauthorized = errors.New("未经授权的访问")

	// ErrInvalidToken 表示无效的令牌，可以由 Handler 转换为 401
	ErrInvalidToken = errors.New("无效令牌")

	// ErrInvalidPublicID 表示无效的公共ID，可以由 Handler 转换为 400
	ErrInvalidPublicID = errors.New("无效的公共ID")

	// ErrInvalidOperation 表示不允许的操作，可以由 Handler 转换为 403
	ErrInvalidOperation = errors.New("不允许的操作")

	// ErrPageLimitReached 表示该页面类型的实例数量已达上限（单例页面）
	ErrPageLimitReached = errors.New("该页面类型的数量已达上限")

	// ErrPageTypeNotAllowed 表示父页面不允许创建该类型的子页面
	ErrPageTypeNotAllowed = errors.New("父页面不允许该类型的子页面")

	// ErrSlugConflict 表示同级页面中已存在相同的 slug
	ErrSlugConflict = errors.New("同级页面中已存在相同的 slug")

	// ErrInvalidSlug 表示 slug 格式不合法
	ErrInvalidSlug = errors.New("slug 格式不合法")

	// ErrInvalidChoice 表示字段值不在可选范围内
	ErrInvalidChoice = errors.New("字段值不在可选范围内")

	// ErrFieldTooLong 表示字段超过最大长度
	ErrFieldTooLong = errors.New("字段超过最大长度")

	// ErrRootMissing 表示页面树的根节点不存在
	ErrRootMissing = errors.New("Root page not found. Please run migrations first.")

	// ErrStorageNotConfigured 表示媒体存储未配置或配置无效
	ErrStorageNotConfigured = errors.New("媒体存储未正确配置")
)
