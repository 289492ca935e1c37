/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-06-15 12:16:18
 * @LastEditTime: 2026-10-14 16:20:05
 * @LastEditors: 安知鱼
 */
package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/gin-gonic/gin"
)

// Response 是统一的API返回结构体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message string) {
	SuccessWithStatus(c, http.StatusOK, data, message)
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// SuccessWithStatus 成功响应，但允许自定义 HTTP 状态码，如 201 Created。
func SuccessWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// errorStatus 业务错误到 HTTP 状态码的映射，按顺序匹配
var errorStatus = []struct {
	err    error
	status int
}{
	{constant.ErrNotFound, http.StatusNotFound},
	{constant.ErrRootMissing, http.StatusNotFound},
	{constant.ErrConflict, http.StatusConflict},
	{constant.ErrSlugConflict, http.StatusConflict},
	{constant.ErrPageLimitReached, http.StatusConflict},
	{constant.ErrUnauthorized, http.StatusUnauthorized},
	{constant.ErrInvalidToken, http.StatusUnauthorized},
	{constant.ErrInvalidOperation, http.StatusForbidden},
	{constant.ErrBadRequest, http.StatusBadRequest},
	{constant.ErrInvalidPublicID, http.StatusBadRequest},
	{constant.ErrPageTypeNotAllowed, http.StatusBadRequest},
	{constant.ErrInvalidSlug, http.StatusBadRequest},
	{constant.ErrInvalidChoice, http.StatusBadRequest},
	{constant.ErrFieldTooLong, http.StatusBadRequest},
	{constant.ErrStorageNotConfigured, http.StatusServiceUnavailable},
}

// StatusFor 返回错误对应的 HTTP 状态码，未知错误为 500
func StatusFor(err error) int {
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// FailWithError 根据业务错误选择状态码。500 时只返回 fallback 消息并记录原始错误
func FailWithError(c *gin.Context, err error, fallback string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[%s %s] %s: %v", c.Request.Method, c.Request.URL.Path, fallback, err)
		Fail(c, status, fallback)
		return
	}
	Fail(c, status, err.Error())
}
