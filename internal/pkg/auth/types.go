/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-11 18:38:27
 * @LastEditTime: 2026-10-14 14:31:02
 * @LastEditors: 安知鱼
 */
package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey 是用于在 gin.Context 中存储和检索令牌信息的键。
const ClaimsKey = "admin_claims"

// Issuer 令牌签发方
const Issuer = "fintaa-site"

// CustomClaims 后台管理员令牌
type CustomClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
