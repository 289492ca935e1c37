/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-06-15 12:25:50
 * @LastEditTime: 2026-10-14 12:34:08
 * @LastEditors: 安知鱼
 */
package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomString 返回 length 个十六进制字符的随机串，用于临时 JWT 密钥等
func GenerateRandomString(length int) (string, error) {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:length], nil
}
