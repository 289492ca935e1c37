/*
 * @Description: 公共 ID 生成和解码
 * @Author: 安知鱼
 * @Date: 2025-06-17 20:38:15
 * @LastEditTime: 2026-10-14 13:10:21
 * @LastEditors: 安知鱼
 */
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"

	"github.com/sqids/sqids-go"
)

// sqidsEncoder 是用于生成和解码短 ID 的 Sqids 编码器实例。
var sqidsEncoder *sqids.Sqids

// DefaultAlphabet 是默认的字母表
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// 实体类型标识，编码进公共 ID，防止不同实体的 ID 互相混用
const (
	EntityTypeContactSubmission uint64 = 1
	EntityTypePage              uint64 = 2
)

// GenerateRandomSeed 生成一个随机的 16 字节种子（返回 32 字符的十六进制字符串）
func GenerateRandomSeed() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("生成随机种子失败: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// shuffleAlphabet 使用种子确定性地打乱字母表
func shuffleAlphabet(seed string) string {
	var seedInt int64
	for i, c := range seed {
		seedInt += int64(c) * int64(i+1)
	}
	r := mrand.New(mrand.NewSource(seedInt))
	alphabet := []rune(DefaultAlphabet)
	r.Shuffle(len(alphabet), func(i, j int) {
		alphabet[i], alphabet[j] = alphabet[j], alphabet[i]
	})
	return string(alphabet)
}

// InitSqidsEncoder 使用默认字母表初始化编码器
func InitSqidsEncoder() error {
	return InitSqidsEncoderWithSeed("")
}

// InitSqidsEncoderWithSeed 使用种子初始化 Sqids 编码器，seed 为空时使用默认字母表
func InitSqidsEncoderWithSeed(seed string) error {
	alphabet := DefaultAlphabet
	if seed != "" {
		alphabet = shuffleAlphabet(seed)
	}
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
		Alphabet:  alphabet,
	})
	if err != nil {
		return fmt.Errorf("初始化 Sqids 编码器失败: %w", err)
	}
	sqidsEncoder = s
	return nil
}

// GeneratePublicID 将数据库 ID 与实体类型编码为公共 ID
func GeneratePublicID(dbID uint, entityType uint64) (string, error) {
	if sqidsEncoder == nil {
		return "", fmt.Errorf("Sqids 编码器未初始化")
	}
	id, err := sqidsEncoder.Encode([]uint64{uint64(dbID), entityType})
	if err != nil {
		return "", fmt.Errorf("编码公共ID失败: %w", err)
	}
	return id, nil
}

// DecodePublicID 解码公共 ID，并校验实体类型
func DecodePublicID(publicID string, entityType uint64) (uint, error) {
	if sqidsEncoder == nil {
		return 0, fmt.Errorf("Sqids 编码器未初始化")
	}
	numbers := sqidsEncoder.Decode(publicID)
	if len(numbers) != 2 || numbers[1] != entityType || numbers[0] == 0 {
		return 0, fmt.Errorf("%w: %q", constant.ErrInvalidPublicID, publicID)
	}
	// 非规范编码也能解出数字，重新编码比对以拒绝它们
	if canonical, err := sqidsEncoder.Encode(numbers); err != nil || canonical != publicID {
		return 0, fmt.Errorf("%w: %q", constant.ErrInvalidPublicID, publicID)
	}
	return uint(numbers[0]), nil
}

// DecodePublicIDBatch 批量解码同一实体类型的公共 ID
func DecodePublicIDBatch(publicIDs []string, entityType uint64) ([]uint, error) {
	dbIDs := make([]uint, 0, len(publicIDs))
	for _, publicID := range publicIDs {
		dbID, err := DecodePublicID(publicID, entityType)
		if err != nil {
			return nil, err
		}
		dbIDs = append(dbIDs, dbID)
	}
	return dbIDs, nil
}
