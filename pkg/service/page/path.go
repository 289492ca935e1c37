package page

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
)

// maxPathStep 单层最多可容纳的子页面编号
const maxPathStep = 36*36*36*36 - 1

// RootPath 根节点的物化路径
const RootPath = "0001"

// nextChildPath 根据同层最大路径计算下一个子页面路径，编号为 4 位大写 36 进制
func nextChildPath(parentPath, maxChild string) (string, error) {
	next := int64(1)
	if maxChild != "" {
		step := maxChild[len(maxChild)-model.PathStepLength:]
		n, err := strconv.ParseInt(step, 36, 64)
		if err != nil {
			return "", fmt.Errorf("无法解析物化路径 %q: %w", maxChild, err)
		}
		next = n + 1
	}
	if next > maxPathStep {
		return "", fmt.Errorf("页面 %q 下的子页面数量已达上限", parentPath)
	}
	step := strings.ToUpper(strconv.FormatInt(next, 36))
	return parentPath + strings.Repeat("0", model.PathStepLength-len(step)) + step, nil
}

// isRestricted 判断 path 自身或其祖先是否设置了访问限制
func isRestricted(path string, privatePaths []string) bool {
	for _, p := range privatePaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
