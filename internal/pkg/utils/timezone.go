/*
 * @Description: 站点时区 - 统一使用巴基斯坦标准时间 (UTC+5)
 * @Author: 安知鱼
 * @Date: 2026-01-15 10:00:00
 * @LastEditTime: 2026-10-14 12:35:20
 * @LastEditors: 安知鱼
 */
package utils

import "time"

// SiteTimezone 巴基斯坦标准时间，无夏令时
var SiteTimezone = time.FixedZone("PKT", 5*60*60)

// NowInSite 获取站点时区的当前时间
func NowInSite() time.Time {
	return time.Now().In(SiteTimezone)
}
