/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-06-28 00:21:55
 * @LastEditTime: 2026-10-14 18:06:44
 * @LastEditors: 安知鱼
 */
package main

import "github.com/anzhiyu-c/fintaa-site/cmd/cli"

func main() {
	cli.Execute()
}
