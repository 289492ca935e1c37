// internal/app/task/jobs.go
package task

// Job 与 cron.Job 接口兼容，Name 用于日志中的 job_name
type Job interface {
	Run()
	Name() string
}

// 各任务的调度表达式（包含秒字段）
const (
	ScheduleEveryMinute = "0 * * * * *"
	ScheduleDailyDigest = "0 0 9 * * *"
)
