/*
 * @Description: 联系表单提交记录
 * @Author: 安知鱼
 * @Date: 2025-07-20 09:41:37
 * @LastEditTime: 2026-10-14 11:02:18
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Choice 枚举字段的一个可选值及其展示名称
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ServiceChoices 咨询服务类型
var ServiceChoices = []Choice{
	{Value: "web_development", Label: "Web Development"},
	{Value: "mobile_app_development", Label: "Mobile App Development"},
	{Value: "ai_automation", Label: "AI & Automation"},
	{Value: "cybersecurity", Label: "Cybersecurity"},
	{Value: "digital_marketing", Label: "Digital Marketing"},
	{Value: "call_center_services", Label: "Call Center Services"},
}

// BudgetChoices 预算范围
var BudgetChoices = []Choice{
	{Value: "under_5k", Label: "Under $5,000"},
	{Value: "5k_15k", Label: "$5,000 - $15,000"},
	{Value: "15k_50k", Label: "$15,000 - $50,000"},
	{Value: "50k_plus", Label: "$50,000+"},
	{Value: "not_sure", Label: "Not Sure"},
}

// TimelineChoices 项目周期
var TimelineChoices = []Choice{
	{Value: "asap", Label: "ASAP"},
	{Value: "1_month", Label: "Within 1 Month"},
	{Value: "3_months", Label: "Within 3 Months"},
	{Value: "6_months", Label: "Within 6 Months"},
	{Value: "flexible", Label: "Flexible"},
}

// ChoiceLabel 返回 value 对应的展示名称，未知值原样返回
func ChoiceLabel(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// IsValidChoice 判断 value 是否在可选范围内
func IsValidChoice(choices []Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// ContactSubmission 一条联系表单提交
type ContactSubmission struct {
	ID          uint      `json:"-"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company"`
	Service     string    `json:"service"`
	Budget      string    `json:"budget"`
	Timeline    string    `json:"timeline"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
	IsResponded bool      `json:"is_responded"`
	Notes       string    `json:"notes"`
}

// ServiceDisplay 服务类型的展示名称
func (s *ContactSubmission) ServiceDisplay() string {
	return ChoiceLabel(ServiceChoices, s.Service)
}

func (s *ContactSubmission) String() string {
	return s.Name + " - " + s.ServiceDisplay()
}

// ContactSubmissionFormFields 公开表单读取的字段，缺省值均为空字符串
var ContactSubmissionFormFields = []string{
	"name", "email", "phone", "company", "service", "budget", "timeline", "message",
}

// ListContactSubmissionsOptions 后台列表查询参数
type ListContactSubmissionsOptions struct {
	Service       string
	IsResponded   *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Search        string
	Page          int
	PageSize      int
}

// DefaultSubmissionPageSize 后台列表默认每页条数
const DefaultSubmissionPageSize = 25

// MaxSubmissionPageSize 后台列表每页条数上限
const MaxSubmissionPageSize = 100

// ContactSubmissionDTO 后台 API 返回的提交记录
type ContactSubmissionDTO struct {
	ID string `json:"id"`
	ContactSubmission
	ServiceDisplay  string `json:"service_display"`
	BudgetDisplay   string `json:"budget_display"`
	TimelineDisplay string `json:"timeline_display"`
	ServiceEmoji    string `json:"service_emoji"`
	StatusLabel     string `json:"status_label"`
	StatusColor     string `json:"status_color"`
}

// ContactSubmissionListResponse 后台分页列表
type ContactSubmissionListResponse struct {
	List     []ContactSubmissionDTO `json:"list"`
	Total    int                    `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}
