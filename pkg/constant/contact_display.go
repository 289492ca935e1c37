package constant

// ServiceEmoji 后台列表中服务类型对应的图标
var ServiceEmoji = map[string]string{
	"web_development":        "🌐",
	"mobile_app_development": "📱",
	"ai_automation":          "🤖",
	"cybersecurity":          "🔐",
	"digital_marketing":      "📈",
	"call_center_services":   "📞",
}

// DefaultServiceEmoji 未知服务类型使用的图标
const DefaultServiceEmoji = "💼"

// ResponseStatus 回复状态的展示信息
type ResponseStatus struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var (
	StatusResponded = ResponseStatus{Label: "✓ Responded", Color: "#10b981"}
	StatusPending   = ResponseStatus{Label: "⏳ Pending", Color: "#ef4444"}
)

// EmojiForService 返回服务类型的图标
func EmojiForService(service string) string {
	if e, ok := ServiceEmoji[service]; ok {
		return e
	}
	return DefaultServiceEmoji
}

// StatusFor 返回回复状态的展示信息
func StatusFor(responded bool) ResponseStatus {
	if responded {
		return StatusResponded
	}
	return StatusPending
}
