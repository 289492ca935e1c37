package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "普通标题", title: "Our Services", want: "our-services"},
		{name: "撇号", title: "Let's Talk", want: "lets-talk"},
		{name: "标点与空白", title: "  AI & Automation!  ", want: "ai-automation"},
		{name: "数字", title: "Web Development in 2025", want: "web-development-in-2025"},
		{name: "非ASCII", title: "关于我们 About", want: "about"},
		{name: "全部非ASCII", title: "联系", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("future-web-development-2025"))
	assert.False(t, IsSlug("Upper"))
	assert.False(t, IsSlug("double--dash"))
	assert.False(t, IsSlug("-leading"))
	assert.False(t, IsSlug(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "hello...", Truncate("hello world", 6))
	assert.Equal(t, "你好...", Truncate("你好世界", 2))
}
