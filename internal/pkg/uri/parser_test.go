package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "空路径", in: "", want: "/"},
		{name: "根路径", in: "/", want: "/"},
		{name: "补全斜杠", in: "blog/post", want: "/blog/post/"},
		{name: "已规范", in: "/about/", want: "/about/"},
		{name: "去除查询参数", in: "/contact/?sent=1", want: "/contact/"},
		{name: "去除锚点", in: "/blog/#top", want: "/blog/"},
		{name: "折叠重复斜杠", in: "//blog///post", want: "/blog/post/"},
		{name: "解析上级目录", in: "/blog/../about", want: "/about/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.in))
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "/home/about/", Join("/home/", "about"))
	assert.Equal(t, "/about/", Join("/", "about"))
}
