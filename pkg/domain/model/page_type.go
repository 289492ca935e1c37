package model

import "sort"

// PageType 页面类型注册信息
type PageType struct {
	Kind PageKind `json:"kind"`
	// Name 后台展示名称
	Name string `json:"name"`
	// MaxCount 大于 0 时限制该类型的实例总数
	MaxCount int `json:"max_count"`
	// ParentKinds 非空时只允许放在这些类型之下
	ParentKinds []PageKind `json:"parent_kinds"`
	// SubpageKinds 非空时只允许这些类型作为子页面；nil 表示不限制
	SubpageKinds []PageKind `json:"subpage_kinds"`
	// Creatable 为 false 的类型不能通过 API 创建
	Creatable bool `json:"creatable"`

	New func() Content `json:"-"`
}

// AllowsParent 判断 parent 是否可以作为该类型的父页面
func (t *PageType) AllowsParent(parent PageKind) bool {
	if len(t.ParentKinds) == 0 {
		return true
	}
	for _, k := range t.ParentKinds {
		if k == parent {
			return true
		}
	}
	return false
}

// AllowsSubpage 判断 child 是否可以作为该类型的子页面
func (t *PageType) AllowsSubpage(child PageKind) bool {
	if t.SubpageKinds == nil {
		return true
	}
	for _, k := range t.SubpageKinds {
		if k == child {
			return true
		}
	}
	return false
}

var pageTypes = map[PageKind]*PageType{
	KindRoot: {Kind: KindRoot, Name: "Root", MaxCount: 1,
		New: func() Content { return NewRootPage() }},
	KindHome: {Kind: KindHome, Name: "Home Page", MaxCount: 1, Creatable: true,
		New: func() Content { return NewHomePage() }},
	KindService: {Kind: KindService, Name: "Service Page", Creatable: true,
		New: func() Content { return NewServicePage() }},
	KindProject: {Kind: KindProject, Name: "Project Page", Creatable: true,
		New: func() Content { return NewProjectPage() }},
	KindBlogPage: {Kind: KindBlogPage, Name: "Blog Page", Creatable: true,
		New: func() Content { return NewBlogPage() }},
	KindBlogIndex: {Kind: KindBlogIndex, Name: "Blog Index Page", Creatable: true,
		SubpageKinds: []PageKind{KindBlogPost},
		New:          func() Content { return NewBlogIndexPage() }},
	KindBlogPost: {Kind: KindBlogPost, Name: "Blog Post", Creatable: true,
		ParentKinds: []PageKind{KindBlogIndex},
		New:         func() Content { return NewBlogPost() }},
	KindAbout: {Kind: KindAbout, Name: "About Page", MaxCount: 1, Creatable: true,
		New: func() Content { return NewAboutPage() }},
	KindContact: {Kind: KindContact, Name: "Contact Page", MaxCount: 1, Creatable: true,
		New: func() Content { return NewContactPage() }},
	KindServices: {Kind: KindServices, Name: "Services Page", Creatable: true,
		New: func() Content { return NewServicesPage() }},
	KindTeam: {Kind: KindTeam, Name: "Team Page", Creatable: true,
		New: func() Content { return NewTeamPage() }},
	KindPortfolioIndex: {Kind: KindPortfolioIndex, Name: "Portfolio Index Page", MaxCount: 1, Creatable: true,
		SubpageKinds: []PageKind{KindProject},
		New:          func() Content { return NewPortfolioIndexPage() }},
}

// LookupPageType 按类型标识查找注册信息
func LookupPageType(kind PageKind) (*PageType, bool) {
	t, ok := pageTypes[kind]
	return t, ok
}

// PageTypes 返回所有可创建的页面类型，按标识排序
func PageTypes() []*PageType {
	types := make([]*PageType, 0, len(pageTypes))
	for _, t := range pageTypes {
		if t.Creatable {
			types = append(types, t)
		}
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Kind < types[j].Kind })
	return types
}

// NewContent 创建指定类型的默认内容
func NewContent(kind PageKind) (Content, bool) {
	t, ok := pageTypes[kind]
	if !ok {
		return nil, false
	}
	return t.New(), true
}
