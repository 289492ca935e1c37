package model

// ListingFields 列表类页面共享的头部字段
type ListingFields struct {
	HeroTitle       string `json:"hero_title" maxlen:"255"`
	HeroDescription string `json:"hero_description" richtext:"true"`
}

// ServicePageItem 服务列表页中的单个服务
type ServicePageItem struct {
	Title       string `json:"title" maxlen:"255"`
	Description string `json:"description" richtext:"true"`
	Icon        string `json:"icon" maxlen:"100"`
	Features    string `json:"features" richtext:"true"`
}

// ServicesPage 服务列表页
type ServicesPage struct {
	ListingFields
	ServiceItems []ServicePageItem `json:"service_items"`
}

func NewServicesPage() *ServicesPage {
	return &ServicesPage{
		ListingFields: ListingFields{
			HeroTitle:       "Our Services",
			HeroDescription: "<p>We offer comprehensive software development services to transform your ideas into reality.</p>",
		},
		ServiceItems: []ServicePageItem{},
	}
}

func (p *ServicesPage) Kind() PageKind { return KindServices }
func (p *ServicesPage) Fields() any    { return &p.ListingFields }

func (p *ServicesPage) Items() ([]ItemRecord, error) {
	return EncodeItems("service_items", p.ServiceItems)
}

func (p *ServicesPage) SetItems(records []ItemRecord) error {
	items, err := DecodeItems[ServicePageItem](records, "service_items")
	if err != nil {
		return err
	}
	p.ServiceItems = items
	return nil
}

// TeamPageMember 团队页成员
type TeamPageMember struct {
	Name     string `json:"name" maxlen:"255"`
	Position string `json:"position" maxlen:"255"`
	Bio      string `json:"bio" richtext:"true"`
	ImageURL string `json:"image_url" maxlen:"200"`
	Email    string `json:"email" maxlen:"254"`
	Linkedin string `json:"linkedin" maxlen:"200"`
	Github   string `json:"github" maxlen:"200"`
	Twitter  string `json:"twitter" maxlen:"200"`
	Skills   string `json:"skills" maxlen:"500"`
}

// SkillList 返回拆分后的技能
func (m *TeamPageMember) SkillList() []string {
	return SplitCommaList(m.Skills)
}

// TeamPage 团队页
type TeamPage struct {
	ListingFields
	TeamMembers []TeamPageMember `json:"team_members"`
}

func NewTeamPage() *TeamPage {
	return &TeamPage{
		ListingFields: ListingFields{
			HeroTitle:       "Our Team",
			HeroDescription: "<p>Meet the talented individuals who make our software house exceptional.</p>",
		},
		TeamMembers: []TeamPageMember{},
	}
}

func (p *TeamPage) Kind() PageKind { return KindTeam }
func (p *TeamPage) Fields() any    { return &p.ListingFields }

func (p *TeamPage) Items() ([]ItemRecord, error) {
	return EncodeItems("team_members", p.TeamMembers)
}

func (p *TeamPage) SetItems(records []ItemRecord) error {
	members, err := DecodeItems[TeamPageMember](records, "team_members")
	if err != nil {
		return err
	}
	p.TeamMembers = members
	return nil
}

// PortfolioIndexPage 作品集列表页，只允许 ProjectPage 子页面
type PortfolioIndexPage struct {
	ListingFields
}

func NewPortfolioIndexPage() *PortfolioIndexPage {
	return &PortfolioIndexPage{ListingFields: ListingFields{
		HeroTitle:       "Our Portfolio",
		HeroDescription: "<p>Explore our successful projects and see how we've helped businesses transform their digital presence.</p>",
	}}
}

func (p *PortfolioIndexPage) Kind() PageKind                      { return KindPortfolioIndex }
func (p *PortfolioIndexPage) Fields() any                         { return &p.ListingFields }
func (p *PortfolioIndexPage) Items() ([]ItemRecord, error)        { return nil, nil }
func (p *PortfolioIndexPage) SetItems(records []ItemRecord) error { return nil }

// RootPage 页面树的根节点，没有内容
type RootPage struct{}

func NewRootPage() *RootPage { return &RootPage{} }

func (p *RootPage) Kind() PageKind                      { return KindRoot }
func (p *RootPage) Fields() any                         { return p }
func (p *RootPage) Items() ([]ItemRecord, error)        { return nil, nil }
func (p *RootPage) SetItems(records []ItemRecord) error { return nil }
