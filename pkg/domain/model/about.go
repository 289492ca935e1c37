package model

// AboutFields 关于我们页标量字段
type AboutFields struct {
	HeroTitle       string `json:"hero_title" maxlen:"255"`
	HeroSubtitle    string `json:"hero_subtitle" maxlen:"255"`
	HeroDescription string `json:"hero_description" richtext:"true"`
	HeroImageURL    string `json:"hero_image_url" maxlen:"200"`
	StoryTitle      string `json:"story_title" maxlen:"255"`
	StoryContent    string `json:"story_content" richtext:"true"`
	MissionTitle    string `json:"mission_title" maxlen:"255"`
	MissionContent  string `json:"mission_content" richtext:"true"`
	VisionTitle     string `json:"vision_title" maxlen:"255"`
	VisionContent   string `json:"vision_content" richtext:"true"`
	ValuesTitle     string `json:"values_title" maxlen:"255"`
}

// CompanyValue 公司价值观
type CompanyValue struct {
	Title       string `json:"title" maxlen:"255"`
	Description string `json:"description"`
	IconName    string `json:"icon_name" maxlen:"100"`
}

// TeamMember 关于我们页的团队成员
type TeamMember struct {
	Name        string `json:"name" maxlen:"255"`
	Position    string `json:"position" maxlen:"255"`
	Bio         string `json:"bio"`
	ImageURL    string `json:"image_url" maxlen:"200"`
	LinkedinURL string `json:"linkedin_url" maxlen:"200"`
	TwitterURL  string `json:"twitter_url" maxlen:"200"`
	GithubURL   string `json:"github_url" maxlen:"200"`
}

// AboutPage 关于我们，全站唯一
type AboutPage struct {
	AboutFields
	Values      []CompanyValue `json:"values"`
	TeamMembers []TeamMember   `json:"team_members"`
}

func NewAboutPage() *AboutPage {
	return &AboutPage{
		AboutFields: AboutFields{
			HeroTitle:    "About Fintaa",
			StoryTitle:   "Our Story",
			MissionTitle: "Our Mission",
			VisionTitle:  "Our Vision",
			ValuesTitle:  "Our Values",
		},
		Values:      []CompanyValue{},
		TeamMembers: []TeamMember{},
	}
}

func (p *AboutPage) Kind() PageKind { return KindAbout }
func (p *AboutPage) Fields() any    { return &p.AboutFields }

func (p *AboutPage) Items() ([]ItemRecord, error) {
	var enc ItemEncoder
	AppendItems(&enc, "values", p.Values)
	AppendItems(&enc, "team_members", p.TeamMembers)
	return enc.Result()
}

func (p *AboutPage) SetItems(records []ItemRecord) error {
	dec := NewItemDecoder(records)
	DecodeInto(dec, "values", &p.Values)
	DecodeInto(dec, "team_members", &p.TeamMembers)
	return dec.Err()
}

// ContactFields 联系我们页标量字段
type ContactFields struct {
	HeroTitle       string `json:"hero_title" maxlen:"255"`
	HeroDescription string `json:"hero_description" richtext:"true"`
	OfficeAddress   string `json:"office_address"`
	EmailAddress    string `json:"email_address" maxlen:"254"`
	PhoneNumber     string `json:"phone_number" maxlen:"20"`
	BusinessHours   string `json:"business_hours" maxlen:"255"`
	MapEmbedURL     string `json:"map_embed_url" maxlen:"200"`
}

// ContactMethod 其他联系方式
type ContactMethod struct {
	Title       string `json:"title" maxlen:"255"`
	Description string `json:"description" maxlen:"255"`
	Link        string `json:"link" maxlen:"200"`
	IconName    string `json:"icon_name" maxlen:"100"`
}

// ContactPage 联系我们，全站唯一，同时接收联系表单的 POST
type ContactPage struct {
	ContactFields
	ContactMethods []ContactMethod `json:"contact_methods"`
}

func NewContactPage() *ContactPage {
	return &ContactPage{
		ContactFields: ContactFields{
			HeroTitle:     "Get In Touch",
			EmailAddress:  "info@Fintaa.pk",
			BusinessHours: "24/7 Available",
		},
		ContactMethods: []ContactMethod{},
	}
}

func (p *ContactPage) Kind() PageKind { return KindContact }
func (p *ContactPage) Fields() any    { return &p.ContactFields }

func (p *ContactPage) Items() ([]ItemRecord, error) {
	return EncodeItems("contact_methods", p.ContactMethods)
}

func (p *ContactPage) SetItems(records []ItemRecord) error {
	methods, err := DecodeItems[ContactMethod](records, "contact_methods")
	if err != nil {
		return err
	}
	p.ContactMethods = methods
	return nil
}
