package model

// HomeFields 首页标量字段
type HomeFields struct {
	HeroTitle               string `json:"hero_title" maxlen:"255"`
	HeroSubtitle            string `json:"hero_subtitle" maxlen:"255"`
	HeroTypingText          string `json:"hero_typing_text" maxlen:"500"`
	HeroDescription         string `json:"hero_description" richtext:"true"`
	HeroPrimaryButtonText   string `json:"hero_primary_button_text" maxlen:"50"`
	HeroSecondaryButtonText string `json:"hero_secondary_button_text" maxlen:"50"`

	AboutTitle          string `json:"about_title" maxlen:"255"`
	AboutDescription    string `json:"about_description" richtext:"true"`
	AboutAdditionalText string `json:"about_additional_text" richtext:"true"`

	TechnologiesCount  string `json:"technologies_count" maxlen:"10"`
	ProjectsCount      string `json:"projects_count" maxlen:"10"`
	ClientSatisfaction string `json:"client_satisfaction" maxlen:"10"`
	YearsExperience    string `json:"years_experience" maxlen:"10"`

	ContactEmail    string `json:"contact_email" maxlen:"254"`
	ContactLocation string `json:"contact_location" maxlen:"255"`
	BusinessHours   string `json:"business_hours" maxlen:"255"`
}

// ServiceItem 首页的服务卡片
type ServiceItem struct {
	Title       string `json:"title" maxlen:"255"`
	Description string `json:"description"`
	IconSVG     string `json:"icon_svg"`
	Feature1    string `json:"feature_1" maxlen:"255"`
	Feature2    string `json:"feature_2" maxlen:"255"`
	Feature3    string `json:"feature_3" maxlen:"255"`
}

// AboutFeature 首页关于区块的要点
type AboutFeature struct {
	FeatureText string `json:"feature_text" maxlen:"255"`
}

// HomePage 站点首页，全站唯一
type HomePage struct {
	HomeFields
	Services      []ServiceItem  `json:"services"`
	AboutFeatures []AboutFeature `json:"about_features"`
}

func NewHomePage() *HomePage {
	return &HomePage{
		HomeFields: HomeFields{
			HeroTitle:               "Fintaa",
			HeroSubtitle:            "SOFTWARE HOUSE",
			HeroTypingText:          "Transforming Ideas into Digital Reality...",
			HeroDescription:         "Pakistan's Premier Software Development Company - Specializing in cutting-edge technology solutions, from web development to AI agents, we deliver excellence in every project.",
			HeroPrimaryButtonText:   "Get Started",
			HeroSecondaryButtonText: "View Portfolio",
			AboutTitle:              "About Fintaa",
			AboutDescription:        "Registered in Pakistan as a sole proprietorship, Fintaa Software House is your trusted partner in digital transformation.",
			TechnologiesCount:       "50+",
			ProjectsCount:           "100+",
			ClientSatisfaction:      "95%",
			YearsExperience:         "5+",
			ContactEmail:            "info@Fintaa.pk",
			ContactLocation:         "Pakistan",
			BusinessHours:           "24/7 Available",
		},
		Services:      []ServiceItem{},
		AboutFeatures: []AboutFeature{},
	}
}

func (p *HomePage) Kind() PageKind { return KindHome }
func (p *HomePage) Fields() any    { return &p.HomeFields }

func (p *HomePage) Items() ([]ItemRecord, error) {
	var enc ItemEncoder
	AppendItems(&enc, "services", p.Services)
	AppendItems(&enc, "about_features", p.AboutFeatures)
	return enc.Result()
}

func (p *HomePage) SetItems(records []ItemRecord) error {
	dec := NewItemDecoder(records)
	DecodeInto(dec, "services", &p.Services)
	DecodeInto(dec, "about_features", &p.AboutFeatures)
	return dec.Err()
}
