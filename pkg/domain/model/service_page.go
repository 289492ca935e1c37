package model

import "encoding/json"

// ServiceFields 服务详情页标量字段
type ServiceFields struct {
	HeroTitle          string `json:"hero_title" maxlen:"255"`
	HeroDescription    string `json:"hero_description" richtext:"true"`
	HeroImageURL       string `json:"hero_image_url" maxlen:"200"`
	ServiceOverview    string `json:"service_overview" richtext:"true"`
	ProcessTitle       string `json:"process_title" maxlen:"255"`
	TechnologiesTitle  string `json:"technologies_title" maxlen:"255"`
	PricingTitle       string `json:"pricing_title" maxlen:"255"`
	PricingDescription string `json:"pricing_description" richtext:"true"`
}

// ProcessStep 服务流程的一个步骤
type ProcessStep struct {
	StepNumber  int    `json:"step_number"`
	Title       string `json:"title" maxlen:"255"`
	Description string `json:"description"`
}

// Technology 服务所用的技术
type Technology struct {
	Name        string `json:"name" maxlen:"255"`
	LogoURL     string `json:"logo_url" maxlen:"200"`
	Description string `json:"description"`
}

// PricingFeature 价格方案中的一项
type PricingFeature struct {
	FeatureText string `json:"feature_text" maxlen:"255"`
	IsIncluded  bool   `json:"is_included"`
}

// UnmarshalJSON 未提供 is_included 时默认为 true
func (f *PricingFeature) UnmarshalJSON(data []byte) error {
	type alias PricingFeature
	v := alias{IsIncluded: true}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = PricingFeature(v)
	return nil
}

// PricingPlanFields 价格方案标量字段
type PricingPlanFields struct {
	Name        string `json:"name" maxlen:"255"`
	Price       string `json:"price" maxlen:"100"`
	Description string `json:"description"`
	IsPopular   bool   `json:"is_popular"`
}

// PricingPlan 价格方案，自身拥有有序的 features 子集合
type PricingPlan struct {
	PricingPlanFields
	Features []PricingFeature `json:"features"`
}

func (p *PricingPlan) Fields() any { return &p.PricingPlanFields }

func (p *PricingPlan) Items() ([]ItemRecord, error) {
	return EncodeItems("features", p.Features)
}

func (p *PricingPlan) SetItems(records []ItemRecord) error {
	features, err := DecodeItems[PricingFeature](records, "features")
	if err != nil {
		return err
	}
	p.Features = features
	return nil
}

// ServicePage 单个服务的详情页
type ServicePage struct {
	ServiceFields
	ProcessSteps []ProcessStep `json:"process_steps"`
	Technologies []Technology  `json:"technologies"`
	PricingPlans []PricingPlan `json:"pricing_plans"`
}

func NewServicePage() *ServicePage {
	return &ServicePage{
		ServiceFields: ServiceFields{
			ProcessTitle:      "Our Process",
			TechnologiesTitle: "Technologies We Use",
			PricingTitle:      "Pricing",
		},
		ProcessSteps: []ProcessStep{},
		Technologies: []Technology{},
		PricingPlans: []PricingPlan{},
	}
}

func (p *ServicePage) Kind() PageKind { return KindService }
func (p *ServicePage) Fields() any    { return &p.ServiceFields }

func (p *ServicePage) Items() ([]ItemRecord, error) {
	var enc ItemEncoder
	AppendItems(&enc, "process_steps", p.ProcessSteps)
	AppendItems(&enc, "technologies", p.Technologies)
	AppendItems(&enc, "pricing_plans", p.PricingPlans)
	return enc.Result()
}

func (p *ServicePage) SetItems(records []ItemRecord) error {
	dec := NewItemDecoder(records)
	DecodeInto(dec, "process_steps", &p.ProcessSteps)
	DecodeInto(dec, "technologies", &p.Technologies)
	DecodeInto(dec, "pricing_plans", &p.PricingPlans)
	return dec.Err()
}
