package model

import (
	"fmt"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
)

// TechnologyCategory 项目技术分类
type TechnologyCategory string

const (
	CategoryFrontend   TechnologyCategory = "frontend"
	CategoryBackend    TechnologyCategory = "backend"
	CategoryDatabase   TechnologyCategory = "database"
	CategoryDeployment TechnologyCategory = "deployment"
	CategoryOther      TechnologyCategory = "other"
)

// TechnologyCategoryChoices 项目技术分类可选值
var TechnologyCategoryChoices = []Choice{
	{Value: string(CategoryFrontend), Label: "Frontend"},
	{Value: string(CategoryBackend), Label: "Backend"},
	{Value: string(CategoryDatabase), Label: "Database"},
	{Value: string(CategoryDeployment), Label: "Deployment"},
	{Value: string(CategoryOther), Label: "Other"},
}

// ProjectFields 项目展示页标量字段
type ProjectFields struct {
	ProjectTitle     string `json:"project_title" maxlen:"255"`
	ProjectSubtitle  string `json:"project_subtitle" maxlen:"255"`
	ClientName       string `json:"client_name" maxlen:"255"`
	ProjectURL       string `json:"project_url" maxlen:"200"`
	GithubURL        string `json:"github_url" maxlen:"200"`
	ProjectOverview  string `json:"project_overview" richtext:"true"`
	ProjectChallenge string `json:"project_challenge" richtext:"true"`
	ProjectSolution  string `json:"project_solution" richtext:"true"`
	ProjectResults   string `json:"project_results" richtext:"true"`
	ProjectDuration  string `json:"project_duration" maxlen:"100"`
	ProjectTeamSize  string `json:"project_team_size" maxlen:"100"`
	CompletionDate   Date   `json:"completion_date"`
	FeaturedImageURL string `json:"featured_image_url" maxlen:"200"`
}

// ProjectTechnology 项目使用的技术
type ProjectTechnology struct {
	Name     string             `json:"name" maxlen:"255"`
	Category TechnologyCategory `json:"category"`
}

// Validate 空分类按 other 处理，其余必须是已知分类
func (t *ProjectTechnology) Validate() error {
	if t.Category == "" {
		t.Category = CategoryOther
		return nil
	}
	if !IsValidChoice(TechnologyCategoryChoices, string(t.Category)) {
		return fmt.Errorf("%w: category %q", constant.ErrInvalidChoice, t.Category)
	}
	return nil
}

// ProjectImage 项目截图
type ProjectImage struct {
	ImageURL   string `json:"image_url" maxlen:"200"`
	Caption    string `json:"caption" maxlen:"255"`
	IsFeatured bool   `json:"is_featured"`
}

// ProjectPage 作品集中的单个项目
type ProjectPage struct {
	ProjectFields
	ProjectTechnologies []ProjectTechnology `json:"project_technologies"`
	ProjectImages       []ProjectImage      `json:"project_images"`
}

func NewProjectPage() *ProjectPage {
	return &ProjectPage{
		ProjectTechnologies: []ProjectTechnology{},
		ProjectImages:       []ProjectImage{},
	}
}

func (p *ProjectPage) Kind() PageKind { return KindProject }
func (p *ProjectPage) Fields() any    { return &p.ProjectFields }

func (p *ProjectPage) Items() ([]ItemRecord, error) {
	var enc ItemEncoder
	AppendItems(&enc, "project_technologies", p.ProjectTechnologies)
	AppendItems(&enc, "project_images", p.ProjectImages)
	return enc.Result()
}

func (p *ProjectPage) SetItems(records []ItemRecord) error {
	dec := NewItemDecoder(records)
	DecodeInto(dec, "project_technologies", &p.ProjectTechnologies)
	DecodeInto(dec, "project_images", &p.ProjectImages)
	return dec.Err()
}
