package model

import (
	"encoding/json"
	"fmt"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
)

// BlockType 正文内容块类型
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockImage     BlockType = "image"
	BlockQuote     BlockType = "quote"
	BlockCode      BlockType = "code"
	BlockList      BlockType = "list"
)

// ContentBlock 正文中的一个内容块。
// paragraph 使用 HTML，list 使用 Items，其余类型使用 Text。
// JSON 形式为 {"type": "...", "value": ...}。
type ContentBlock struct {
	Type  BlockType `json:"type"`
	Text  string    `json:"-"`
	HTML  string    `json:"-" richtext:"true"`
	Items []string  `json:"-"`
}

func (b ContentBlock) MarshalJSON() ([]byte, error) {
	var value any
	switch b.Type {
	case BlockParagraph:
		value = b.HTML
	case BlockList:
		items := b.Items
		if items == nil {
			items = []string{}
		}
		value = items
	default:
		value = b.Text
	}
	return json.Marshal(struct {
		Type  BlockType `json:"type"`
		Value any       `json:"value"`
	}{b.Type, value})
}

func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type  BlockType       `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = ContentBlock{Type: raw.Type}
	if len(raw.Value) == 0 || string(raw.Value) == "null" {
		return nil
	}
	switch raw.Type {
	case BlockParagraph:
		return json.Unmarshal(raw.Value, &b.HTML)
	case BlockList:
		return json.Unmarshal(raw.Value, &b.Items)
	case BlockHeading, BlockImage, BlockQuote, BlockCode:
		return json.Unmarshal(raw.Value, &b.Text)
	default:
		return fmt.Errorf("%w: block type %q", constant.ErrInvalidChoice, raw.Type)
	}
}

// Validate 校验块类型
func (b *ContentBlock) Validate() error {
	switch b.Type {
	case BlockHeading, BlockParagraph, BlockImage, BlockQuote, BlockCode, BlockList:
		return nil
	}
	return fmt.Errorf("%w: block type %q", constant.ErrInvalidChoice, b.Type)
}

// PublishDater 创建时需要补齐发布日期的内容
type PublishDater interface {
	EnsurePublishDate(today Date)
}

// BlogPageFields 旧版博客页标量字段
type BlogPageFields struct {
	Excerpt          string         `json:"excerpt" maxlen:"500"`
	FeaturedImageURL string         `json:"featured_image_url" maxlen:"200"`
	Author           string         `json:"author" maxlen:"255"`
	PublishDate      Date           `json:"publish_date"`
	ReadTime         string         `json:"read_time" maxlen:"20"`
	Content          []ContentBlock `json:"content"`
}

// BlogTag 旧版博客页标签
type BlogTag struct {
	TagName string `json:"tag_name" maxlen:"100"`
}

// BlogPage 旧版博客页，正文不支持 list 块
type BlogPage struct {
	BlogPageFields
	BlogTags []BlogTag `json:"blog_tags"`
}

func NewBlogPage() *BlogPage {
	return &BlogPage{
		BlogPageFields: BlogPageFields{
			Author:   "Fintaa Team",
			ReadTime: "5 min read",
			Content:  []ContentBlock{},
		},
		BlogTags: []BlogTag{},
	}
}

func (p *BlogPage) Kind() PageKind { return KindBlogPage }
func (p *BlogPage) Fields() any    { return &p.BlogPageFields }

func (p *BlogPage) Items() ([]ItemRecord, error) {
	return EncodeItems("blog_tags", p.BlogTags)
}

func (p *BlogPage) SetItems(records []ItemRecord) error {
	tags, err := DecodeItems[BlogTag](records, "blog_tags")
	if err != nil {
		return err
	}
	p.BlogTags = tags
	return nil
}

func (p *BlogPage) Validate() error {
	for _, b := range p.Content {
		if b.Type == BlockList {
			return fmt.Errorf("%w: block type %q", constant.ErrInvalidChoice, b.Type)
		}
	}
	return nil
}

func (p *BlogPage) EnsurePublishDate(today Date) {
	if p.PublishDate.IsZero() {
		p.PublishDate = today
	}
}

// BlogIndexPage 博客列表页，只允许 BlogPost 子页面
type BlogIndexPage struct {
	ListingFields
}

func NewBlogIndexPage() *BlogIndexPage {
	return &BlogIndexPage{ListingFields: ListingFields{
		HeroTitle:       "Our Blog",
		HeroDescription: "<p>Stay updated with the latest in technology, development insights, and industry trends.</p>",
	}}
}

func (p *BlogIndexPage) Kind() PageKind                      { return KindBlogIndex }
func (p *BlogIndexPage) Fields() any                         { return &p.ListingFields }
func (p *BlogIndexPage) Items() ([]ItemRecord, error)        { return nil, nil }
func (p *BlogIndexPage) SetItems(records []ItemRecord) error { return nil }

// BlogPostFields 博客文章标量字段
type BlogPostFields struct {
	Excerpt          string         `json:"excerpt" maxlen:"500"`
	Author           string         `json:"author" maxlen:"255"`
	PublishDate      Date           `json:"publish_date"`
	FeaturedImageURL string         `json:"featured_image_url" maxlen:"200"`
	Content          []ContentBlock `json:"content"`
	Tags             string         `json:"tags" maxlen:"500"`
}

// BlogPost 博客文章，父页面必须是 BlogIndexPage
type BlogPost struct {
	BlogPostFields
}

func NewBlogPost() *BlogPost {
	return &BlogPost{BlogPostFields: BlogPostFields{
		Author:  "Fintaa Team",
		Content: []ContentBlock{},
	}}
}

func (p *BlogPost) Kind() PageKind                      { return KindBlogPost }
func (p *BlogPost) Fields() any                         { return &p.BlogPostFields }
func (p *BlogPost) Items() ([]ItemRecord, error)        { return nil, nil }
func (p *BlogPost) SetItems(records []ItemRecord) error { return nil }

// TagList 返回拆分后的标签
func (p *BlogPost) TagList() []string {
	return SplitCommaList(p.Tags)
}

func (p *BlogPost) EnsurePublishDate(today Date) {
	if p.PublishDate.IsZero() {
		p.PublishDate = today
	}
}
