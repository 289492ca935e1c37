package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentBlockJSON(t *testing.T) {
	data, err := json.Marshal(ContentBlock{Type: BlockParagraph, HTML: "<p>hi</p>"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"paragraph","value":"<p>hi</p>"}`, string(data))

	data, err = json.Marshal(ContentBlock{Type: BlockList})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"list","value":[]}`, string(data))

	var b ContentBlock
	require.NoError(t, json.Unmarshal([]byte(`{"type":"list","value":["a","b"]}`), &b))
	assert.Equal(t, []string{"a", "b"}, b.Items)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"heading","value":"Title"}`), &b))
	assert.Equal(t, ContentBlock{Type: BlockHeading, Text: "Title"}, b)

	err = json.Unmarshal([]byte(`{"type":"video","value":"x"}`), &b)
	assert.ErrorIs(t, err, constant.ErrInvalidChoice)
}

func TestValidateContent(t *testing.T) {
	post := NewBlogPost()
	post.Content = []ContentBlock{{Type: BlockList, Items: []string{"a"}}}
	assert.NoError(t, ValidateContent(post))

	post.Excerpt = strings.Repeat("字", 501)
	err := ValidateContent(post)
	assert.ErrorIs(t, err, constant.ErrFieldTooLong)
	assert.Contains(t, err.Error(), "excerpt")

	legacy := NewBlogPage()
	legacy.Content = []ContentBlock{{Type: BlockList}}
	assert.ErrorIs(t, ValidateContent(legacy), constant.ErrInvalidChoice)

	post = NewBlogPost()
	post.Content = []ContentBlock{{Type: "video"}}
	err = ValidateContent(post)
	assert.ErrorIs(t, err, constant.ErrInvalidChoice)
	assert.Contains(t, err.Error(), "content[0]")
}

func TestTransformRichTextOnlyTouchesRichFields(t *testing.T) {
	post := NewBlogPost()
	post.Excerpt = "plain"
	post.Content = []ContentBlock{
		{Type: BlockParagraph, HTML: "body"},
		{Type: BlockQuote, Text: "quote"},
		{Type: BlockParagraph},
	}

	var seen []string
	err := TransformRichText(post, func(s string) (string, error) {
		seen = append(seen, s)
		return "<p>" + s + "</p>", nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"body"}, seen)
	assert.Equal(t, "<p>body</p>", post.Content[0].HTML)
	assert.Equal(t, "quote", post.Content[1].Text)
	assert.Empty(t, post.Content[1].HTML)
	assert.Empty(t, post.Content[2].HTML)
	assert.Equal(t, "plain", post.Excerpt)
}

func TestItemsKeepOrder(t *testing.T) {
	home := NewHomePage()
	home.Services = []ServiceItem{{Title: "B"}, {Title: "A"}, {Title: "C"}}
	home.AboutFeatures = []AboutFeature{{FeatureText: "x"}}

	records, err := home.Items()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "services", records[0].Collection)
	assert.Equal(t, 2, records[2].SortOrder)

	restored := NewHomePage()
	require.NoError(t, restored.SetItems(records))
	assert.Equal(t, home.Services, restored.Services)
	assert.Equal(t, home.AboutFeatures, restored.AboutFeatures)
}

func TestChoices(t *testing.T) {
	assert.Equal(t, "AI & Automation", ChoiceLabel(ServiceChoices, "ai_automation"))
	assert.Equal(t, "unknown", ChoiceLabel(ServiceChoices, "unknown"))
	assert.True(t, IsValidChoice(BudgetChoices, "50k_plus"))
	assert.False(t, IsValidChoice(TimelineChoices, ""))

	s := &ContactSubmission{Name: "John Smith", Service: "web_development"}
	assert.Equal(t, "John Smith - Web Development", s.String())
}

func TestPageTreeHelpers(t *testing.T) {
	root := &Page{Path: "0001"}
	child := &Page{Path: "00010002"}
	grandchild := &Page{Path: "000100020003"}

	assert.True(t, grandchild.IsDescendantOf(root))
	assert.True(t, grandchild.IsDescendantOf(child))
	assert.False(t, child.IsDescendantOf(child))
	assert.Equal(t, []string{"0001", "00010002"}, grandchild.AncestorPaths())
	assert.Empty(t, root.AncestorPaths())
}

func TestPageTypeRules(t *testing.T) {
	post, ok := LookupPageType(KindBlogPost)
	require.True(t, ok)
	assert.True(t, post.AllowsParent(KindBlogIndex))
	assert.False(t, post.AllowsParent(KindHome))

	index, _ := LookupPageType(KindBlogIndex)
	assert.True(t, index.AllowsSubpage(KindBlogPost))
	assert.False(t, index.AllowsSubpage(KindProject))

	home, _ := LookupPageType(KindHome)
	assert.True(t, home.AllowsSubpage(KindContact))
	assert.Equal(t, 1, home.MaxCount)

	for _, pt := range PageTypes() {
		assert.NotEqual(t, KindRoot, pt.Kind)
	}
	_, ok = NewContent("unknown")
	assert.False(t, ok)
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	d := NewDate(time.Date(2025, 3, 9, 18, 30, 0, 0, time.Local))
	data, err = json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-09"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-12-01"`), &parsed))
	assert.Equal(t, 2024, parsed.Year())
	assert.Error(t, json.Unmarshal([]byte(`"01/12/2024"`), &parsed))
}

func TestSplitCommaList(t *testing.T) {
	assert.Equal(t, []string{"go", "web"}, SplitCommaList(" go, ,web ,"))
	assert.Empty(t, SplitCommaList(""))
}
