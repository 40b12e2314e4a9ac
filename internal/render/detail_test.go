package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
	"github.com/kyoma102/AI-tools-navigation/internal/nav"
)

func TestDetailSectionsFallbacks(t *testing.T) {
	t.Parallel()

	v := NewView(testBundle(), "zh")
	tool := sampleTool()

	doc := parseFragment(t, string(v.Screenshots(tool)))
	require.Equal(t, 1, doc.Find(".fallback").Length())
	require.Zero(t, doc.Find("img").Length())

	tool.Screenshots = []string{"/a.png", "/b.png"}
	doc = parseFragment(t, string(v.Screenshots(tool)))
	require.Equal(t, 2, doc.Find("img").Length())

	doc = parseFragment(t, string(v.RelatedTools(nil)))
	require.Equal(t, "暂无相关工具推荐", doc.Find(".fallback").Text())

	doc = parseFragment(t, string(v.RelatedTools([]catalog.Tool{{ID: "b", Name: "B", Description: "bee"}})))
	require.Equal(t, 1, doc.Find(".related-tool").Length())
	href, _ := doc.Find(".related-tool a").Attr("href")
	require.Equal(t, "/tool-detail?id=b", href)
}

func TestToolHeader(t *testing.T) {
	t.Parallel()

	v := NewView(testBundle(), "zh")
	doc := parseFragment(t, string(v.ToolHeader(sampleTool())))
	require.Equal(t, "Chat <Pro>", doc.Find(".tool-name").Text())
	require.Equal(t, "4.5/5", doc.Find(".rating").Text())
	require.Equal(t, 4, doc.Find(`[data-star="full"]`).Length())
	require.Equal(t, 1, doc.Find(`[data-star="half"]`).Length())
	require.Equal(t, 1, doc.Find(".tool-tags .tag").Length())
	href, _ := doc.Find("a.visit").Attr("href")
	require.Equal(t, "https://chat.example.com", href)
}

func TestPricingFlags(t *testing.T) {
	t.Parallel()

	v := NewView(testBundle(), "zh")
	tool := sampleTool()
	tool.Pricing = catalog.Pricing{StartingPrice: "$20/月", PricingType: "订阅", HasFree: true}
	doc := parseFragment(t, string(v.Pricing(tool)))
	require.Equal(t, "$20/月", doc.Find(".starting-price").Text())
	require.Equal(t, 1, doc.Find(".has-free").Length())
	require.Equal(t, 1, doc.Find(".no-trial").Length())
}

func TestDescriptionUsesMarkdownWithFallback(t *testing.T) {
	t.Parallel()

	v := NewView(testBundle(), "zh")
	tool := sampleTool()
	tool.LongDescription = "Line with **emphasis**"
	doc := parseFragment(t, string(v.ToolDescription(tool)))
	require.Equal(t, "emphasis", doc.Find(".prose strong").Text())

	tool.LongDescription = "  "
	tool.Description = "short one"
	doc = parseFragment(t, string(v.ToolDescription(tool)))
	require.Equal(t, "short one", strings.TrimSpace(doc.Find(".prose").Text()))
}

func TestReviewsAndFAQ(t *testing.T) {
	t.Parallel()

	v := NewView(testBundle(), "zh")
	doc := parseFragment(t, string(v.Reviews(catalog.SampleReviews())))
	require.Equal(t, 3, doc.Find(".review").Length())
	require.Contains(t, doc.Find(".review").First().Text(), "2023年9月28日")

	tool := sampleTool()
	doc = parseFragment(t, string(v.FAQ(catalog.FAQ(tool))))
	require.Equal(t, 3, doc.Find(".faq-item").Length())
}

func TestBreadcrumbTranslatesKeys(t *testing.T) {
	t.Parallel()

	v := NewView(testBundle(), "zh")
	tool := sampleTool()
	doc := parseFragment(t, string(v.Breadcrumb(nav.ToolCrumbs(tool, &catalog.Category{ID: "writing", Name: "写作"}))))
	links := doc.Find("a")
	require.Equal(t, 3, links.Length())
	href, _ := links.Eq(2).Attr("href")
	require.Equal(t, "/categories?category=writing", href)
	require.Equal(t, "Chat <Pro>", doc.Find(`[aria-current="page"]`).Text())
}

func TestNotFoundEscapesID(t *testing.T) {
	t.Parallel()

	v := NewView(testBundle(), "zh")
	out := string(v.NotFound(`<img src=x onerror=alert(1)>`))
	require.NotContains(t, out, "<img")
	doc := parseFragment(t, out)
	require.Contains(t, doc.Find("p").Text(), `<img src=x onerror=alert(1)>`)
}
