package testutil

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
	"github.com/kyoma102/AI-tools-navigation/internal/i18n"
)

// Root returns the module root so tests can reach templates, locales and
// public assets regardless of the package they run in.
func Root() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// Bundle loads the shipped locale files.
func Bundle(t testing.TB) *i18n.Bundle {
	t.Helper()

	bundle, err := i18n.Load(filepath.Join(Root(), "locales"), "zh", []string{"zh", "en"})
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}
	return bundle
}

// Catalog is a small catalog covering popular, new, trial and screenshot-less tools.
func Catalog() catalog.Catalog {
	return catalog.Catalog{
		Categories: []catalog.Category{
			{ID: "writing", Name: "写作", Description: "AI写作助手", Icon: "pencil"},
			{ID: "image", Name: "图像", Description: "AI绘画与图像处理", Icon: "image"},
			{ID: "code", Name: "编程", Description: "AI编程助手", Icon: "code"},
		},
		Tools: []catalog.Tool{
			{
				ID:              "chatgpt",
				Name:            "ChatGPT",
				Description:     "OpenAI的对话式AI助手",
				LongDescription: "**ChatGPT** 可以回答问题、写作和编程。",
				Category:        "写作",
				Tags:            []string{"聊天", "写作"},
				Developer:       "OpenAI",
				URL:             "https://chat.openai.com",
				Rating:          4.8,
				ReviewCount:     1250,
				IsPopular:       true,
				IsNew:           true,
				Screenshots:     []string{"/assets/img/chatgpt.png"},
				Pricing:         catalog.Pricing{StartingPrice: "免费", PricingType: "订阅", HasFree: true},
				Features:        []string{"多轮对话"},
				UseCases:        []string{"内容创作"},
			},
			{
				ID:          "midjourney",
				Name:        "Midjourney",
				Description: "高质量AI绘画工具",
				Category:    "图像",
				Tags:        []string{"绘画", "Art"},
				Developer:   "Midjourney Inc.",
				URL:         "https://midjourney.com",
				Rating:      4.5,
				ReviewCount: 830,
				IsPopular:   true,
				Pricing:     catalog.Pricing{StartingPrice: "$10/月", PricingType: "订阅", HasFreeTrial: true},
			},
			{
				ID:          "copilot",
				Name:        "GitHub Copilot",
				Description: "AI结对编程",
				Category:    "编程",
				Tags:        []string{"代码补全"},
				Developer:   "GitHub",
				URL:         "https://github.com/features/copilot",
				Rating:      4.6,
				ReviewCount: 640,
				IsNew:       true,
				Pricing:     catalog.Pricing{StartingPrice: "$10/月", PricingType: "订阅"},
			},
		},
	}
}

// StaticLoader serves a fixed catalog.
type StaticLoader struct {
	Catalog catalog.Catalog
}

// Load implements the server's catalog loader.
func (l StaticLoader) Load(context.Context) catalog.Catalog {
	return l.Catalog
}
