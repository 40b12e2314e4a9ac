package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLocales(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"zh.json": `{"nav.home":"首页","results.for":"\"{q}\" 的搜索结果"}`,
		"en.json": `{"nav.home":"Home","results.for":"Results for \"{q}\""}`,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestResolveHonorsQValues(t *testing.T) {
	b, err := Load(writeLocales(t), "zh", []string{"zh", "en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := b.Resolve("zh;q=0.8, en;q=0.9"); got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
	if got := b.Resolve("zh-CN,zh;q=0.9"); got != "zh" {
		t.Fatalf("expected zh, got %s", got)
	}
	if got := b.Resolve("fr-FR"); got != "zh" {
		t.Fatalf("expected fallback zh, got %s", got)
	}
	if got := b.Resolve(""); got != "zh" {
		t.Fatalf("expected fallback for empty header, got %s", got)
	}
}

func TestLoadRequiresFallback(t *testing.T) {
	if _, err := Load(t.TempDir(), "zh", []string{"zh"}); err == nil {
		t.Fatalf("expected error when fallback locale is missing")
	}
}

func TestTFallsBackToDefaultThenKey(t *testing.T) {
	b := FromMaps("zh", map[string]map[string]string{
		"zh": {"only.zh": "仅中文"},
		"en": {},
	})
	if got := b.T("en", "only.zh"); got != "仅中文" {
		t.Fatalf("expected fallback translation, got %q", got)
	}
	if got := b.T("en", "missing.key"); got != "missing.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}

func TestTFSubstitutesPlaceholders(t *testing.T) {
	b, err := Load(writeLocales(t), "zh", []string{"zh", "en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := b.TF("en", "results.for", "q", "chat"); got != `Results for "chat"` {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestNormalize(t *testing.T) {
	b := FromMaps("zh", map[string]map[string]string{"zh": {}, "en": {}})
	if got, ok := b.Normalize("en-US"); !ok || got != "en" {
		t.Fatalf("expected en, got %q %v", got, ok)
	}
	if _, ok := b.Normalize("de"); ok {
		t.Fatalf("expected de to be unsupported")
	}
	if _, ok := b.Normalize("!!"); ok {
		t.Fatalf("expected malformed tag to be rejected")
	}
}
