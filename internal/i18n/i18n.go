package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Bundle holds flat key/value dictionaries per language.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported map[string]struct{}
	tags      []string
	matcher   language.Matcher
}

// Load reads <dir>/<lang>.json for every supported language. Only the
// fallback locale is required to exist.
func Load(dir string, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{"zh", "en"}
	}
	b := &Bundle{
		dict:      map[string]map[string]string{},
		fallback:  fallback,
		supported: map[string]struct{}{},
	}
	for _, l := range supported {
		path := filepath.Join(dir, l+".json")
		raw, err := os.ReadFile(path)
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
		b.supported[l] = struct{}{}
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	b.buildMatcher()
	return b, nil
}

// FromMaps builds a bundle from in-memory dictionaries.
func FromMaps(fallback string, dicts map[string]map[string]string) *Bundle {
	b := &Bundle{
		dict:      map[string]map[string]string{},
		fallback:  fallback,
		supported: map[string]struct{}{},
	}
	for lang, m := range dicts {
		b.dict[lang] = m
		b.supported[lang] = struct{}{}
	}
	if _, ok := b.supported[fallback]; !ok {
		b.dict[fallback] = map[string]string{}
		b.supported[fallback] = struct{}{}
	}
	b.buildMatcher()
	return b
}

func (b *Bundle) buildMatcher() {
	// The fallback must be first so the matcher defaults to it.
	b.tags = []string{b.fallback}
	for l := range b.supported {
		if l != b.fallback {
			b.tags = append(b.tags, l)
		}
	}
	sort.Strings(b.tags[1:])
	langTags := make([]language.Tag, 0, len(b.tags))
	for _, l := range b.tags {
		langTags = append(langTags, language.Make(l))
	}
	b.matcher = language.NewMatcher(langTags)
}

// Supported returns the loaded languages in sorted order.
func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.supported))
	for k := range b.supported {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// IsSupported reports whether lang has a loaded dictionary.
func (b *Bundle) IsSupported(lang string) bool {
	_, ok := b.supported[lang]
	return ok
}

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if b == nil {
		return key
	}
	if lang != "" {
		if m, ok := b.dict[lang]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// TF translates key and substitutes {name} placeholders from args given as
// alternating name/value pairs.
func (b *Bundle) TF(lang, key string, args ...string) string {
	s := b.T(lang, key)
	if len(args) < 2 {
		return s
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Resolve chooses the best language from an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	acceptLang = strings.TrimSpace(acceptLang)
	if acceptLang == "" {
		return b.fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No || idx < 0 || idx >= len(b.tags) {
		return b.fallback
	}
	return b.tags[idx]
}

// Normalize maps an explicit language choice (e.g. ?hl=en-US) to a supported
// language, returning false when nothing matches.
func (b *Bundle) Normalize(lang string) (string, bool) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "", false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	if b.IsSupported(base.String()) {
		return base.String(), true
	}
	return "", false
}
