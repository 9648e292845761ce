// Package i18n holds the storefront's locale string bundles.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Bundle maps locale keys to translated strings for every loaded language.
type Bundle struct {
	dict     map[string]map[string]string
	fallback string
}

// Load reads every <lang>.json file in dir. The fallback language must be
// among them; other languages are whatever the directory provides.
func Load(dir, fallback string) (*Bundle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales dir: %w", err)
	}

	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: strings.ToLower(fallback),
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}
		b.dict[strings.ToLower(strings.TrimSuffix(name, ".json"))] = m
	}
	if _, ok := b.dict[b.fallback]; !ok {
		return nil, fmt.Errorf("i18n: fallback locale %q missing from %s", fallback, dir)
	}
	return b, nil
}

// Supported lists the loaded languages, sorted.
func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.dict))
	for lang := range b.dict {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// Has reports whether lang was loaded.
func (b *Bundle) Has(lang string) bool {
	_, ok := b.dict[lang]
	return ok
}

// T returns the translation for key in lang, falling back to the default
// language and finally to the key itself.
func (b *Bundle) T(lang, key string) string {
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// TF translates key and applies fmt-style arguments.
func (b *Bundle) TF(lang, key string, args ...any) string {
	msg := b.T(lang, key)
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Resolve picks the best supported language from an Accept-Language header,
// honouring q-values and reducing region tags to their base language.
func (b *Bundle) Resolve(accept string) string {
	type candidate struct {
		lang string
		q    float64
	}
	var cands []candidate
	for _, part := range strings.Split(accept, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		q := 1.0
		if base, params, found := strings.Cut(part, ";"); found {
			part = strings.TrimSpace(base)
			if qs, found := strings.CutPrefix(strings.TrimSpace(params), "q="); found {
				if v, err := strconv.ParseFloat(strings.TrimSpace(qs), 64); err == nil {
					q = min(max(v, 0), 1)
				}
			}
		}
		lang := strings.ToLower(part)
		if base, _, found := strings.Cut(lang, "-"); found {
			lang = base
		}
		cands = append(cands, candidate{lang: lang, q: q})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].q > cands[j].q })
	for _, c := range cands {
		if b.Has(c.lang) {
			return c.lang
		}
	}
	return b.fallback
}
