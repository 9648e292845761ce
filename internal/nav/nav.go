package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/about"
	LabelKey string // i18n key, e.g. "nav.about"
	Also     []string // additional path prefixes that light this item up
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition. The shop lives at the root and
// also claims the product detail pages.
var Main = []Item{
	{Path: "/", LabelKey: "nav.shop", Also: []string{"/products"}},
	{Path: "/about", LabelKey: "nav.about"},
	{Path: "/care", LabelKey: "nav.care"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it, currentPath),
		})
	}
	return items
}

func isActive(it Item, currentPath string) bool {
	if it.Path == "/" {
		if currentPath == "/" {
			return true
		}
	} else if currentPath == it.Path || strings.HasPrefix(currentPath, it.Path+"/") {
		return true
	}
	for _, p := range it.Also {
		if currentPath == p || strings.HasPrefix(currentPath, p+"/") {
			return true
		}
	}
	return false
}

// Breadcrumbs builds breadcrumb entries from the current path: the shop root
// first, then one crumb per segment with a prettified label.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", LabelKey: "nav.shop", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	if clean == "." {
		return crumbs
	}
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href += "/" + seg
		crumb := Crumb{
			Href:   href,
			Label:  titleFromSegment(seg),
			Active: i == len(parts)-1,
		}
		for _, it := range Main {
			if it.Path == href {
				crumb.LabelKey = it.LabelKey
				break
			}
		}
		crumbs = append(crumbs, crumb)
	}
	return crumbs
}

// BreadcrumbsNamed builds path breadcrumbs and replaces the terminal label.
// Detail pages use it to show the product name instead of its id.
func BreadcrumbsNamed(currentPath, terminal string) []Crumb {
	crumbs := Breadcrumbs(currentPath)
	if terminal != "" && len(crumbs) > 0 {
		last := &crumbs[len(crumbs)-1]
		last.Label = terminal
		last.LabelKey = ""
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
