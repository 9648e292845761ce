package content

import (
	"bytes"
	"html/template"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

const excerptLimit = 200

type renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

type renderedPage struct {
	body     template.HTML
	excerpt  string
	headings []Heading
}

func newRenderer() *renderer {
	return &renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
		policy: newHTMLPolicy(),
	}
}

// newHTMLPolicy allows the markup markdown bodies legitimately produce
// and strips the rest. Raw HTML passes through goldmark unsanitized, so
// this is the only gate between an author file and the page.
func newHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

func (r *renderer) render(source string) (renderedPage, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return renderedPage{}, err
	}
	clean := r.policy.SanitizeBytes(buf.Bytes())

	headings, excerpt := inspectHTML(clean)
	return renderedPage{
		body:     template.HTML(clean),
		excerpt:  excerpt,
		headings: headings,
	}, nil
}

// inspectHTML walks the sanitized fragment collecting the h2/h3 outline
// and the first paragraph's text for use as an excerpt.
func inspectHTML(fragment []byte) ([]Heading, string) {
	doc, err := html.Parse(bytes.NewReader(fragment))
	if err != nil {
		return nil, ""
	}

	var headings []Heading
	var excerpt string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h2":
				headings = append(headings, Heading{Level: 2, Text: nodeText(n)})
			case "h3":
				headings = append(headings, Heading{Level: 3, Text: nodeText(n)})
			case "p":
				if excerpt == "" {
					excerpt = truncate(nodeText(n), excerptLimit)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return headings, excerpt
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// truncate cuts s to at most limit runes, backing up to the previous
// word boundary and appending an ellipsis when anything was dropped.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !unicode.IsSpace(runes[cut]) {
		cut--
	}
	if cut == 0 {
		cut = limit
	}
	return strings.TrimRight(string(runes[:cut]), " ") + "…"
}
