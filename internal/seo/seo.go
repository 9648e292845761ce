package seo

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Alternate is a hreflang link to a translated variant of the page.
type Alternate struct {
	Href     string
	Hreflang string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	// NoIndex keeps thin pages (not-found views) out of search indexes.
	NoIndex    bool
	OG         OpenGraph
	Twitter    Twitter
	Alternates []Alternate
	JSONLD     []string
}
