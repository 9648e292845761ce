package main

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	"veltacases.com/web/internal/catalog"
	"veltacases.com/web/internal/format"
)

const cardSummaryLimit = 140

// ShopView aggregates all data needed for the shop page and the product
// grid fragment.
type ShopView struct {
	Lang       string
	Query      string
	SortKey    string
	Sorts      []SortOption
	Cards      []ProductCard
	Count      int
	CountLabel string
	Notice     ShopNotice
	Disabled   bool
	PushURL    string
}

// SortOption is one entry of the sort selector.
type SortOption struct {
	Value    string
	Label    string
	Selected bool
}

// ShopNotice carries the message-area copy for degraded catalog states.
type ShopNotice struct {
	Tone string // "error" or "stale"
	Text string
}

// ProductCard is a single tile in the product grid.
type ProductCard struct {
	ID         string
	Name       string
	URL        string
	Image      string
	Price      string
	OldPrice   string
	Discount   string
	Finish     string
	Slots      string
	Summary    string
	ViewLabel  string
	MessageURL string
	MailURL    string
}

// buildShopView filters and sorts the catalog snapshot for the current
// query parameters and prepares display strings.
func buildShopView(lang string, records []catalog.Product, lastErr error, loadedAt time.Time, q url.Values) ShopView {
	query := strings.TrimSpace(q.Get("q"))
	sortKey := catalog.ParseSortKey(q.Get("sort"))

	results := catalog.Derive(records, query, sortKey)

	view := ShopView{
		Lang:    lang,
		Query:   query,
		SortKey: string(sortKey),
		Count:   len(results),
	}
	view.CountLabel = i18nBundle.TF(lang, "shop.results.count", len(results))
	view.Sorts = buildSortOptions(lang, sortKey)
	view.Cards = make([]ProductCard, 0, len(results))
	for _, p := range results {
		view.Cards = append(view.Cards, buildProductCard(lang, p))
	}
	view.PushURL = shopPushURL(query, sortKey)

	switch {
	case lastErr != nil && len(records) == 0:
		view.Notice = ShopNotice{Tone: "error", Text: i18nBundle.T(lang, "shop.feed.error")}
		view.Disabled = true
	case lastErr != nil:
		view.Notice = ShopNotice{
			Tone: "stale",
			Text: i18nBundle.TF(lang, "shop.feed.stale", format.Date(loadedAt, lang)),
		}
	}
	return view
}

func buildSortOptions(lang string, selected catalog.SortKey) []SortOption {
	opts := make([]SortOption, 0, len(catalog.SortKeys))
	for _, key := range catalog.SortKeys {
		opts = append(opts, SortOption{
			Value:    string(key),
			Label:    i18nBundle.T(lang, "sort."+string(key)),
			Selected: key == selected,
		})
	}
	return opts
}

func buildProductCard(lang string, p catalog.Product) ProductCard {
	id := p.ID.String()
	card := ProductCard{
		ID:        id,
		Name:      p.Name,
		URL:       "/products/" + url.PathEscape(id),
		Image:     p.PrimaryImage(),
		Price:     format.Currency(float64(p.Price), lang),
		Finish:    p.Finish,
		Summary:   truncateText(p.Description, cardSummaryLimit),
		ViewLabel: i18nBundle.TF(lang, "card.view", p.Name),
	}
	if d, ok := p.Discount(); ok {
		card.OldPrice = format.Currency(float64(p.OldPrice), lang)
		card.Discount = fmt.Sprintf("-%d%%", d)
	}
	if p.Slots.Valid() {
		card.Slots = i18nBundle.TF(lang, "card.slots", p.Slots.String())
	}
	detailURL := merchant.DetailURL(id)
	card.MessageURL = merchant.ProductMessageLink(i18nBundle.TF(lang, "contact.message", p.Name, id, detailURL))
	card.MailURL = merchant.ProductMailLink(
		i18nBundle.TF(lang, "contact.subject", p.Name, id),
		i18nBundle.TF(lang, "contact.body", p.Name, id, detailURL),
	)
	return card
}

func shopPushURL(query string, sortKey catalog.SortKey) string {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	if sortKey != catalog.SortRelevance {
		q.Set("sort", string(sortKey))
	}
	if enc := q.Encode(); enc != "" {
		return "/?" + enc
	}
	return "/"
}

// truncateText clamps s to limit runes on a word boundary, appending an
// ellipsis when anything was dropped.
func truncateText(s string, limit int) string {
	s = strings.TrimSpace(s)
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
