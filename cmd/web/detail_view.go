package main

import (
	"fmt"
	"net/url"

	"veltacases.com/web/internal/catalog"
	"veltacases.com/web/internal/format"
)

// DetailView is the product detail page view model. Found is false when
// the requested id is not in the catalog, in which case only ID and the
// localized copy are meaningful.
type DetailView struct {
	Lang  string
	Found bool
	ID    string

	Name        string
	Finish      string
	Description string
	Price       string
	OldPrice    string
	Discount    string
	Slots       string
	Specs       []string
	Amazon      string

	Gallery GalleryView

	MessageURL string
	MailURL    string

	Recent []RecentCard
}

// GalleryView renders the image gallery with exactly one active thumb.
type GalleryView struct {
	ProductID string
	Main      string
	MainAlt   string
	Thumbs    []GalleryThumb
}

// GalleryThumb is one selectable gallery thumbnail.
type GalleryThumb struct {
	URL     string
	Active  bool
	Label   string
	FragURL string
}

// RecentCard is an entry in the recently viewed strip.
type RecentCard struct {
	ID    string
	Name  string
	URL   string
	Image string
	Price string
}

const recentStripLimit = 4

func buildDetailView(lang string, p catalog.Product) DetailView {
	id := p.ID.String()
	view := DetailView{
		Lang:        lang,
		Found:       true,
		ID:          id,
		Name:        p.Name,
		Finish:      p.Finish,
		Description: p.Description,
		Price:       format.Currency(float64(p.Price), lang),
		Specs:       p.Specifications,
		Amazon:      p.Amazon,
		Gallery:     buildGalleryView(lang, p, 0),
	}
	if d, ok := p.Discount(); ok {
		view.OldPrice = format.Currency(float64(p.OldPrice), lang)
		view.Discount = fmt.Sprintf("-%d%%", d)
	}
	if p.Slots.Valid() {
		view.Slots = i18nBundle.TF(lang, "card.slots", p.Slots.String())
	}
	detailURL := merchant.DetailURL(id)
	view.MessageURL = merchant.ProductMessageLink(i18nBundle.TF(lang, "contact.message", p.Name, id, detailURL))
	view.MailURL = merchant.ProductMailLink(
		i18nBundle.TF(lang, "contact.subject", p.Name, id),
		i18nBundle.TF(lang, "contact.body", p.Name, id, detailURL),
	)
	return view
}

func notFoundDetailView(lang, id string) DetailView {
	return DetailView{Lang: lang, ID: id}
}

// buildGalleryView selects the active image, clamping out-of-range
// indexes back into the gallery.
func buildGalleryView(lang string, p catalog.Product, active int) GalleryView {
	images := p.Gallery()
	id := p.ID.String()
	view := GalleryView{ProductID: id, MainAlt: p.Name}
	if len(images) == 0 {
		return view
	}
	if active < 0 || active >= len(images) {
		active = 0
	}
	view.Main = images[active]
	if len(images) < 2 {
		return view
	}
	view.Thumbs = make([]GalleryThumb, 0, len(images))
	for i, img := range images {
		view.Thumbs = append(view.Thumbs, GalleryThumb{
			URL:     img,
			Active:  i == active,
			Label:   i18nBundle.TF(lang, "detail.gallery.thumb", i+1),
			FragURL: fmt.Sprintf("/fragments/products/%s/gallery?image=%d", url.PathEscape(id), i),
		})
	}
	return view
}

// buildRecentStrip resolves previously viewed ids against the catalog,
// keeping order and dropping ids that are no longer listed.
func buildRecentStrip(lang string, ids []string, records []catalog.Product) []RecentCard {
	if len(ids) == 0 {
		return nil
	}
	cards := make([]RecentCard, 0, recentStripLimit)
	for _, id := range ids {
		p, ok := catalog.Find(records, id)
		if !ok {
			continue
		}
		pid := p.ID.String()
		cards = append(cards, RecentCard{
			ID:    pid,
			Name:  p.Name,
			URL:   "/products/" + url.PathEscape(pid),
			Image: p.PrimaryImage(),
			Price: format.Currency(float64(p.Price), lang),
		})
		if len(cards) == recentStripLimit {
			break
		}
	}
	return cards
}
