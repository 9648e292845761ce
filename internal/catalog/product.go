package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Product is a single record of the product feed.
//
// The feed is hand-maintained and loose about JSON types: ids arrive as
// strings or numbers, numeric fields as numbers or numeric strings. The
// custom field types absorb those variants so a sloppy record never fails
// the whole feed.
type Product struct {
	ID             ID       `json:"id"`
	Name           string   `json:"name"`
	Price          Number   `json:"price"`
	OldPrice       Number   `json:"old_price"`
	Slots          Number   `json:"slots"`
	Finish         string   `json:"finish"`
	Description    string   `json:"description"`
	Image          string   `json:"image"`
	Images         []string `json:"images"`
	Specifications []string `json:"specifications"`
	Amazon         string   `json:"amazon"`
}

// Gallery returns the image URLs for the record in display order: the
// images list when present, otherwise the single image, otherwise nil.
// Callers substitute the placeholder asset for an empty result.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if strings.TrimSpace(p.Image) != "" {
		return []string{p.Image}
	}
	return nil
}

// PrimaryImage returns the first gallery image, or "" when the record has none.
func (p Product) PrimaryImage() string {
	if g := p.Gallery(); len(g) > 0 {
		return g[0]
	}
	return ""
}

// Discount reports the percentage saved against the old price, rounded to
// the nearest integer. ok is false unless both prices are valid and the old
// price is strictly higher than the current one.
func (p Product) Discount() (int, bool) {
	old := float64(p.OldPrice)
	cur := float64(p.Price)
	if !p.OldPrice.Valid() || !p.Price.Valid() || old <= 0 || old <= cur {
		return 0, false
	}
	return int(math.Round((old - cur) / old * 100)), true
}

// ID is a product identifier in canonical string form.
//
// Feeds mix string and numeric ids for the same catalog, so both "3" and 3
// decode to the same value; integral floats drop the decimal part the way a
// client-side catalog would have stringified them.
type ID string

// UnmarshalJSON accepts strings, numbers, and null. Anything else keeps its
// raw JSON text so a malformed record stays addressable instead of sinking
// the feed decode.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(formatNumber(n))
		return nil
	}
	*id = ID(string(data))
	return nil
}

func (id ID) String() string { return string(id) }

// Number is a float64 that also decodes from numeric JSON strings.
// Unparsable values decode to NaN rather than returning an error; NaN sorts
// after every real number and renders through the formatting fallback.
type Number float64

// UnmarshalJSON accepts numbers, numeric strings, and null.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = Number(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = Number(f)
			return nil
		}
	}
	*n = Number(math.NaN())
	return nil
}

// Valid reports whether the value parsed as a real number.
func (n Number) Valid() bool { return !math.IsNaN(float64(n)) }

// String renders the canonical form: integral values without a decimal
// point, NaN as "NaN".
func (n Number) String() string { return formatNumber(float64(n)) }

func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
