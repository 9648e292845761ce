package catalog

import (
	"sort"
	"strings"
)

// SortKey selects the ordering of derived product lists.
type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortSlotsAsc  SortKey = "slots-asc"
	SortSlotsDesc SortKey = "slots-desc"
)

// SortKeys lists the selectable orderings in display order.
var SortKeys = []SortKey{SortRelevance, SortPriceAsc, SortPriceDesc, SortSlotsAsc, SortSlotsDesc}

// ParseSortKey maps user input onto a SortKey. Unknown or empty input falls
// back to relevance; it never fails.
func ParseSortKey(s string) SortKey {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortSlotsAsc, SortSlotsDesc:
		return key
	default:
		return SortRelevance
	}
}

// Derive filters records against the query and orders the result.
//
// Matching is a case-insensitive substring test against name, finish, and
// the string form of slots; an empty or whitespace-only query matches every
// record. Relevance keeps feed order. Directional sorts are stable, and
// records whose sort field is not a number order after all numeric ones in
// either direction, keeping their relative order among themselves. The
// input slice is never mutated, and equal inputs derive equal outputs.
func Derive(records []Product, query string, key SortKey) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0, len(records))
	for _, rec := range records {
		if q == "" || matches(rec, q) {
			out = append(out, rec)
		}
	}
	sortRecords(out, key)
	return out
}

func matches(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Finish), q) {
		return true
	}
	return strings.Contains(p.Slots.String(), q)
}

func sortRecords(records []Product, key SortKey) {
	var field func(Product) Number
	asc := true
	switch key {
	case SortPriceAsc:
		field = func(p Product) Number { return p.Price }
	case SortPriceDesc:
		field, asc = func(p Product) Number { return p.Price }, false
	case SortSlotsAsc:
		field = func(p Product) Number { return p.Slots }
	case SortSlotsDesc:
		field, asc = func(p Product) Number { return p.Slots }, false
	default:
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, b := field(records[i]), field(records[j])
		if a.Valid() != b.Valid() {
			return a.Valid()
		}
		if !a.Valid() {
			return false
		}
		if asc {
			return float64(a) < float64(b)
		}
		return float64(b) < float64(a)
	})
}
